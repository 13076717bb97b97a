package api

import (
	"bytes"
	"net/http"

	"github.com/hejijunhao/lovetype/internal/output"
)

const contentTypeJSON = "application/json; charset=utf-8"

// errorResponse is the error body: {"detail": ...}.
type errorResponse struct {
	Detail any `json:"detail"`
}

// writeJSON encodes v with Unicode and HTML characters kept verbatim.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := output.Encode(&buf, v, false); err != nil {
		http.Error(w, `{"detail":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
