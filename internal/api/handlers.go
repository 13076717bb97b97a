package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

const (
	serviceName  = "Lovetype Compatibility API"
	maxBodyBytes = 64 << 10
)

type rootResponse struct {
	Service   string   `json:"service"`
	OK        bool     `json:"ok"`
	Endpoints []string `json:"endpoints"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Params    string `json:"params"`
	Centroids string `json:"centroids"`
	Mapping   string `json:"mapping"`
	Copy      string `json:"copy"`
}

// scoreRequest is the /score body. Pointers tell a missing field from an
// empty string; empty names are left to the classifier to reject.
type scoreRequest struct {
	TypeA *string `json:"typeA" validate:"required"`
	TypeB *string `json:"typeB" validate:"required"`
}

// Root describes the service.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Service:   serviceName,
		OK:        true,
		Endpoints: []string{"/health", "/types", "/score"},
	})
}

// Favicon answers browser favicon probes without a 404.
func (h *Handler) Favicon(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ok": "no favicon"})
}

// Health reports per-dataset presence. It never fails.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	st := h.svc.Health()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Params:    st["params"],
		Centroids: st["centroids"],
		Mapping:   st["mapping"],
		Copy:      st["copy"],
	})
}

// Types lists the known type names.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.Types()
	if err != nil {
		h.classifyError(w, r, err)
		return
	}
	if types == nil {
		types = []string{}
	}
	writeJSON(w, http.StatusOK, types)
}

// Score classifies a pair of types.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, []fieldError{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body: " + err.Error(),
			Type: "value_error.jsondecode",
		}})
		return
	}
	if errs := validateBody(&req); errs != nil {
		writeError(w, http.StatusUnprocessableEntity, errs)
		return
	}

	res, err := h.svc.Classify(*req.TypeA, *req.TypeB)
	if err != nil {
		h.classifyError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// classifyError maps classifier errors to status codes: absent reference
// data is 503, bad input or bad reference content is 400.
func (h *Handler) classifyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case lovetype.IsUnavailable(err):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case lovetype.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "classification failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
