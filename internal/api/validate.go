package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the shared validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// fieldError is one entry of a 422 detail list.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// validateBody checks s and returns one fieldError per failed field, or nil.
func validateBody(s any) []fieldError {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]fieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = fieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  translate(fe),
			Type: "value_error." + fe.Tag(),
		}
	}
	return out
}

func translate(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "field required"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// jsonFieldName reports struct fields by their JSON name in validation
// errors.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
