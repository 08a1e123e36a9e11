package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlibekovAA/user-registry/internal/common/validation"
)

type DetailResponse struct {
	Detail any `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteDetail(w http.ResponseWriter, status int, detail any) {
	WriteJSON(w, status, DetailResponse{Detail: detail})
}

// DecodeJSON decodes the request body into v. Malformed or mistyped input is
// reported as a *validation.Error located under "body", as is anything left
// after the first value. An oversized body yields the *http.MaxBytesError
// from the reader.
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}

	// The body must hold exactly one JSON value.
	var trailing json.RawMessage
	err := dec.Decode(&trailing)
	if errors.Is(err, io.EOF) {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return bodyError(validation.FieldError{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"})
}

func decodeError(err error) error {
	var (
		maxBytesErr *http.MaxBytesError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return err
	case errors.Is(err, io.EOF):
		return bodyError(validation.FieldError{Loc: []any{"body"}, Msg: "Field required", Type: "missing"})
	case errors.As(err, &syntaxErr):
		return bodyError(validation.FieldError{Loc: []any{"body", syntaxErr.Offset}, Msg: "JSON decode error", Type: "json_invalid"})
	case errors.Is(err, io.ErrUnexpectedEOF):
		return bodyError(validation.FieldError{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"})
	case errors.As(err, &typeErr):
		return bodyError(typeError(typeErr))
	default:
		return fmt.Errorf("decode request body: %w", err)
	}
}

func bodyError(fe validation.FieldError) error {
	return &validation.Error{Fields: []validation.FieldError{fe}}
}

func typeError(err *json.UnmarshalTypeError) validation.FieldError {
	loc := []any{"body"}
	if err.Field == "" {
		return validation.FieldError{Loc: loc, Msg: "Input should be a valid dictionary", Type: "model_attributes_type"}
	}

	for _, part := range strings.Split(err.Field, ".") {
		loc = append(loc, part)
	}

	switch err.Type.Kind().String() {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return validation.FieldError{Loc: loc, Msg: "Input should be a valid integer", Type: "int_type"}
	case "string":
		return validation.FieldError{Loc: loc, Msg: "Input should be a valid string", Type: "string_type"}
	default:
		return validation.FieldError{Loc: loc, Msg: fmt.Sprintf("Input should be a valid %s", err.Type.String()), Type: "type_error"}
	}
}

func GetClientIP(r *http.Request) string {
	ip := r.Header.Get("X-Real-IP")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
		if idx := strings.Index(ip, ","); idx != -1 {
			ip = strings.TrimSpace(ip[:idx])
		}
	}
	if ip == "" {
		ip = r.RemoteAddr
		if idx := strings.LastIndex(ip, ":"); idx != -1 {
			ip = ip[:idx]
		}
	}
	return ip
}

func RequireMethod(method string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				MethodNotAllowed(w, method)
				return
			}
			next(w, r)
		}
	}
}

func MethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteDetail(w, http.StatusNotFound, "Not Found")
}

func WithTimeout(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next(w, r.WithContext(ctx))
		}
	}
}
