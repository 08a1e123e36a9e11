package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonhttp "github.com/AlibekovAA/user-registry/internal/common/http"
	"github.com/AlibekovAA/user-registry/internal/common/validation"
)

type payload struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

func decode(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var p payload
	return commonhttp.DecodeJSON(req, &p)
}

func TestDecodeJSON_Valid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","age":3,"extra":true}`))
	var p payload

	require.NoError(t, commonhttp.DecodeJSON(req, &p))
	assert.Equal(t, "a", *p.Name)
	assert.Equal(t, 3, *p.Age)
}

func TestDecodeJSON_TrailingWhitespace(t *testing.T) {
	require.NoError(t, decode(t, "{\"name\":\"a\"}\n\t "))
}

func TestDecodeJSON_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		loc     []any
		errType string
	}{
		{"empty", "", []any{"body"}, "missing"},
		{"truncated", `{"name":`, []any{"body"}, "json_invalid"},
		{"syntax", `{"name" "a"}`, nil, "json_invalid"},
		{"int type", `{"age":"x"}`, []any{"body", "age"}, "int_type"},
		{"string type", `{"name":false}`, []any{"body", "name"}, "string_type"},
		{"array body", `[]`, []any{"body"}, "model_attributes_type"},
		{"trailing garbage", `{"name":"a"} garbage`, []any{"body"}, "json_invalid"},
		{"second value", `{"name":"a"}{"age":1}`, []any{"body"}, "json_invalid"},
		{"stray brace", `{"name":"a"}}`, []any{"body"}, "json_invalid"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := decode(t, tc.body)

			vErr, ok := validation.AsError(err)
			require.True(t, ok, "got %v", err)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tc.errType, vErr.Fields[0].Type)
			if tc.loc == nil {
				require.Len(t, vErr.Fields[0].Loc, 2)
				assert.Equal(t, "body", vErr.Fields[0].Loc[0])
				assert.IsType(t, int64(0), vErr.Fields[0].Loc[1])
				return
			}
			assert.Equal(t, tc.loc, vErr.Fields[0].Loc)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var p payload
	err := commonhttp.DecodeJSON(req, &p)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	assert.Equal(t, "198.51.100.7", commonhttp.GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1")
	assert.Equal(t, "203.0.113.1", commonhttp.GetClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", commonhttp.GetClientIP(req))
}
