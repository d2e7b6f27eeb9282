package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespond_StatusAndCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{InvalidField("price", "price cannot be negative"), http.StatusBadRequest, "invalid_field"},
		{FieldErrors{{Field: "min_price", Reason: "enter a number"}}, http.StatusBadRequest, "invalid_field"},
		{fmt.Errorf("wrapped: %w", ErrNotFound("order", 3)), http.StatusNotFound, "not_found"},
		{ErrConstraint("client", "full_name", "duplicate"), http.StatusBadRequest, "constraint_violation"},
		{ErrScope([]string{"price"}, []string{"number"}), http.StatusBadRequest, "partial_update_scope_violation"},
		{ErrBusiness("invalid_request"), http.StatusBadRequest, "invalid_request"},
		{errors.New("db exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, tc.err)

		if w.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
		}

		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: decode: %v", tc.err, err)
		}
		if body.Code != tc.code {
			t.Fatalf("%v: expected code %q, got %q", tc.err, tc.code, body.Code)
		}
	}
}

func TestRespond_InternalErrorIsNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("password=hunter2"))

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "internal server error" {
		t.Fatalf("cause leaked into response: %q", body.Message)
	}
	if len(c.Errors) != 1 {
		t.Fatalf("cause must be attached to the context for logging")
	}
}
