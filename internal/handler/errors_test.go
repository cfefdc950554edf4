package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finadmin/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.Invalid("name", "required"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("code value", 7), http.StatusNotFound},
		{"reference not found", &apperrors.ReferenceNotFoundError{Token: "Atlantis"}, http.StatusNotFound},
		{"wrapped reference not found", fmt.Errorf("address[1]: %w", &apperrors.ReferenceNotFoundError{Token: "X"}), http.StatusNotFound},
		{"integrity conflict", fmt.Errorf("%w: fk", apperrors.ErrIntegrityConflict), http.StatusConflict},
		{"duplicate", fmt.Errorf("%w: uq", apperrors.ErrDuplicate), http.StatusConflict},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw string
		ok  bool
	}{
		{"5", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Params = gin.Params{{Key: "codeId", Value: tc.raw}}

		id, ok := pathID(c, "codeId")
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			assert.Equal(t, int64(5), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	}
}
