package handler

import (
	"errors"
	"net/http"
	"strconv"

	"finadmin/internal/apperrors"
	"finadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation failures are 400, lookup misses 404, integrity and
// uniqueness conflicts 409, everything else 500.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ValidationFailure(http.StatusBadRequest, verr.Error(), verr.Fields))
		return
	}
	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	if errors.Is(err, apperrors.ErrIntegrityConflict) || errors.Is(err, apperrors.ErrDuplicate) {
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
}

// pathID parses a numeric path parameter, writing a 400 response itself
// when the value is not a positive integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid "+name+" path parameter"))
		return 0, false
	}
	return id, true
}
