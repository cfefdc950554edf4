package handler

import (
	"net/http"

	"finadmin/internal/middleware"
	"finadmin/internal/service"
	"finadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type CodeValueHandler struct {
	codeValueService service.CodeValueService
}

func NewCodeValueHandler(codeValueService service.CodeValueService) *CodeValueHandler {
	return &CodeValueHandler{codeValueService: codeValueService}
}

func (h *CodeValueHandler) RegisterRoutes(router *gin.RouterGroup) {
	values := router.Group("/api/codes/:codeId/codevalues")
	{
		values.GET("", middleware.RequirePermission(service.PermCodeValuesRead), h.ListCodeValues)
		values.GET("/:codeValueId", middleware.RequirePermission(service.PermCodeValuesRead), h.GetCodeValue)
		values.POST("", middleware.RequirePermission(service.PermCodeValuesWrite), h.CreateCodeValue)
		values.PUT("/:codeValueId", middleware.RequirePermission(service.PermCodeValuesWrite), h.UpdateCodeValue)
		values.DELETE("/:codeValueId", middleware.RequirePermission(service.PermCodeValuesWrite), h.DeleteCodeValue)
	}
}

// ListCodeValues returns all values under a code
// @Summary      List code values
// @Tags         codevalues
// @Security     BearerAuth
// @Produce      json
// @Param        codeId  path   int   true   "Code ID"
// @Param        byName  query  bool  false  "Order by name instead of position"
// @Success      200  {object}  response.Response
// @Router       /api/codes/{codeId}/codevalues [get]
func (h *CodeValueHandler) ListCodeValues(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}
	byName := c.Query("byName") == "true"

	values, err := h.codeValueService.ListByCode(c.Request.Context(), codeID, byName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, values))
}

// GetCodeValue returns one value; the path token is a numeric id or an exact label
// @Summary      Retrieve a code value
// @Tags         codevalues
// @Security     BearerAuth
// @Produce      json
// @Param        codeId       path  int     true  "Code ID"
// @Param        codeValueId  path  string  true  "Code value ID or label"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/codes/{codeId}/codevalues/{codeValueId} [get]
func (h *CodeValueHandler) GetCodeValue(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}
	token := c.Param("codeValueId")

	value, err := h.codeValueService.Get(c.Request.Context(), codeID, token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, value))
}

// CreateCodeValue creates a new value under a code
// @Summary      Create code value
// @Tags         codevalues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        codeId   path  int                             true  "Code ID"
// @Param        payload  body  service.CreateCodeValueRequest  true  "Code value payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/codes/{codeId}/codevalues [post]
func (h *CodeValueHandler) CreateCodeValue(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}

	var req service.CreateCodeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.codeValueService.Create(c.Request.Context(), codeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateCodeValue applies a partial update to a value
// @Summary      Update code value
// @Tags         codevalues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        codeId       path  int                             true  "Code ID"
// @Param        codeValueId  path  int                             true  "Code value ID"
// @Param        payload      body  service.UpdateCodeValueRequest  true  "Partial update payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/codes/{codeId}/codevalues/{codeValueId} [put]
func (h *CodeValueHandler) UpdateCodeValue(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}
	codeValueID, ok := pathID(c, "codeValueId")
	if !ok {
		return
	}

	var req service.UpdateCodeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.codeValueService.Update(c.Request.Context(), codeID, codeValueID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// DeleteCodeValue removes a value unless something still references it
// @Summary      Delete code value
// @Tags         codevalues
// @Security     BearerAuth
// @Produce      json
// @Param        codeId       path  int  true  "Code ID"
// @Param        codeValueId  path  int  true  "Code value ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/codes/{codeId}/codevalues/{codeValueId} [delete]
func (h *CodeValueHandler) DeleteCodeValue(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}
	codeValueID, ok := pathID(c, "codeValueId")
	if !ok {
		return
	}

	result, err := h.codeValueService.Delete(c.Request.Context(), codeID, codeValueID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
