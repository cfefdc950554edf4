package handler

import (
	"net/http"

	"finadmin/internal/middleware"
	"finadmin/internal/service"
	"finadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	codeService service.CodeService
}

func NewCodeHandler(codeService service.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

func (h *CodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	codes := router.Group("/api/codes")
	{
		codes.GET("", middleware.RequirePermission(service.PermCodesRead), h.ListCodes)
		codes.POST("", middleware.RequirePermission(service.PermCodesWrite), h.CreateCode)
		codes.GET("/:codeId", middleware.RequirePermission(service.PermCodesRead), h.GetCode)
		codes.PUT("/:codeId", middleware.RequirePermission(service.PermCodesWrite), h.UpdateCode)
		codes.DELETE("/:codeId", middleware.RequirePermission(service.PermCodesWrite), h.DeleteCode)
	}
}

// ListCodes returns all lookup-code categories
// @Summary      List codes
// @Tags         codes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/codes [get]
func (h *CodeHandler) ListCodes(c *gin.Context) {
	codes, err := h.codeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, codes))
}

// GetCode returns a single code
// @Summary      Retrieve a code
// @Tags         codes
// @Security     BearerAuth
// @Produce      json
// @Param        codeId  path  int  true  "Code ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/codes/{codeId} [get]
func (h *CodeHandler) GetCode(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}

	code, err := h.codeService.Get(c.Request.Context(), codeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, code))
}

// CreateCode creates a user-defined code
// @Summary      Create code
// @Tags         codes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateCodeRequest  true  "Code payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/codes [post]
func (h *CodeHandler) CreateCode(c *gin.Context) {
	var req service.CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.codeService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateCode renames a user-defined code
// @Summary      Update code
// @Tags         codes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        codeId   path  int                        true  "Code ID"
// @Param        payload  body  service.UpdateCodeRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/codes/{codeId} [put]
func (h *CodeHandler) UpdateCode(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}

	var req service.UpdateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.codeService.Update(c.Request.Context(), codeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// DeleteCode removes a user-defined code
// @Summary      Delete code
// @Tags         codes
// @Security     BearerAuth
// @Produce      json
// @Param        codeId  path  int  true  "Code ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/codes/{codeId} [delete]
func (h *CodeHandler) DeleteCode(c *gin.Context) {
	codeID, ok := pathID(c, "codeId")
	if !ok {
		return
	}

	result, err := h.codeService.Delete(c.Request.Context(), codeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
