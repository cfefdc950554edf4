package handler

import (
	"net/http"

	"finadmin/internal/middleware"
	"finadmin/internal/service"
	"finadmin/pkg/pagination"
	"finadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	commandLog service.CommandLogService
}

func NewAuditHandler(commandLog service.CommandLogService) *AuditHandler {
	return &AuditHandler{commandLog: commandLog}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	group.Use(middleware.RequirePermission(service.PermAuditRead))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs retrieves paginated command-log records newest first
// @Summary      Get audit logs
// @Description  Lists recorded write commands with operator attribution
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.commandLog.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve audit logs: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}
