package handler

import (
	"net/http"
	"strconv"

	"finadmin/internal/middleware"
	"finadmin/internal/service"
	"finadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

type ClientAddressHandler struct {
	addressService service.ClientAddressService
}

func NewClientAddressHandler(addressService service.ClientAddressService) *ClientAddressHandler {
	return &ClientAddressHandler{addressService: addressService}
}

func (h *ClientAddressHandler) RegisterRoutes(router *gin.RouterGroup) {
	addresses := router.Group("/api/clients/:clientId/addresses")
	{
		addresses.GET("", middleware.RequirePermission(service.PermClientAddressRead), h.ListAddresses)
		addresses.POST("", middleware.RequirePermission(service.PermClientAddressWrite), h.AttachAddress)
		addresses.POST("/batch", middleware.RequirePermission(service.PermClientAddressWrite), h.AttachAddresses)
		addresses.PUT("", middleware.RequirePermission(service.PermClientAddressWrite), h.UpdateAddress)
		addresses.DELETE("/:addressId", middleware.RequirePermission(service.PermClientAddressWrite), h.DetachAddress)
	}
}

// ListAddresses returns the client's addresses with resolved labels
// @Summary      List client addresses
// @Tags         client-addresses
// @Security     BearerAuth
// @Produce      json
// @Param        clientId  path  int  true  "Client ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clients/{clientId}/addresses [get]
func (h *ClientAddressHandler) ListAddresses(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	addresses, err := h.addressService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, addresses))
}

// AttachAddress creates an address and links it to the client
// @Summary      Attach address
// @Tags         client-addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        clientId  path   int                     true  "Client ID"
// @Param        type      query  int                     true  "Address type code value ID"
// @Param        payload   body   service.AddressRequest  true  "Address payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/clients/{clientId}/addresses [post]
func (h *ClientAddressHandler) AttachAddress(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	addressTypeID, err := strconv.ParseInt(c.Query("type"), 10, 64)
	if err != nil || addressTypeID <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid or missing type query parameter"))
		return
	}

	var req service.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.addressService.Attach(c.Request.Context(), clientID, addressTypeID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// AttachAddresses creates several addresses for the client in one transaction
// @Summary      Attach addresses in bulk
// @Tags         client-addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        clientId  path  int                       true  "Client ID"
// @Param        payload   body  []service.AddressRequest  true  "Address payloads, each with addressTypeId"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/clients/{clientId}/addresses/batch [post]
func (h *ClientAddressHandler) AttachAddresses(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	var reqs []service.AddressRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.addressService.AttachBulk(c.Request.Context(), clientID, reqs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateAddress applies a partial update to a linked address
// @Summary      Update client address
// @Tags         client-addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        clientId  path  int                                 true  "Client ID"
// @Param        payload   body  service.UpdateClientAddressRequest  true  "Update payload with addressId"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clients/{clientId}/addresses [put]
func (h *ClientAddressHandler) UpdateAddress(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	var req service.UpdateClientAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.addressService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// DetachAddress deletes the address (and its association) by address id
// @Summary      Detach address
// @Tags         client-addresses
// @Security     BearerAuth
// @Produce      json
// @Param        clientId   path  int  true  "Client ID"
// @Param        addressId  path  int  true  "Address ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clients/{clientId}/addresses/{addressId} [delete]
func (h *ClientAddressHandler) DetachAddress(c *gin.Context) {
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	result, err := h.addressService.Detach(c.Request.Context(), clientID, addressID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
