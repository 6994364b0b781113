package handlers

import (
	request "boarding_house/internal/adapter/http/dto/request"
	response "boarding_house/internal/adapter/http/dto/response"
	"boarding_house/internal/usecase"
	"boarding_house/pkg"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTenantPayload = pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)
)

// TenantHandler handles tenant move-in, checkout and room tenant history.

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

// AddTenant godoc
// @Summary      Move a tenant into a room
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body      request.TenantRequest  true  "Tenant"
// @Success      201   {object}  response.TenantResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /tenants [post]
func (h *TenantHandler) AddTenant(c *gin.Context) {
	var payload request.TenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.AddTenant(c.Request.Context(), in)
	if err != nil {
		log.Printf("[tenant][handler] add failed room_id=%q err=%v", in.RoomID, err)
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTenant(tenant))
}

// CheckoutTenant godoc
// @Summary      Check out a single tenant
// @Tags         tenants
// @Param        id   path  string  true  "Tenant ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tenants/{id}/checkout [post]
func (h *TenantHandler) CheckoutTenant(c *gin.Context) {
	if err := h.usecase.CheckoutTenant(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[tenant][handler] checkout failed tenant_id=%q err=%v", c.Param("id"), err)
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckoutRoom godoc
// @Summary      Check out every tenant of a room
// @Tags         rooms
// @Param        id   path  string  true  "Room ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rooms/{id}/checkout [post]
func (h *TenantHandler) CheckoutRoom(c *gin.Context) {
	if err := h.usecase.CheckoutRoom(c.Request.Context(), c.Param("id")); err != nil {
		log.Printf("[tenant][handler] room checkout failed room_id=%q err=%v", c.Param("id"), err)
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRoomTenants godoc
// @Summary      Current and former tenants of a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  response.RoomTenantsResponse
// @Router       /rooms/{id}/tenants [get]
func (h *TenantHandler) ListRoomTenants(c *gin.Context) {
	tenants, err := h.usecase.ListRoomTenants(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[tenant][handler] list failed room_id=%q err=%v", c.Param("id"), err)
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomTenants(tenants))
}

func mapTenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidTenantName), errors.Is(err, usecase.ErrInvalidRoomID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomHasNoResidents):
		return pkg.NewDomainErrorSimple("ROOM_HAS_NO_RESIDENTS", "Room has no resident tenants", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound), errors.Is(err, usecase.ErrTenantRoomNotExists):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
