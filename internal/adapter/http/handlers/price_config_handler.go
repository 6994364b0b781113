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
	errInvalidPriceConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid price config payload", http.StatusBadRequest)
)

type PriceConfigHandler struct {
	usecase usecase.IPriceConfigUseCase
}

func NewPriceConfigHandler(uc usecase.IPriceConfigUseCase) *PriceConfigHandler {
	return &PriceConfigHandler{usecase: uc}
}

// GetPriceConfig godoc
// @Summary      Active price config
// @Tags         config
// @Produce      json
// @Success      200  {object}  response.PriceConfigResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /config [get]
func (h *PriceConfigHandler) GetPriceConfig(c *gin.Context) {
	cfg, err := h.usecase.GetActivePriceConfig(c.Request.Context())
	if err != nil {
		log.Printf("[config][handler] get active failed err=%v", err)
		appErr := mapPriceConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceConfig(cfg))
}

// UpsertPriceConfig godoc
// @Summary      Create or update the active price config
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body      request.PriceConfigRequest  true  "Prices"
// @Success      200   {object}  response.PriceConfigResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /config [put]
func (h *PriceConfigHandler) UpsertPriceConfig(c *gin.Context) {
	var payload request.PriceConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceConfigPayload.HTTPStatus, errInvalidPriceConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpsertPriceConfig(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[config][handler] upsert failed err=%v", err)
		appErr := mapPriceConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceConfig(cfg))
}

func mapPriceConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidServiceFee):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceConfigNotFound):
		return pkg.NewDomainErrorSimple("PRICE_CONFIG_NOT_FOUND", "Price config not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
