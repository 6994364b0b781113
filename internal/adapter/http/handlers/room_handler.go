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
	errInvalidRoomPayload = pkg.NewDomainErrorSimple("INVALID_ROOM_INPUT", "Invalid room payload", http.StatusBadRequest)
)

// RoomHandler handles HTTP requests for rooms.

type RoomHandler struct {
	usecase usecase.IRoomUseCase
}

func NewRoomHandler(uc usecase.IRoomUseCase) *RoomHandler {
	return &RoomHandler{usecase: uc}
}

// CreateRoom godoc
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      request.RoomRequest  true  "Room"
// @Success      201   {object}  response.RoomResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.CreateRoom(c.Request.Context(), payload.Name, payload.ResolveBasePrice(), payload.Floor)
	if err != nil {
		log.Printf("[room][handler] create failed name=%q err=%v", payload.Name, err)
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRoom(room))
}

// ListRooms godoc
// @Summary      List rooms with their residents
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   response.RoomDetailsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.usecase.ListRooms(c.Request.Context())
	if err != nil {
		log.Printf("[room][handler] list failed err=%v", err)
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomDetailsList(rooms))
}

// GetRoom godoc
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  response.RoomDetailsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.usecase.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[room][handler] get failed room_id=%q err=%v", c.Param("id"), err)
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomDetails(room))
}

// UpdateRoom godoc
// @Summary      Update room name, base price and floor
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Room ID"
// @Param        body  body      request.RoomRequest  true  "Room"
// @Success      200   {object}  response.RoomResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.UpdateRoom(c.Request.Context(), c.Param("id"), payload.Name, payload.ResolveBasePrice(), payload.Floor)
	if err != nil {
		log.Printf("[room][handler] update failed room_id=%q err=%v", c.Param("id"), err)
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoom(room))
}

func mapRoomError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRoomID), errors.Is(err, usecase.ErrInvalidRoomName), errors.Is(err, usecase.ErrInvalidRoomPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomAlreadyExists):
		return pkg.NewDomainErrorSimple("ROOM_ALREADY_EXISTS", "A room with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
