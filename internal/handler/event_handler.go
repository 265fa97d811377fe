package handler

import (
	"errors"
	"net/http"

	"eventboard/internal/model"
	"eventboard/internal/service"
	apperrors "eventboard/pkg/app_errors"
	"eventboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/events", h.List)
	r.GET("/events/:id", h.GetByID)
	r.POST("/events", h.Create)
	r.PATCH("/events/:id", h.Update)
	r.DELETE("/events/:id", h.Delete)
	r.POST("/events/:id/rsvp", h.AddRSVP)
	r.DELETE("/events/:id/rsvp", h.CancelRSVP)
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
}

func (h *EventHandler) List(c *gin.Context) {
	filter := model.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	events, err := h.service.List(c, filter)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, listResponse(events, len(events)))
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: event})
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	input := model.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
	}
	created, err := h.service.Create(c, input)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, successResponse(created, "Event created successfully"))
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    req.Category,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, successResponse(updated, "Event updated successfully"))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"id": id}, "Event deleted successfully"))
}

func (h *EventHandler) AddRSVP(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	event, err := h.service.AddRSVP(c, id)
	if err != nil {
		h.handleError(c, err, "AddRSVP")
		return
	}
	c.JSON(http.StatusOK, successResponse(event, "RSVP successful"))
}

func (h *EventHandler) CancelRSVP(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	event, err := h.service.CancelRSVP(c, id)
	if err != nil {
		h.handleError(c, err, "CancelRSVP")
		return
	}
	c.JSON(http.StatusOK, successResponse(event, "RSVP cancelled"))
}

func eventID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Event ID is required"))
		return "", false
	}
	return id, true
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, errorResponse("Event not found"))
	case errors.Is(err, apperrors.ErrStorageWrite):
		log.Error("Failed to persist events")
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to save changes"))
	default:
		if ve, ok := apperrors.AsValidation(err); ok {
			log.Warn("Invalid input")
			c.JSON(http.StatusBadRequest, errorResponse(ve.Reason))
			return
		}
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, errorResponse("Internal server error"))
	}
}
