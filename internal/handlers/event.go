package handlers

import (
	"context"
	"time"

	"github.com/addsmd/healthy-api/internal/middleware"
	"github.com/addsmd/healthy-api/internal/services"
	"github.com/addsmd/healthy-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const startTimeLayout = "2006-01-02 15:04"

type EventHandler struct {
	eventService      EventServiceInterface
	engagementService EngagementServiceInterface
}

func NewEventHandler(eventService EventServiceInterface, engagementService EngagementServiceInterface) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		engagementService: engagementService,
	}
}

func (h *EventHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.EventCreateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Title == "" {
		c.BadRequest("title is required")
		return
	}

	startTime, err := time.Parse(startTimeLayout, req.StartTime)
	if err != nil {
		c.BadRequest("invalid start_time, expected YYYY-MM-DD HH:MM")
		return
	}

	activityID, err := uuid.Parse(req.Activity)
	if err != nil {
		c.BadRequest("invalid activity")
		return
	}

	_, err = h.eventService.Create(context.Background(), services.CreateEventParams{
		Title:                   req.Title,
		StartTime:               startTime,
		City:                    req.City,
		Place:                   req.Place,
		Paid:                    req.Paid,
		Description:             req.Description,
		OrganizationDescription: req.OrganizationDescription,
		PaidDescription:         req.PaidDescription,
		Activity:                activityID,
	}, userID)
	if err != nil {
		c.InternalServerError("failed to create event")
		return
	}

	_ = c.JSON(200, dto.StatusResponse{Status: "ok"})
}

func (h *EventHandler) List(c *drift.Context) {
	filter, err := services.ParseEventFilter(
		c.QueryParam("date_from"),
		c.QueryParam("date_to"),
		c.QueryParam("paid"),
		c.QueryParam("activity"),
	)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	ctx := context.Background()

	events, err := h.eventService.List(ctx, filter)
	if err != nil {
		c.InternalServerError("failed to list events")
		return
	}

	var currentUser *uuid.UUID
	if userID := middleware.GetUserID(c); userID != uuid.Nil {
		currentUser = &userID
	}

	if err := h.engagementService.AnnotateLikes(ctx, events, currentUser); err != nil {
		c.InternalServerError("failed to annotate likes")
		return
	}

	response := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, dto.EventResponse{
			ID:                      event.ID,
			Title:                   event.Title,
			StartTime:               event.StartTime.Format(startTimeLayout),
			City:                    event.City,
			Place:                   event.Place,
			Paid:                    event.Paid,
			Description:             event.Description,
			OrganizationDescription: event.OrganizationDescription,
			PaidDescription:         event.PaidDescription,
			Activity:                event.Activity,
			Like:                    event.Like,
		})
	}

	_ = c.JSON(200, response)
}

func (h *EventHandler) Participate(c *drift.Context) {
	h.updateRelation(c, h.engagementService.AddParticipation)
}

func (h *EventHandler) Unparticipate(c *drift.Context) {
	h.updateRelation(c, h.engagementService.RemoveParticipation)
}

func (h *EventHandler) Like(c *drift.Context) {
	h.updateRelation(c, h.engagementService.AddLike)
}

func (h *EventHandler) Unlike(c *drift.Context) {
	h.updateRelation(c, h.engagementService.RemoveLike)
}

func (h *EventHandler) Participants(c *drift.Context) {
	eventID, err := uuid.Parse(c.QueryParam("event"))
	if err != nil {
		c.BadRequest("invalid event parameter")
		return
	}

	participants, err := h.engagementService.ListParticipants(context.Background(), eventID)
	if err != nil {
		c.InternalServerError("failed to list participants")
		return
	}

	response := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		response = append(response, dto.ParticipantResponse{
			UserID:  p.UserID,
			Name:    p.Name,
			Picture: p.Picture,
		})
	}

	_ = c.JSON(200, response)
}

func (h *EventHandler) updateRelation(c *drift.Context, op func(ctx context.Context, userID, eventID uuid.UUID) error) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	eventID, err := uuid.Parse(c.QueryParam("event"))
	if err != nil {
		c.BadRequest("invalid event parameter")
		return
	}

	if err := op(context.Background(), userID, eventID); err != nil {
		c.InternalServerError("failed to update engagement")
		return
	}

	_ = c.JSON(200, dto.StatusResponse{Status: "ok"})
}
