package handlers

import (
	"context"

	"github.com/addsmd/healthy-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type ActivityHandler struct {
	activityService ActivityServiceInterface
}

func NewActivityHandler(activityService ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *drift.Context) {
	activities, err := h.activityService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list activities")
		return
	}

	response := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		response = append(response, dto.ActivityResponse{
			ID:   a.ID,
			Name: a.Name,
		})
	}

	_ = c.JSON(200, response)
}
