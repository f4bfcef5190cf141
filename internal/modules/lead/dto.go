package lead

import "nexyatra/internal/domain"

type SubmitLeadRequest struct {
	Destination   string `json:"destination" binding:"required" example:"Kerala"`
	TravelDate    string `json:"travel_date" binding:"required" example:"2026-10-14"`
	ContactNumber string `json:"contact_number" binding:"required" example:"9876543210"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"talk_done"`
}

type ListResponse struct {
	Leads []domain.Lead `json:"leads"`
	Total int64         `json:"total"`
}
