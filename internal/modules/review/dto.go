package review

import "nexyatra/internal/domain"

type SubmitReviewRequest struct {
	Name        string `json:"name" binding:"required" example:"Priya"`
	Email       string `json:"email" binding:"required,email" example:"priya@example.com"`
	Destination string `json:"destination" binding:"required" example:"Kerala"`
	ReviewText  string `json:"review_text" binding:"required" example:"The backwaters were unforgettable."`
	Rating      int    `json:"rating" binding:"required" example:"5"`
}

type ApproveRequest struct {
	Approved bool `json:"approved" example:"true"`
}

type ListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int64           `json:"total"`
}
