package contact

import "nexyatra/internal/domain"

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required" example:"Arjun"`
	Email   string `json:"email" binding:"required,email" example:"arjun@example.com"`
	Message string `json:"message" binding:"required" example:"Do you arrange group tours to Manali?"`
}

type ListResponse struct {
	Messages []domain.ContactMessage `json:"messages"`
	Total    int64                   `json:"total"`
}
