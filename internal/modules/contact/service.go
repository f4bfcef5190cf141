package contact

import (
	"context"
	"errors"
	"strings"

	"nexyatra/internal/domain"
	validation "nexyatra/internal/pkg/validator"
)

var ErrNotFound = errors.New("contact message not found")

// ValidationError carries per-field failures from the domain validator.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "contact message failed validation" }

type messageRepo interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo messageRepo
}

func NewService(repo messageRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, req SubmitMessageRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if fields := validation.Validate(msg); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
