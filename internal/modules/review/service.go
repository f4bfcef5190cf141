package review

import (
	"context"
	"strings"

	"nexyatra/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListApproved(ctx context.Context, destination string) ([]domain.Review, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo reviewRepo
}

func NewService(repo reviewRepo) *Service {
	return &Service{repo: repo}
}

// Submit stores a review unapproved. It only becomes publicly visible after
// an admin toggles approval.
func (s *Service) Submit(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	review := &domain.Review{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Destination: strings.TrimSpace(req.Destination),
		ReviewText:  strings.TrimSpace(req.ReviewText),
		Rating:      req.Rating,
		Approved:    false,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) ListApproved(ctx context.Context, destination string) ([]domain.Review, error) {
	return s.repo.ListApproved(ctx, destination)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListAll(ctx, limit, offset)
}

func (s *Service) SetApproved(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if review.Approved == approved {
		return review, nil
	}
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		return nil, err
	}
	review.Approved = approved
	return review, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
