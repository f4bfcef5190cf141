package lead

import (
	"context"
	"time"

	"nexyatra/internal/domain"
	"nexyatra/internal/modules/payment"
)

type leadRepo interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus, from, to *time.Time, limit, offset int) ([]domain.Lead, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	Delete(ctx context.Context, id int64) error
}

type eventPublisher interface {
	Publish(event string, payload interface{})
}

type Service struct {
	repo   leadRepo
	events eventPublisher
}

func NewService(repo leadRepo, events eventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

// Submit stores a journey request from the storefront form. The contact
// number passes the same mobile pattern the payment funnel enforces.
func (s *Service) Submit(ctx context.Context, req SubmitLeadRequest) (*domain.Lead, error) {
	phone, ok := payment.NormalizePhone(req.ContactNumber)
	if !ok {
		return nil, ErrInvalidPhone
	}
	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, err
	}

	lead := &domain.Lead{
		Destination:   req.Destination,
		TravelDate:    travelDate,
		ContactNumber: phone,
		Status:        domain.LeadPending,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("lead.created", map[string]interface{}{
			"id":          lead.ID,
			"destination": lead.Destination,
			"travel_date": req.TravelDate,
		})
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, status *domain.LeadStatus, from, to *time.Time, limit, offset int) ([]domain.Lead, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, status, from, to, limit, offset)
}

// UpdateStatus enforces the allowed-transition table; an invalid move is
// rejected before anything is written.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.LeadStatus) (*domain.Lead, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}
	if lead.Status == next {
		return lead, nil
	}
	if !lead.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	lead.Status = next
	return lead, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
