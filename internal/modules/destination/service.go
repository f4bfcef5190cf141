package destination

import (
	"context"
	"regexp"
	"strings"

	"nexyatra/internal/domain"
)

type destinationRepo interface {
	Create(ctx context.Context, d *domain.Destination) error
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	List(ctx context.Context, category string) ([]domain.Destination, error)
	Update(ctx context.Context, d *domain.Destination) error
	Delete(ctx context.Context, id int64) error
}

type ratingReader interface {
	AverageApprovedRating(ctx context.Context, destination string) (float64, error)
}

type Service struct {
	repo    destinationRepo
	ratings ratingReader
}

func NewService(repo destinationRepo, ratings ratingReader) *Service {
	return &Service{repo: repo, ratings: ratings}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]`)

// Slugify lowercases the name and replaces every other rune with a dash.
func Slugify(name string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
}

func (s *Service) Create(ctx context.Context, req UpsertDestinationRequest) (*domain.Destination, error) {
	slug := Slugify(req.Name)
	if strings.Trim(slug, "-") == "" {
		return nil, ErrEmptySlugName
	}
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	d := &domain.Destination{
		Slug:        slug,
		Name:        req.Name,
		Country:     req.Country,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Destination, error) {
	return s.repo.List(ctx, category)
}

// GetBySlug returns the destination with its live approved-review average.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*DetailResponse, error) {
	d, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}

	avg := 0.0
	if s.ratings != nil {
		if avg, err = s.ratings.AverageApprovedRating(ctx, d.Name); err != nil {
			avg = 0
		}
	}

	return &DetailResponse{
		ID:            d.ID,
		Slug:          d.Slug,
		Name:          d.Name,
		Country:       d.Country,
		Description:   d.Description,
		Price:         d.Price,
		Rating:        d.Rating,
		AverageRating: avg,
		Category:      d.Category,
		ImageURL:      d.ImageURL,
		Featured:      d.Featured,
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertDestinationRequest) (*domain.Destination, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}

	slug := Slugify(req.Name)
	if strings.Trim(slug, "-") == "" {
		return nil, ErrEmptySlugName
	}
	if slug != d.Slug {
		other, err := s.repo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrSlugTaken
		}
	}

	d.Slug = slug
	d.Name = req.Name
	d.Country = req.Country
	d.Description = req.Description
	d.Price = req.Price
	d.Category = req.Category
	d.ImageURL = req.ImageURL
	d.Featured = req.Featured
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
