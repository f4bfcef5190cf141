package destination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexyatra/internal/domain"
)

type mockDestinationRepo struct {
	bySlug      map[string]*domain.Destination
	byID        map[int64]*domain.Destination
	createCalls int
	updateCalls int
	nextID      int64
}

func newMockDestinationRepo(seed ...*domain.Destination) *mockDestinationRepo {
	m := &mockDestinationRepo{
		bySlug: map[string]*domain.Destination{},
		byID:   map[int64]*domain.Destination{},
		nextID: 1,
	}
	for _, d := range seed {
		m.byID[d.ID] = d
		m.bySlug[d.Slug] = d
		if d.ID >= m.nextID {
			m.nextID = d.ID + 1
		}
	}
	return m
}

func (m *mockDestinationRepo) Create(ctx context.Context, d *domain.Destination) error {
	m.createCalls++
	d.ID = m.nextID
	m.nextID++
	m.byID[d.ID] = d
	m.bySlug[d.Slug] = d
	return nil
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	return m.byID[id], nil
}

func (m *mockDestinationRepo) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	return m.bySlug[slug], nil
}

func (m *mockDestinationRepo) List(ctx context.Context, category string) ([]domain.Destination, error) {
	var out []domain.Destination
	for _, d := range m.byID {
		if category == "" || d.Category == category {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockDestinationRepo) Update(ctx context.Context, d *domain.Destination) error {
	m.updateCalls++
	m.byID[d.ID] = d
	m.bySlug[d.Slug] = d
	return nil
}

func (m *mockDestinationRepo) Delete(ctx context.Context, id int64) error {
	if d, ok := m.byID[id]; ok {
		delete(m.bySlug, d.Slug)
		delete(m.byID, id)
	}
	return nil
}

type mockRatings struct {
	avg float64
	err error
}

func (m *mockRatings) AverageApprovedRating(ctx context.Context, destination string) (float64, error) {
	return m.avg, m.err
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Kerala":                 "kerala",
		"Port Blair & Havelock":  "port-blair---havelock",
		"Manali 2.0":             "manali-2-0",
		"DUBAI":                  "dubai",
		"Göreme":                 "g-reme",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "slug for %q", name)
	}
}

func TestCreate_AssignsSlug(t *testing.T) {
	repo := newMockDestinationRepo()
	svc := NewService(repo, nil)

	d, err := svc.Create(context.Background(), UpsertDestinationRequest{
		Name: "Port Blair", Country: "India", Price: 25000, Category: "Beach",
	})
	require.NoError(t, err)
	assert.Equal(t, "port-blair", d.Slug)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreate_SlugConflictsAndEmptySlug(t *testing.T) {
	repo := newMockDestinationRepo(&domain.Destination{ID: 1, Slug: "kerala", Name: "Kerala"})
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), UpsertDestinationRequest{Name: "KERALA", Country: "India", Price: 100})
	assert.ErrorIs(t, err, ErrSlugTaken)

	_, err = svc.Create(context.Background(), UpsertDestinationRequest{Name: "!!!", Country: "India", Price: 100})
	assert.ErrorIs(t, err, ErrEmptySlugName)
	assert.Equal(t, 0, repo.createCalls)
}

func TestGetBySlug_FoldsInApprovedRating(t *testing.T) {
	repo := newMockDestinationRepo(&domain.Destination{ID: 1, Slug: "kerala", Name: "Kerala", Price: 17999})
	svc := NewService(repo, &mockRatings{avg: 4.5})

	detail, err := svc.GetBySlug(context.Background(), "kerala")
	require.NoError(t, err)
	assert.Equal(t, 4.5, detail.AverageRating)

	_, err = svc.GetBySlug(context.Background(), "atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBySlug_RatingFailureIsNotFatal(t *testing.T) {
	repo := newMockDestinationRepo(&domain.Destination{ID: 1, Slug: "kerala", Name: "Kerala"})
	svc := NewService(repo, &mockRatings{err: errors.New("db down")})

	detail, err := svc.GetBySlug(context.Background(), "kerala")
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.AverageRating)
}

func TestUpdate_RenameChecksNewSlug(t *testing.T) {
	repo := newMockDestinationRepo(
		&domain.Destination{ID: 1, Slug: "kerala", Name: "Kerala"},
		&domain.Destination{ID: 2, Slug: "bali", Name: "Bali"},
	)
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), 2, UpsertDestinationRequest{Name: "Kerala", Country: "India", Price: 100})
	assert.ErrorIs(t, err, ErrSlugTaken)

	d, err := svc.Update(context.Background(), 2, UpsertDestinationRequest{Name: "Bali Highlands", Country: "Indonesia", Price: 34000})
	require.NoError(t, err)
	assert.Equal(t, "bali-highlands", d.Slug)

	// Same-name update is not a conflict with itself.
	_, err = svc.Update(context.Background(), 1, UpsertDestinationRequest{Name: "Kerala", Country: "India", Price: 18999})
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newMockDestinationRepo(&domain.Destination{ID: 1, Slug: "kerala", Name: "Kerala"})
	svc := NewService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrNotFound)
}
