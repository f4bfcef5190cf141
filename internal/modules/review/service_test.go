package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexyatra/internal/domain"
)

type mockReviewRepo struct {
	byID          map[int64]*domain.Review
	approvedCalls int
	nextID        int64
}

func newMockReviewRepo(seed ...*domain.Review) *mockReviewRepo {
	m := &mockReviewRepo{byID: map[int64]*domain.Review{}, nextID: 1}
	for _, r := range seed {
		m.byID[r.ID] = r
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	review.ID = m.nextID
	m.nextID++
	m.byID[review.ID] = review
	return nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	return m.byID[id], nil
}

func (m *mockReviewRepo) ListApproved(ctx context.Context, destination string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range m.byID {
		if !r.Approved {
			continue
		}
		if destination == "" || r.Destination == destination {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error) {
	var out []domain.Review
	for _, r := range m.byID {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (m *mockReviewRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	m.approvedCalls++
	m.byID[id].Approved = approved
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

func TestSubmit_StartsUnapproved(t *testing.T) {
	repo := newMockReviewRepo()
	svc := NewService(repo)

	review, err := svc.Submit(context.Background(), SubmitReviewRequest{
		Name:        "  Priya  ",
		Email:       "priya@example.com",
		Destination: "Kerala",
		ReviewText:  "Loved it.",
		Rating:      5,
	})
	require.NoError(t, err)
	assert.False(t, review.Approved)
	assert.Equal(t, "Priya", review.Name)

	// A fresh review never shows up in the public list.
	visible, err := svc.ListApproved(context.Background(), "Kerala")
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestSubmit_RatingBounds(t *testing.T) {
	svc := NewService(newMockReviewRepo())
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Submit(context.Background(), SubmitReviewRequest{
			Name: "x", Email: "x@example.com", Destination: "Kerala", ReviewText: "y", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestSetApproved_TogglesVisibility(t *testing.T) {
	repo := newMockReviewRepo(&domain.Review{ID: 3, Destination: "Bali", Rating: 4})
	svc := NewService(repo)

	review, err := svc.SetApproved(context.Background(), 3, true)
	require.NoError(t, err)
	assert.True(t, review.Approved)

	visible, err := svc.ListApproved(context.Background(), "Bali")
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	// Approving an already-approved review writes nothing.
	_, err = svc.SetApproved(context.Background(), 3, true)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.approvedCalls)

	_, err = svc.SetApproved(context.Background(), 99, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Review(t *testing.T) {
	repo := newMockReviewRepo(&domain.Review{ID: 3})
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrNotFound)
}
