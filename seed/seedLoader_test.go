package seed

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishijha390/delhi-tandoori-momo/models"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

type seedMenuStub struct {
	items         []models.MenuItem
	deleteCalled  bool
	insertsCalled bool
}

func (s *seedMenuStub) ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *seedMenuStub) GetByItemID(ctx context.Context, itemID int) (*models.MenuItem, error) {
	return nil, repository.ErrNotFound
}

func (s *seedMenuStub) Count(ctx context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *seedMenuStub) DeleteAll(ctx context.Context) error {
	s.deleteCalled = true
	s.items = nil
	return nil
}

func (s *seedMenuStub) InsertMany(ctx context.Context, items []models.MenuItem) error {
	s.insertsCalled = true
	s.items = append(s.items, items...)
	return nil
}

type seedReviewStub struct {
	reviews      []models.Review
	deleteCalled bool
}

func (s *seedReviewStub) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	return s.reviews, nil
}

func (s *seedReviewStub) Insert(ctx context.Context, review models.Review) error {
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *seedReviewStub) Approve(ctx context.Context, reviewID string) error {
	return repository.ErrNotFound
}

func (s *seedReviewStub) DeleteAll(ctx context.Context) error {
	s.deleteCalled = true
	s.reviews = nil
	return nil
}

func (s *seedReviewStub) InsertMany(ctx context.Context, reviews []models.Review) error {
	s.reviews = append(s.reviews, reviews...)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSeedIfEmptyPopulatesCatalogue(t *testing.T) {
	menu := &seedMenuStub{}
	reviews := &seedReviewStub{}

	err := NewSeeder(menu, reviews, quietLogger()).SeedIfEmpty(context.Background())
	require.NoError(t, err)

	assert.True(t, menu.deleteCalled)
	assert.True(t, reviews.deleteCalled)
	require.Len(t, menu.items, 11)
	require.Len(t, reviews.reviews, 4)

	categories := make(map[string]bool)
	for _, item := range menu.items {
		categories[item.Category] = true
		assert.True(t, item.Is_available)
		assert.Positive(t, item.Price)
	}
	assert.Equal(t, map[string]bool{
		"Tandoori Momos": true,
		"Afghani Momos":  true,
		"Chilli Momos":   true,
		"Steamed Momos":  true,
	}, categories)

	for _, review := range reviews.reviews {
		assert.True(t, review.Is_approved)
		assert.NotEmpty(t, review.Review_id)
	}
}

func TestSeedIfEmptySkipsNonEmptyCollection(t *testing.T) {
	menu := &seedMenuStub{items: []models.MenuItem{{Item_id: 101}}}
	reviews := &seedReviewStub{}

	err := NewSeeder(menu, reviews, quietLogger()).SeedIfEmpty(context.Background())
	require.NoError(t, err)

	assert.False(t, menu.deleteCalled)
	assert.False(t, menu.insertsCalled)
	assert.False(t, reviews.deleteCalled)
	assert.Len(t, menu.items, 1)
	assert.Empty(t, reviews.reviews)
}

func TestSeedItemIDsAreUnique(t *testing.T) {
	seen := make(map[int]bool)
	for _, item := range MenuItems() {
		assert.False(t, seen[item.Item_id], "duplicate item_id %d", item.Item_id)
		seen[item.Item_id] = true
	}
}
