package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rishijha390/delhi-tandoori-momo/models"
	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newAPIRouter(register func(api *mux.Router)) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	register(api)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// stubMenuRepo keeps the catalogue in memory.
type stubMenuRepo struct {
	items []models.MenuItem
	err   error
}

func (s *stubMenuRepo) ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.MenuItem
	for _, item := range s.items {
		if !item.Is_available {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubMenuRepo) GetByItemID(ctx context.Context, itemID int) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].Item_id == itemID {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubMenuRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.items)), s.err
}

func (s *stubMenuRepo) DeleteAll(ctx context.Context) error {
	s.items = nil
	return s.err
}

func (s *stubMenuRepo) InsertMany(ctx context.Context, items []models.MenuItem) error {
	s.items = append(s.items, items...)
	return s.err
}

// stubOrderRepo keeps orders in memory, newest last.
type stubOrderRepo struct {
	orders []models.Order
	err    error
}

func (s *stubOrderRepo) Insert(ctx context.Context, order models.Order) error {
	if s.err != nil {
		return s.err
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.orders {
		if s.orders[i].Order_id == orderID {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubOrderRepo) List(ctx context.Context, status string, limit, offset int64) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var filtered []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- { // newest first
		if status != "" && s.orders[i].Order_status != status {
			continue
		}
		filtered = append(filtered, s.orders[i])
	}

	if offset >= int64(len(filtered)) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if int64(len(filtered)) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// stubReviewRepo keeps reviews in memory, newest last.
type stubReviewRepo struct {
	reviews []models.Review
	err     error
}

func (s *stubReviewRepo) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit <= 0 {
		limit = 10
	}
	var out []models.Review
	for i := len(s.reviews) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if s.reviews[i].Is_approved {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}

func (s *stubReviewRepo) Insert(ctx context.Context, review models.Review) error {
	if s.err != nil {
		return s.err
	}
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *stubReviewRepo) Approve(ctx context.Context, reviewID string) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.reviews {
		if s.reviews[i].Review_id == reviewID {
			s.reviews[i].Is_approved = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubReviewRepo) DeleteAll(ctx context.Context) error {
	s.reviews = nil
	return s.err
}

func (s *stubReviewRepo) InsertMany(ctx context.Context, reviews []models.Review) error {
	s.reviews = append(s.reviews, reviews...)
	return s.err
}

// stubContactRepo keeps contact messages in memory, newest last.
type stubContactRepo struct {
	messages []models.ContactMessage
	err      error
}

func (s *stubContactRepo) Insert(ctx context.Context, message models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubContactRepo) List(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var out []models.ContactMessage
	for i := len(s.messages) - 1; i >= 0; i-- {
		out = append(out, s.messages[i])
	}
	if offset >= int64(len(out)) {
		return nil, nil
	}
	out = out[offset:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubContactRepo) MarkRead(ctx context.Context, messageID string) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.messages {
		if s.messages[i].Message_id == messageID {
			s.messages[i].Is_read = true
			return nil
		}
	}
	return repository.ErrNotFound
}
