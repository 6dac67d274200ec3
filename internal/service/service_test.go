package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/internal/recommend"
	"github.com/bookhive/recommend-service/internal/search"
	"github.com/bookhive/recommend-service/internal/service"
)

type stubStorage struct {
	books []model.Book
}

func (s *stubStorage) LoadBooks(context.Context) ([]model.Book, error) {
	return s.books, nil
}

func (s *stubStorage) SaveBooks(context.Context, []model.Book) error { return nil }

func (s *stubStorage) LoadRatings(context.Context) ([]model.Rating, error) { return nil, nil }

func (s *stubStorage) SaveRatings(context.Context, []model.Rating) error { return nil }

func newService(t *testing.T, books []model.Book) *service.Service {
	t.Helper()
	log := zap.NewNop()
	store := &stubStorage{books: books}
	cat := catalog.New(context.Background(), store, log)
	rec := recommend.New(context.Background(), cat, store, log)
	idx := search.New(cat, log)
	return service.NewService(cat, rec, idx, log)
}

func austenBooks() []model.Book {
	return []model.Book{
		{BookUid: "B001", Title: "Emma", Author: "Jane Austen", Genre: "Romance", AvgRating: 3.9, Available: true, BorrowCount: 2},
		{BookUid: "B002", Title: "Persuasion", Author: "Jane Austen", Genre: "Romance", AvgRating: 4.0, Available: true, BorrowCount: 1},
		{BookUid: "B003", Title: "Sanditon", Author: "Jane Austen", Genre: "Romance", AvgRating: 3.5, Available: true, BorrowCount: 0},
	}
}

func TestService_SearchBooks_PagingTotals(t *testing.T) {
	t.Parallel()
	svc := newService(t, austenBooks())
	ctx := context.Background()

	first := svc.SearchBooks(ctx, "austen", 1, 2)
	require.Len(t, first.Items, 2)
	require.Equal(t, 3, first.TotalElements)

	second := svc.SearchBooks(ctx, "austen", 2, 2)
	require.Len(t, second.Items, 1)
	require.Equal(t, 3, second.TotalElements)

	beyond := svc.SearchBooks(ctx, "austen", 5, 2)
	require.Empty(t, beyond.Items)
	require.Equal(t, 3, beyond.TotalElements)
}

func TestService_SearchBooks_IgnoresBadPaging(t *testing.T) {
	t.Parallel()
	svc := newService(t, austenBooks())
	ctx := context.Background()

	// negative or zero paging params must not slice; all matches come back
	for _, p := range []struct{ page, size int }{
		{-1, 5},
		{1, -5},
		{-3, -3},
		{0, 0},
	} {
		got := svc.SearchBooks(ctx, "austen", p.page, p.size)
		require.Len(t, got.Items, 3)
		require.Equal(t, 3, got.TotalElements)
	}
}
