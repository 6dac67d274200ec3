package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/model"
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

func newIndex(t *testing.T, books []model.Book) *Index {
	t.Helper()
	log := zap.NewNop()
	cat := catalog.New(context.Background(), &stubStorage{books: books}, log)
	return New(cat, log)
}

func libraryBooks() []model.Book {
	return []model.Book{
		{BookUid: "B001", Title: "Harry Potter", Author: "J.K. Rowling", Genre: "Fantasy", AvgRating: 4.5, Available: true, BorrowCount: 9},
		{BookUid: "B002", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", AvgRating: 4.7, Available: true, BorrowCount: 6},
		{BookUid: "B003", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", AvgRating: 4.2, Available: true, BorrowCount: 4},
	}
}

func TestEditDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"harry", "harry", 0},
		{"hary", "harry", 1},
		{"poter", "potter", 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, editDistance(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
		// symmetric
		require.Equal(t, editDistance(tt.a, tt.b), editDistance(tt.b, tt.a))
	}
}

func TestCorrectSpelling(t *testing.T) {
	t.Parallel()
	idx := newIndex(t, libraryBooks())

	// every token already known: no correction available
	_, ok := idx.CorrectSpelling("Harry Potter")
	require.False(t, ok)

	corrected, ok := idx.CorrectSpelling("Hary Poter")
	require.True(t, ok)
	require.Equal(t, "harry potter", corrected)

	// short tokens are never corrected
	_, ok = idx.CorrectSpelling("xy")
	require.False(t, ok)

	// a corrected token next to a known one keeps the known one verbatim
	corrected, ok = idx.CorrectSpelling("Dune hobbbit")
	require.True(t, ok)
	require.Equal(t, "Dune hobbit", corrected)

	_, ok = idx.CorrectSpelling("")
	require.False(t, ok)
}

func TestSmartSearch(t *testing.T) {
	t.Parallel()
	idx := newIndex(t, libraryBooks())

	books, corrected := idx.SmartSearch("dunne")
	require.Equal(t, "dune", corrected)
	require.Len(t, books, 1)
	require.Equal(t, "B003", books[0].BookUid)

	// exact query searches as typed, no correction reported
	books, corrected = idx.SmartSearch("Hobbit")
	require.Empty(t, corrected)
	require.Len(t, books, 1)

	books, corrected = idx.SmartSearch("")
	require.Empty(t, books)
	require.Empty(t, corrected)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	idx := newIndex(t, []model.Book{
		{BookUid: "B001", Title: "Harvest Harbor Harmony Hardware Harness Harpoon", Author: "a", Genre: "g", Available: true},
	})

	suggestions := idx.Suggest("har")
	require.Len(t, suggestions, 5)
	require.Equal(t, []string{"harvest", "harbor", "harmony", "hardware", "harness"}, suggestions)

	require.Empty(t, idx.Suggest("zzz"))
	require.Empty(t, idx.Suggest(""))
}

func TestDictionaryIsStale(t *testing.T) {
	t.Parallel()
	log := zap.NewNop()
	cat := catalog.New(context.Background(), &stubStorage{books: libraryBooks()}, log)
	idx := New(cat, log)

	// the dictionary snapshots construction time; later borrows or
	// rating updates do not add terms
	require.NotEmpty(t, idx.Suggest("dune"))
	require.Empty(t, idx.Suggest("newbook"))
}
