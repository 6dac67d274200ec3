package catalog_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/model"
)

type stubStorage struct {
	books     []model.Book
	ratings   []model.Rating
	loadErr   error
	saveCalls int
}

func (s *stubStorage) LoadBooks(context.Context) ([]model.Book, error) {
	return s.books, s.loadErr
}

func (s *stubStorage) SaveBooks(_ context.Context, books []model.Book) error {
	s.saveCalls++
	s.books = append([]model.Book(nil), books...)
	return nil
}

func (s *stubStorage) LoadRatings(context.Context) ([]model.Rating, error) {
	return s.ratings, nil
}

func (s *stubStorage) SaveRatings(_ context.Context, ratings []model.Rating) error {
	s.ratings = append([]model.Rating(nil), ratings...)
	return nil
}

func testBooks() []model.Book {
	return []model.Book{
		{BookUid: "B001", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", AvgRating: 4.5, Available: true, BorrowCount: 7},
		{BookUid: "B002", Title: "Hyperion", Author: "Dan Simmons", Genre: "Sci-Fi", AvgRating: 4.2, Available: true, BorrowCount: 3},
		{BookUid: "B003", Title: "Emma", Author: "Jane Austen", Genre: "Romance", AvgRating: 3.9, Available: false, BorrowCount: 7},
		{BookUid: "B004", Title: "Persuasion", Author: "Jane Austen", Genre: "Romance", AvgRating: 4.0, Available: true, BorrowCount: 1},
	}
}

func newCatalog(t *testing.T, store *stubStorage) *catalog.Catalog {
	t.Helper()
	return catalog.New(context.Background(), store, zap.NewNop())
}

func TestCatalog_New_DropsInvalidRecords(t *testing.T) {
	t.Parallel()
	store := &stubStorage{books: append(testBooks(),
		model.Book{BookUid: "BOOK1", Title: "Bad Uid", Author: "x", Genre: "y"},
		model.Book{BookUid: "B005", Title: "", Author: "x", Genre: "y"},
		model.Book{BookUid: "B006", Title: "Too Good", Author: "x", Genre: "y", AvgRating: 5.5},
	)}
	c := newCatalog(t, store)
	require.Equal(t, 4, c.Size())
}

func TestCatalog_New_FailsOpenOnLoadError(t *testing.T) {
	t.Parallel()
	store := &stubStorage{loadErr: errors.New("db down")}
	c := newCatalog(t, store)
	require.Zero(t, c.Size())
	require.Empty(t, c.Popular(10))
}

func TestCatalog_FindByID(t *testing.T) {
	t.Parallel()
	c := newCatalog(t, &stubStorage{books: testBooks()})

	book, ok := c.FindByID("b001")
	require.True(t, ok)
	require.Equal(t, "Dune", book.Title)

	_, ok = c.FindByID("B999")
	require.False(t, ok)
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()
	c := newCatalog(t, &stubStorage{books: testBooks()})

	byAuthor := c.Search("austen")
	require.Len(t, byAuthor, 2)
	require.Equal(t, "B003", byAuthor[0].BookUid)
	require.Equal(t, "B004", byAuthor[1].BookUid)

	byTitle := c.Search("DUNE")
	require.Len(t, byTitle, 1)

	require.Empty(t, c.Search("nothing here"))
}

func TestCatalog_Popular(t *testing.T) {
	t.Parallel()
	c := newCatalog(t, &stubStorage{books: testBooks()})

	top := c.Popular(3)
	require.Len(t, top, 3)
	for i := 1; i < len(top); i++ {
		require.GreaterOrEqual(t, top[i-1].BorrowCount, top[i].BorrowCount)
	}
	// B001 and B003 tie on borrow count; catalog order wins
	require.Equal(t, "B001", top[0].BookUid)
	require.Equal(t, "B003", top[1].BookUid)

	require.Len(t, c.Popular(100), 4)
}

func TestCatalog_Similar(t *testing.T) {
	t.Parallel()
	c := newCatalog(t, &stubStorage{books: testBooks()})

	ref, ok := c.FindByID("B001")
	require.True(t, ok)

	similar := c.Similar(ref, 10)
	require.Len(t, similar, 1)
	require.Equal(t, "B002", similar[0].BookUid)

	require.Empty(t, c.Similar(ref, 0))
}

func TestCatalog_BorrowReturn(t *testing.T) {
	t.Parallel()
	store := &stubStorage{books: testBooks()}
	c := newCatalog(t, store)
	ctx := context.Background()

	require.True(t, c.Borrow(ctx, "B001"))
	book, _ := c.FindByID("B001")
	require.False(t, book.Available)
	require.Equal(t, 8, book.BorrowCount)
	require.Equal(t, 1, store.saveCalls)

	// already lent
	require.False(t, c.Borrow(ctx, "B001"))
	// unknown uid
	require.False(t, c.Borrow(ctx, "B999"))
	require.Equal(t, 1, store.saveCalls)

	c.Return(ctx, "B001")
	book, _ = c.FindByID("B001")
	require.True(t, book.Available)
	require.Equal(t, 8, book.BorrowCount)

	// unknown return is a silent no-op
	c.Return(ctx, "B999")
	require.Equal(t, 2, store.saveCalls)
}

func TestCatalog_AllReturnsSnapshot(t *testing.T) {
	t.Parallel()
	c := newCatalog(t, &stubStorage{books: testBooks()})

	all := c.All()
	all[0].Title = "mutated"

	book, _ := c.FindByID("B001")
	require.Equal(t, "Dune", book.Title)
}
