package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/internal/repository"
)

// Catalog owns the in-memory book collection. Other components get
// copies, never aliases: mutation happens only through Borrow, Return
// and SetAvgRating, which also push the new state to storage.
//
// The RW mutex covers concurrent access from the HTTP handlers and the
// Kafka consumer.
type Catalog struct {
	mu    sync.RWMutex
	books []model.Book
	store repository.Storage
	log   *zap.Logger
}

// New loads the catalog from storage. A failing load is not fatal:
// the catalog starts empty and every operation stays well-defined.
// Invalid records are dropped, valid ones keep their storage order.
func New(ctx context.Context, store repository.Storage, log *zap.Logger) *Catalog {
	c := &Catalog{
		store: store,
		log:   log.Named("catalog"),
	}

	books, err := store.LoadBooks(ctx)
	if err != nil {
		c.log.Warn("load books, starting empty", zap.Error(err))
		books = nil
	}
	for _, b := range books {
		if !b.Valid() {
			c.log.Warn("drop invalid book record", zap.String("bookUid", b.BookUid))
			continue
		}
		c.books = append(c.books, b)
	}
	c.log.Info("catalog loaded", zap.Int("books", len(c.books)))
	return c
}

// FindByID matches the uid case-insensitively.
func (c *Catalog) FindByID(bookUid string) (model.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(bookUid); i >= 0 {
		return c.books[i], true
	}
	return model.Book{}, false
}

// Search returns books whose title or author contains the query,
// case-insensitively, in catalog order.
func (c *Catalog) Search(query string) []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lower := strings.ToLower(query)
	var result []model.Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), lower) ||
			strings.Contains(strings.ToLower(b.Author), lower) {
			result = append(result, b)
		}
	}
	return result
}

// Popular returns the top n books by borrow count. The sort is stable:
// ties keep their catalog order.
func (c *Catalog) Popular(n int) []model.Book {
	c.mu.RLock()
	sorted := make([]model.Book, len(c.books))
	copy(sorted, c.books)
	c.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BorrowCount > sorted[j].BorrowCount
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Similar returns up to n books sharing the genre or the author of ref,
// excluding ref itself, in catalog order.
func (c *Catalog) Similar(ref model.Book, n int) []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []model.Book
	for _, b := range c.books {
		if b.BookUid == ref.BookUid {
			continue
		}
		if b.Genre == ref.Genre || b.Author == ref.Author {
			result = append(result, b)
			if len(result) >= n {
				break
			}
		}
	}
	return result
}

// Borrow marks the book as lent and bumps its borrow count. A missing
// or unavailable book is a normal false outcome, not an error.
func (c *Catalog) Borrow(ctx context.Context, bookUid string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(bookUid)
	if i < 0 || !c.books[i].Available {
		return false
	}
	c.books[i].Available = false
	c.books[i].BorrowCount++

	c.persist(ctx)
	return true
}

// Return marks the book as available again; unknown uids are ignored.
func (c *Catalog) Return(ctx context.Context, bookUid string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(bookUid)
	if i < 0 {
		return
	}
	c.books[i].Available = true
	c.persist(ctx)
}

// SetAvgRating updates a book's average rating and persists the
// catalog. Reports whether the book exists.
func (c *Catalog) SetAvgRating(ctx context.Context, bookUid string, avg float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(bookUid)
	if i < 0 {
		return false
	}
	c.books[i].AvgRating = avg
	c.persist(ctx)
	return true
}

// All returns a snapshot copy of the catalog.
func (c *Catalog) All() []model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]model.Book, len(c.books))
	copy(snapshot, c.books)
	return snapshot
}

func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

func (c *Catalog) indexOf(bookUid string) int {
	for i, b := range c.books {
		if strings.EqualFold(b.BookUid, bookUid) {
			return i
		}
	}
	return -1
}

// persist pushes the current state to storage. A failed save is logged
// and swallowed: the in-memory state stays authoritative for the session.
// Callers hold the write lock.
func (c *Catalog) persist(ctx context.Context) {
	if err := c.store.SaveBooks(ctx, c.books); err != nil {
		c.log.Warn("save books", zap.Error(err))
	}
}
