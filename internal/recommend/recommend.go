package recommend

import (
	"context"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/errs"
	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/internal/repository"
)

// unknownPreference never matches a real genre or author, so a user
// without qualifying ratings gets no affinity bonus.
const unknownPreference = "Unknown"

// preferenceThreshold is the minimum stars for a rating to count
// towards the preferred genre/author tally.
const preferenceThreshold = 4

// Recommender scores catalog books against a user's rating history
// with a four-way weight vector. Weights are instance state, not
// process state: independent recommenders do not interfere.
type Recommender struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	ratings []model.Rating
	weights model.Weights
	store   repository.Storage
	log     *zap.Logger
}

// New loads the rating history from storage, failing open to an empty
// set so the cold-start path still works.
func New(ctx context.Context, cat *catalog.Catalog, store repository.Storage, log *zap.Logger) *Recommender {
	r := &Recommender{
		catalog: cat,
		weights: model.DefaultWeights(),
		store:   store,
		log:     log.Named("recommend"),
	}

	ratings, err := store.LoadRatings(ctx)
	if err != nil {
		r.log.Warn("load ratings, starting empty", zap.Error(err))
		ratings = nil
	}
	r.ratings = ratings
	r.log.Info("ratings loaded", zap.Int("ratings", len(r.ratings)))
	return r
}

// Recommend returns the top n personalized suggestions for a user.
// A user without history falls back to the popularity ranking. Books
// the user already rated are never suggested. Equal scores are broken
// by ascending book uid so the output is deterministic.
func (r *Recommender) Recommend(_ context.Context, userName string, n int) []model.Book {
	r.mu.Lock()
	userRatings := r.userRatings(userName)
	weights := r.weights
	r.mu.Unlock()

	if len(userRatings) == 0 {
		return r.catalog.Popular(n)
	}

	prefGenre := r.preferredKey(userRatings, func(b model.Book) string { return b.Genre })
	prefAuthor := r.preferredKey(userRatings, func(b model.Book) string { return b.Author })

	books := r.catalog.All()

	maxBorrow := 1
	for _, b := range books {
		if b.BorrowCount > maxBorrow {
			maxBorrow = b.BorrowCount
		}
	}

	rated := make(map[string]struct{}, len(userRatings))
	for _, rt := range userRatings {
		rated[rt.BookUid] = struct{}{}
	}

	type scored struct {
		book  model.Book
		score float64
	}
	candidates := make([]scored, 0, len(books))
	for _, b := range books {
		if _, ok := rated[b.BookUid]; ok {
			continue
		}
		candidates = append(candidates, scored{
			book:  b,
			score: matchScore(b, prefGenre, prefAuthor, weights, maxBorrow),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].book.BookUid < candidates[j].book.BookUid
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	top := make([]model.Book, 0, n)
	for _, c := range candidates[:n] {
		top = append(top, c.book)
	}
	return top
}

// AddRating upserts the (user, book) rating, persists the full rating
// set and recomputes the book's average. The stars range is enforced at
// Rating construction and never clamped.
func (r *Recommender) AddRating(ctx context.Context, userName, bookUid string, stars int) error {
	rating, err := model.NewRating(userName, bookUid, stars)
	if err != nil {
		return err
	}
	if _, ok := r.catalog.FindByID(bookUid); !ok {
		return errs.ErrNotFound
	}

	r.mu.Lock()
	kept := r.ratings[:0]
	for _, rt := range r.ratings {
		if rt.UserName == userName && rt.BookUid == bookUid {
			continue
		}
		kept = append(kept, rt)
	}
	r.ratings = append(kept, rating)

	snapshot := make([]model.Rating, len(r.ratings))
	copy(snapshot, r.ratings)

	total, count := 0, 0
	for _, rt := range r.ratings {
		if rt.BookUid == bookUid {
			total += rt.Stars
			count++
		}
	}
	r.mu.Unlock()

	if err := r.store.SaveRatings(ctx, snapshot); err != nil {
		r.log.Warn("save ratings", zap.Error(err))
	}

	if count > 0 {
		avg := math.Round(float64(total)/float64(count)*10) / 10
		r.catalog.SetAvgRating(ctx, bookUid, avg)
	}
	return nil
}

// RatingsFor returns the user's ratings in insertion order.
func (r *Recommender) RatingsFor(userName string) []model.Rating {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userRatings(userName)
}

// AdjustWeights nudges the genre and author weights by ±0.05 within
// their clamp bounds, then redistributes the remainder over the rating
// and popularity weights so the vector sums to 1.0 again.
func (r *Recommender) AdjustWeights(increase bool) model.Weights {
	r.mu.Lock()
	defer r.mu.Unlock()

	delta := -0.05
	if increase {
		delta = 0.05
	}
	w := r.weights
	w.Genre = clamp(w.Genre+delta, 0.1, 0.6)
	w.Author = clamp(w.Author+delta, 0.1, 0.5)

	total := w.Genre + w.Author + w.Rating + w.Popularity
	w.Rating = (w.Rating / total) * (1 - w.Genre - w.Author)
	w.Popularity = 1 - w.Genre - w.Author - w.Rating

	r.weights = w
	r.log.Debug("weights adjusted",
		zap.Float64("genre", w.Genre),
		zap.Float64("author", w.Author),
		zap.Float64("rating", w.Rating),
		zap.Float64("popularity", w.Popularity),
	)
	return w
}

func (r *Recommender) Weights() model.Weights {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.weights
}

func matchScore(b model.Book, prefGenre, prefAuthor string, w model.Weights, maxBorrow int) float64 {
	score := 0.0
	if b.Genre == prefGenre {
		score += w.Genre
	}
	if b.Author == prefAuthor {
		score += w.Author
	}
	score += (b.AvgRating / 5.0) * w.Rating
	score += (float64(b.BorrowCount) / float64(maxBorrow)) * w.Popularity
	return score
}

// preferredKey tallies the key of every book the user rated at
// preferenceThreshold or above and returns the argmax. Ties go to the
// key that reached the maximum first, in rating order, which keeps the
// result deterministic for a given history.
func (r *Recommender) preferredKey(userRatings []model.Rating, key func(model.Book) string) string {
	counts := make(map[string]int)
	var order []string
	for _, rt := range userRatings {
		if rt.Stars < preferenceThreshold {
			continue
		}
		b, ok := r.catalog.FindByID(rt.BookUid)
		if !ok {
			continue
		}
		k := key(b)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	best, bestCount := unknownPreference, 0
	for _, k := range order {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// callers hold r.mu.
func (r *Recommender) userRatings(userName string) []model.Rating {
	var result []model.Rating
	for _, rt := range r.ratings {
		if rt.UserName == userName {
			result = append(result, rt)
		}
	}
	return result
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
