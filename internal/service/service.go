package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/catalog"
	"github.com/bookhive/recommend-service/internal/errs"
	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/internal/recommend"
	"github.com/bookhive/recommend-service/internal/search"
)

type Service struct {
	log         *zap.Logger
	catalog     *catalog.Catalog
	recommender *recommend.Recommender
	index       *search.Index
}

func NewService(cat *catalog.Catalog, rec *recommend.Recommender, idx *search.Index, log *zap.Logger) *Service {
	return &Service{
		log:         log,
		catalog:     cat,
		recommender: rec,
		index:       idx,
	}
}

func (s *Service) GetBook(_ context.Context, bookUid string) (model.Book, error) {
	book, ok := s.catalog.FindByID(bookUid)
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return book, nil
}

func (s *Service) SearchBooks(_ context.Context, query string, page, size int) model.ListBooks {
	items := s.catalog.Search(query)
	total := len(items)

	if page > 0 && size > 0 {
		offset := (page - 1) * size
		if offset > len(items) {
			offset = len(items)
		}
		end := offset + size
		if end > len(items) {
			end = len(items)
		}
		items = items[offset:end]
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}
}

func (s *Service) PopularBooks(_ context.Context, count int) []model.Book {
	return s.catalog.Popular(count)
}

func (s *Service) SimilarBooks(_ context.Context, bookUid string, count int) ([]model.Book, error) {
	ref, ok := s.catalog.FindByID(bookUid)
	if !ok {
		return nil, errs.ErrNotFound
	}
	return s.catalog.Similar(ref, count), nil
}

func (s *Service) BorrowBook(ctx context.Context, bookUid string) error {
	if !s.catalog.Borrow(ctx, bookUid) {
		return errs.ErrBookUnavailable
	}
	return nil
}

func (s *Service) ReturnBook(ctx context.Context, bookUid string) error {
	s.catalog.Return(ctx, bookUid)
	return nil
}

func (s *Service) Recommend(ctx context.Context, userName string, count int) []model.Book {
	return s.recommender.Recommend(ctx, userName, count)
}

func (s *Service) AddRating(ctx context.Context, userName, bookUid string, stars int) error {
	return s.recommender.AddRating(ctx, userName, bookUid, stars)
}

func (s *Service) GetRatings(_ context.Context, userName string) []model.Rating {
	return s.recommender.RatingsFor(userName)
}

func (s *Service) AdjustWeights(_ context.Context, increase bool) model.Weights {
	return s.recommender.AdjustWeights(increase)
}

func (s *Service) SmartSearch(_ context.Context, query string) model.SearchResult {
	items, corrected := s.index.SmartSearch(query)
	return model.SearchResult{
		Query:          query,
		CorrectedQuery: corrected,
		Items:          items,
	}
}

func (s *Service) Suggest(_ context.Context, prefix string) []string {
	return s.index.Suggest(prefix)
}
