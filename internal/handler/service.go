package handler

import (
	"context"

	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RecommendService interface {
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	SearchBooks(ctx context.Context, query string, page, size int) model.ListBooks
	PopularBooks(ctx context.Context, count int) []model.Book
	SimilarBooks(ctx context.Context, bookUid string, count int) ([]model.Book, error)
	BorrowBook(ctx context.Context, bookUid string) error
	ReturnBook(ctx context.Context, bookUid string) error
	Recommend(ctx context.Context, userName string, count int) []model.Book
	AddRating(ctx context.Context, userName, bookUid string, stars int) error
	GetRatings(ctx context.Context, userName string) []model.Rating
	AdjustWeights(ctx context.Context, increase bool) model.Weights
	SmartSearch(ctx context.Context, query string) model.SearchResult
	Suggest(ctx context.Context, prefix string) []string
}

var _ RecommendService = (*service.Service)(nil)
