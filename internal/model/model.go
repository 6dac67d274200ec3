package model

import (
	"regexp"

	"github.com/bookhive/recommend-service/internal/errs"
)

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type Book struct {
	BookUid     string  `json:"bookUid" db:"book_uid"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	Genre       string  `json:"genre" db:"genre"`
	AvgRating   float64 `json:"avgRating" db:"avg_rating"`
	Available   bool    `json:"available" db:"available"`
	BorrowCount int     `json:"borrowCount" db:"borrow_count"`
}

// book uids look like B001: one letter, three digits.
var bookUidRe = regexp.MustCompile(`^[A-Za-z][0-9]{3}$`)

// Valid reports whether a loaded record is well-formed. Records failing
// this check are dropped at load time, not repaired.
func (b Book) Valid() bool {
	return bookUidRe.MatchString(b.BookUid) &&
		b.Title != "" &&
		b.Author != "" &&
		b.Genre != "" &&
		b.AvgRating >= 0 && b.AvgRating <= 5 &&
		b.BorrowCount >= 0
}

type Rating struct {
	UserName string `json:"userName" db:"username"`
	BookUid  string `json:"bookUid" db:"book_uid"`
	Stars    int    `json:"stars" db:"stars"`
}

// NewRating enforces the 1..5 stars range at construction.
func NewRating(userName, bookUid string, stars int) (Rating, error) {
	if stars < 1 || stars > 5 {
		return Rating{}, errs.ErrInvalidStars
	}
	return Rating{UserName: userName, BookUid: bookUid, Stars: stars}, nil
}

// Weights is the four-way recommendation weight vector.
// The components always sum to 1.0.
type Weights struct {
	Genre      float64 `json:"genre"`
	Author     float64 `json:"author"`
	Rating     float64 `json:"rating"`
	Popularity float64 `json:"popularity"`
}

func DefaultWeights() Weights {
	return Weights{
		Genre:      0.4,
		Author:     0.3,
		Rating:     0.2,
		Popularity: 0.1,
	}
}

type CreateRatingRequest struct {
	BookUid string `json:"bookUid" validate:"required"`
	Stars   int    `json:"stars" validate:"required"`
}

type RatingMsg struct {
	Name    string `json:"name"`
	BookUid string `json:"bookUid"`
	Stars   int    `json:"stars"`
}

type AdjustWeightsRequest struct {
	Increase *bool `json:"increase" validate:"required"`
}

type SearchResult struct {
	Query          string `json:"query"`
	CorrectedQuery string `json:"correctedQuery,omitempty"`
	Items          []Book `json:"items"`
}
