package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/errs"
	"github.com/bookhive/recommend-service/internal/model"
)

// Storage is the persistence collaborator behind the catalog and the
// recommender. Load failures are tolerated by the callers (they start
// from an empty collection), save failures are logged and swallowed at
// the call site.
type Storage interface {
	LoadBooks(ctx context.Context) ([]model.Book, error)
	SaveBooks(ctx context.Context, books []model.Book) error
	LoadRatings(ctx context.Context) ([]model.Rating, error)
	SaveRatings(ctx context.Context, ratings []model.Rating) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	ratingsTableName = `ratings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) LoadBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("book_uid", "title", "author", "genre", "avg_rating", "available", "borrow_count").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		r.log.Error("LoadBooks", zap.String("q", query))
		return nil, err
	}
	return books, nil
}

func (r *repository) SaveBooks(ctx context.Context, books []model.Book) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, b := range books {
		query, args, err := qb.Insert(booksTableName).
			Columns("book_uid", "title", "author", "genre", "avg_rating", "available", "borrow_count").
			Values(b.BookUid, b.Title, b.Author, b.Genre, b.AvgRating, b.Available, b.BorrowCount).
			Suffix(`on conflict (book_uid) do update
	set avg_rating = excluded.avg_rating,
	    available = excluded.available,
	    borrow_count = excluded.borrow_count`).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.log.Error("SaveBooks", zap.String("q", query), zap.Any("args", args))
			return err
		}
	}
	return tx.Commit()
}

func (r *repository) LoadRatings(ctx context.Context) ([]model.Rating, error) {
	query, args, err := qb.Select("username", "book_uid", "stars").
		From(ratingsTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var ratings []model.Rating
	if err := r.db.SelectContext(ctx, &ratings, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ratings, nil
}

// SaveRatings rewrites the whole rating set: the recommender owns the
// logical replace semantics, the table just mirrors its state.
func (r *repository) SaveRatings(ctx context.Context, ratings []model.Rating) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	del, args, err := qb.Delete(ratingsTableName).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return err
	}

	for _, rt := range ratings {
		query, args, err := qb.Insert(ratingsTableName).
			Columns("username", "book_uid", "stars").
			Values(rt.UserName, rt.BookUid, rt.Stars).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return errs.ErrAlreadyExists
			}
			return err
		}
	}
	return tx.Commit()
}
