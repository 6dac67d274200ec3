package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/model"
)

// FileStorage keeps books and ratings in flat CSV files:
// books.csv with 7 columns, ratings.csv with 3, both with a header row.
// Saves back up the previous file with a timestamped .bak name before
// rewriting it.
type FileStorage struct {
	dir string
	log *zap.Logger
}

func NewFileStorage(dir string, log *zap.Logger) *FileStorage {
	return &FileStorage{
		dir: dir,
		log: log.Named("csv"),
	}
}

const (
	booksFileName   = "books.csv"
	ratingsFileName = "ratings.csv"

	booksHeader   = "id,title,author,genre,rating,isAvailable,borrowCount"
	ratingsHeader = "userId,bookId,rating"

	backupTimeLayout = "20060102_150405"
)

func (s *FileStorage) booksPath() string   { return filepath.Join(s.dir, booksFileName) }
func (s *FileStorage) ratingsPath() string { return filepath.Join(s.dir, ratingsFileName) }

// LoadBooks drops malformed rows one by one: a bad record costs only
// itself, not the whole file.
func (s *FileStorage) LoadBooks(_ context.Context) ([]model.Book, error) {
	rows, err := s.readAll(s.booksPath())
	if err != nil {
		return nil, err
	}

	var books []model.Book
	for i, row := range rows {
		if len(row) != 7 {
			s.log.Warn("skip book row: bad column count", zap.Int("row", i+1))
			continue
		}
		avg, err1 := strconv.ParseFloat(row[4], 64)
		avail, err2 := strconv.ParseBool(row[5])
		borrow, err3 := strconv.Atoi(row[6])
		if err1 != nil || err2 != nil || err3 != nil {
			s.log.Warn("skip book row: bad field", zap.Int("row", i+1))
			continue
		}
		b := model.Book{
			BookUid:     row[0],
			Title:       row[1],
			Author:      row[2],
			Genre:       row[3],
			AvgRating:   avg,
			Available:   avail,
			BorrowCount: borrow,
		}
		if !b.Valid() {
			s.log.Warn("skip book row: invalid record", zap.String("bookUid", b.BookUid))
			continue
		}
		books = append(books, b)
	}
	return books, nil
}

func (s *FileStorage) SaveBooks(_ context.Context, books []model.Book) error {
	s.backup(s.booksPath())

	records := make([][]string, 0, len(books)+1)
	records = append(records, strings.Split(booksHeader, ","))
	for _, b := range books {
		records = append(records, []string{
			b.BookUid,
			b.Title,
			b.Author,
			b.Genre,
			strconv.FormatFloat(b.AvgRating, 'f', -1, 64),
			strconv.FormatBool(b.Available),
			strconv.Itoa(b.BorrowCount),
		})
	}
	return s.writeAll(s.booksPath(), records)
}

// LoadRatings fails closed: any malformed row rejects the whole file
// and the caller starts from an empty rating set.
func (s *FileStorage) LoadRatings(_ context.Context) ([]model.Rating, error) {
	rows, err := s.readAll(s.ratingsPath())
	if err != nil {
		return nil, err
	}

	ratings := make([]model.Rating, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			s.log.Warn("reject ratings file: bad column count", zap.Int("row", i+1))
			return nil, nil
		}
		stars, err := strconv.Atoi(row[2])
		if err != nil || stars < 1 || stars > 5 {
			s.log.Warn("reject ratings file: bad stars", zap.Int("row", i+1))
			return nil, nil
		}
		ratings = append(ratings, model.Rating{UserName: row[0], BookUid: row[1], Stars: stars})
	}
	return ratings, nil
}

func (s *FileStorage) SaveRatings(_ context.Context, ratings []model.Rating) error {
	s.backup(s.ratingsPath())

	records := make([][]string, 0, len(ratings)+1)
	records = append(records, strings.Split(ratingsHeader, ","))
	for _, r := range ratings {
		records = append(records, []string{r.UserName, r.BookUid, strconv.Itoa(r.Stars)})
	}
	return s.writeAll(s.ratingsPath(), records)
}

func (s *FileStorage) readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *FileStorage) writeAll(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *FileStorage) backup(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	stamp := time.Now().Format(backupTimeLayout)
	backupPath := strings.Replace(path, ".csv", "_"+stamp+".bak", 1)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		s.log.Warn("backup failed", zap.String("path", backupPath), zap.Error(err))
	}
}
