package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/recommend-service/internal/errs"
	"github.com/bookhive/recommend-service/internal/handler"
	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/pkg/auth"
	md "github.com/bookhive/recommend-service/pkg/middleware"
	"github.com/bookhive/recommend-service/pkg/validate"

	service_mocks "github.com/bookhive/recommend-service/internal/handler/mocks"
)

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRecommendService, bookUid string)

	var tests = []struct {
		name         string
		bookUid      string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:    "ok",
			bookUid: "B001",
			mockBehavior: func(r *service_mocks.MockRecommendService, bookUid string) {
				r.EXPECT().
					GetBook(context.Background(), bookUid).
					Return(model.Book{
						BookUid:     "B001",
						Title:       "Dune",
						Author:      "Frank Herbert",
						Genre:       "Sci-Fi",
						AvgRating:   4.5,
						Available:   true,
						BorrowCount: 7,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookUid":"B001","title":"Dune","author":"Frank Herbert","genre":"Sci-Fi","avgRating":4.5,"available":true,"borrowCount":7}`,
			},
		},
		{
			name:    "err. not found",
			bookUid: "B999",
			mockBehavior: func(r *service_mocks.MockRecommendService, bookUid string) {
				r.EXPECT().
					GetBook(context.Background(), bookUid).
					Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:    "err. internal",
			bookUid: "B001",
			mockBehavior: func(r *service_mocks.MockRecommendService, bookUid string) {
				r.EXPECT().
					GetBook(context.Background(), bookUid).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRecommendService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, handler.NewNopStatsLog(), log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books/:bookUid", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/books/%s", tt.bookUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.bookUid)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Rating(t *testing.T) {
	t.Parallel()
	type input struct {
		userName string
		body     string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRecommendService, inp input)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			input: input{
				userName: "alice",
				body:     `{"bookUid":"B001","stars":5}`,
			},
			mockBehavior: func(r *service_mocks.MockRecommendService, inp input) {
				r.EXPECT().
					AddRating(gomock.Any(), inp.userName, "B001", 5).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: ``,
			},
		},
		{
			name: "err. no user name",
			input: input{
				userName: "",
				body:     `{"bookUid":"B001","stars":5}`,
			},
			mockBehavior: func(r *service_mocks.MockRecommendService, inp input) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
			},
		},
		{
			name: "err. invalid stars",
			input: input{
				userName: "alice",
				body:     `{"bookUid":"B001","stars":6}`,
			},
			mockBehavior: func(r *service_mocks.MockRecommendService, inp input) {
				r.EXPECT().
					AddRating(gomock.Any(), inp.userName, "B001", 6).
					Return(errs.ErrInvalidStars)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"stars must be between 1 and 5"}`,
			},
		},
		{
			name: "err. unknown book",
			input: input{
				userName: "alice",
				body:     `{"bookUid":"B999","stars":4}`,
			},
			mockBehavior: func(r *service_mocks.MockRecommendService, inp input) {
				r.EXPECT().
					AddRating(gomock.Any(), inp.userName, "B999", 4).
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRecommendService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, handler.NewNopStatsLog(), log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/rating", h.Rating, md.AuthContext)

			r := httptest.NewRequest(http.MethodPost, "/rating", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userName != "" {
				r.Header.Set(auth.XUserNameHeader, tt.input.userName)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchBooks_InvalidPaging(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRecommendService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, handler.NewNopStatsLog(), log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/books", h.SearchBooks)

	for _, target := range []string{
		"/books?query=dune&page=-1&size=5",
		"/books?query=dune&page=1&size=0",
		"/books?query=dune&page=abc",
	} {
		r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestConsumer_SetupAcrossSessions(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(nil, zap.NewExample())
	require.NoError(t, consumer.Setup(nil))
	require.NoError(t, consumer.Setup(nil))
}

func TestHandler_Recommendations(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockRecommendService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, handler.NewNopStatsLog(), log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/recommendations", h.Recommendations, md.AuthContext)

	svc.EXPECT().
		Recommend(gomock.Any(), "alice", 2).
		Return([]model.Book{
			{BookUid: "B002", Title: "Hyperion", Author: "Dan Simmons", Genre: "Sci-Fi", AvgRating: 4.2, Available: true, BorrowCount: 3},
		})

	r := httptest.NewRequest(http.MethodGet, "/recommendations?count=2", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "alice")
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"bookUid":"B002","title":"Hyperion","author":"Dan Simmons","genre":"Sci-Fi","avgRating":4.2,"available":true,"borrowCount":3}]`,
		strings.Trim(w.Body.String(), "\n"))
}
