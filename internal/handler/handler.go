package handler

import (
	"net/http"
	"strconv"

	md "github.com/bookhive/recommend-service/pkg/middleware"

	"github.com/bookhive/recommend-service/internal/errs"
	"github.com/bookhive/recommend-service/internal/model"
	"github.com/bookhive/recommend-service/pkg/auth"
	"github.com/bookhive/recommend-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultCount = 10

type Handler struct {
	svc      RecommendService
	statsLog StatsLog
	log      *zap.Logger
}

func New(svc RecommendService, statsLog StatsLog, log *zap.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		statsLog: statsLog,
		log:      log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.SearchBooks)
	api.GET("/books/popular", h.PopularBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.GET("/books/:bookUid/similar", h.SimilarBooks)
	api.GET("/search", h.SmartSearch)
	api.GET("/search/suggestions", h.Suggestions)

	authed := api.Group("", md.AuthContext)
	authed.POST("/books/:bookUid/borrow", h.BorrowBook)
	authed.POST("/books/:bookUid/return", h.ReturnBook)
	authed.GET("/recommendations", h.Recommendations)
	authed.GET("/rating", h.GetRatings)
	authed.POST("/rating", h.Rating)
	authed.PATCH("/weights", h.AdjustWeights)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	book, err := h.svc.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	books := h.svc.SearchBooks(ctx, c.QueryParam("query"), page, size)
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) PopularBooks(c echo.Context) error {
	count, err := countParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.PopularBooks(c.Request().Context(), count))
}

func (h *Handler) SimilarBooks(c echo.Context) error {
	count, err := countParam(c)
	if err != nil {
		return err
	}
	books, err := h.svc.SimilarBooks(c.Request().Context(), c.Param("bookUid"), count)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) BorrowBook(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	bookUid := c.Param("bookUid")
	if err := h.svc.BorrowBook(ctx, bookUid); err != nil {
		if errors.Is(err, errs.ErrBookUnavailable) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.logStats(userName, "borrow", bookUid)

	return c.NoContent(http.StatusOK)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	bookUid := c.Param("bookUid")
	if err := h.svc.ReturnBook(ctx, bookUid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.logStats(userName, "return", bookUid)

	return c.NoContent(http.StatusOK)
}

func (h *Handler) Recommendations(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	count, err := countParam(c)
	if err != nil {
		return err
	}

	books := h.svc.Recommend(ctx, userName, count)
	h.logStats(userName, "recommend", "")

	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Rating(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.svc.AddRating(ctx, userName, req.BookUid, req.Stars); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStars):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.logStats(userName, "rating", req.BookUid)

	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetRatings(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.GetRatings(ctx, userName))
}

func (h *Handler) AdjustWeights(c echo.Context) error {
	var req model.AdjustWeightsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Increase == nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("increase is required"))
	}
	weights := h.svc.AdjustWeights(c.Request().Context(), *req.Increase)
	return c.JSON(http.StatusOK, weights)
}

func (h *Handler) SmartSearch(c echo.Context) error {
	result := h.svc.SmartSearch(c.Request().Context(), c.QueryParam("query"))
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Suggestions(c echo.Context) error {
	suggestions := h.svc.Suggest(c.Request().Context(), c.QueryParam("prefix"))
	return c.JSON(http.StatusOK, suggestions)
}

func (h *Handler) logStats(userName, action, bookUid string) {
	if err := h.statsLog.Log(userName, action, bookUid); err != nil {
		h.log.Debug("stats log", zap.String("action", action), zap.Error(err))
	}
}

func countParam(c echo.Context) (int, error) {
	count := defaultCount
	if countParam := c.QueryParam("count"); countParam != "" {
		var err error
		if count, err = strconv.Atoi(countParam); err != nil || count < 0 {
			return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("count is invalid"))
		}
	}
	return count, nil
}
