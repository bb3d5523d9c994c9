package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/middleware"
	"noticeboard/internal/models"
)

func (s *Server) listVisibleItems(c echo.Context) error {
	items, err := s.queries.ListVisibleItems(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

type boardViewResponse struct {
	Board  boardResponse  `json:"board"`
	Shared bool           `json:"shared"`
	Items  []itemResponse `json:"items"`
}

func (s *Server) overview(c echo.Context) error {
	views, err := s.queries.ListBoardsForUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(err)
	}

	out := make([]boardViewResponse, len(views))
	for i, v := range views {
		out[i] = boardViewResponse{
			Board:  toBoardResponse(v.Board),
			Shared: v.Shared,
			Items:  toItemResponses(v.Items),
		}
	}
	return c.JSON(http.StatusOK, out)
}

// expiringItems returns the caller's items expiring today, or before
// ?before=YYYY-MM-DD when given.
func (s *Server) expiringItems(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var items []models.Item
	var err error
	if before := c.QueryParam("before"); before != "" {
		date, perr := time.ParseInLocation("2006-01-02", before, time.Local)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "before must be YYYY-MM-DD")
		}
		items, err = s.queries.FindExpiringBefore(ctx, userID, date)
	} else {
		items, err = s.queries.FindExpiringToday(ctx, userID)
	}
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (s *Server) searchItems(c echo.Context) error {
	fragment := c.QueryParam("q")
	if fragment == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	items, err := s.queries.SearchByTitle(c.Request().Context(), middleware.UserID(c), fragment)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}
