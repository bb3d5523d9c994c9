package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/middleware"
	"noticeboard/internal/models"
)

type boardResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
}

func toBoardResponse(b models.Board) boardResponse {
	return boardResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

type createBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) createBoard(c echo.Context) error {
	var req createBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	board, err := s.boards.Create(c.Request().Context(), middleware.UserID(c), req.Title, req.Description)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toBoardResponse(*board))
}

func (s *Server) listBoards(c echo.Context) error {
	boards, err := s.boards.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return domainError(err)
	}

	out := make([]boardResponse, len(boards))
	for i, b := range boards {
		out[i] = toBoardResponse(b)
	}
	return c.JSON(http.StatusOK, out)
}

type renameBoardRequest struct {
	Title string `json:"title"`
}

func (s *Server) renameBoard(c echo.Context) error {
	var req renameBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireBoardOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.boards.Rename(c.Request().Context(), c.Param("id"), req.Title); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type updateDescriptionRequest struct {
	Description string `json:"description"`
}

func (s *Server) updateBoardDescription(c echo.Context) error {
	var req updateDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireBoardOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.boards.UpdateDescription(c.Request().Context(), c.Param("id"), req.Description); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteBoard(c echo.Context) error {
	if _, err := s.requireBoardOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.boards.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
