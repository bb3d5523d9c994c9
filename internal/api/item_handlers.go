package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/models"
)

type itemResponse struct {
	ID          string `json:"id"`
	BoardID     string `json:"board_id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ActivityURL string `json:"activity_url"`
	ImageURL    string `json:"image_url"`
	Expiry      int64  `json:"expiry,omitempty"`
	Color       string `json:"color"`
	Position    int    `json:"position"`
	CreatedAt   int64  `json:"created_at"`
}

func toItemResponse(it models.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		BoardID:     it.BoardID,
		OwnerID:     it.OwnerID,
		Title:       it.Title,
		Completed:   it.Completed,
		Description: it.Description,
		ActivityURL: it.ActivityURL,
		ImageURL:    it.ImageURL,
		Expiry:      it.Expiry,
		Color:       it.Color,
		Position:    it.Position,
		CreatedAt:   it.CreatedAt,
	}
}

func toItemResponses(items []models.Item) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

type createItemRequest struct {
	Title       string `json:"title"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ActivityURL string `json:"activity_url"`
	ImageURL    string `json:"image_url"`
	Expiry      int64  `json:"expiry"`
	Color       string `json:"color"`
}

func (s *Server) createItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireBoardOwner(c, c.Param("id")); err != nil {
		return err
	}

	item, err := s.items.Create(c.Request().Context(), c.Param("id"), models.ItemAttrs{
		Title:       req.Title,
		Completed:   req.Completed,
		Description: req.Description,
		ActivityURL: req.ActivityURL,
		ImageURL:    req.ImageURL,
		Expiry:      req.Expiry,
		Color:       req.Color,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, toItemResponse(*item))
}

type updateItemRequest struct {
	Title       *string `json:"title"`
	Completed   *bool   `json:"completed"`
	Description *string `json:"description"`
	ActivityURL *string `json:"activity_url"`
	ImageURL    *string `json:"image_url"`
	Expiry      *int64  `json:"expiry"`
	Color       *string `json:"color"`
}

func (s *Server) updateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	patch := models.ItemPatch{
		Title:       req.Title,
		Completed:   req.Completed,
		Description: req.Description,
		ActivityURL: req.ActivityURL,
		ImageURL:    req.ImageURL,
		Expiry:      req.Expiry,
		Color:       req.Color,
	}
	if err := s.items.Update(c.Request().Context(), c.Param("id"), patch); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type moveItemRequest struct {
	Position int `json:"position"`
}

func (s *Server) moveItem(c echo.Context) error {
	var req moveItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.items.MoveWithinBoard(c.Request().Context(), c.Param("id"), req.Position); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type transferItemRequest struct {
	TargetBoardID string `json:"target_board_id"`
}

func (s *Server) transferItem(c echo.Context) error {
	var req transferItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := s.requireItemOwner(c, c.Param("id"))
	if err != nil {
		return err
	}
	if _, err := s.requireBoardOwner(c, req.TargetBoardID); err != nil {
		return err
	}

	if err := s.mover.MoveToBoard(c.Request().Context(), item.ID, item.BoardID, req.TargetBoardID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteItem(c echo.Context) error {
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.items.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
