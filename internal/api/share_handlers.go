package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type shareRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) shareItem(c echo.Context) error {
	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.sharing.Share(c.Request().Context(), c.Param("id"), req.UserID); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) unshareItem(c echo.Context) error {
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	if err := s.sharing.Unshare(c.Request().Context(), c.Param("id"), c.Param("userID")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listShares(c echo.Context) error {
	if _, err := s.requireItemOwner(c, c.Param("id")); err != nil {
		return err
	}

	userIDs, err := s.sharing.ListShares(c.Request().Context(), c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	if userIDs == nil {
		userIDs = []string{}
	}
	return c.JSON(http.StatusOK, userIDs)
}
