package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
	"noticeboard/internal/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func (s *Server) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := s.authenticator.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameExists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrWeakPassword), models.IsInvalidAttribute(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return domainError(err)
		}
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, sessionResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}

func (s *Server) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := s.authenticator.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return domainError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}
