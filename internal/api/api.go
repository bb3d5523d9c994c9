// Package api exposes the engine's operations as a JSON HTTP API.
// Handlers resolve the caller from the bearer token, check ownership
// before every mutation, and translate the domain error taxonomy into
// HTTP statuses. No handler mutates entity state directly; every write
// goes through a service.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
	"noticeboard/internal/middleware"
	"noticeboard/internal/models"
	"noticeboard/internal/service"
)

// Server bundles the services behind the HTTP surface.
type Server struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	boards        *service.BoardService
	items         *service.ItemService
	mover         *service.MoveCoordinator
	sharing       *service.SharingService
	queries       *service.QueryService
}

// NewServer creates a Server over the given services.
func NewServer(
	authenticator auth.Authenticator,
	jwtManager *auth.JWTManager,
	boards *service.BoardService,
	items *service.ItemService,
	mover *service.MoveCoordinator,
	sharing *service.SharingService,
	queries *service.QueryService,
) *Server {
	return &Server{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		boards:        boards,
		items:         items,
		mover:         mover,
		sharing:       sharing,
		queries:       queries,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/api/register", s.register)
	e.POST("/api/login", s.login)
	e.GET("/metrics", middleware.MetricsHandler())

	g := e.Group("/api", middleware.RequireAuth(s.jwtManager))

	g.GET("/boards", s.listBoards)
	g.POST("/boards", s.createBoard)
	g.PATCH("/boards/:id/title", s.renameBoard)
	g.PATCH("/boards/:id/description", s.updateBoardDescription)
	g.DELETE("/boards/:id", s.deleteBoard)

	g.GET("/boards/:id/items", s.listVisibleItems)
	g.POST("/boards/:id/items", s.createItem)
	g.PATCH("/items/:id", s.updateItem)
	g.POST("/items/:id/move", s.moveItem)
	g.POST("/items/:id/transfer", s.transferItem)
	g.DELETE("/items/:id", s.deleteItem)

	g.GET("/items/:id/shares", s.listShares)
	g.POST("/items/:id/shares", s.shareItem)
	g.DELETE("/items/:id/shares/:userID", s.unshareItem)

	g.GET("/overview", s.overview)
	g.GET("/items/expiring", s.expiringItems)
	g.GET("/search", s.searchItems)
}

// domainError maps the taxonomy onto HTTP statuses. Validation and
// uniqueness errors carry user-facing messages; storage faults do not
// leak their cause.
func domainError(err error) error {
	switch {
	case models.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case models.IsDuplicateTitle(err):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case models.IsInvalidAttribute(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrAlreadyShared):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrNotShared):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrSelfShareForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "write conflict, retry the request")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// requireBoardOwner loads a board and rejects callers who do not own it.
func (s *Server) requireBoardOwner(c echo.Context, boardID string) (*models.Board, error) {
	board, err := s.boards.Get(c.Request().Context(), boardID)
	if err != nil {
		return nil, domainError(err)
	}
	if board.OwnerID != middleware.UserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "not the board owner")
	}
	return board, nil
}

// requireItemOwner loads an item and rejects callers who do not own it.
func (s *Server) requireItemOwner(c echo.Context, itemID string) (*models.Item, error) {
	item, err := s.items.Get(c.Request().Context(), itemID)
	if err != nil {
		return nil, domainError(err)
	}
	if item.OwnerID != middleware.UserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "not the item owner")
	}
	return item, nil
}
