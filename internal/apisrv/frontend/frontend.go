// Package frontend implements the public ordering API handlers.
package frontend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	v "github.com/asaskevich/govalidator"
	"github.com/tavolaworks/trattoria-manager/internal/analytics"
	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

// Server implements handlers for the customer facing frontend.
type Server struct {
	repo dependency.Repository
}

// New creates a new server with frontend handlers.
func New(r dependency.Repository) *Server {
	return &Server{
		repo: r,
	}
}

// GetMenu returns the public menu, available items only, ordered by
// category then name.
func (s *Server) GetMenu(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := s.repo.Menu().GetMenuItems(ctx, false)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get menu items",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return items, nil
}

// SubmitOrder validates and places a new order.
func (s *Server) SubmitOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.OrderFull, error) {
	if _, err := v.ValidateStruct(orderNew); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrValidation, err)
	}
	if len(orderNew.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", gerr.ErrValidation)
	}

	of, err := s.repo.Orders().CreateOrder(ctx, orderNew)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create order",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return of, nil
}

// GetOrderByUUID returns the full order for the tracking page.
func (s *Server) GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.OrderFull, error) {
	of, err := s.repo.Orders().GetOrderFullByUUID(ctx, orderUUID)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get order",
			slog.String("err", err.Error()),
			slog.String("uuid", orderUUID),
		)
		return nil, err
	}
	return of, nil
}

// GetLabelSuggestions ranks past order item labels matching the query.
// Short queries return an empty list without loading the label corpus.
func (s *Server) GetLabelSuggestions(ctx context.Context, query string) ([]string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < analytics.SuggestMinQueryLen {
		return nil, nil
	}

	corpus, err := s.repo.Orders().GetItemLabelCorpus(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get label corpus",
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return analytics.Suggest(query, corpus), nil
}
