package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tavolaworks/trattoria-manager/internal/dependency"
	"github.com/tavolaworks/trattoria-manager/internal/entity"
	gerr "github.com/tavolaworks/trattoria-manager/internal/errors"
)

type menuStore struct {
	*MYSQLStore
}

// Menu returns an object implementing Menu interface
func (ms *MYSQLStore) Menu() dependency.Menu {
	return &menuStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddMenuItem(ctx context.Context, mi *entity.MenuItemInsert) (int, error) {
	category, ok := ms.cache.GetMenuCategoryByName(mi.Category)
	if !ok {
		return 0, fmt.Errorf("unknown menu category %q", mi.Category)
	}

	id, err := ExecNamedLastId(ctx, ms.DB(), `
		INSERT INTO menu_item (category_id, name, description, price, available, created_at, modified_at)
		VALUES (:categoryId, :name, :description, :price, :available, :createdAt, :modifiedAt)`,
		map[string]any{
			"categoryId":  category.ID,
			"name":        mi.Name,
			"description": mi.Description,
			"price":       mi.PriceDecimal(),
			"available":   mi.Available,
			"createdAt":   ms.Now(),
			"modifiedAt":  ms.Now(),
		})
	if err != nil {
		return 0, fmt.Errorf("can't insert menu item: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) UpdateMenuItem(ctx context.Context, id int, mi *entity.MenuItemInsert) error {
	category, ok := ms.cache.GetMenuCategoryByName(mi.Category)
	if !ok {
		return fmt.Errorf("unknown menu category %q", mi.Category)
	}

	err := ExecNamed(ctx, ms.DB(), `
		UPDATE menu_item
		SET category_id = :categoryId,
			name = :name,
			description = :description,
			price = :price,
			available = :available,
			modified_at = :modifiedAt
		WHERE id = :id`,
		map[string]any{
			"id":          id,
			"categoryId":  category.ID,
			"name":        mi.Name,
			"description": mi.Description,
			"price":       mi.PriceDecimal(),
			"available":   mi.Available,
			"modifiedAt":  ms.Now(),
		})
	if err != nil {
		return fmt.Errorf("can't update menu item: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) DeleteMenuItemById(ctx context.Context, id int) error {
	err := ExecNamed(ctx, ms.DB(), `DELETE FROM menu_item WHERE id = :id`,
		map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete menu item: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetMenuItemById(ctx context.Context, id int) (*entity.MenuItem, error) {
	mi, err := QueryNamedOne[entity.MenuItem](ctx, ms.DB(), `
		SELECT mi.id, mi.category_id, mi.name, mi.description, mi.price, mi.available, mi.created_at, mi.modified_at
		FROM menu_item mi WHERE mi.id = :id`,
		map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("can't get menu item by id: %w", err)
	}

	if category, ok := ms.cache.GetMenuCategoryById(mi.CategoryID); ok {
		mi.Category = category.Name
	}
	return &mi, nil
}

func (ms *MYSQLStore) GetMenuItems(ctx context.Context, showUnavailable bool) ([]entity.MenuItem, error) {
	query := `
		SELECT mi.id, mi.category_id, mi.name, mi.description, mi.price, mi.available, mi.created_at, mi.modified_at
		FROM menu_item mi
		JOIN menu_category mc ON mc.id = mi.category_id`
	if !showUnavailable {
		query += ` WHERE mi.available = 1`
	}
	query += ` ORDER BY mc.id, mi.name`

	items, err := QueryListNamed[entity.MenuItem](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get menu items: %w", err)
	}

	for i := range items {
		if category, ok := ms.cache.GetMenuCategoryById(items[i].CategoryID); ok {
			items[i].Category = category.Name
		}
	}
	return items, nil
}
