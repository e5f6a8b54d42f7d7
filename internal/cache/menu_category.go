package cache

import (
	"errors"
	"sync"

	"github.com/tavolaworks/trattoria-manager/internal/entity"
)

// MenuCategoryCache definition
type MenuCategoryCache struct {
	IDCache map[entity.MenuCategoryName]entity.MenuCategory
	Cache   map[int]entity.MenuCategory
	Mutex   sync.RWMutex
}

func newMenuCategoryCache(categories []entity.MenuCategory) (*MenuCategoryCache, error) {
	c := &MenuCategoryCache{
		Cache:   make(map[int]entity.MenuCategory),
		IDCache: make(map[entity.MenuCategoryName]entity.MenuCategory),
	}
	c.Mutex.Lock()
	defer c.Mutex.Unlock()

	for _, category := range categories {
		if !entity.ValidMenuCategoryNames[category.Name] {
			return nil, errors.New("invalid menu category name")
		}
		c.Cache[category.ID] = category
		c.IDCache[category.Name] = category
	}

	if len(c.Cache) != len(entity.ValidMenuCategoryNames) {
		return nil, errors.New("not all menu categories are filled with an ID")
	}

	return c, nil
}

// GetMenuCategoryByID fetches MenuCategory by ID from MenuCategoryCache
func (c *MenuCategoryCache) GetMenuCategoryByID(id int) (*entity.MenuCategory, bool) {
	c.Mutex.RLock()
	defer c.Mutex.RUnlock()

	category, found := c.Cache[id]
	return &category, found
}

// GetMenuCategoryByName fetches MenuCategory by MenuCategoryName from MenuCategoryCache
func (c *MenuCategoryCache) GetMenuCategoryByName(category entity.MenuCategoryName) (entity.MenuCategory, bool) {
	c.Mutex.RLock()
	defer c.Mutex.RUnlock()

	m, found := c.IDCache[category]
	return m, found
}
