package service

import (
	"time"

	"menuboard/internal/domain"
)

// MenuItemInput carries the owner-provided fields for a new item. All four
// are required; validation happens before any store call.
type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type MenuService struct {
	repo MenuItemRepository
}

func NewMenuService(repo MenuItemRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListByRestaurant(restaurantID)
}

func (s *MenuService) Create(restaurantID string, input MenuItemInput) (*domain.MenuItem, error) {
	if input.Name == "" || input.Description == "" || input.Price == 0 || input.Category == "" {
		return nil, domain.ErrMissingFields
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update merge-writes an existing item. A missing id is a NotFound error,
// never a silent partial create.
func (s *MenuService) Update(itemID string, patch domain.MenuItemPatch) error {
	rows, err := s.repo.UpdateItem(itemID, patch)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete is unconditional; removing an already-deleted item still succeeds.
func (s *MenuService) Delete(itemID string) error {
	return s.repo.DeleteItem(itemID)
}

var _ MenuServiceInterface = (*MenuService)(nil)

// DeriveCategories returns the synthetic "all" tab plus each distinct
// category in first-seen order.
func DeriveCategories(items []domain.MenuItem) []string {
	categories := []string{"all"}
	seen := map[string]bool{}
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

func FilterByCategory(items []domain.MenuItem, category string) []domain.MenuItem {
	if category == "" || category == "all" {
		return items
	}
	filtered := []domain.MenuItem{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
