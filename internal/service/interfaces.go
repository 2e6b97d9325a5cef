package service

import (
	"context"

	"menuboard/internal/domain"
)

type ProfileRepository interface {
	GetProfile(ownerID string) (*domain.RestaurantProfile, error)
	UpsertProfile(ownerID string, patch domain.ProfilePatch) error
	ListProfiles() ([]domain.RestaurantProfile, error)
}

type MenuItemRepository interface {
	ListByRestaurant(restaurantID string) ([]domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(itemID string, patch domain.MenuItemPatch) (int64, error)
	DeleteItem(itemID string) error
}

type StatsRepository interface {
	CountProfiles() (int, error)
	CountMenuItems() (int, error)
}

// PageCache holds assembled public menu pages. A nil page with a nil error is
// a cache miss.
type PageCache interface {
	GetPage(ctx context.Context, restaurantID string) (*domain.MenuPage, error)
	SetPage(ctx context.Context, restaurantID string, page *domain.MenuPage) error
}

type ViewPublisher interface {
	PublishView(ctx context.Context, event domain.ViewEvent) error
}

type ViewStore interface {
	IncrementView(ctx context.Context, restaurantID, day string) error
	RestaurantViews(ctx context.Context, restaurantID, day string) (int64, error)
	TotalViews(ctx context.Context, day string) (int64, error)
}

type ProfileServiceInterface interface {
	Get(ownerID string) (*domain.RestaurantProfile, error)
	Upsert(ownerID string, patch domain.ProfilePatch) error
	ListAll() ([]domain.RestaurantProfile, error)
}

type MenuServiceInterface interface {
	List(restaurantID string) ([]domain.MenuItem, error)
	Create(restaurantID string, input MenuItemInput) (*domain.MenuItem, error)
	Update(itemID string, patch domain.MenuItemPatch) error
	Delete(itemID string) error
}

type QRServiceInterface interface {
	Generate(restaurantID, baseURL string) (string, string, error)
}

type MenuPageServiceInterface interface {
	Assemble(ctx context.Context, restaurantID string) (*domain.MenuPage, error)
}

type AnalyticsServiceInterface interface {
	Overview(ctx context.Context, days int) (*domain.Overview, error)
}
