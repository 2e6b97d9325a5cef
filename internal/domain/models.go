package domain

import "time"

// RestaurantProfile is the single document an owner maintains for their
// restaurant, keyed by the identity-provider user id. Absence of a profile
// means "not configured yet", not an error.
type RestaurantProfile struct {
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	OpeningHours string    `json:"openingHours"`
	QRCodeURL    string    `json:"qrCodeUrl,omitempty"`
	MenuURL      string    `json:"menuUrl,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfilePatch is a merge-write: nil fields leave the stored value untouched.
type ProfilePatch struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Description  *string `json:"description"`
	OpeningHours *string `json:"openingHours"`
	QRCodeURL    *string `json:"qrCodeUrl"`
	MenuURL      *string `json:"menuUrl"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// MenuPage is the assembled public view of one restaurant: profile, items and
// the derived category tabs.
type MenuPage struct {
	Restaurant RestaurantProfile `json:"restaurant"`
	Items      []MenuItem        `json:"items"`
	Categories []string          `json:"categories"`
}

type ViewEvent struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	Timestamp    time.Time `json:"timestamp"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Overview struct {
	TotalRestaurants int          `json:"total_restaurants"`
	TotalMenuItems   int          `json:"total_menu_items"`
	Views            []DailyViews `json:"views"`
}
