package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"menuboard/internal/domain"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetProfile(ownerID string) (*domain.RestaurantProfile, error) {
	var profile domain.RestaurantProfile
	err := r.DB.QueryRow(`
		SELECT owner_id, name, address, phone, email, description, opening_hours,
		       COALESCE(qr_code_url, ''), COALESCE(menu_url, ''), updated_at
		FROM restaurant_profiles
		WHERE owner_id = $1`, ownerID).
		Scan(&profile.OwnerID, &profile.Name, &profile.Address, &profile.Phone,
			&profile.Email, &profile.Description, &profile.OpeningHours,
			&profile.QRCodeURL, &profile.MenuURL, &profile.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile merge-writes the patch: nil fields keep the stored value.
// The row is created on first write and updated_at is stamped either way.
func (r *PostgresRepository) UpsertProfile(ownerID string, patch domain.ProfilePatch) error {
	_, err := r.DB.Exec(`
		INSERT INTO restaurant_profiles
			(owner_id, name, address, phone, email, description, opening_hours, qr_code_url, menu_url, updated_at)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
			COALESCE($6, ''), COALESCE($7, ''), $8, $9, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			name          = COALESCE($2, restaurant_profiles.name),
			address       = COALESCE($3, restaurant_profiles.address),
			phone         = COALESCE($4, restaurant_profiles.phone),
			email         = COALESCE($5, restaurant_profiles.email),
			description   = COALESCE($6, restaurant_profiles.description),
			opening_hours = COALESCE($7, restaurant_profiles.opening_hours),
			qr_code_url   = COALESCE($8, restaurant_profiles.qr_code_url),
			menu_url      = COALESCE($9, restaurant_profiles.menu_url),
			updated_at    = NOW()`,
		ownerID, patch.Name, patch.Address, patch.Phone, patch.Email,
		patch.Description, patch.OpeningHours, patch.QRCodeURL, patch.MenuURL)
	return err
}

func (r *PostgresRepository) ListProfiles() ([]domain.RestaurantProfile, error) {
	rows, err := r.DB.Query(`
		SELECT owner_id, name, address, phone, email, description, opening_hours,
		       COALESCE(qr_code_url, ''), COALESCE(menu_url, ''), updated_at
		FROM restaurant_profiles
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.RestaurantProfile
	for rows.Next() {
		var profile domain.RestaurantProfile
		if err := rows.Scan(&profile.OwnerID, &profile.Name, &profile.Address, &profile.Phone,
			&profile.Email, &profile.Description, &profile.OpeningHours,
			&profile.QRCodeURL, &profile.MenuURL, &profile.UpdatedAt); err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (r *PostgresRepository) ListByRestaurant(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, description, price, category, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Category, &item.CreatedAt, &item.UpdatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) CreateItem(item *domain.MenuItem) error {
	item.ID = uuid.NewString()
	return r.DB.QueryRow(`
		INSERT INTO menu_items (id, restaurant_id, name, description, price, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.Category).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

// UpdateItem merge-writes the patch and reports how many rows matched, so
// callers can distinguish a missing id. restaurant_id is never touched.
func (r *PostgresRepository) UpdateItem(itemID string, patch domain.MenuItemPatch) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price       = COALESCE($3, price),
		    category    = COALESCE($4, category),
		    updated_at  = NOW()
		WHERE id = $5`,
		patch.Name, patch.Description, patch.Price, patch.Category, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteItem(itemID string) error {
	_, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", itemID)
	return err
}

func (r *PostgresRepository) CountProfiles() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurant_profiles").Scan(&count)
	return count, err
}

func (r *PostgresRepository) CountMenuItems() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurant_profiles (
			owner_id      TEXT PRIMARY KEY,
			name          TEXT NOT NULL DEFAULT '',
			address       TEXT NOT NULL DEFAULT '',
			phone         TEXT NOT NULL DEFAULT '',
			email         TEXT NOT NULL DEFAULT '',
			description   TEXT NOT NULL DEFAULT '',
			opening_hours TEXT NOT NULL DEFAULT '',
			qr_code_url   TEXT,
			menu_url      TEXT,
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id            TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			name          TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			price         NUMERIC(10,2) NOT NULL,
			category      TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items (restaurant_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
