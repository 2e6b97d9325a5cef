// Package mocks holds testify mocks for the service-layer collaborator
// interfaces, in the calling convention mockery generates.
package mocks

import (
	"menuboard/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type ProfileRepository struct {
	mock.Mock
}

func NewProfileRepository(t testingT) *ProfileRepository {
	m := &ProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProfileRepository) GetProfile(ownerID string) (*domain.RestaurantProfile, error) {
	args := m.Called(ownerID)
	var profile *domain.RestaurantProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.RestaurantProfile)
	}
	return profile, args.Error(1)
}

func (m *ProfileRepository) UpsertProfile(ownerID string, patch domain.ProfilePatch) error {
	args := m.Called(ownerID, patch)
	return args.Error(0)
}

func (m *ProfileRepository) ListProfiles() ([]domain.RestaurantProfile, error) {
	args := m.Called()
	var profiles []domain.RestaurantProfile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.RestaurantProfile)
	}
	return profiles, args.Error(1)
}

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) ListByRestaurant(restaurantID string) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuItemRepository) CreateItem(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MenuItemRepository) UpdateItem(itemID string, patch domain.MenuItemPatch) (int64, error) {
	args := m.Called(itemID, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuItemRepository) DeleteItem(itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}

type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t testingT) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsRepository) CountProfiles() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *StatsRepository) CountMenuItems() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
