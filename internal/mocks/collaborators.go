package mocks

import (
	"context"

	"menuboard/internal/domain"
	"menuboard/internal/identity"

	"github.com/stretchr/testify/mock"
)

type PageCache struct {
	mock.Mock
}

func NewPageCache(t testingT) *PageCache {
	m := &PageCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PageCache) GetPage(ctx context.Context, restaurantID string) (*domain.MenuPage, error) {
	args := m.Called(ctx, restaurantID)
	var page *domain.MenuPage
	if args.Get(0) != nil {
		page = args.Get(0).(*domain.MenuPage)
	}
	return page, args.Error(1)
}

func (m *PageCache) SetPage(ctx context.Context, restaurantID string, page *domain.MenuPage) error {
	args := m.Called(ctx, restaurantID, page)
	return args.Error(0)
}

type ViewPublisher struct {
	mock.Mock
}

func NewViewPublisher(t testingT) *ViewPublisher {
	m := &ViewPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ViewPublisher) PublishView(ctx context.Context, event domain.ViewEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type ViewStore struct {
	mock.Mock
}

func NewViewStore(t testingT) *ViewStore {
	m := &ViewStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ViewStore) IncrementView(ctx context.Context, restaurantID, day string) error {
	args := m.Called(ctx, restaurantID, day)
	return args.Error(0)
}

func (m *ViewStore) RestaurantViews(ctx context.Context, restaurantID, day string) (int64, error) {
	args := m.Called(ctx, restaurantID, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ViewStore) TotalViews(ctx context.Context, day string) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(url string) (string, error) {
	args := m.Called(url)
	return args.String(0), args.Error(1)
}

type Verifier struct {
	mock.Mock
}

func NewVerifier(t testingT) *Verifier {
	m := &Verifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Verifier) Verify(ctx context.Context, token string) (*identity.Session, error) {
	args := m.Called(ctx, token)
	var session *identity.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*identity.Session)
	}
	return session, args.Error(1)
}
