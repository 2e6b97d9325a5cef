package tests

import (
	"strings"
	"testing"

	"menuboard/internal/domain"
	"menuboard/internal/mocks"
	"menuboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Get(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     string
		mockProfile *domain.RestaurantProfile
		mockError   error
		wantErr     error
	}{
		{
			name:        "profile found",
			ownerID:     "owner-1",
			mockProfile: &domain.RestaurantProfile{OwnerID: "owner-1", Name: "Trattoria"},
		},
		{
			name:      "uninitialized profile is not found, not a store error",
			ownerID:   "owner-2",
			mockError: domain.ErrProfileNotFound,
			wantErr:   domain.ErrProfileNotFound,
		},
		{
			name:      "store failure",
			ownerID:   "owner-3",
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewProfileRepository(t)
			svc := service.NewProfileService(mockRepo)

			mockRepo.On("GetProfile", testCase.ownerID).Return(testCase.mockProfile, testCase.mockError).Once()

			profile, err := svc.Get(testCase.ownerID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.mockProfile, profile)
			}
		})
	}
}

func TestProfileService_Upsert(t *testing.T) {
	mockRepo := mocks.NewProfileRepository(t)
	svc := service.NewProfileService(mockRepo)

	patch := domain.ProfilePatch{Name: strPtr("Trattoria"), Phone: strPtr("555-0101")}
	mockRepo.On("UpsertProfile", "owner-1", patch).Return(nil).Once()

	assert.NoError(t, svc.Upsert("owner-1", patch))
}

func TestMenuService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   service.MenuItemInput
		wantErr bool
	}{
		{
			name:  "valid item",
			input: service.MenuItemInput{Name: "Margherita", Description: "Tomato and mozzarella", Price: 9.5, Category: "Mains"},
		},
		{
			name:    "missing name",
			input:   service.MenuItemInput{Description: "Tomato and mozzarella", Price: 9.5, Category: "Mains"},
			wantErr: true,
		},
		{
			name:    "missing description",
			input:   service.MenuItemInput{Name: "Margherita", Price: 9.5, Category: "Mains"},
			wantErr: true,
		},
		{
			name:    "missing price",
			input:   service.MenuItemInput{Name: "Margherita", Description: "Tomato and mozzarella", Category: "Mains"},
			wantErr: true,
		},
		{
			name:    "missing category",
			input:   service.MenuItemInput{Name: "Margherita", Description: "Tomato and mozzarella", Price: 9.5},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := mocks.NewMenuItemRepository(t)
			svc := service.NewMenuService(mockRepo)

			if !testCase.wantErr {
				mockRepo.On("CreateItem", mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
			}

			item, err := svc.Create("rest-1", testCase.input)

			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrMissingFields)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "rest-1", item.RestaurantID)
				assert.Equal(t, testCase.input.Name, item.Name)
			}
		})
	}
}

func TestMenuService_UpdateMissingIDFails(t *testing.T) {
	mockRepo := mocks.NewMenuItemRepository(t)
	svc := service.NewMenuService(mockRepo)

	patch := domain.MenuItemPatch{Name: strPtr("Renamed")}
	mockRepo.On("UpdateItem", "missing-id", patch).Return(int64(0), nil).Once()

	err := svc.Update("missing-id", patch)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestMenuService_Update(t *testing.T) {
	mockRepo := mocks.NewMenuItemRepository(t)
	svc := service.NewMenuService(mockRepo)

	patch := domain.MenuItemPatch{Name: strPtr("Renamed")}
	mockRepo.On("UpdateItem", "item-1", patch).Return(int64(1), nil).Once()

	assert.NoError(t, svc.Update("item-1", patch))
}

func TestMenuService_DeleteIsUnconditional(t *testing.T) {
	mockRepo := mocks.NewMenuItemRepository(t)
	svc := service.NewMenuService(mockRepo)

	mockRepo.On("DeleteItem", "item-1").Return(nil).Once()

	assert.NoError(t, svc.Delete("item-1"))
}

func TestDeriveCategories(t *testing.T) {
	items := []domain.MenuItem{
		{Name: "Bruschetta", Category: "Starters"},
		{Name: "Margherita", Category: "Mains"},
		{Name: "Caprese", Category: "Starters"},
	}

	categories := service.DeriveCategories(items)

	assert.Equal(t, []string{"all", "Starters", "Mains"}, categories)
}

func TestDeriveCategoriesEmpty(t *testing.T) {
	assert.Equal(t, []string{"all"}, service.DeriveCategories(nil))
}

func TestFilterByCategory(t *testing.T) {
	items := []domain.MenuItem{
		{Name: "Bruschetta", Category: "Starters"},
		{Name: "Margherita", Category: "Mains"},
		{Name: "Caprese", Category: "Starters"},
	}

	mains := service.FilterByCategory(items, "Mains")
	assert.Len(t, mains, 1)
	assert.Equal(t, "Margherita", mains[0].Name)

	assert.Equal(t, items, service.FilterByCategory(items, "all"))
	assert.Empty(t, service.FilterByCategory(items, "Desserts"))
}

func TestQRService_Generate(t *testing.T) {
	mockRepo := mocks.NewProfileRepository(t)
	mockEncoder := mocks.NewQRGenerator(t)
	svc := service.NewQRService(mockRepo, mockEncoder)

	mockEncoder.On("Generate", "https://menus.example.com/menu/owner-1").
		Return("data:image/png;base64,abc", nil).Once()
	mockRepo.On("UpsertProfile", "owner-1", mock.MatchedBy(func(patch domain.ProfilePatch) bool {
		return patch.QRCodeURL != nil && *patch.QRCodeURL == "data:image/png;base64,abc" &&
			patch.MenuURL != nil && *patch.MenuURL == "https://menus.example.com/menu/owner-1"
	})).Return(nil).Once()

	dataURI, menuURL, err := svc.Generate("owner-1", "https://menus.example.com")

	assert.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", dataURI)
	assert.Equal(t, "https://menus.example.com/menu/owner-1", menuURL)
}

func TestQRService_EncodeErrorSurfaces(t *testing.T) {
	mockRepo := mocks.NewProfileRepository(t)
	mockEncoder := mocks.NewQRGenerator(t)
	svc := service.NewQRService(mockRepo, mockEncoder)

	mockEncoder.On("Generate", mock.Anything).Return("", assert.AnError).Once()

	_, _, err := svc.Generate("owner-1", "https://menus.example.com")
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}

func TestQRService_GenerateIsIdempotent(t *testing.T) {
	mockRepo := mocks.NewProfileRepository(t)
	svc := service.NewQRService(mockRepo, service.DataURIGenerator{Size: 256})

	mockRepo.On("UpsertProfile", "owner-1", mock.Anything).Return(nil).Twice()

	first, firstURL, err := svc.Generate("owner-1", "https://menus.example.com")
	assert.NoError(t, err)
	second, secondURL, err := svc.Generate("owner-1", "https://menus.example.com")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstURL, secondURL)
	assert.Equal(t, "https://menus.example.com/menu/owner-1", firstURL)
	assert.True(t, strings.HasPrefix(first, "data:image/png;base64,"))
}

func TestDataURIGeneratorProducesPNG(t *testing.T) {
	gen := service.DataURIGenerator{Size: 128}

	dataURI, err := gen.Generate("https://menus.example.com/menu/owner-1")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))
	assert.Greater(t, len(dataURI), len("data:image/png;base64,"))
}
