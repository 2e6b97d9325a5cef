package service

import (
	"encoding/base64"
	"fmt"

	"menuboard/internal/domain"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(url string) (string, error)
}

// DataURIGenerator encodes a URL into a self-contained PNG data URI, so the
// stored artifact renders without any network dependency.
type DataURIGenerator struct {
	Size int
}

func (g DataURIGenerator) Generate(url string) (string, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

type QRService struct {
	profiles ProfileRepository
	encoder  QRGenerator
}

func NewQRService(profiles ProfileRepository, encoder QRGenerator) *QRService {
	return &QRService{profiles: profiles, encoder: encoder}
}

// Generate builds the canonical public menu URL, encodes it, and persists
// both onto the profile. Idempotent: regeneration overwrites the stored
// artifact.
func (s *QRService) Generate(restaurantID, baseURL string) (string, string, error) {
	menuURL := fmt.Sprintf("%s/menu/%s", baseURL, restaurantID)
	dataURI, err := s.encoder.Generate(menuURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode qr code: %w", err)
	}

	patch := domain.ProfilePatch{
		QRCodeURL: &dataURI,
		MenuURL:   &menuURL,
	}
	if err := s.profiles.UpsertProfile(restaurantID, patch); err != nil {
		return "", "", fmt.Errorf("failed to store qr code: %w", err)
	}
	return dataURI, menuURL, nil
}

var _ QRServiceInterface = (*QRService)(nil)
