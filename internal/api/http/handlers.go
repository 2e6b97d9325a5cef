package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"menuboard/internal/domain"
	"menuboard/internal/identity"
	"menuboard/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Profiles  service.ProfileServiceInterface
	Menu      service.MenuServiceInterface
	Pages     service.MenuPageServiceInterface
	QR        service.QRServiceInterface
	Analytics service.AnalyticsServiceInterface
	BaseURL   string
}

func NewHandler(profiles service.ProfileServiceInterface, menu service.MenuServiceInterface,
	pages service.MenuPageServiceInterface, qr service.QRServiceInterface,
	analytics service.AnalyticsServiceInterface, baseURL string) *Handler {
	return &Handler{
		Profiles:  profiles,
		Menu:      menu,
		Pages:     pages,
		QR:        qr,
		Analytics: analytics,
		BaseURL:   baseURL,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurant/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurant/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/restaurant/{id}/qrcode", h.generateQRCode).Methods("POST")

	r.HandleFunc("/menu/{restaurantId}", h.listMenuItems).Methods("GET")
	r.HandleFunc("/menu/{restaurantId}", h.createMenuItem).Methods("POST")
	r.HandleFunc("/menu/{restaurantId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/menu/{restaurantId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/menu/{restaurantId}/page", h.getMenuPage).Methods("GET")

	r.HandleFunc("/admin/overview", h.adminOverview).Methods("GET")

	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// requireSession enforces an authenticated caller on mutation paths; read
// paths stay anonymous.
func requireSession(w http.ResponseWriter, r *http.Request) (*identity.Session, bool) {
	session, ok := identity.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return session, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menuboard",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Profiles.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profiles == nil {
		profiles = []domain.RestaurantProfile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	profile, err := h.Profiles.Get(id)
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if session.UserID != id {
		writeError(w, http.StatusForbidden, "Profile belongs to another owner")
		return
	}

	var patch domain.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Profiles.Upsert(id, patch); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Restaurant updated successfully"})
}

func (h *Handler) generateQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if session.UserID != id {
		writeError(w, http.StatusForbidden, "Profile belongs to another owner")
		return
	}

	baseURL := h.BaseURL
	var body struct {
		BaseURL string `json:"baseUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.BaseURL != "" {
		baseURL = body.BaseURL
	}

	dataURI, menuURL, err := h.QR.Generate(id, baseURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"qrCodeUrl": dataURI,
		"menuUrl":   menuURL,
	})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	items, err := h.Menu.List(restaurantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var input service.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Menu.Create(restaurantID, input)
	if errors.Is(err, domain.ErrMissingFields) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var body struct {
		ItemID string `json:"itemId"`
		domain.MenuItemPatch
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	if err := h.Menu.Update(body.ItemID, body.MenuItemPatch); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "Menu item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item updated successfully"})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	var body struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required")
		return
	}

	if err := h.Menu.Delete(body.ItemID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}

func (h *Handler) getMenuPage(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	page, err := h.Pages.Assemble(r.Context(), restaurantID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) adminOverview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	overview, err := h.Analytics.Overview(r.Context(), 7)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
