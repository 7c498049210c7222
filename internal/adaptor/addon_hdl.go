package adaptor

import (
	"encoding/json"
	"net/http"

	"menu-booking/internal/dto/request"
	"menu-booking/internal/usecase"
	"menu-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AddonHandler struct {
	service usecase.AddonService
	log     *zap.Logger
}

func NewAddonHandler(service usecase.AddonService, log *zap.Logger) *AddonHandler {
	return &AddonHandler{
		service: service,
		log:     log.With(zap.String("handler", "addon")),
	}
}

// CreateAddon handles POST /api/v1/addons
func (h *AddonHandler) CreateAddon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	addon, err := h.service.CreateAddon(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create addon")
		return
	}

	utils.ResponseCreated(w, "success", addon)
}

// GetAddonByID handles GET /api/v1/addons/{id}
func (h *AddonHandler) GetAddonByID(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	addon, err := h.service.GetAddonByID(r.Context(), addonID)
	if err != nil {
		handleServiceError(h.log, w, err, "get addon by ID")
		return
	}

	utils.ResponseSuccess(w, "success", addon)
}

// GetAddonsByItem handles GET /api/v1/items/{id}/addons
func (h *AddonHandler) GetAddonsByItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	addons, err := h.service.GetAddonsByItem(r.Context(), itemID)
	if err != nil {
		handleServiceError(h.log, w, err, "get addons by item")
		return
	}

	utils.ResponseSuccess(w, "success", addons)
}

// UpdateAddon handles PUT /api/v1/addons/{id}
func (h *AddonHandler) UpdateAddon(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	var req request.UpdateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	addon, err := h.service.UpdateAddon(r.Context(), addonID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update addon")
		return
	}

	utils.ResponseSuccess(w, "success", addon)
}

// DeleteAddon handles DELETE /api/v1/addons/{id}
func (h *AddonHandler) DeleteAddon(w http.ResponseWriter, r *http.Request) {
	addonID := chi.URLParam(r, "id")
	if addonID == "" {
		utils.ResponseBadRequest(w, "Addon ID is required", nil)
		return
	}

	if err := h.service.DeleteAddon(r.Context(), addonID); err != nil {
		handleServiceError(h.log, w, err, "delete addon")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CalculateAddonTotal handles POST /api/v1/addons/calculate-total
func (h *AddonHandler) CalculateAddonTotal(w http.ResponseWriter, r *http.Request) {
	var req request.CalculateAddonTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	total, err := h.service.CalculateAddonTotal(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "calculate addon total")
		return
	}

	utils.ResponseSuccess(w, "success", total)
}
