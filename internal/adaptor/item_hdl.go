package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"menu-booking/internal/dto/request"
	"menu-booking/internal/usecase"
	"menu-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ItemHandler struct {
	service usecase.ItemService
	log     *zap.Logger
}

func NewItemHandler(service usecase.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log.With(zap.String("handler", "item")),
	}
}

// CreateItem handles POST /api/v1/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// GetItemByID handles GET /api/v1/items/{id}
func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	item, err := h.service.GetItemByID(r.Context(), itemID)
	if err != nil {
		handleServiceError(h.log, w, err, "get item by ID")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// GetItemWithAddons handles GET /api/v1/items/{id}/with-addons
func (h *ItemHandler) GetItemWithAddons(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	item, err := h.service.GetItemWithAddons(r.Context(), itemID)
	if err != nil {
		handleServiceError(h.log, w, err, "get item with addons")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// GetItemPrice handles GET /api/v1/items/{id}/price
// Query parameters: quantity, addon_ids (comma separated), at (RFC 3339).
func (h *ItemHandler) GetItemPrice(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.ItemPriceRequest{
		At: query.Get("at"),
	}
	if quantity := query.Get("quantity"); quantity != "" {
		n, err := strconv.Atoi(quantity)
		if err != nil {
			utils.ResponseBadRequest(w, "quantity must be an integer", nil)
			return
		}
		req.Quantity = &n
	}
	if addonIDs := query.Get("addon_ids"); addonIDs != "" {
		req.AddonIDs = strings.Split(addonIDs, ",")
	}

	price, err := h.service.GetItemPrice(r.Context(), itemID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get item price")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}

// ListItems handles GET /api/v1/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListItemsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		PricingType: query.Get("pricing_type"),
		IsBookable:  parseBoolPtr(query.Get("is_bookable")),
		IsActive:    parseBoolPtr(query.Get("is_active")),
		Search:      query.Get("search"),
	}
	if subcategoryID := query.Get("subcategory_id"); subcategoryID != "" {
		req.SubcategoryID = &subcategoryID
	}

	items, err := h.service.ListItems(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list items")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// UpdateItem handles PUT /api/v1/items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	var req request.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// DeleteItem handles DELETE /api/v1/items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		handleServiceError(h.log, w, err, "delete item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
