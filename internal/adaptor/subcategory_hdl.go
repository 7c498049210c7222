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

type SubcategoryHandler struct {
	service usecase.SubcategoryService
	log     *zap.Logger
}

func NewSubcategoryHandler(service usecase.SubcategoryService, log *zap.Logger) *SubcategoryHandler {
	return &SubcategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "subcategory")),
	}
}

// CreateSubcategory handles POST /api/v1/subcategories
func (h *SubcategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	subcategory, err := h.service.CreateSubcategory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create subcategory")
		return
	}

	utils.ResponseCreated(w, "success", subcategory)
}

// GetSubcategoryByID handles GET /api/v1/subcategories/{id}
func (h *SubcategoryHandler) GetSubcategoryByID(w http.ResponseWriter, r *http.Request) {
	subcategoryID := chi.URLParam(r, "id")
	if subcategoryID == "" {
		utils.ResponseBadRequest(w, "Subcategory ID is required", nil)
		return
	}

	subcategory, err := h.service.GetSubcategoryByID(r.Context(), subcategoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get subcategory by ID")
		return
	}

	utils.ResponseSuccess(w, "success", subcategory)
}

// ListSubcategories handles GET /api/v1/subcategories
func (h *SubcategoryHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListSubcategoriesRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		IsActive: parseBoolPtr(query.Get("is_active")),
	}
	if categoryID := query.Get("category_id"); categoryID != "" {
		req.CategoryID = &categoryID
	}

	subcategories, err := h.service.ListSubcategories(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list subcategories")
		return
	}

	utils.ResponseSuccess(w, "success", subcategories)
}

// UpdateSubcategory handles PUT /api/v1/subcategories/{id}
func (h *SubcategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	subcategoryID := chi.URLParam(r, "id")
	if subcategoryID == "" {
		utils.ResponseBadRequest(w, "Subcategory ID is required", nil)
		return
	}

	var req request.UpdateSubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	subcategory, err := h.service.UpdateSubcategory(r.Context(), subcategoryID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update subcategory")
		return
	}

	utils.ResponseSuccess(w, "success", subcategory)
}

// DeleteSubcategory handles DELETE /api/v1/subcategories/{id}
func (h *SubcategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	subcategoryID := chi.URLParam(r, "id")
	if subcategoryID == "" {
		utils.ResponseBadRequest(w, "Subcategory ID is required", nil)
		return
	}

	if err := h.service.DeleteSubcategory(r.Context(), subcategoryID); err != nil {
		handleServiceError(h.log, w, err, "delete subcategory")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
