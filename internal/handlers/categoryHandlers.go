package handlers

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"blogdash/internal/models"
	"blogdash/internal/services"
	"blogdash/internal/utils"
)

type CategoryHandler struct {
	service services.CategoryService
	policy  StatusPolicy
}

func NewCategoryHandler(service services.CategoryService, policy StatusPolicy) *CategoryHandler {
	return &CategoryHandler{service: service, policy: policy}
}

// notFound is the status for a missing user or category. Category endpoints
// historically answered 400 here.
func (h *CategoryHandler) notFound() int {
	return h.policy.pick(http.StatusBadRequest, http.StatusNotFound)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}

	categories, err := h.service.GetCategories(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err, h.notFound())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.service.AddCategory(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, r, err, h.notFound())
		return
	}

	hlog.FromRequest(r).Info().Str("category_id", category.ID.Hex()).Msg("Category added")
	utils.RespondWithJSON(w, http.StatusOK, models.CategoryResponse{Message: "category created", Category: category})
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "category", "category", http.StatusBadRequest)
	if !ok {
		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), userID, categoryID)
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "category", "category", http.StatusBadRequest)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), userID, categoryID, req)
	if err != nil {
		respondServiceError(w, r, err, h.notFound())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.CategoryResponse{Message: "Category is updated", Category: category})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "category", "category", http.StatusBadRequest)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		respondServiceError(w, r, err, h.notFound())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: "Category is deleted"})
}
