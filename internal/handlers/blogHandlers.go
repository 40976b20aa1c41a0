package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/hlog"

	"blogdash/internal/models"
	"blogdash/internal/services"
	"blogdash/internal/utils"
)

type BlogHandler struct {
	service services.BlogService
	policy  StatusPolicy
}

func NewBlogHandler(service services.BlogService, policy StatusPolicy) *BlogHandler {
	return &BlogHandler{service: service, policy: policy}
}

func (h *BlogHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "categoryId", "category", http.StatusBadRequest)
	if !ok {
		return
	}

	query, err := parseBlogListQuery(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	query.UserID = userID
	query.CategoryID = categoryID

	blogs, err := h.service.ListBlogs(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, err, h.policy.pick(http.StatusBadRequest, http.StatusNotFound))
		return
	}

	hlog.FromRequest(r).Debug().Int("count", len(blogs)).Str("user_id", userID.Hex()).Msg("Blogs retrieved")
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) AddBlog(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "categoryId", "category", http.StatusBadRequest)
	if !ok {
		return
	}

	var req models.BlogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	blog, err := h.service.CreateBlog(r.Context(), userID, categoryID, req)
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.BlogResponse{Message: "Blog is created", Blog: blog})
}

func (h *BlogHandler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	categoryID, ok := queryID(w, r, "categoryId", "category", http.StatusBadRequest)
	if !ok {
		return
	}
	blogID, ok := pathID(w, r, "blog", "blog", http.StatusBadRequest)
	if !ok {
		return
	}

	blog, err := h.service.GetBlog(r.Context(), userID, categoryID, blogID)
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}
	blogID, ok := pathID(w, r, "blog", "blog", http.StatusBadRequest)
	if !ok {
		return
	}

	var req models.BlogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	blog, err := h.service.UpdateBlog(r.Context(), userID, blogID, req)
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.BlogResponse{Message: "Blog is updated", Blog: blog})
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	idStatus := h.policy.pick(http.StatusNotFound, http.StatusBadRequest)

	userID, ok := queryID(w, r, "userId", "user", idStatus)
	if !ok {
		return
	}
	blogID, ok := pathID(w, r, "blog", "blog", idStatus)
	if !ok {
		return
	}

	if err := h.service.DeleteBlog(r.Context(), userID, blogID); err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: "Blog is deleted"})
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parseBlogListQuery reads the optional filters of GET /blogs. Page and limit
// stay zero when absent so the service applies its defaults.
func parseBlogListQuery(r *http.Request) (models.BlogListQuery, error) {
	q := r.URL.Query()
	query := models.BlogListQuery{Keywords: q.Get("keywords")}

	if s := q.Get("startDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return query, errors.New("Invalid start date")
		}
		query.StartDate = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return query, errors.New("Invalid end date")
		}
		query.EndDate = &t
	}

	if s := q.Get("page"); s != "" {
		page, err := strconv.ParseInt(s, 10, 64)
		if err != nil || page < 1 {
			return query, errors.New("Invalid page")
		}
		query.Page = page
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.ParseInt(s, 10, 64)
		if err != nil || limit < 1 {
			return query, errors.New("Invalid limit")
		}
		query.Limit = limit
	}

	return query, nil
}
