package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Princessdada/Blogging-API/internal/domain"
	"github.com/Princessdada/Blogging-API/pkg/middleware"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	Service domain.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service domain.BlogService) *BlogHandler {
	return &BlogHandler{Service: service}
}

// List handles GET /blogs: the public, published-only listing.
func (h *BlogHandler) List(c *gin.Context) {
	filter := domain.BlogFilter{
		Title:   c.Query("title"),
		Author:  c.Query("author"),
		OrderBy: c.DefaultQuery("orderBy", "createdAt"),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 20),
	}
	if tags := c.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}
	page, err := h.Service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListMine handles GET /blogs/me: the requester's own blogs in any state.
func (h *BlogHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	page, err := h.Service.ListMine(
		userID,
		c.Query("state"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 10),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":      page.Total,
		"page":       page.CurrentPage,
		"totalPages": page.TotalPages,
		"blogs":      page.Blogs,
	})
}

// Get handles GET /blogs/:id. Published blogs only; every successful fetch
// increments the read count.
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	blog, err := h.Service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req domain.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blog, err := h.Service.Create(req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// Update handles PUT and PATCH /blogs/:id. Both apply partial semantics:
// omitted fields stay unchanged.
func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var req domain.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blog, err := h.Service.Update(id, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err := h.Service.Delete(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
