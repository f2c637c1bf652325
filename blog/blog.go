package blog

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"blogdesk/auth"
	"blogdesk/models"
)

type BlogModule struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

func NewBlogModule(db *gorm.DB, tokens *auth.TokenService) *BlogModule {
	return &BlogModule{
		db:     db,
		tokens: tokens,
	}
}

func (b *BlogModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/blogs", b.list)
	router.GET("/blogs/summary", b.summary)
	router.GET("/blogs/:id", b.get)

	blogGroup := router.Group("/blogs")
	blogGroup.Use(auth.RequireAuth(b.db, b.tokens))
	{
		blogGroup.POST("", b.create)
		blogGroup.PUT("/:id", b.update)
		blogGroup.DELETE("/:id", b.delete)
	}
}

type createBlogRequest struct {
	Title   string `json:"title" binding:"required,min=5,max=255"`
	Content string `json:"content" binding:"required,min=10"`
	Author  string `json:"author" binding:"required,min=2,max=100"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

func (b *BlogModule) create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if req.Status == "" {
		req.Status = models.StatusDraft
	}

	blog := models.Blog{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Status:  req.Status,
	}

	if err := b.db.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not create blog"})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

type blogSummary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *BlogModule) list(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid limit parameter"})
		return
	}

	var blogs []models.Blog
	if err := b.db.Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not list blogs"})
		return
	}

	// Out-of-range skip is an empty list, never an error.
	summaries := make([]blogSummary, 0, len(blogs))
	for _, blog := range blogs {
		summaries = append(summaries, blogSummary{
			ID:        blog.ID,
			Title:     blog.Title,
			Author:    blog.Author,
			CreatedAt: blog.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, summaries)
}

func (b *BlogModule) summary(c *gin.Context) {
	var total, drafts, published int64

	if err := b.db.Model(&models.Blog{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not compute summary"})
		return
	}
	if err := b.db.Model(&models.Blog{}).Where("status = ?", models.StatusDraft).Count(&drafts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not compute summary"})
		return
	}
	if err := b.db.Model(&models.Blog{}).Where("status = ?", models.StatusPublished).Count(&published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not compute summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"drafts":    drafts,
		"published": published,
	})
}

type blogResponse struct {
	models.Blog
	ContentHTML string `json:"content_html"`
}

func (b *BlogModule) get(c *gin.Context) {
	blogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blog id"})
		return
	}

	var blog models.Blog
	if err := b.db.First(&blog, blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found"})
		return
	}

	etag := blogETag(&blog)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Header("ETag", etag)
	c.JSON(http.StatusOK, blogResponse{
		Blog:        blog,
		ContentHTML: renderMarkdown(blog.Content),
	})
}

type updateBlogRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=5,max=255"`
	Content *string `json:"content" binding:"omitempty,min=10"`
	Author  *string `json:"author" binding:"omitempty,min=2,max=100"`
	Status  *string `json:"status" binding:"omitempty,oneof=draft published"`
}

func (b *BlogModule) update(c *gin.Context) {
	blogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blog id"})
		return
	}

	var blog models.Blog
	if err := b.db.First(&blog, blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found"})
		return
	}

	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	// Only fields present in the request body are applied.
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.Status != nil {
		blog.Status = *req.Status
	}

	if err := b.db.Save(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not update blog"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (b *BlogModule) delete(c *gin.Context) {
	blogID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blog id"})
		return
	}

	result := b.db.Delete(&models.Blog{}, blogID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not delete blog"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Blog deleted successfully"})
}

// blogETag derives a validator from the fields a reader can observe, so a
// republished or edited blog always gets a fresh tag.
func blogETag(blog *models.Blog) string {
	hash := xxhash.New()
	fmt.Fprintf(hash, "%d|%s|%s|%s", blog.ID, blog.UpdatedAt.UTC().Format(time.RFC3339Nano), blog.Status, blog.Content)
	return fmt.Sprintf(`"%016x"`, hash.Sum64())
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// fall back to the raw content rather than failing the request
		return content
	}
	return buf.String()
}
