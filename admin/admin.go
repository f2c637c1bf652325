package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogdesk/auth"
	"blogdesk/models"
)

type AdminModule struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewAdminModule(db *gorm.DB, tokens *auth.TokenService) *AdminModule {
	return &AdminModule{
		db:     db,
		tokens: tokens,
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/admin/login", a.login)

	adminGroup := router.Group("/admin")
	adminGroup.Use(auth.RequireAuth(a.db, a.tokens))
	{
		adminGroup.POST("/create", a.create)
		adminGroup.GET("/list", a.list)
		adminGroup.PUT("/:id", a.update)
		adminGroup.DELETE("/:id", a.delete)
	}
}

func (a *AdminModule) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var admin models.Admin
	if err := a.db.Where("username = ?", username).First(&admin).Error; err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}

	if !auth.CheckPasswordHash(password, admin.PasswordHash) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}

	token, err := a.tokens.Issue(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type createAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=8"`
}

func (a *AdminModule) create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not hash password"})
		return
	}

	// New accounts are always regular admins.
	admin := models.Admin{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		IsSuperAdmin: false,
	}

	// The unique index is the source of truth for duplicates: two
	// concurrent creates race past any pre-check, the store rejects the
	// second one.
	if err := a.db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not create admin"})
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (a *AdminModule) list(c *gin.Context) {
	var admins []models.Admin
	if err := a.db.Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not list admins"})
		return
	}

	c.JSON(http.StatusOK, admins)
}

type updateAdminRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func (a *AdminModule) update(c *gin.Context) {
	adminID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid admin id"})
		return
	}

	var admin models.Admin
	if err := a.db.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Admin not found"})
		return
	}

	actor := auth.CurrentAdmin(c)
	if !auth.CanManageAdmin(actor, adminID) {
		c.JSON(http.StatusForbidden, gin.H{"detail": auth.ErrNotPermitted.Error()})
		return
	}

	var req updateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	// Only fields present in the request body are applied.
	if req.Username != nil {
		admin.Username = *req.Username
	}
	if req.FullName != nil {
		admin.FullName = *req.FullName
	}
	if req.Password != nil {
		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not hash password"})
			return
		}
		admin.PasswordHash = passwordHash
	}

	if err := a.db.Save(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not update admin"})
		return
	}

	c.JSON(http.StatusOK, admin)
}

func (a *AdminModule) delete(c *gin.Context) {
	adminID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid admin id"})
		return
	}

	var admin models.Admin
	if err := a.db.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Admin not found"})
		return
	}

	actor := auth.CurrentAdmin(c)
	if err := auth.CheckAdminDeletion(actor, &admin); err != nil {
		status := http.StatusForbidden
		if errors.Is(err, auth.ErrSelfDeletion) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"detail": err.Error()})
		return
	}

	if err := a.db.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Could not delete admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Admin deleted successfully"})
}
