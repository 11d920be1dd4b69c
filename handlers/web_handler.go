package handlers

import (
	"net/http"

	"camera-dashboard/be/config"
	"camera-dashboard/be/middleware"
	"camera-dashboard/be/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LanguageCookie holds the caller's chosen locale.
const LanguageCookie = "language"

// WebHandler serves the console-facing views. Rendering happens in the web
// frontend; these endpoints return the view models as JSON.
type WebHandler struct {
	db      *gorm.DB
	company config.CompanyInfo
}

func NewWebHandler(db *gorm.DB, company config.CompanyInfo) *WebHandler {
	return &WebHandler{
		db:      db,
		company: company,
	}
}

// Index is the landing page payload.
func (h *WebHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"company": h.company})
}

// CameraView returns the single camera the session is scoped to. Guarded by
// middleware.RequireCamera.
func (h *WebHandler) CameraView(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var camera models.Camera
	if err := h.db.Where("camera_number = ?", identity.CameraNumber).First(&camera).Error; err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"camera":  camera,
		"company": h.company,
	})
}

// AdminDashboard returns all cameras ordered by number. Guarded by
// middleware.RequireAdmin.
func (h *WebHandler) AdminDashboard(c *gin.Context) {
	var cameras []models.Camera
	if err := h.db.Order("camera_number").Find(&cameras).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cameras"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cameras": cameras,
		"company": h.company,
	})
}

// SetLanguage stores the locale in a cookie when it is on the allow-list,
// then returns to where the caller came from.
func (h *WebHandler) SetLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if config.IsSupportedLocale(lang) {
		c.SetCookie(LanguageCookie, lang, 0, "/", "", false, false)
	}

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}
