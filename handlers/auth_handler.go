package handlers

import (
	"net/http"
	"strconv"
	"time"

	"camera-dashboard/be/config"
	"camera-dashboard/be/middleware"
	"camera-dashboard/be/models"
	"camera-dashboard/be/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db        *gorm.DB
	jwtConfig config.JWTConfig
	company   config.CompanyInfo
}

func NewAuthHandler(db *gorm.DB, jwtConfig config.JWTConfig, company config.CompanyInfo) *AuthHandler {
	return &AuthHandler{
		db:        db,
		jwtConfig: jwtConfig,
		company:   company,
	}
}

type LoginRequest struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	LoginType string `form:"login_type" binding:"required,oneof=single admin"`
}

// Login checks credentials for one of the two login kinds and issues the
// session cookie. Both branches answer every failure with one generic
// message, so callers cannot tell an unknown identity from a bad password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.LoginType == "single" {
		h.loginSingleCamera(c, req)
		return
	}
	h.loginAdmin(c, req)
}

func (h *AuthHandler) loginSingleCamera(c *gin.Context, req LoginRequest) {
	const invalid = "Invalid camera number or password"

	cameraNumber, err := strconv.Atoi(req.Username)
	if err != nil {
		h.loginFailed(c, invalid)
		return
	}

	var camera models.Camera
	if err := h.db.Where("camera_number = ?", cameraNumber).First(&camera).Error; err != nil {
		h.loginFailed(c, invalid)
		return
	}

	if !utils.CheckPassword(camera.Password, req.Password) {
		h.loginFailed(c, invalid)
		return
	}

	token, err := h.signToken(jwt.MapClaims{
		"login_type":    "single",
		"camera_number": camera.CameraNumber,
		"camera_name":   camera.CameraName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/camera")
}

func (h *AuthHandler) loginAdmin(c *gin.Context, req LoginRequest) {
	const invalid = "Invalid admin credentials"

	var user models.User
	if err := h.db.Where("username = ? AND role = ?", req.Username, "admin").First(&user).Error; err != nil {
		h.loginFailed(c, invalid)
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		h.loginFailed(c, invalid)
		return
	}

	token, err := h.signToken(jwt.MapClaims{
		"login_type": "admin",
		"username":   user.Username,
		"role":       user.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// loginFailed re-renders the landing payload with the generic error string.
func (h *AuthHandler) loginFailed(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"company": h.company,
		"error":   message,
	})
}

func (h *AuthHandler) signToken(claims jwt.MapClaims) (string, error) {
	expiry, err := time.ParseDuration(h.jwtConfig.Expiry)
	if err != nil {
		expiry = 24 * time.Hour
	}
	claims["exp"] = time.Now().Add(expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtConfig.Secret))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookie, token, 0, "/", "", false, true)
}

// Logout clears the session cookie unconditionally and goes back to the
// landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
