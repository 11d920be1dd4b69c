package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookie carries the signed identity token between requests.
const AuthCookie = "auth_token"

const identityKey = "identity"

type IdentityKind string

const (
	IdentityAnonymous IdentityKind = "anonymous"
	IdentityCamera    IdentityKind = "camera"
	IdentityAdmin     IdentityKind = "admin"
)

// Identity is the authenticated caller for one request: anonymous, a
// single-camera viewer, or an admin. It is built once by Identify and
// passed to handlers through the request context, never held globally.
type Identity struct {
	Kind         IdentityKind
	CameraNumber int
	CameraName   string
	Username     string
}

// Identify parses the auth token from the session cookie or Authorization
// header and attaches the resulting Identity to the request context. A
// missing or invalid token yields an anonymous identity rather than an
// error; the gated views decide what to do with it.
func Identify(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, parseIdentity(c, secret))
		c.Next()
	}
}

func parseIdentity(c *gin.Context, secret string) Identity {
	anonymous := Identity{Kind: IdentityAnonymous}

	tokenString, err := c.Cookie(AuthCookie)
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return anonymous
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return anonymous
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return anonymous
	}

	switch claims["login_type"] {
	case "single":
		number, ok := claims["camera_number"].(float64)
		if !ok {
			return anonymous
		}
		name, _ := claims["camera_name"].(string)
		return Identity{
			Kind:         IdentityCamera,
			CameraNumber: int(number),
			CameraName:   name,
		}
	case "admin":
		username, ok := claims["username"].(string)
		if !ok {
			return anonymous
		}
		return Identity{
			Kind:     IdentityAdmin,
			Username: username,
		}
	}

	return anonymous
}

// CurrentIdentity returns the identity attached by Identify, or anonymous
// when the middleware did not run.
func CurrentIdentity(c *gin.Context) Identity {
	if value, exists := c.Get(identityKey); exists {
		if identity, ok := value.(Identity); ok {
			return identity
		}
	}
	return Identity{Kind: IdentityAnonymous}
}

// RequireCamera redirects to the landing page unless the caller is logged
// in as a single-camera viewer.
func RequireCamera() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c).Kind != IdentityCamera {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects to the landing page unless the caller is logged
// in as an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c).Kind != IdentityAdmin {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
