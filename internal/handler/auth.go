package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/auth"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/session"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler wires the reconciliation engine and the session manager to the
// signup/login/check/logout endpoints.
type AuthHandler struct {
	Auth     *auth.Service
	Sessions *session.Manager

	CookieName  string
	CrossOrigin bool // frontend on a different origin: SameSite=None + Secure
	FrontendURL string
}

func NewAuthHandler(svc *auth.Service, sessions *session.Manager, cookieName string, crossOrigin bool, frontendURL string) *AuthHandler {
	return &AuthHandler{
		Auth:        svc,
		Sessions:    sessions,
		CookieName:  cookieName,
		CrossOrigin: crossOrigin,
		FrontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// SetSessionCookie delivers the token as an httpOnly cookie, the only place
// it ever appears client-side.
func (h *AuthHandler) SetSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.Sessions.TTL.Seconds())
	if h.CrossOrigin {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(h.CookieName, token, maxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	if h.CrossOrigin {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(h.CookieName, "", -1, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
}

// ---------- signup ----------

type signupReq struct {
	FullName string `json:"fullName" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !emailRe.MatchString(req.Email) {
		util.Fail(c, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(req.Password) < 8 {
		util.Fail(c, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	_, err := h.Auth.CreateLocal(c.Request.Context(), req.FullName, req.Email, req.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		util.Fail(c, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Signup error")
		return
	}

	util.Created(c)
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.Auth.ReconcileLocal(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		util.Fail(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	token, err := h.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Login failed")
		return
	}
	h.SetSessionCookie(c, token)

	util.OK(c, util.Response{
		"user": gin.H{
			"id":   user.ID,
			"name": user.DisplayName,
		},
	})
}

// ---------- session check ----------

// Check reports whether the request carries a live session. Runs behind the
// auth middleware, so reaching it means yes.
func (h *AuthHandler) Check(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "")
		return
	}
	util.OK(c, util.Response{
		"user": gin.H{
			"id":     user.ID,
			"name":   user.DisplayName,
			"email":  user.Email,
			"avatar": user.AvatarURL,
		},
	})
}

// ---------- logout ----------

// Logout revokes the session and clears the cookie. Always redirects to the
// frontend login page, even without a valid session; logging out twice is
// fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.CookieName); err == nil && token != "" {
		_ = h.Sessions.Revoke(c.Request.Context(), token)
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, h.FrontendURL+"/login")
}

// CurrentUser pulls the authenticated user placed by the auth middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
