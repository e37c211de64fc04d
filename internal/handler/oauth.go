package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/auth"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/config"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthHandler runs the Google authorization-code flow. The flow has exactly
// two outcomes: a session cookie plus redirect to the app, or a redirect to
// the login page. No error detail reaches the browser.
type OAuthHandler struct {
	AuthH *AuthHandler

	OAuth       *oauth2.Config
	StateSecret string
	UserInfoURL string
}

func NewOAuthHandler(authH *AuthHandler, g config.GoogleConfig, stateSecret string) *OAuthHandler {
	return &OAuthHandler{
		AuthH: authH,
		OAuth: &oauth2.Config{
			ClientID:     g.ClientID,
			ClientSecret: g.ClientSecret,
			RedirectURL:  g.CallbackURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		StateSecret: stateSecret,
		UserInfoURL: googleUserInfoURL,
	}
}

// Redirect sends the browser to Google's consent screen with a signed state
// token the callback will verify.
func (h *OAuthHandler) Redirect(c *gin.Context) {
	state, err := util.GenerateState(h.StateSecret)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.Redirect(http.StatusFound, h.OAuth.AuthCodeURL(state))
}

// googleProfile is the slice of the userinfo response we use.
type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Callback handles the provider's redirect back: verify state, exchange the
// code, fetch the profile, reconcile, issue a session.
func (h *OAuthHandler) Callback(c *gin.Context) {
	fail := func() {
		c.Redirect(http.StatusFound, h.AuthH.FrontendURL+"/login")
	}

	state := c.Query("state")
	if err := util.VerifyState(h.StateSecret, state); err != nil {
		fail()
		return
	}

	code := c.Query("code")
	if code == "" {
		fail()
		return
	}

	ctx := c.Request.Context()
	token, err := h.OAuth.Exchange(ctx, code)
	if err != nil {
		fail()
		return
	}

	profile, err := h.fetchProfile(c, token)
	if err != nil || profile.ID == "" || profile.Email == "" {
		fail()
		return
	}

	user, err := h.AuthH.Auth.ReconcileExternal(ctx, auth.Profile{
		GoogleID:    profile.ID,
		Email:       profile.Email,
		DisplayName: profile.Name,
		AvatarURL:   profile.Picture,
	})
	if err != nil {
		fail()
		return
	}

	sessToken, err := h.AuthH.Sessions.Create(ctx, user.ID)
	if err != nil {
		fail()
		return
	}
	h.AuthH.SetSessionCookie(c, sessToken)

	c.Redirect(http.StatusFound, h.AuthH.FrontendURL)
}

func (h *OAuthHandler) fetchProfile(c *gin.Context, token *oauth2.Token) (*googleProfile, error) {
	client := h.OAuth.Client(c.Request.Context(), token)
	resp, err := client.Get(h.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &profile, nil
}
