package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/addsmd/healthy-api/internal/config"
	"github.com/addsmd/healthy-api/internal/oauth"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	cfg         *config.Config
	providers   map[string]oauth.Provider
	userService UserServiceInterface
	jwtService  JWTServiceInterface
	states      sync.Map
}

type stateData struct {
	expiresAt time.Time
}

func NewAuthHandler(
	cfg *config.Config,
	userService UserServiceInterface,
	jwtService JWTServiceInterface,
) *AuthHandler {
	h := &AuthHandler{
		cfg:         cfg,
		providers:   make(map[string]oauth.Provider),
		userService: userService,
		jwtService:  jwtService,
	}

	if cfg.Google.ClientID != "" {
		h.providers["google"] = oauth.NewGoogleProvider(cfg.Google)
	}
	if cfg.GitHub.ClientID != "" {
		h.providers["github"] = oauth.NewGitHubProvider(cfg.GitHub)
	}

	go h.cleanupStates()

	return h
}

func (h *AuthHandler) cleanupStates() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		h.states.Range(func(key, value interface{}) bool {
			if sd, ok := value.(stateData); ok && now.After(sd.expiresAt) {
				h.states.Delete(key)
			}
			return true
		})
	}
}

// Login redirects the browser to the provider's consent page.
func (h *AuthHandler) Login(c *drift.Context) {
	provider := c.Param("provider")

	p, ok := h.providers[provider]
	if !ok {
		c.BadRequest("unsupported provider: " + provider)
		return
	}

	state, err := oauth.GenerateState()
	if err != nil {
		c.InternalServerError("failed to generate state")
		return
	}

	h.states.Store(state, stateData{expiresAt: time.Now().Add(10 * time.Minute)})

	c.Redirect(http.StatusFound, p.GetConsentURL(state))
}

// Callback finishes the OAuth exchange, resolves the local user and hands the
// session token back to the frontend as a query parameter.
func (h *AuthHandler) Callback(c *drift.Context) {
	provider := c.Param("provider")

	p, ok := h.providers[provider]
	if !ok {
		h.redirectWithError(c, "unsupported provider")
		return
	}

	state := c.QueryParam("state")
	if state == "" {
		h.redirectWithError(c, "missing state parameter")
		return
	}

	sd, ok := h.states.LoadAndDelete(state)
	if !ok {
		h.redirectWithError(c, "invalid or expired state")
		return
	}

	sdTyped, ok := sd.(stateData)
	if !ok || time.Now().After(sdTyped.expiresAt) {
		h.redirectWithError(c, "state expired")
		return
	}

	code := c.QueryParam("code")
	if code == "" {
		h.redirectWithError(c, "missing authorization code")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userInfo, err := p.ExchangeCode(ctx, code)
	if err != nil {
		h.redirectWithError(c, "failed to exchange code: "+err.Error())
		return
	}

	user, err := h.userService.FindOrCreateByEmail(ctx, userInfo.Email, userInfo.Name, userInfo.Picture)
	if err != nil {
		h.redirectWithError(c, "failed to resolve user")
		return
	}

	token, err := h.jwtService.IssueToken(user.ID, userInfo.Email, userInfo.Name, userInfo.Picture)
	if err != nil {
		h.redirectWithError(c, "failed to issue token")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s?token=%s",
		h.cfg.FrontendURL,
		url.QueryEscape(token),
	))
}

func (h *AuthHandler) redirectWithError(c *drift.Context, errMsg string) {
	c.Redirect(http.StatusFound, fmt.Sprintf("%s?error=%s",
		h.cfg.FrontendURL,
		url.QueryEscape(errMsg),
	))
}
