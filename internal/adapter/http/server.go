// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"accounts/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the wiring for the external OAuth/OIDC login
// collaborator. When Enabled is false the SSO endpoints respond 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	register   *app.RegisterService
	auth       *app.AuthService
	oidcConfig OIDCConfig
	sessionTTL time.Duration
	webDir     string
}

// New creates a Server wired to the given application services.
func New(reg *app.RegisterService, auth *app.AuthService, oidcConfig OIDCConfig, sessionTTL time.Duration, webDir string) *Server {
	return &Server{
		register:   reg,
		auth:       auth,
		oidcConfig: oidcConfig,
		sessionTTL: sessionTTL,
		webDir:     webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	api.HandleFunc("/register", s.handleRegister)
	api.HandleFunc("/login", s.handleLogin)
	api.HandleFunc("/logout", s.handleLogout)
	api.HandleFunc("/auth/sso", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.Handle("/session", s.authMiddleware(http.HandlerFunc(s.handleSession)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", pagesFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
