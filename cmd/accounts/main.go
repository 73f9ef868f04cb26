package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	adapthttp "accounts/internal/adapter/http"
	"accounts/internal/adapter/postgres"
	"accounts/internal/app"
	"accounts/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	registerSvc := app.NewRegisterService(db, cfg.BcryptCost)
	authSvc := app.NewAuthService(db, []byte(cfg.SessionSecret), cfg.SessionTTL)

	oidcConfig, err := buildOIDCConfig(cfg)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	h := adapthttp.New(registerSvc, authSvc, oidcConfig, cfg.SessionTTL, cfg.WebDir).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func buildOIDCConfig(cfg *config.Config) (adapthttp.OIDCConfig, error) {
	if !cfg.SSOEnabled() {
		return adapthttp.OIDCConfig{}, nil
	}

	provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}
