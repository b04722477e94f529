package http

import (
	"net/netip"
	"time"

	"github.com/MKhiriev/go-helper-market/internal/config"
	"github.com/MKhiriev/go-helper-market/internal/guard"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/service"
	"github.com/MKhiriev/go-helper-market/internal/validators"
)

const visitorTTL = 3 * time.Minute

type Handler struct {
	services  *service.Services
	validator validators.Validator

	rules        guard.Rules
	cookieName   string
	cookieSecure bool
	publicOrigin string

	trustedProxies []netip.Prefix
	limiter        *visitorStore
	metrics        *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	trustedProxies, err := config.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring trusted proxies, forwarding headers will not be used")
		trustedProxies = nil
	}

	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewMarketplaceValidator(),
		rules: guard.Rules{
			Protected:     cfg.Guard.ProtectedPrefixes,
			AuthOnly:      cfg.Guard.AuthOnlyPrefixes,
			LoginPath:     guard.DefaultLoginPath,
			DashboardPath: guard.DefaultDashboardPath,
		},
		cookieName:     guard.CookieName(cfg.Backend.ProjectID),
		cookieSecure:   cfg.App.CookieSecure,
		publicOrigin:   cfg.App.PublicOrigin,
		trustedProxies: trustedProxies,
		limiter:        newVisitorStore(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, visitorTTL),
		metrics:        newMetrics(),
		logger:         logger,
	}
}
