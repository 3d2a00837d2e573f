// Package handler HTTP API сертификации и проверки квитанций.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares/compressor"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares/signer"
	"github.com/Sculsor/Macathon2026/internal/service/signerservice"
)

// Services зависимости хендлеров
type Services struct {
	Health   HealthChecker
	Certify  CertifyService
	Verify   VerifyService
	Receipts ReceiptService
}

func SetupHandler(
	services Services,
	activeRequests *middlewares.ActiveRequests,
	log *zap.Logger,
	cfg config.ServerFlags,
) http.Handler {
	r := chi.NewRouter()

	setupMiddlewares(r, activeRequests, log, cfg)

	pingHandler := NewPingHandler(services.Health, log)
	r.Get("/ping", pingHandler.GetPing)

	r.Route("/api", func(r chi.Router) {
		setupReceiptRoutes(r, NewReceiptsHandler(services.Receipts, log))
		setupCertifyRoutes(r, NewCertifyHandler(services.Certify, log), newSigner(cfg.SecretKey), log)
		setupVerifyRoutes(r, NewVerifyHandler(services.Verify, log))
	})

	return r
}

func setupMiddlewares(
	r chi.Router,
	activeRequests *middlewares.ActiveRequests,
	log *zap.Logger,
	cfg config.ServerFlags,
) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.RequestLogger(log))
	r.Use(activeRequests.Middleware)
	r.Use(middlewares.ConcurrencyLimiter(cfg.MaxRequests, log))
	r.Use(compressor.Compress(compressor.NewHTTPGzipAdapter(), log))
}

// newSigner nil при пустом ключе, подпись тела тогда не проверяется
func newSigner(key string) signer.Signer {
	if key == "" {
		return nil
	}
	return signerservice.NewHMACSigner(key)
}

func setupReceiptRoutes(r chi.Router, h *ReceiptsHandler) {
	r.Route("/receipts", func(r chi.Router) {
		r.Post("/hash", h.Hash)
		r.Post("/analyze", h.Analyze)
		r.Post("/compare", h.Compare)
	})
}

func setupCertifyRoutes(r chi.Router, h *CertifyHandler, s signer.Signer, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(signer.HashValidationMiddleware(s, log))
		r.Use(signer.HashResponseMiddleware(s))
		r.Post("/certify", h.Certify)
	})
}

func setupVerifyRoutes(r chi.Router, h *VerifyHandler) {
	r.Route("/verify", func(r chi.Router) {
		r.Get("/{signature}", h.GetVerify)
		r.Post("/", h.PostVerify)
	})
}
