package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/zerotrustlabs/compliance-backend/docs"
	"github.com/zerotrustlabs/compliance-backend/internal/env"
	"github.com/zerotrustlabs/compliance-backend/internal/ratelimiter"
	transport "github.com/zerotrustlabs/compliance-backend/internal/transport/http"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	rateLimiter ratelimiter.Limiter
	handlers    *transport.Handlers
}

type objectStorageConfig struct {
	endpoint  string
	publicURL string
	accessKey string
	secretKey string
	bucket    string
	useSSL    bool
}

type proverConfig struct {
	mode    string // "mock" or "remote"
	baseURL string
	apiKey  string
}

type config struct {
	addr                     string
	env                      string
	apiURL                   string
	frontendURL              string
	rateLimiter              ratelimiter.Config
	attestationValidityHours int
	reportTTLHours           int
	cleanupIntervalMins      int
	tokenSecret              string
	rabbitmqEnabled          bool
	rabbitmqURL              string
	prover                   proverConfig
	objectStorageEnabled     bool
	objectStorageConfig      objectStorageConfig
	localStoragePath         string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{env.GetString("CORS_ALLOWED_ORIGIN", "http://localhost:5174")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(app.RateLimiterMiddleware)

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", app.handlers.RegisterAccount)

			r.Route("/{account_id}", func(r chi.Router) {
				r.Get("/kyc", app.handlers.GetKycStatus)
				r.Post("/kyc/verify", app.handlers.VerifyKyc)
				r.Patch("/kyc/status", app.handlers.UpdateKycStatus)
				r.Patch("/kyc/level", app.handlers.UpdateKycLevel)
				r.Post("/kyc/proof", app.handlers.VerifyKycProof)

				r.Post("/transactions", app.handlers.RecordTransaction)
				r.Post("/risk/assess", app.handlers.AssessRisk)
				r.Put("/risk", app.handlers.OverrideRisk)

				r.Post("/sanctions/screen", app.handlers.ScreenSanctions)
				r.Put("/sanctions", app.handlers.OverrideSanctions)
				r.Patch("/sanctions/status", app.handlers.UpdateSanctionsStatus)
				r.Post("/sanctions/false-positive", app.handlers.MarkSanctionsFalsePositive)

				r.Post("/attestations", app.handlers.CreateAttestation)
				r.Get("/attestations/latest", app.handlers.GetLatestAttestation)
				r.Post("/attestations/refresh", app.handlers.RequestAttestationRefresh)

				r.Get("/compliance", app.handlers.CheckComplianceLevel)
			})
		})

		r.Post("/proofs", app.handlers.CreateProof)
		r.Post("/proofs/verify", app.handlers.VerifyProof)

		r.Get("/report/{token}", app.handlers.GetReport)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

// HealthCheck handles GET /v1/health
//
//	@Summary		Health check
//	@Description	Reports service health
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				w.Header().Set("Retry-After", retryAfter.String())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded, retry after: " + retryAfter.String()})
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
