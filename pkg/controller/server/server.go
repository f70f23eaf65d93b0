package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
	"github.com/m-mizutani/devjournal/pkg/utils/errutil"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	webhookSecret types.WebhookSecret
	verifier      interfaces.SessionVerifier
	limits        RateLimits
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

func WithSessionVerifier(verifier interfaces.SessionVerifier) Option {
	return func(cfg *config) {
		cfg.verifier = verifier
	}
}

// WithRateLimits overrides the default per-class limits, mainly for tests.
func WithRateLimits(limits RateLimits) Option {
	return func(cfg *config) {
		cfg.limits = limits
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		limits: defaultRateLimits(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	limiter := newRateLimiter(cfg.limits)

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Use(limiter.middleware(classWebhook))
		r.Post("/github", handleGitHubWebhook(uc, cfg.webhookSecret))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.middleware(classAPI))
		r.Use(authorize(cfg.verifier, limiter))

		r.Route("/github", func(r chi.Router) {
			r.Get("/sync", handleGetProfile(uc))
			r.With(limiter.middleware(classSync)).Post("/sync", handleSyncActivities(uc))
		})

		r.Get("/activities", handleListActivities(uc))

		r.Route("/journal", func(r chi.Router) {
			r.Get("/", handleListSummaries(uc))
			r.Post("/generate", handleGenerateSummary(uc))
			r.Post("/{summaryID}/publish", handlePublishSummary(uc))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/preferences", handleGetPreferences(uc))
			r.Put("/preferences", handleUpdatePreferences(uc))
			r.Get("/repositories", handleListRepositories(uc))
			r.Post("/repositories", handleSetRepositoryTracking(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	safeWrite(w, code, data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the error taxonomy onto HTTP statuses. Unmapped errors
// become 500 and are reported through errutil; mapped ones are client or
// upstream conditions and only get logged by the access log.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, types.ErrValidationFailed):
		code = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, types.ErrSourceUnavailable):
		code = http.StatusBadGateway
	}

	if code == http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "unhandled API error", err)
	}

	respondJSON(w, code, errorResponse{Error: err.Error()})
}
