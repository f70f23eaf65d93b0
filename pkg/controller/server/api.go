package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

// authorize resolves the bearer token through the session verifier and puts
// the session into the request context. Failed verifications consume the
// auth-class rate limit so a credential-guessing client gets throttled
// before it can exhaust the source adapter.
func authorize(verifier interfaces.SessionVerifier, limiter *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reject := func() {
				now := logging.CtxTime(r.Context())
				if allowed, _, resetAt := limiter.allow(classAuth, clientKey(r), now); !allowed {
					retryAfter := int(resetAt.Sub(now).Seconds())
					if retryAfter < 1 {
						retryAfter = 1
					}
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
					respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
					return
				}
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			token, ok := bearerToken(r)
			if !ok || verifier == nil {
				reject()
				return
			}

			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logging.From(r.Context()).Warn("session verification failed",
					slog.Any("error", err),
				)
				reject()
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		})
	}
}

func bearerToken(r *http.Request) (types.GitHubToken, bool) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return types.GitHubToken(token), true
}

func mustSession(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	session, ok := sessionFrom(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return nil, false
	}
	return session, true
}

func handleGetProfile(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		profile, err := uc.GitHubProfile(r.Context(), session.Token)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

type syncResponse struct {
	Synced int `json:"synced"`
}

func handleSyncActivities(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		n, err := uc.SyncUserActivities(r.Context(), &model.SyncInput{
			UserID: session.UserID,
			Login:  session.Login,
			Token:  session.Token,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, syncResponse{Synced: n})
	}
}

type activitiesResponse struct {
	Activities []*model.Activity `json:"activities"`
}

func handleListActivities(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
				return
			}
			limit = n
		}

		activities, err := uc.ListActivities(r.Context(), session.UserID, limit)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, activitiesResponse{Activities: activities})
	}
}

type summariesResponse struct {
	Summaries []*model.Summary `json:"summaries"`
}

func handleListSummaries(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		summaries, err := uc.ListSummaries(r.Context(), session.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summariesResponse{Summaries: summaries})
	}
}

type generateSummaryRequest struct {
	Period types.SummaryPeriod `json:"period"`
}

func handleGenerateSummary(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		var req generateSummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		summary, err := uc.GenerateSummary(r.Context(), &model.GenerateSummaryInput{
			UserID: session.UserID,
			Period: req.Period,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, summary)
	}
}

func handlePublishSummary(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		summaryID := types.SummaryID(chi.URLParam(r, "summaryID"))
		summary, err := uc.PublishSummary(r.Context(), session.UserID, summaryID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

func handleGetPreferences(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		settings, err := uc.GetPreferences(r.Context(), session.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, settings)
	}
}

func handleUpdatePreferences(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		var settings model.UserSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		settings.UserID = session.UserID

		updated, err := uc.UpdatePreferences(r.Context(), &settings)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

type repositoriesResponse struct {
	Repositories []*model.GitHubRepository `json:"repositories"`
}

func handleListRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		repos, err := uc.ListRepositories(r.Context(), session)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, repositoriesResponse{Repositories: repos})
	}
}

type trackingRequest struct {
	Repository string `json:"repository"`
	Tracked    bool   `json:"tracked"`
}

type trackingResponse struct {
	TrackedRepositories []string `json:"tracked_repositories"`
}

func handleSetRepositoryTracking(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mustSession(w, r)
		if !ok {
			return
		}

		var req trackingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		tracked, err := uc.SetRepositoryTracking(r.Context(), session.UserID, req.Repository, req.Tracked)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, trackingResponse{TrackedRepositories: tracked})
	}
}
