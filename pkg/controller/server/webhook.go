package server

import (
	"errors"
	"net/http"
	"strings"

	"log/slog"

	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/errutil"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

type webhookResponse struct {
	Success bool `json:"success"`
}

// handleGitHubWebhook verifies the delivery signature, parses the payload
// and hands the event to the usecase synchronously. Signature verification
// is constant-time via github.ValidatePayload. Deliveries for unsupported
// event categories still return 200 so GitHub does not retry them.
func handleGitHubWebhook(uc interfaces.UseCase, secret types.WebhookSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := github.ValidatePayload(r, []byte(secret))
		if err != nil {
			logging.From(r.Context()).Warn("webhook signature verification failed",
				slog.Any("error", err),
			)
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid signature"})
			return
		}

		event, err := github.ParseWebHook(github.WebHookType(r), payload)
		if err != nil {
			// go-github exports no probe for recognized event names, so the
			// unknown-type error has to be told apart by its message.
			if strings.Contains(err.Error(), "unknown X-Github-Event") {
				logging.From(r.Context()).Info("ignoring unrecognized webhook event",
					slog.String("event", github.WebHookType(r)),
				)
				respondJSON(w, http.StatusOK, webhookResponse{Success: true})
				return
			}
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unparseable payload"})
			return
		}

		if err := uc.HandleGitHubEvent(r.Context(), event); err != nil {
			if errors.Is(err, types.ErrStoreUnavailable) {
				respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
				return
			}
			errutil.HandleError(r.Context(), "fail to handle GitHub webhook event", err)
			respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		respondJSON(w, http.StatusOK, webhookResponse{Success: true})
	}
}
