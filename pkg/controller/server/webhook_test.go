package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/devjournal/pkg/controller/server"
	"github.com/m-mizutani/devjournal/pkg/domain/mock"
	"github.com/m-mizutani/gt"
)

const testWebhookSecret = "it-is-secret"

func signPayload(t *testing.T, secret string, payload []byte) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	gt.R1(mac.Write(payload)).NoError(t)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookRequest(t *testing.T, eventType string, payload any, sign bool) *http.Request {
	t.Helper()
	body := gt.R1(json.Marshal(payload)).NoError(t)
	req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	if sign {
		req.Header.Set("X-Hub-Signature-256", signPayload(t, testWebhookSecret, body))
	}
	return req
}

func TestGitHubWebhook(t *testing.T) {
	payload := &github.PullRequestEvent{
		Action: github.String("opened"),
		Repo:   &github.Repository{FullName: github.String("m-mizutani/devjournal")},
		PullRequest: &github.PullRequest{
			Title:   github.String("add feature"),
			HTMLURL: github.String("https://github.com/m-mizutani/devjournal/pull/1"),
		},
	}

	t.Run("valid signature dispatches the event", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		var received any
		mockUC.HandleGitHubEventFunc = func(ctx context.Context, event any) error {
			received = event
			return nil
		}
		srv := server.New(mockUC, server.WithWebhookSecret(testWebhookSecret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, webhookRequest(t, "pull_request", payload, true))

		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, len(mockUC.HandleGitHubEventCalls())).Equal(1)

		ev, ok := received.(*github.PullRequestEvent)
		gt.True(t, ok)
		gt.V(t, ev.GetRepo().GetFullName()).Equal("m-mizutani/devjournal")
	})

	t.Run("bad signature is rejected before any processing", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithWebhookSecret(testWebhookSecret))

		body := gt.R1(json.Marshal(payload)).NoError(t)
		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "pull_request")
		req.Header.Set("X-Hub-Signature-256", signPayload(t, "wrong-secret", body))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusUnauthorized)
		gt.V(t, len(mockUC.HandleGitHubEventCalls())).Equal(0)
	})

	t.Run("missing signature is rejected when a secret is configured", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithWebhookSecret(testWebhookSecret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, webhookRequest(t, "pull_request", payload, false))

		gt.V(t, w.Code).Equal(http.StatusUnauthorized)
		gt.V(t, len(mockUC.HandleGitHubEventCalls())).Equal(0)
	})

	t.Run("unrecognized event category is ignored with 200", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithWebhookSecret(testWebhookSecret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, webhookRequest(t, "made_up_event", map[string]string{"zen": "keep it simple"}, true))

		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, len(mockUC.HandleGitHubEventCalls())).Equal(0)

		var resp struct {
			Success bool `json:"success"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.True(t, resp.Success)
	})

	t.Run("unparseable payload is a bad request", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC, server.WithWebhookSecret(testWebhookSecret))

		body := []byte("not json")
		req := httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "pull_request")
		req.Header.Set("X-Hub-Signature-256", signPayload(t, testWebhookSecret, body))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})
}
