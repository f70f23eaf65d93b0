package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/devjournal/pkg/controller/server"
	"github.com/m-mizutani/devjournal/pkg/domain/mock"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestRateLimit(t *testing.T) {
	t.Run("api class rejects over the window limit", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		mockUC.ListActivitiesFunc = func(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
			return nil, nil
		}
		srv := server.New(mockUC,
			server.WithSessionVerifier(testVerifier()),
			server.WithRateLimits(server.TestRateLimits(2, time.Minute)),
		)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			srv.Mux().ServeHTTP(w, apiRequest("GET", "/api/activities", nil))
			gt.V(t, w.Code).Equal(http.StatusOK)
		}

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, apiRequest("GET", "/api/activities", nil))
		gt.V(t, w.Code).Equal(http.StatusTooManyRequests)
		gt.V(t, w.Header().Get("Retry-After")).NotEqual("")
		gt.V(t, w.Header().Get("X-RateLimit-Remaining")).Equal("0")
	})

	t.Run("window resets after its duration", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		mockUC.ListActivitiesFunc = func(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
			return nil, nil
		}
		srv := server.New(mockUC,
			server.WithSessionVerifier(testVerifier()),
			server.WithRateLimits(server.TestRateLimits(1, time.Minute)),
		)

		base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		at := func(ts time.Time) *http.Request {
			req := apiRequest("GET", "/api/activities", nil)
			ctx := logging.CtxWithTime(req.Context(), func() time.Time { return ts })
			return req.WithContext(ctx)
		}

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, at(base))
		gt.V(t, w.Code).Equal(http.StatusOK)

		w = httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, at(base.Add(10*time.Second)))
		gt.V(t, w.Code).Equal(http.StatusTooManyRequests)

		w = httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, at(base.Add(2*time.Minute)))
		gt.V(t, w.Code).Equal(http.StatusOK)
	})

	t.Run("rate limit headers are exposed", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		mockUC.ListActivitiesFunc = func(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
			return nil, nil
		}
		srv := server.New(mockUC,
			server.WithSessionVerifier(testVerifier()),
			server.WithRateLimits(server.TestRateLimits(5, time.Minute)),
		)

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, apiRequest("GET", "/api/activities", nil))

		gt.V(t, w.Header().Get("X-RateLimit-Limit")).Equal("5")
		gt.V(t, w.Header().Get("X-RateLimit-Remaining")).Equal("4")
		gt.V(t, w.Header().Get("X-RateLimit-Reset")).NotEqual("")
	})
}
