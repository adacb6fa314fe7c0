package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/rest"
	"github.com/collabzy/collabzy-go/internal/core"
)

func newTestGateway(t *testing.T, handler http.Handler, token string) *rest.Gateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return rest.NewGateway(srv.URL, 5*time.Second, core.NewStaticSession(token), zap.NewNop())
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"data":    data,
		"message": message,
	})
}

func TestFetchCampaignsDecodesEnvelope(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campaigns" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("category"); got != "beauty" {
			t.Errorf("expected category filter in query, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a request ID header")
		}
		writeEnvelope(w, http.StatusOK, true, []map[string]any{
			{"id": "c1", "title": "Spring launch", "budget": 1500, "status": "active"},
		}, "")
	})

	gateway := newTestGateway(t, handler, "secret")
	campaigns, err := gateway.FetchCampaigns(context.Background(), core.Filters{"category": "beauty"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(campaigns))
	}
	if campaigns[0].ID != "c1" || campaigns[0].Budget != 1500 {
		t.Errorf("unexpected campaign: %+v", campaigns[0])
	}
}

func TestUnauthenticatedRequestsOmitAuthHeader(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no auth header, got %q", got)
		}
		writeEnvelope(w, http.StatusOK, true, []map[string]any{}, "")
	})

	gateway := newTestGateway(t, handler, "")
	if _, err := gateway.FetchInfluencers(context.Background(), nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServerMessageSurfacesInError(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnprocessableEntity, false, nil, "budget is required")
	})

	gateway := newTestGateway(t, handler, "secret")
	_, err := gateway.CreateCampaign(context.Background(), core.CampaignInput{Title: "No budget"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Message != "budget is required" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", apiErr.Status)
	}
}

func TestGenericFallbackForOpaqueErrors(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	gateway := newTestGateway(t, handler, "secret")
	_, err := gateway.FetchDeals(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Error() != "request failed with status 502" {
		t.Errorf("expected generic fallback message, got %q", apiErr.Error())
	}
}

func TestEnvelopeFailureOnSuccessStatus(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, nil, "session expired")
	})

	gateway := newTestGateway(t, handler, "secret")
	_, err := gateway.FetchConversations(context.Background(), nil)
	if err == nil {
		t.Fatal("expected success=false to be an error")
	}
	if err.Error() != "session expired" {
		t.Errorf("expected server message, got %q", err.Error())
	}
}

func TestMutationEndpoints(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPatch && r.URL.Path == "/applications/a1/status":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			writeEnvelope(w, http.StatusOK, true, map[string]any{"id": "a1", "status": body["status"]}, "")
		case r.Method == http.MethodPost && r.URL.Path == "/messages/application/a1":
			writeEnvelope(w, http.StatusCreated, true, map[string]any{"id": "m1", "body": "hello"}, "")
		default:
			writeEnvelope(w, http.StatusNotFound, false, nil, "not found")
		}
	})

	gateway := newTestGateway(t, handler, "secret")

	application, err := gateway.UpdateApplicationStatus(context.Background(), "a1", core.ApplicationStatusAccepted)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if application.Status != core.ApplicationStatusAccepted {
		t.Errorf("expected accepted status, got %q", application.Status)
	}

	message, err := gateway.SendApplicationMessage(context.Background(), "a1", "hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if message.ID != "m1" {
		t.Errorf("unexpected message: %+v", message)
	}
}
