package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/core"
)

// APIError is a failed gateway call: a transport-level non-2xx status or a
// success=false envelope. Message carries the server-provided text when the
// envelope had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// envelope is the uniform response wrapper the Collabzy API returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Gateway is the HTTP implementation of the Gateway interface, talking to
// the Collabzy REST API.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	session    core.Session
	logger     *zap.Logger
}

// NewGateway creates a new REST gateway. baseURL is the API root, e.g.
// "https://api.collabzy.io/api".
func NewGateway(baseURL string, timeout time.Duration, session core.Session, logger *zap.Logger) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    session,
		logger:     logger,
	}
}

// FetchInfluencers lists influencer profiles.
func (g *Gateway) FetchInfluencers(ctx context.Context, filters core.Filters) ([]core.Influencer, error) {
	var out []core.Influencer
	if err := g.do(ctx, http.MethodGet, "/influencers", filters, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCampaigns lists campaigns.
func (g *Gateway) FetchCampaigns(ctx context.Context, filters core.Filters) ([]core.Campaign, error) {
	var out []core.Campaign
	if err := g.do(ctx, http.MethodGet, "/campaigns", filters, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchApplications lists the caller's applications.
func (g *Gateway) FetchApplications(ctx context.Context, filters core.Filters) ([]core.Application, error) {
	var out []core.Application
	if err := g.do(ctx, http.MethodGet, "/applications", filters, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchDeals lists the caller's deals.
func (g *Gateway) FetchDeals(ctx context.Context, filters core.Filters) ([]core.Deal, error) {
	var out []core.Deal
	if err := g.do(ctx, http.MethodGet, "/deals", filters, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchConversations lists the caller's conversation threads.
func (g *Gateway) FetchConversations(ctx context.Context, filters core.Filters) ([]core.Conversation, error) {
	var out []core.Conversation
	if err := g.do(ctx, http.MethodGet, "/messages/conversations", filters, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCampaign publishes a new campaign.
func (g *Gateway) CreateCampaign(ctx context.Context, input core.CampaignInput) (*core.Campaign, error) {
	var out core.Campaign
	if err := g.do(ctx, http.MethodPost, "/campaigns", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampaign updates an existing campaign.
func (g *Gateway) UpdateCampaign(ctx context.Context, id string, input core.CampaignInput) (*core.Campaign, error) {
	var out core.Campaign
	if err := g.do(ctx, http.MethodPut, "/campaigns/"+url.PathEscape(id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitApplication submits an application for a campaign.
func (g *Gateway) SubmitApplication(ctx context.Context, input core.ApplicationInput) (*core.Application, error) {
	var out core.Application
	if err := g.do(ctx, http.MethodPost, "/applications", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplicationStatus accepts or rejects an application.
func (g *Gateway) UpdateApplicationStatus(ctx context.Context, id, status string) (*core.Application, error) {
	var out core.Application
	body := map[string]string{"status": status}
	if err := g.do(ctx, http.MethodPatch, "/applications/"+url.PathEscape(id)+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDeal opens a deal.
func (g *Gateway) CreateDeal(ctx context.Context, input core.DealInput) (*core.Deal, error) {
	var out core.Deal
	if err := g.do(ctx, http.MethodPost, "/deals", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDealStatus moves a deal through its lifecycle.
func (g *Gateway) UpdateDealStatus(ctx context.Context, id, status string) (*core.Deal, error) {
	var out core.Deal
	body := map[string]string{"status": status}
	if err := g.do(ctx, http.MethodPatch, "/deals/"+url.PathEscape(id)+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendApplicationMessage posts a message into an application thread.
func (g *Gateway) SendApplicationMessage(ctx context.Context, applicationID, body string) (*core.Message, error) {
	var out core.Message
	payload := map[string]string{"body": body}
	if err := g.do(ctx, http.MethodPost, "/messages/application/"+url.PathEscape(applicationID), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCollaboration opens a collaboration directly.
func (g *Gateway) CreateCollaboration(ctx context.Context, input core.CollaborationInput) (*core.Deal, error) {
	var out core.Deal
	if err := g.do(ctx, http.MethodPost, "/collaborations", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one API call: builds the request, decodes the envelope, and
// unmarshals envelope.data into out when out is non-nil.
func (g *Gateway) do(ctx context.Context, method, path string, filters core.Filters, body, out any) error {
	endpoint := g.baseURL + path
	if len(filters) > 0 {
		query := url.Values{}
		for k, v := range filters {
			query.Set(k, v)
		}
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := g.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	g.logger.Debug("Gateway call completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	var env envelope
	// The envelope is best-effort on error statuses; some proxies return
	// plain text bodies.
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload from %s: %w", path, err)
		}
	}
	return nil
}
