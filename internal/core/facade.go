package core

import (
	"context"

	"go.uber.org/zap"
)

// Mutator wraps the gateway's write operations with write-through
// invalidation: on success the cache entries for every affected kind are
// cleared so the next read re-fetches. A failed mutation leaves the cache
// untouched.
type Mutator struct {
	gateway     Gateway
	invalidator Invalidator
	logger      *zap.Logger
}

// NewMutator creates a new mutation facade.
func NewMutator(gateway Gateway, invalidator Invalidator, logger *zap.Logger) *Mutator {
	return &Mutator{
		gateway:     gateway,
		invalidator: invalidator,
		logger:      logger,
	}
}

// CreateCampaign publishes a new campaign listing.
func (m *Mutator) CreateCampaign(ctx context.Context, input CampaignInput) (*Campaign, error) {
	campaign, err := m.gateway.CreateCampaign(ctx, input)
	if err != nil {
		return nil, err
	}
	m.invalidate("create campaign", KindCampaigns)
	return campaign, nil
}

// UpdateCampaign updates an existing campaign listing.
func (m *Mutator) UpdateCampaign(ctx context.Context, id string, input CampaignInput) (*Campaign, error) {
	campaign, err := m.gateway.UpdateCampaign(ctx, id, input)
	if err != nil {
		return nil, err
	}
	m.invalidate("update campaign", KindCampaigns)
	return campaign, nil
}

// SubmitApplication submits an application for a campaign.
func (m *Mutator) SubmitApplication(ctx context.Context, input ApplicationInput) (*Application, error) {
	application, err := m.gateway.SubmitApplication(ctx, input)
	if err != nil {
		return nil, err
	}
	m.invalidate("submit application", KindApplications)
	return application, nil
}

// UpdateApplicationStatus accepts or rejects an application.
func (m *Mutator) UpdateApplicationStatus(ctx context.Context, id, status string) (*Application, error) {
	application, err := m.gateway.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	m.invalidate("update application status", KindApplications)
	return application, nil
}

// CreateDeal opens a deal from an accepted application.
func (m *Mutator) CreateDeal(ctx context.Context, input DealInput) (*Deal, error) {
	deal, err := m.gateway.CreateDeal(ctx, input)
	if err != nil {
		return nil, err
	}
	m.invalidate("create deal", KindDeals)
	return deal, nil
}

// UpdateDealStatus moves a deal through its lifecycle.
func (m *Mutator) UpdateDealStatus(ctx context.Context, id, status string) (*Deal, error) {
	deal, err := m.gateway.UpdateDealStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	m.invalidate("update deal status", KindDeals)
	return deal, nil
}

// SendApplicationMessage posts a chat message into an application thread.
func (m *Mutator) SendApplicationMessage(ctx context.Context, applicationID, body string) (*Message, error) {
	message, err := m.gateway.SendApplicationMessage(ctx, applicationID, body)
	if err != nil {
		return nil, err
	}
	m.invalidate("send application message", KindConversations)
	return message, nil
}

// CreateCollaboration opens a collaboration directly. The new deal also
// starts a conversation thread, so both kinds are invalidated.
func (m *Mutator) CreateCollaboration(ctx context.Context, input CollaborationInput) (*Deal, error) {
	deal, err := m.gateway.CreateCollaboration(ctx, input)
	if err != nil {
		return nil, err
	}
	m.invalidate("create collaboration", KindDeals, KindConversations)
	return deal, nil
}

func (m *Mutator) invalidate(operation string, kinds ...ResourceKind) {
	for _, kind := range kinds {
		m.invalidator.Invalidate(kind)
	}
	m.logger.Debug("Invalidated caches after mutation",
		zap.String("operation", operation),
		zap.Int("kinds", len(kinds)))
}
