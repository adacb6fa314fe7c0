package core

import (
	"context"
)

// Gateway defines the interface for the remote Collabzy API
type Gateway interface {
	FetchInfluencers(ctx context.Context, filters Filters) ([]Influencer, error)
	FetchCampaigns(ctx context.Context, filters Filters) ([]Campaign, error)
	FetchApplications(ctx context.Context, filters Filters) ([]Application, error)
	FetchDeals(ctx context.Context, filters Filters) ([]Deal, error)
	FetchConversations(ctx context.Context, filters Filters) ([]Conversation, error)

	CreateCampaign(ctx context.Context, input CampaignInput) (*Campaign, error)
	UpdateCampaign(ctx context.Context, id string, input CampaignInput) (*Campaign, error)
	SubmitApplication(ctx context.Context, input ApplicationInput) (*Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*Application, error)
	CreateDeal(ctx context.Context, input DealInput) (*Deal, error)
	UpdateDealStatus(ctx context.Context, id, status string) (*Deal, error)
	SendApplicationMessage(ctx context.Context, applicationID, body string) (*Message, error)
	CreateCollaboration(ctx context.Context, input CollaborationInput) (*Deal, error)
}

// CacheStore defines the interface for the snapshot store. It is owned
// exclusively by the coordinator; nothing else reads or writes entries.
type CacheStore interface {
	// Get retrieves the entry stored under key
	Get(key string) (CacheEntry, bool)

	// Set stores an entry under key, replacing any previous one
	Set(key string, entry CacheEntry)

	// DeleteKind removes every entry belonging to the given kind
	DeleteKind(kind ResourceKind)

	// Clear removes all entries
	Clear()

	// Len returns the number of stored entries
	Len() int
}

// Session exposes the caller's authentication state.
type Session interface {
	// Token returns the bearer token, and whether the session is authenticated
	Token() (string, bool)
}

// Invalidator clears cached snapshots for a resource kind. The coordinator
// implements it; the mutation facade and the push bridge consume it.
type Invalidator interface {
	Invalidate(kind ResourceKind)
}

// MetricsRecorder receives cache and gateway events. Implementations must be
// safe for concurrent use. A nil recorder disables reporting.
type MetricsRecorder interface {
	// CacheHit is called for every fetch served from the store.
	CacheHit(kind ResourceKind)
	// CacheMiss is called for every fetch that has to go to the gateway.
	CacheMiss(kind ResourceKind)
	// Refresh is called when a gateway fetch replaces a stored entry.
	Refresh(kind ResourceKind)
	// Invalidation is called for every explicit invalidation.
	Invalidation(kind ResourceKind)
	// GatewayError is called when a gateway fetch fails.
	GatewayError(kind ResourceKind)
}
