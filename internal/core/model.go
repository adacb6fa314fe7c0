package core

import (
	"time"
)

// ResourceKind identifies a category of marketplace data that is cached
// independently of the others.
type ResourceKind string

const (
	KindInfluencers   ResourceKind = "influencers"
	KindCampaigns     ResourceKind = "campaigns"
	KindApplications  ResourceKind = "applications"
	KindDeals         ResourceKind = "deals"
	KindConversations ResourceKind = "conversations"

	// KindAll is the sentinel accepted by Invalidate to clear every kind.
	KindAll ResourceKind = "*"
)

// Kinds returns every concrete resource kind.
func Kinds() []ResourceKind {
	return []ResourceKind{
		KindInfluencers,
		KindCampaigns,
		KindApplications,
		KindDeals,
		KindConversations,
	}
}

// Valid reports whether k is one of the concrete resource kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case KindInfluencers, KindCampaigns, KindApplications, KindDeals, KindConversations:
		return true
	default:
		return false
	}
}

// Gated reports whether fetching k requires an authenticated session.
// Influencer profiles are public; everything else is scoped to the caller.
func (k ResourceKind) Gated() bool {
	return k != KindInfluencers
}

// Filters is an opaque query descriptor forwarded to the gateway. The
// coordinator folds it into the cache key but never interprets it.
type Filters map[string]string

// Campaign statuses.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusClosed    = "closed"
	CampaignStatusCompleted = "completed"
)

// Application statuses.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Deal statuses.
const (
	DealStatusPending   = "pending"
	DealStatusActive    = "active"
	DealStatusDelivered = "delivered"
	DealStatusCompleted = "completed"
	DealStatusCancelled = "cancelled"
)

// Influencer is a public creator profile.
type Influencer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Handle      string    `json:"handle"`
	Platform    string    `json:"platform"`
	Followers   int       `json:"followers"`
	Categories  []string  `json:"categories,omitempty"`
	RatePerPost float64   `json:"ratePerPost,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Campaign is a brand's sponsorship listing.
type Campaign struct {
	ID          string     `json:"id"`
	BrandID     string     `json:"brandId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Budget      float64    `json:"budget"`
	Category    string     `json:"category,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Application is an influencer's pitch for a campaign.
type Application struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaignId"`
	InfluencerID string    `json:"influencerId"`
	Pitch        string    `json:"pitch,omitempty"`
	ProposedRate float64   `json:"proposedRate,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Deal is an agreed collaboration between a brand and an influencer.
type Deal struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaignId"`
	ApplicationID string    `json:"applicationId,omitempty"`
	BrandID       string    `json:"brandId"`
	InfluencerID  string    `json:"influencerId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Deliverables  []string  `json:"deliverables,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Message is a single chat message inside an application thread.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
}

// Conversation is a message thread attached to an application.
type Conversation struct {
	ID             string    `json:"id"`
	ApplicationID  string    `json:"applicationId"`
	ParticipantIDs []string  `json:"participantIds"`
	LastMessage    *Message  `json:"lastMessage,omitempty"`
	UnreadCount    int       `json:"unreadCount"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CampaignInput carries the writable fields of a campaign.
type CampaignInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Budget      float64    `json:"budget"`
	Category    string     `json:"category,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	Status      string     `json:"status,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// ApplicationInput carries the writable fields of an application.
type ApplicationInput struct {
	CampaignID   string  `json:"campaignId"`
	Pitch        string  `json:"pitch,omitempty"`
	ProposedRate float64 `json:"proposedRate,omitempty"`
}

// DealInput carries the writable fields of a deal.
type DealInput struct {
	CampaignID    string   `json:"campaignId"`
	ApplicationID string   `json:"applicationId,omitempty"`
	InfluencerID  string   `json:"influencerId"`
	Amount        float64  `json:"amount"`
	Deliverables  []string `json:"deliverables,omitempty"`
}

// CollaborationInput opens a collaboration directly, without going through
// the application flow.
type CollaborationInput struct {
	InfluencerID string   `json:"influencerId"`
	CampaignID   string   `json:"campaignId,omitempty"`
	Amount       float64  `json:"amount"`
	Deliverables []string `json:"deliverables,omitempty"`
}

// CacheEntry is one cached snapshot. Data and FetchedAt are always set
// together; absence of the entry means both are absent.
type CacheEntry struct {
	Data      any
	FetchedAt time.Time
}

// PushEvent is a real-time event delivered over the push channel.
type PushEvent struct {
	Event string `json:"event"`
	Kind  string `json:"kind,omitempty"`
}
