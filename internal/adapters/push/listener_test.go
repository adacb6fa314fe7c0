package push_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/collabzy/collabzy-go/internal/adapters/push"
	"github.com/collabzy/collabzy-go/internal/core"
)

func TestKindsForMapsEventsToAffectedKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event core.PushEvent
		want  []core.ResourceKind
	}{
		{
			name:  "message received",
			event: core.PushEvent{Event: push.EventMessageReceive},
			want:  []core.ResourceKind{core.KindConversations},
		},
		{
			name:  "application updated",
			event: core.PushEvent{Event: push.EventApplicationUpdate},
			want:  []core.ResourceKind{core.KindApplications},
		},
		{
			name:  "deal updated",
			event: core.PushEvent{Event: push.EventDealUpdate},
			want:  []core.ResourceKind{core.KindDeals},
		},
		{
			name:  "campaign updated",
			event: core.PushEvent{Event: push.EventCampaignUpdate},
			want:  []core.ResourceKind{core.KindCampaigns},
		},
		{
			name:  "collaboration started",
			event: core.PushEvent{Event: push.EventCollaborationStart},
			want:  []core.ResourceKind{core.KindDeals, core.KindConversations},
		},
		{
			name:  "notification names its kind",
			event: core.PushEvent{Event: push.EventNotificationNew, Kind: "deals"},
			want:  []core.ResourceKind{core.KindDeals},
		},
		{
			name:  "notification with unknown kind",
			event: core.PushEvent{Event: push.EventNotificationNew, Kind: "likes"},
			want:  nil,
		},
		{
			name:  "unknown event",
			event: core.PushEvent{Event: "presence:online"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := push.KindsFor(tt.event)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected kinds (-want +got):\n%s", diff)
			}
		})
	}
}
