package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Event
		wantErr bool
	}{
		{
			name: "Completed session with multiple bookings",
			payload: `{
				"type": "checkout.session.completed",
				"data": {"object": {
					"id": "cs_123",
					"metadata": {"bookingId": "bk-1", "allBookingIds": "bk-1,bk-2"}
				}}
			}`,
			want: Event{
				Type:           EventCompleted,
				SessionID:      "cs_123",
				PrimaryID:      "bk-1",
				ReservationIDs: []string{"bk-1", "bk-2"},
			},
		},
		{
			name: "Expired session falls back to primary id",
			payload: `{
				"type": "checkout.session.expired",
				"data": {"object": {
					"id": "cs_456",
					"metadata": {"bookingId": "bk-9"}
				}}
			}`,
			want: Event{
				Type:           EventExpired,
				SessionID:      "cs_456",
				PrimaryID:      "bk-9",
				ReservationIDs: []string{"bk-9"},
			},
		},
		{
			name: "Whitespace and empty entries are dropped",
			payload: `{
				"type": "checkout.session.completed",
				"data": {"object": {
					"id": "cs_789",
					"metadata": {"allBookingIds": " bk-1 , ,bk-2,"}
				}}
			}`,
			want: Event{
				Type:           EventCompleted,
				SessionID:      "cs_789",
				ReservationIDs: []string{"bk-1", "bk-2"},
			},
		},
		{
			name:    "Unrelated event type parses with no reservations",
			payload: `{"type": "invoice.paid", "data": {"object": {"id": "in_1"}}}`,
			want: Event{
				Type:      EventType("invoice.paid"),
				SessionID: "in_1",
			},
		},
		{
			name:    "Malformed payload",
			payload: `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
