package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventoryResponse struct {
	JetSkis []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"jetSkis"`
	TimeSlots []struct {
		ID              string  `json:"id"`
		DurationMinutes int     `json:"durationMinutes"`
		WeekdayPrice    float64 `json:"weekdayPrice"`
		WeekendPrice    float64 `json:"weekendPrice"`
	} `json:"timeSlots"`
	BlackoutDates []struct {
		ID   string `json:"id"`
		Date string `json:"date"`
	} `json:"blackoutDates"`
}

func TestInventoryIsPublic(t *testing.T) {
	w := executeRequest(http.MethodGet, "/v1/inventory", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp inventoryResponse
	decode(t, w, &resp)

	require.Len(t, resp.JetSkis, 2)
	assert.Equal(t, "js-1", resp.JetSkis[0].ID)
	require.Len(t, resp.TimeSlots, 4)
	assert.Equal(t, 60, resp.TimeSlots[2].DurationMinutes)
}

func TestInventoryReplaceRequiresAdmin(t *testing.T) {
	w := executeRequest(http.MethodPatch, "/v1/inventory", map[string]any{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInventoryReplaceBlackoutDates(t *testing.T) {
	token := adminToken(t)

	body := map[string]any{
		"blackoutDates": []map[string]any{
			{"id": "bd-1", "date": "2026-08-20", "reason": "Hurricane watch"},
		},
	}
	w := executeRequest(http.MethodPatch, "/v1/inventory", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp inventoryResponse
	decode(t, w, &resp)
	require.Len(t, resp.BlackoutDates, 1)
	assert.Len(t, resp.JetSkis, 2, "omitted collections stay untouched")

	// The blacked-out day offers no start times.
	w = executeRequest(http.MethodGet, "/v1/bookings/availability?jetSkiId=js-1&date=2026-08-20&timeSlotId=ts-60", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var avail struct {
		AvailableTimes []string `json:"availableTimes"`
	}
	decode(t, w, &avail)
	assert.Empty(t, avail.AvailableTimes)

	// Clean up so other tests see no blackout dates.
	w = executeRequest(http.MethodPatch, "/v1/inventory", map[string]any{"blackoutDates": []map[string]any{}}, token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSettings(t *testing.T) {
	w := executeRequest(http.MethodGet, "/v1/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var wrapped struct {
		Settings struct {
			BusinessName        string `json:"businessName"`
			OperatingHoursStart string `json:"operatingHoursStart"`
			OperatingHoursEnd   string `json:"operatingHoursEnd"`
		} `json:"settings"`
	}
	decode(t, w, &wrapped)
	settings := wrapped.Settings
	assert.Equal(t, "09:00", settings.OperatingHoursStart)

	// Update requires admin.
	w = executeRequest(http.MethodPatch, "/v1/settings", map[string]any{"businessName": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = executeRequest(http.MethodPatch, "/v1/settings", map[string]any{"businessPhone": "555-0199"}, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updatedWrapped struct {
		Settings struct {
			BusinessPhone string `json:"businessPhone"`
			BusinessName  string `json:"businessName"`
		} `json:"settings"`
	}
	decode(t, w, &updatedWrapped)
	assert.Equal(t, "555-0199", updatedWrapped.Settings.BusinessPhone)
	assert.Equal(t, settings.BusinessName, updatedWrapped.Settings.BusinessName, "omitted fields keep their values")
}
