package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySeedDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	units, err := repo.ListUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "js-1", units[0].ID)
	assert.Equal(t, UnitAvailable, units[0].Status)

	classes, err := repo.ListDurationClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 4)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "09:00", settings.OperatingHoursStart)
	assert.Equal(t, "18:00", settings.OperatingHoursEnd)
}

func TestMemoryReplaceUnitsDropsMissing(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	err := repo.ReplaceUnits(ctx, []*Unit{
		{ID: "js-9", Name: "New Ski", Status: UnitAvailable},
	})
	require.NoError(t, err)

	units, err := repo.ListUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "js-9", units[0].ID)

	_, err = repo.GetUnit(ctx, "js-1")
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	units, err := repo.ListUnits(ctx)
	require.NoError(t, err)
	units[0].Name = "Mutated"

	fresh, err := repo.GetUnit(ctx, units[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", fresh.Name)
}

func TestMemoryUpdateSettingsPatch(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	name := "Jetwave Rentals"
	end := "20:00"
	updated, err := repo.UpdateSettings(ctx, SettingsPatch{
		BusinessName:      &name,
		OperatingHoursEnd: &end,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jetwave Rentals", updated.BusinessName)
	assert.Equal(t, "20:00", updated.OperatingHoursEnd)
	// Untouched fields keep their values.
	assert.Equal(t, "09:00", updated.OperatingHoursStart)
	assert.Equal(t, "(850) 276-6063", updated.BusinessPhone)
}

func TestServiceBulkReplaceLeavesNilCollectionsUntouched(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	inv, err := svc.BulkReplaceInventory(ctx, ReplaceRequest{
		BlackoutDates: []*BlackoutDate{
			{ID: "bd-1", Date: "2026-07-10", Reason: "Regatta"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, inv.Units, 2, "units were not part of the request")
	assert.Len(t, inv.DurationClasses, 4, "duration classes were not part of the request")
	require.Len(t, inv.BlackoutDates, 1)
	assert.Equal(t, "Regatta", inv.BlackoutDates[0].Reason)

	// An explicit empty slice clears the collection.
	inv, err = svc.BulkReplaceInventory(ctx, ReplaceRequest{
		BlackoutDates: []*BlackoutDate{},
	})
	require.NoError(t, err)
	assert.Empty(t, inv.BlackoutDates)
}
