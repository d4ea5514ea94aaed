package badger

import (
	"context"
	"testing"

	"github.com/poiesic/lanelist/core"
	"github.com/poiesic/lanelist/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCarriers() []*core.Carrier {
	return []*core.Carrier{
		{
			ID:       "alpine",
			Name:     "Alpine Logistics",
			Verified: true,
			Types:    []core.TransportType{core.TransportTruck, core.TransportReefer},
			Lanes: []core.Lane{
				{Origin: "FR", Destination: "DE"},
				{Origin: "DE", Destination: "PL"},
			},
		},
		{
			ID:       "baltic",
			Name:     "Baltic Freight",
			Verified: false,
			Types:    []core.TransportType{core.TransportContainer},
			Lanes:    []core.Lane{{Origin: "PL", Destination: "SE"}},
		},
		{
			ID:       "iberia",
			Name:     "Iberia Haulage",
			Verified: true,
			Types:    []core.TransportType{core.TransportTruck},
			Lanes:    []core.Lane{{Origin: "FR", Destination: "ES"}},
		},
	}
}

func TestAddAndGetCarrier(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	added, err := repo.AddCarriers(ctx, testCarriers()...)
	require.NoError(t, err)
	require.Len(t, added, 3)

	got, err := repo.GetCarrier(ctx, "alpine")
	require.NoError(t, err)
	assert.Equal(t, "Alpine Logistics", got.Name)
	assert.True(t, got.Verified)

	// Lane insertion order is preserved for display.
	require.Len(t, got.Lanes, 2)
	assert.Equal(t, core.Lane{Origin: "FR", Destination: "DE"}, got.Lanes[0])
	assert.Equal(t, core.Lane{Origin: "DE", Destination: "PL"}, got.Lanes[1])
}

func TestGetCarrier_NotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	_, err = repo.GetCarrier(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddCarriers_ContentDerivedID(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	carrier := &core.Carrier{
		Name:  "Nameless Freight",
		Types: []core.TransportType{core.TransportTruck},
	}

	added, err := repo.AddCarriers(ctx, carrier)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent("Nameless Freight"), added[0].ID)
}

func TestAddCarriers_RejectsInvalid(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	carrier := &core.Carrier{ID: "x", Name: "No Types"}
	_, err = repo.AddCarriers(context.Background(), carrier)
	assert.ErrorIs(t, err, core.ErrNoTransportTypes)
}

func TestFindCarriers(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = repo.AddCarriers(ctx, testCarriers()...)
	require.NoError(t, err)

	t.Run("empty filter matches everything", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{}, 50)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("type filter via type index", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{Type: core.TransportTruck}, 50)
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("lane filter via lane index", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{Origin: "FR", Destination: "ES"}, 50)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Iberia Haulage", results[0].Name)
	})

	t.Run("conjunctive type and lane", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{
			Type:        core.TransportReefer,
			Origin:      "FR",
			Destination: "DE",
		}, 50)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Alpine Logistics", results[0].Name)
	})

	t.Run("verified only", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{VerifiedOnly: true}, 50)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{Type: core.TransportTanker}, 50)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("limit applied", func(t *testing.T) {
		results, err := repo.FindCarriers(ctx, &core.SearchFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := repo.FindCarriers(ctx, &core.SearchFilter{}, 0)
		assert.ErrorIs(t, err, storage.ErrInvalidQuery)
	})
}

func TestDeleteCarriers(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	_, err = repo.AddCarriers(ctx, testCarriers()...)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCarriers(ctx, "alpine"))

	_, err = repo.GetCarrier(ctx, "alpine")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Index entries are cleaned up with the document.
	results, err := repo.FindCarriers(ctx, &core.SearchFilter{Origin: "FR", Destination: "DE"}, 50)
	require.NoError(t, err)
	assert.Empty(t, results)

	t.Run("delete missing carrier", func(t *testing.T) {
		err := repo.DeleteCarriers(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestAddCarriers_OverwriteRefreshesIndexes(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	carrier := &core.Carrier{
		ID:    "c1",
		Name:  "Rerouted Freight",
		Types: []core.TransportType{core.TransportTruck},
		Lanes: []core.Lane{{Origin: "FR", Destination: "DE"}},
	}
	_, err = repo.AddCarriers(ctx, carrier)
	require.NoError(t, err)

	carrier.Lanes = []core.Lane{{Origin: "FR", Destination: "IT"}}
	_, err = repo.AddCarriers(ctx, carrier)
	require.NoError(t, err)

	stale, err := repo.FindCarriers(ctx, &core.SearchFilter{Origin: "FR", Destination: "DE"}, 50)
	require.NoError(t, err)
	assert.Empty(t, stale)

	fresh, err := repo.FindCarriers(ctx, &core.SearchFilter{Origin: "FR", Destination: "IT"}, 50)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestCountCarriers(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	count, err := repo.CountCarriers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddCarriers(ctx, testCarriers()...)
	require.NoError(t, err)

	count, err = repo.CountCarriers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
