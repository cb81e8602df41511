package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/repo"
)

func TestVehicleRepo_AddAndList_PreservesOrder(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))
	ctx := context.Background()
	draft := uuid.New()

	a, err := r.Add(ctx, draft, domain.VehicleRecord{Type: domain.VehicleTypeSedan, Plate: "AAA111"})
	require.NoError(t, err)
	b, err := r.Add(ctx, draft, domain.VehicleRecord{})
	require.NoError(t, err)
	_, err = r.Add(ctx, uuid.New(), domain.VehicleRecord{Plate: "OTHER"})
	require.NoError(t, err)

	got, err := r.ListByDraft(ctx, draft)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
	assert.Equal(t, domain.VehicleTypeUnset, got[1].Type)
}

func TestVehicleRepo_UpdateField(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))
	ctx := context.Background()
	draft := uuid.New()
	v, err := r.Add(ctx, draft, domain.VehicleRecord{})
	require.NoError(t, err)

	require.NoError(t, r.UpdateField(ctx, draft, domain.VehicleChange{VehicleID: v.ID, Field: domain.VehicleFieldPlate, Value: "ABC123"}))
	require.NoError(t, r.UpdateField(ctx, draft, domain.VehicleChange{VehicleID: v.ID, Field: domain.VehicleFieldType, Value: "suv"}))

	got, err := r.ListByDraft(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, []domain.VehicleRecord{{ID: v.ID, Type: domain.VehicleTypeSUV, Plate: "ABC123"}}, got)
}

func TestVehicleRepo_UpdateField_WrongDraft(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))
	ctx := context.Background()
	v, err := r.Add(ctx, uuid.New(), domain.VehicleRecord{})
	require.NoError(t, err)

	err = r.UpdateField(ctx, uuid.New(), domain.VehicleChange{VehicleID: v.ID, Field: domain.VehicleFieldPlate, Value: "X"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleRepo_UpdateField_MalformedID(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))

	err := r.UpdateField(context.Background(), uuid.New(), domain.VehicleChange{VehicleID: "v1", Field: domain.VehicleFieldPlate, Value: "X"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleRepo_Remove(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))
	ctx := context.Background()
	draft := uuid.New()
	a, err := r.Add(ctx, draft, domain.VehicleRecord{Plate: "A"})
	require.NoError(t, err)
	b, err := r.Add(ctx, draft, domain.VehicleRecord{Plate: "B"})
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, draft, a.ID))
	err = r.Remove(ctx, draft, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A vehicle added after a removal still lands at the end.
	c, err := r.Add(ctx, draft, domain.VehicleRecord{Plate: "C"})
	require.NoError(t, err)
	got, err := r.ListByDraft(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, []domain.VehicleRecord{b, c}, got)
}

func TestVehicleRepo_DeleteByDraft(t *testing.T) {
	r := repo.NewVehicleRepo(newTx(t))
	ctx := context.Background()
	draft := uuid.New()
	_, err := r.Add(ctx, draft, domain.VehicleRecord{})
	require.NoError(t, err)

	require.NoError(t, r.DeleteByDraft(ctx, draft))

	got, err := r.ListByDraft(ctx, draft)
	require.NoError(t, err)
	assert.Empty(t, got)
}
