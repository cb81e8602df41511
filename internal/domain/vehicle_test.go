package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.VehicleType
	}{
		{"sedan", domain.VehicleTypeSedan},
		{"SUV", domain.VehicleTypeSUV},
		{" truck ", domain.VehicleTypeTruck},
		{"motorcycle", domain.VehicleTypeMotorcycle},
		{"compact", domain.VehicleTypeCompact},
		{"", domain.VehicleTypeUnset},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseVehicleType(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseVehicleType_Unknown(t *testing.T) {
	_, err := domain.ParseVehicleType("hovercraft")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseVehicleField(t *testing.T) {
	f, err := domain.ParseVehicleField("plate")
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleFieldPlate, f)

	f, err = domain.ParseVehicleField("type")
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleFieldType, f)

	_, err = domain.ParseVehicleField("id")
	assert.ErrorIs(t, err, domain.ErrValidation, "id is immutable and never editable")
}
