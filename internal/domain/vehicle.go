package domain

import (
	"fmt"
	"strings"
)

// VehicleType classifies a vehicle for space allocation.
// The empty value means the user has not picked a type yet.
type VehicleType string

const (
	VehicleTypeUnset      VehicleType = ""
	VehicleTypeSedan      VehicleType = "sedan"
	VehicleTypeSUV        VehicleType = "suv"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeCompact    VehicleType = "compact"
)

// VehicleTypes lists every selectable type in display order.
var VehicleTypes = []VehicleType{
	VehicleTypeSedan,
	VehicleTypeSUV,
	VehicleTypeTruck,
	VehicleTypeMotorcycle,
	VehicleTypeCompact,
}

// ParseVehicleType accepts a selectable type (case-insensitive, surrounding
// whitespace ignored) or the empty string for "unset".
func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	if v == VehicleTypeUnset {
		return v, nil
	}
	for _, t := range VehicleTypes {
		if v == t {
			return v, nil
		}
	}
	return VehicleTypeUnset, fmt.Errorf("%w: unknown vehicle type %q", ErrValidation, s)
}

// VehicleField names an editable field of a VehicleRecord.
type VehicleField string

const (
	VehicleFieldType  VehicleField = "type"
	VehicleFieldPlate VehicleField = "plate"
)

// ParseVehicleField accepts "type" or "plate".
func ParseVehicleField(s string) (VehicleField, error) {
	switch f := VehicleField(s); f {
	case VehicleFieldType, VehicleFieldPlate:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown vehicle field %q", ErrValidation, s)
}

// VehicleRecord is one vehicle attached to a booking in progress.
// ID is assigned by the owner of the roster and never changes.
type VehicleRecord struct {
	ID    string      `json:"id"`
	Type  VehicleType `json:"type"`
	Plate string      `json:"plate"`
}

// VehicleChange describes a single field edit, carrying enough for the
// roster owner to persist it.
type VehicleChange struct {
	VehicleID string       `json:"vehicle_id"`
	Field     VehicleField `json:"field"`
	Value     string       `json:"value"`
}
