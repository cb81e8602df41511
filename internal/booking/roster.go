package booking

import (
	"log/slog"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// VehicleRoster edits the fields of an ordered set of vehicle records.
// Which vehicles are on the roster is decided by the owner; the roster
// itself never adds or removes records.
type VehicleRoster struct {
	records  []domain.VehicleRecord
	index    map[string]int // vehicle ID -> position in records
	onChange func(domain.VehicleChange)
	log      *slog.Logger
}

// NewVehicleRoster copies records into a new roster. onChange may be nil.
// A nil logger falls back to slog.Default().
//
// If records contains duplicate IDs only the first one is editable.
func NewVehicleRoster(records []domain.VehicleRecord, onChange func(domain.VehicleChange), log *slog.Logger) *VehicleRoster {
	if log == nil {
		log = slog.Default()
	}
	r := &VehicleRoster{
		records:  make([]domain.VehicleRecord, len(records)),
		index:    make(map[string]int, len(records)),
		onChange: onChange,
		log:      log,
	}
	copy(r.records, records)
	for i, rec := range r.records {
		if _, dup := r.index[rec.ID]; dup {
			log.Warn("duplicate vehicle id on roster", "vehicle_id", rec.ID)
			continue
		}
		r.index[rec.ID] = i
	}
	return r
}

// SetField overwrites field on the vehicle with the given ID and reports
// whether anything was applied. An unknown ID, an unknown field, or a type
// value outside the known set is a caller bug: it is logged and ignored.
func (r *VehicleRoster) SetField(vehicleID string, field domain.VehicleField, value string) bool {
	i, ok := r.index[vehicleID]
	if !ok {
		r.log.Warn("vehicle edit ignored: no such vehicle on roster",
			"vehicle_id", vehicleID, "field", string(field))
		return false
	}

	switch field {
	case domain.VehicleFieldType:
		vt, err := domain.ParseVehicleType(value)
		if err != nil {
			r.log.Warn("vehicle edit ignored: unknown vehicle type",
				"vehicle_id", vehicleID, "value", value)
			return false
		}
		r.records[i].Type = vt
		value = string(vt)
	case domain.VehicleFieldPlate:
		r.records[i].Plate = value
	default:
		r.log.Warn("vehicle edit ignored: unknown field",
			"vehicle_id", vehicleID, "field", string(field))
		return false
	}

	if r.onChange != nil {
		r.onChange(domain.VehicleChange{VehicleID: vehicleID, Field: field, Value: value})
	}
	return true
}

// Get returns the record with the given ID.
func (r *VehicleRoster) Get(vehicleID string) (domain.VehicleRecord, bool) {
	i, ok := r.index[vehicleID]
	if !ok {
		return domain.VehicleRecord{}, false
	}
	return r.records[i], true
}

// Records returns a copy of the roster in its original order. Always non-nil.
func (r *VehicleRoster) Records() []domain.VehicleRecord {
	out := make([]domain.VehicleRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *VehicleRoster) Len() int {
	return len(r.records)
}
