// README: Vehicle classification and daily toll result types.
package toll

import "time"

// VehicleType is the closed set of classifications the toll recognises.
type VehicleType string

const (
	VehicleCar       VehicleType = "CAR"
	VehicleMotorbike VehicleType = "MOTORBIKE"
	VehicleTractor   VehicleType = "TRACTOR"
	VehicleEmergency VehicleType = "EMERGENCY"
	VehicleDiesel    VehicleType = "DIESEL"
	VehicleForeign   VehicleType = "FOREIGN"
	VehicleMilitary  VehicleType = "MILITARY"
)

var exemptByType = map[VehicleType]bool{
	VehicleCar:       false,
	VehicleMotorbike: true,
	VehicleTractor:   true,
	VehicleEmergency: true,
	VehicleDiesel:    true,
	VehicleForeign:   true,
	VehicleMilitary:  true,
}

// Known reports whether v is one of the recognised classifications.
func (v VehicleType) Known() bool {
	_, ok := exemptByType[v]
	return ok
}

// Exempt reports whether the classification never pays toll.
func (v VehicleType) Exempt() bool {
	return exemptByType[v]
}

// Charge records the outcome for a single gate pass: the instantaneous fee
// from the schedule and the amount actually added to the daily total.
type Charge struct {
	Time    time.Time
	Fee     int
	Charged int
}

// Detail is the full result of one daily toll computation.
type Detail struct {
	Total   int
	Capped  bool
	Charges []Charge
}
