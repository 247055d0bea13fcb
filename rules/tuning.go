package rules

import (
	"fmt"
	"math"
	"os"

	"github.com/nstehr/striker/model"
	"gopkg.in/yaml.v3"
)

// Tuning holds the thresholds the compiler bakes into the rule set.
type Tuning struct {
	Name              string  `yaml:"name" json:"name"`
	ToleranceAngleDeg float64 `yaml:"tolerance_angle_deg" json:"tolerance_angle_deg"` // max |ball bearing| to approach
	ToleratedDistance float64 `yaml:"tolerated_distance" json:"tolerated_distance"`   // below this, align instead of walk
	UprightAccelZ     float64 `yaml:"upright_accel_z" json:"upright_accel_z"`         // vertical accel needed to count as standing
}

// DefaultTuning returns the reference thresholds: 10° tolerance, 0.7 distance.
func DefaultTuning() Tuning {
	return Tuning{
		Name:              "Default",
		ToleranceAngleDeg: 10,
		ToleratedDistance: 0.7,
		UprightAccelZ:     model.DefaultUprightAccelZ,
	}
}

// Validate clamps all thresholds to their valid ranges. Zero values fall
// back to the defaults so a partial tuning file only overrides what it names.
func (t *Tuning) Validate() {
	def := DefaultTuning()
	if t.Name == "" {
		t.Name = def.Name
	}
	if t.ToleranceAngleDeg == 0 {
		t.ToleranceAngleDeg = def.ToleranceAngleDeg
	}
	if t.ToleratedDistance == 0 {
		t.ToleratedDistance = def.ToleratedDistance
	}
	if t.UprightAccelZ == 0 {
		t.UprightAccelZ = def.UprightAccelZ
	}
	t.ToleranceAngleDeg = clamp(t.ToleranceAngleDeg, 1, 90)
	t.ToleratedDistance = clamp(t.ToleratedDistance, 0.1, 5)
	t.UprightAccelZ = clamp(t.UprightAccelZ, 1, 9.81)
}

// ToleranceRad is the approach tolerance in radians.
func (t Tuning) ToleranceRad() float64 {
	return t.ToleranceAngleDeg * math.Pi / 180
}

// LoadTuning reads a YAML tuning file and validates it.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	t.Validate()
	return t, nil
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
