package rules

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.5, 0, 1, 0.0},
		{1.5, 0, 1, 1.0},
		{0.0, 0, 1, 0.0},
		{1.0, 0, 1, 1.0},
	}
	for _, tc := range tests {
		got := clamp(tc.v, tc.min, tc.max)
		if got != tc.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestDefaultTuning(t *testing.T) {
	d := DefaultTuning()
	if d.ToleranceAngleDeg != 10 {
		t.Errorf("ToleranceAngleDeg = %v, want 10", d.ToleranceAngleDeg)
	}
	if d.ToleratedDistance != 0.7 {
		t.Errorf("ToleratedDistance = %v, want 0.7", d.ToleratedDistance)
	}
	if d.UprightAccelZ != 7 {
		t.Errorf("UprightAccelZ = %v, want 7", d.UprightAccelZ)
	}
	if math.Abs(d.ToleranceRad()-0.1745329) > 1e-6 {
		t.Errorf("ToleranceRad() = %v, want ~0.1745", d.ToleranceRad())
	}
}

func TestValidate(t *testing.T) {
	tn := Tuning{ToleranceAngleDeg: 200, ToleratedDistance: -1}
	tn.Validate()
	if tn.Name != "Default" {
		t.Errorf("Name = %q, want Default", tn.Name)
	}
	if tn.ToleranceAngleDeg != 90 {
		t.Errorf("ToleranceAngleDeg = %v, want clamped 90", tn.ToleranceAngleDeg)
	}
	if tn.ToleratedDistance != 0.1 {
		t.Errorf("ToleratedDistance = %v, want clamped 0.1", tn.ToleratedDistance)
	}
	if tn.UprightAccelZ != 7 {
		t.Errorf("UprightAccelZ = %v, want default 7", tn.UprightAccelZ)
	}
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Wide\ntolerance_angle_deg: 30\n"), 0o644))

	tn, err := LoadTuning(path)
	require.NoError(t, err)
	require.Equal(t, "Wide", tn.Name)
	require.Equal(t, 30.0, tn.ToleranceAngleDeg)
	require.Equal(t, 0.7, tn.ToleratedDistance, "unset fields keep defaults")
	require.Equal(t, 7.0, tn.UprightAccelZ)
}

func TestLoadTuning_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTuning(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tolerance_angle_deg: [not, a, number]\n"), 0o644))
	_, err = LoadTuning(bad)
	require.ErrorContains(t, err, "parse tuning")
}
