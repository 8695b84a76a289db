package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLanderConfig()) {
		t.Errorf("embedded defaults drifted from DefaultLanderConfig():\n got %+v\nwant %+v", cfg, DefaultLanderConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDryMass(t *testing.T) {
	cfg := DefaultLanderConfig()
	if got := cfg.DryMass(); got != 14250 {
		t.Errorf("DryMass() = %f, expected 14250", got)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")
	data := "physics:\n  gravity: 1.62\nlander:\n  start_fuel: 1000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1.62 {
		t.Errorf("Gravity = %f, expected 1.62", cfg.Physics.Gravity)
	}
	if cfg.Lander.StartFuel != 1000 {
		t.Errorf("StartFuel = %f, expected 1000", cfg.Lander.StartFuel)
	}
	// Untouched values keep their defaults
	if cfg.Lander.MaxThrust != 27000 {
		t.Errorf("MaxThrust = %f, expected default 27000", cfg.Lander.MaxThrust)
	}
	if cfg.Terrain.GroundPoints != 35 {
		t.Errorf("GroundPoints = %d, expected default 35", cfg.Terrain.GroundPoints)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() = %v, expected a parse error", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte("lander:\n  max_thrust: -5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Load() = %v, expected a ValidationError", err)
	}
	if verr.Field != "lander.max_thrust" {
		t.Errorf("Field = %q, expected lander.max_thrust", verr.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LanderConfig)
		field  string
	}{
		{"negative max thrust", func(c *LanderConfig) { c.Lander.MaxThrust = -1 }, "lander.max_thrust"},
		{"zero fuel", func(c *LanderConfig) { c.Lander.StartFuel = 0 }, "lander.start_fuel"},
		{"negative fuel", func(c *LanderConfig) { c.Lander.StartFuel = -10 }, "lander.start_fuel"},
		{"no dry mass", func(c *LanderConfig) { c.Lander.StartMass = 750 }, "lander.start_mass"},
		{"zero gravity", func(c *LanderConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"NaN gravity", func(c *LanderConfig) { c.Physics.Gravity = math.NaN() }, "physics.gravity"},
		{"negative burn rate", func(c *LanderConfig) { c.Physics.BurnRate = -0.1 }, "physics.burn_rate"},
		{"zero burn rate", func(c *LanderConfig) { c.Physics.BurnRate = 0 }, "physics.burn_rate"},
		{"grounded start", func(c *LanderConfig) { c.Lander.StartHeight = 0 }, "lander.start_height"},
		{"zero speed limit", func(c *LanderConfig) { c.Landing.MaxSpeed = 0 }, "landing.max_speed"},
		{"zero angle limit", func(c *LanderConfig) { c.Landing.MaxAngle = 0 }, "landing.max_angle"},
		{"single ground point", func(c *LanderConfig) { c.Terrain.GroundPoints = 1 }, "terrain.ground_points"},
		{"inverted sky band", func(c *LanderConfig) { c.Terrain.SkyMin, c.Terrain.SkyMax = 50, 10 }, "terrain.sky_max"},
		{"zero thrust step", func(c *LanderConfig) { c.Controls.ThrustStep = 0 }, "controls.thrust_step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected a ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestZeroMaxThrustIsAllowed(t *testing.T) {
	cfg := DefaultLanderConfig()
	cfg.Lander.MaxThrust = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("a lander without an engine is still a valid config, got %v", err)
	}
}

func TestMarshalRoundTripKeepsValues(t *testing.T) {
	cfg := DefaultLanderConfig()
	cfg.Physics.Gravity = 1.62

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "burn_rate:") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Physics.Gravity != 1.62 {
		t.Errorf("Gravity = %f after round trip, expected 1.62", back.Physics.Gravity)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		fuel   float64
	}{
		{DifficultyNone, 1500},
		{DifficultyNormal, 1500},
		{DifficultyEasy, 2000},
		{DifficultyHard, 1000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultLanderConfig()
			dry := cfg.DryMass()
			ApplyPreset(&cfg, tc.preset)

			if math.Abs(cfg.Lander.StartFuel-tc.fuel) > 1e-9 {
				t.Errorf("StartFuel = %f, expected %f", cfg.Lander.StartFuel, tc.fuel)
			}
			if math.Abs(cfg.DryMass()-dry) > 1e-9 {
				t.Errorf("DryMass() = %f, expected unchanged %f", cfg.DryMass(), dry)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate, got %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(\"fixed\") should fail")
	}
}
