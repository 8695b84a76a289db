// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the lander.
package config

import (
	"fmt"
	"math"
)

// LanderConfig contains every constant the simulation is built from.
// Values are fixed once a flight starts.
type LanderConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Lander   CraftConfig    `yaml:"lander"`
	Landing  LandingConfig  `yaml:"landing"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Controls ControlsConfig `yaml:"controls"`
}

// PhysicsConfig defines the environment.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // m/s^2
	BurnRate float64 `yaml:"burn_rate"` // fuel units per newton-second
}

// CraftConfig defines the lander at ignition.
type CraftConfig struct {
	StartMass   float64 `yaml:"start_mass"`   // kg, fuel included
	StartFuel   float64 `yaml:"start_fuel"`   // fuel units
	MaxThrust   float64 `yaml:"max_thrust"`   // N
	StartHeight float64 `yaml:"start_height"` // m
	StartX      float64 `yaml:"start_x"`      // m from the left edge
}

// LandingConfig defines the touchdown limits. Both are strict upper bounds.
type LandingConfig struct {
	MaxSpeed float64 `yaml:"max_speed"` // m/s, vertical
	MaxAngle float64 `yaml:"max_angle"` // rad
}

// TerrainConfig defines the generated playfield.
type TerrainConfig struct {
	Width        float64 `yaml:"width"`
	Ceiling      float64 `yaml:"ceiling"`
	GroundPoints int     `yaml:"ground_points"`
	MaxGround    float64 `yaml:"max_ground"`
	SkyPoints    int     `yaml:"sky_points"`
	SkyMin       float64 `yaml:"sky_min"`
	SkyMax       float64 `yaml:"sky_max"`
}

// ControlsConfig defines how the thrust slider moves.
type ControlsConfig struct {
	ThrustStep float64 `yaml:"thrust_step"` // N per nudge
}

// DryMass returns the mass left once every unit of fuel is burnt.
func (c LanderConfig) DryMass() float64 {
	return c.Lander.StartMass - 0.5*c.Lander.StartFuel
}

// ValidationError describes a configuration value the simulation cannot run with.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns the first problem found.
func (c LanderConfig) Validate() error {
	checks := []struct {
		bad     bool
		field   string
		message string
	}{
		{!finite(c.Physics.Gravity) || c.Physics.Gravity <= 0, "physics.gravity", "must be positive"},
		{!finite(c.Physics.BurnRate) || c.Physics.BurnRate <= 0, "physics.burn_rate", "must be positive"},
		{!finite(c.Lander.MaxThrust) || c.Lander.MaxThrust < 0, "lander.max_thrust", "must not be negative"},
		{!finite(c.Lander.StartFuel) || c.Lander.StartFuel <= 0, "lander.start_fuel", "must be positive"},
		{!finite(c.Lander.StartMass) || c.DryMass() <= 0, "lander.start_mass", "must exceed half the starting fuel"},
		{!finite(c.Lander.StartHeight) || c.Lander.StartHeight <= 0, "lander.start_height", "must be positive"},
		{!finite(c.Lander.StartX), "lander.start_x", "must be a number"},
		{!finite(c.Landing.MaxSpeed) || c.Landing.MaxSpeed <= 0, "landing.max_speed", "must be positive"},
		{!finite(c.Landing.MaxAngle) || c.Landing.MaxAngle <= 0, "landing.max_angle", "must be positive"},
		{!finite(c.Terrain.Width) || c.Terrain.Width <= 0, "terrain.width", "must be positive"},
		{!finite(c.Terrain.Ceiling) || c.Terrain.Ceiling <= 0, "terrain.ceiling", "must be positive"},
		{c.Terrain.GroundPoints < 2, "terrain.ground_points", "needs at least two points"},
		{!finite(c.Terrain.MaxGround) || c.Terrain.MaxGround < 0, "terrain.max_ground", "must not be negative"},
		{c.Terrain.SkyPoints < 0, "terrain.sky_points", "must not be negative"},
		{!finite(c.Terrain.SkyMin) || !finite(c.Terrain.SkyMax) || c.Terrain.SkyMax < c.Terrain.SkyMin, "terrain.sky_max", "must not be below sky_min"},
		{!finite(c.Controls.ThrustStep) || c.Controls.ThrustStep <= 0, "controls.thrust_step", "must be positive"},
	}

	for _, chk := range checks {
		if chk.bad {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
