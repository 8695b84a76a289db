package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in lander configuration.
// It mirrors defaults/lander.yaml and backs it up if the embed cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:  1.0,
			BurnRate: 0.007,
		},
		Lander: CraftConfig{
			StartMass:   15000,
			StartFuel:   1500,
			MaxThrust:   27000,
			StartHeight: 100,
			StartX:      50,
		},
		Landing: LandingConfig{
			MaxSpeed: 6,
			MaxAngle: math.Pi / 5,
		},
		Terrain: TerrainConfig{
			Width:        201,
			Ceiling:      110,
			GroundPoints: 35,
			MaxGround:    7,
			SkyPoints:    30,
			SkyMin:       10,
			SkyMax:       100,
		},
		Controls: ControlsConfig{
			ThrustStep: 1350,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
