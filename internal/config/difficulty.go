package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how much fuel the lander carries; landing limits stay put.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// fuelScaleForPreset returns the multiplier applied to the configured fuel load.
func fuelScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 4.0 / 3.0
	case DifficultyHard:
		return 2.0 / 3.0
	default:
		return 1.0
	}
}

// ApplyPreset scales the starting fuel and keeps the dry mass unchanged,
// so a bigger tank also makes a heavier lander.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	scale := fuelScaleForPreset(preset)
	if scale == 1.0 {
		return
	}

	dry := cfg.DryMass()
	cfg.Lander.StartFuel *= scale
	cfg.Lander.StartMass = dry + 0.5*cfg.Lander.StartFuel
}
