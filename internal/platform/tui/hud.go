package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Gauge layout.
const (
	speedScale = 15.0 // m/s at a full speed bar
	labelWidth = 7
	valueWidth = 9
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth)

// gauge is a labelled progress bar with a readout.
type gauge struct {
	label string
	bar   progress.Model
}

func newGauge(label, fill string) gauge {
	return gauge{
		label: label,
		bar:   progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage()),
	}
}

func (g gauge) view(fraction float64, readout string) string {
	return labelStyle.Render(g.label) + g.bar.ViewAs(core.ClampF(fraction, 0, 1)) + " " +
		fmt.Sprintf("%*s", valueWidth, readout)
}

// hud holds the cockpit gauges below the playfield.
type hud struct {
	height gauge
	fuel   gauge
	speed  gauge
	thrust gauge
}

func newHUD() hud {
	return hud{
		height: newGauge("Height", "#9999ff"),
		fuel:   newGauge("Fuel", "#ed5769"),
		speed:  newGauge("Speed", "#54dd5b"),
		thrust: newGauge("Thrust", "#8602e5"),
	}
}

// setWidth sizes the bars so two gauges share one terminal row.
func (h *hud) setWidth(total int) {
	w := total/2 - labelWidth - valueWidth - 3
	if w < 4 {
		w = 4
	}
	h.height.bar.Width = w
	h.fuel.bar.Width = w
	h.speed.bar.Width = w
	h.thrust.bar.Width = w
}

// view renders the gauges as two rows for the given frame.
func (h hud) view(f lander.Frame, startHeight float64, slider *lander.ThrustSlider) string {
	heightFrac := 0.0
	if startHeight > 0 {
		heightFrac = f.State.Height / startHeight
	}

	top := h.height.view(heightFrac, fmt.Sprintf("%.1f m", f.State.Height)) + "  " +
		h.fuel.view(f.FuelFraction, fmt.Sprintf("%2.0f %%", 100*f.FuelFraction))
	bottom := h.speed.view(f.Speed/speedScale, fmt.Sprintf("%2.1f m/s", f.Speed)) + "  " +
		h.thrust.view(slider.Fraction(), fmt.Sprintf("%.f N", slider.Value()))
	return top + "\n" + bottom
}
