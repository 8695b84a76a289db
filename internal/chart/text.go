package chart

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

const (
	TraceChar  = '*'
	axisLabelW = 7 // width of the y tick labels plus the axis
)

// DrawText draws the trajectory as a character chart filling dst:
// title on the first row, y axis on the left, x axis and its label at the
// bottom. Screens too small for a plot area get only the title.
func DrawText(dst *core.Screen, traj lander.Trajectory) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	dst.DrawTextCentered(0, Title)

	// Rows: title, y label, plot..., x axis, x ticks, x label.
	top, bottom := 2, h-4
	left, right := axisLabelW, w-2
	if bottom <= top || right <= left || len(traj) == 0 {
		return
	}

	tMax := math.Max(traj.Duration(), 1e-9)
	hMax := math.Max(traj.MaxHeight(), 1e-9)

	dst.DrawTextColored(0, 1, YLabel, core.ColorAxis)
	dst.DrawVLine(left-1, top, bottom-top+1, '│', core.ColorAxis)
	dst.DrawHLine(left-1, bottom+1, right-left+2, '─', core.ColorAxis)
	dst.SetColored(left-1, bottom+1, '└', core.ColorAxis)

	dst.DrawTextColored(0, top, fmt.Sprintf("%5.0f", hMax), core.ColorAxis)
	dst.DrawTextColored(0, bottom, fmt.Sprintf("%5.0f", 0.0), core.ColorAxis)
	dst.DrawTextColored(left-1, bottom+2, "0", core.ColorAxis)
	end := fmt.Sprintf("%.1f", traj.Duration())
	dst.DrawTextColored(right-len(end)+1, bottom+2, end, core.ColorAxis)
	dst.DrawTextColored((w-len(XLabel))/2, h-1, XLabel, core.ColorAxis)

	cols := right - left + 1
	rows := bottom - top + 1
	for i := 0; i < cols; i++ {
		t := tMax * float64(i) / math.Max(float64(cols-1), 1)
		y := math.Max(heightAt(traj, t), 0)
		row := bottom - int(math.Round(y/hMax*float64(rows-1)))
		dst.SetColored(left+i, core.Clamp(row, top, bottom), TraceChar, core.ColorTrace)
	}
}

// heightAt interpolates the trajectory at time t.
func heightAt(traj lander.Trajectory, t float64) float64 {
	if t <= traj[0].Time {
		return traj[0].Height
	}
	for i := 1; i < len(traj); i++ {
		b := traj[i]
		if t > b.Time {
			continue
		}
		a := traj[i-1]
		if b.Time == a.Time {
			return b.Height
		}
		return core.Lerp(a.Height, b.Height, (t-a.Time)/(b.Time-a.Time))
	}
	return traj[len(traj)-1].Height
}
