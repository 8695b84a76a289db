// Package chart exports a flight trajectory: a PNG line chart drawn with
// gonum/plot, a CSV trace, and a text chart for the terminal.
package chart

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Chart labels.
const (
	Title  = "Flight Trajectory"
	XLabel = "Time of flight (s)"
	YLabel = "Height (m)"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("chart: empty trajectory")

// Image size of the PNG export.
const (
	pngWidth  = 8 * vg.Inch
	pngHeight = 5 * vg.Inch
	pngDPI    = 96
)

var traceColor = color.RGBA{R: 0xe5, G: 0xa8, B: 0x0d, A: 0xff}

// NewPlot builds the height-over-time chart for a flight.
func NewPlot(traj lander.Trajectory) (*plot.Plot, error) {
	if len(traj) == 0 {
		return nil, ErrEmpty
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Min = 0
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(traj))
	for i, s := range traj {
		pts[i].X = s.Time
		pts[i].Y = s.Height
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = traceColor
	p.Add(line)

	return p, nil
}

// WritePNG renders the chart as PNG into w.
func WritePNG(w io.Writer, traj lander.Trajectory) error {
	p, err := NewPlot(traj)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(pngWidth, pngHeight),
		vgimg.UseDPI(pngDPI),
	)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("chart: write png: %w", err)
	}
	return nil
}

// SavePNG writes the chart to path, creating parent directories.
func SavePNG(path string, traj lander.Trajectory) error {
	if len(traj) == 0 {
		return ErrEmpty
	}
	return saveFile(path, func(w io.Writer) error {
		return WritePNG(w, traj)
	})
}

// WriteCSV writes the trace as time_s,height_m rows under a header.
func WriteCSV(w io.Writer, traj lander.Trajectory) error {
	if len(traj) == 0 {
		return ErrEmpty
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_s", "height_m"}); err != nil {
		return fmt.Errorf("chart: write csv header: %w", err)
	}
	for _, s := range traj {
		row := []string{
			strconv.FormatFloat(s.Time, 'g', -1, 64),
			strconv.FormatFloat(s.Height, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("chart: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("chart: flush csv: %w", err)
	}
	return nil
}

// SaveCSV writes the trace to path, creating parent directories.
func SaveCSV(path string, traj lander.Trajectory) error {
	if len(traj) == 0 {
		return ErrEmpty
	}
	return saveFile(path, func(w io.Writer) error {
		return WriteCSV(w, traj)
	})
}

func saveFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("chart: create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("chart: write %s: %w", path, err)
	}
	return f.Close()
}
