package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 6 * vg.Inch
)

// WriteImage renders I(t) and U(t) as two vertically stacked panels with
// a shared time axis and writes them to path. The format follows the
// file extension: .png or .svg.
func WriteImage(path string, times, current, voltage []float64) error {
	top, err := panel("Capacitor current", "I, A", times, current)
	if err != nil {
		return err
	}
	bottom, err := panel("Capacitor voltage", "U, V", times, voltage)
	if err != nil {
		return err
	}

	switch ext := filepath.Ext(path); ext {
	case ".png":
		img := vgimg.New(imageWidth, imageHeight)
		drawPanels(draw.New(img), top, bottom)
		return writeTo(path, &vgimg.PngCanvas{Canvas: img})
	case ".svg":
		img := vgsvg.New(imageWidth, imageHeight)
		drawPanels(draw.New(img), top, bottom)
		return writeTo(path, img)
	default:
		return fmt.Errorf("unsupported image format %q (want .png or .svg)", ext)
	}
}

func panel(title, yLabel string, times, series []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time, sec"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(series))
	for i := range series {
		pts[i].X = times[i]
		pts[i].Y = series[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), line)

	return p, nil
}

func drawPanels(dc draw.Canvas, top, bottom *plot.Plot) {
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 2}
	panels := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(panels, tiles, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])
}

func writeTo(path string, canvas io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
