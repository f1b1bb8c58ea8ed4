package graphics

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Drawable is anything that can paint itself into a rectangular region
// of a destination image.
//
// Drawables are immutable configuration objects, like widgets: construct
// them with struct literals and share them freely. Draw may be called any
// number of times with different destinations.
type Drawable interface {
	// Draw paints the drawable into bounds on dst. Pixels outside bounds
	// must not be touched.
	Draw(dst draw.Image, bounds image.Rectangle)
}

// ColorDrawable fills its bounds with a single solid color.
type ColorDrawable struct {
	Color Color
}

func (d ColorDrawable) Draw(dst draw.Image, bounds image.Rectangle) {
	src := image.NewUniform(d.Color.NRGBA())
	draw.Draw(dst, bounds.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
}

// GradientAxis selects the direction of a linear gradient.
type GradientAxis int

const (
	// GradientHorizontal interpolates from the left edge to the right edge.
	GradientHorizontal GradientAxis = iota
	// GradientVertical interpolates from the top edge to the bottom edge.
	GradientVertical
)

// LinearGradientDrawable fills its bounds with a two-stop linear gradient.
type LinearGradientDrawable struct {
	// Start is the color at the leading edge (left or top).
	Start Color
	// End is the color at the trailing edge (right or bottom).
	End Color
	// Axis selects horizontal or vertical interpolation.
	Axis GradientAxis
}

func (d LinearGradientDrawable) Draw(dst draw.Image, bounds image.Rectangle) {
	r := bounds.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	span := r.Dx()
	if d.Axis == GradientVertical {
		span = r.Dy()
	}
	if span <= 1 {
		ColorDrawable{Color: d.Start.Lerp(d.End, 0.5)}.Draw(dst, r)
		return
	}
	for i := 0; i < span; i++ {
		t := float64(i) / float64(span-1)
		c := d.Start.Lerp(d.End, t).NRGBA()
		var line image.Rectangle
		if d.Axis == GradientVertical {
			line = image.Rect(r.Min.X, r.Min.Y+i, r.Max.X, r.Min.Y+i+1)
		} else {
			line = image.Rect(r.Min.X+i, r.Min.Y, r.Min.X+i+1, r.Max.Y)
		}
		draw.Draw(dst, line, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

// ScaleQuality selects the interpolation kernel used by ImageDrawable.
type ScaleQuality int

const (
	// ScaleNearest is fastest and blocky; suitable for pixel art.
	ScaleNearest ScaleQuality = iota
	// ScaleBilinear is a good default for UI imagery.
	ScaleBilinear
	// ScaleCatmullRom is highest quality and slowest.
	ScaleCatmullRom
)

// ImageDrawable scales a source image to fill its bounds.
type ImageDrawable struct {
	// Source is the image to draw. A nil Source draws nothing.
	Source image.Image
	// Quality selects the scaling kernel. Defaults to ScaleNearest.
	Quality ScaleQuality
}

func (d ImageDrawable) Draw(dst draw.Image, bounds image.Rectangle) {
	if d.Source == nil {
		return
	}
	r := bounds.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	d.scaler().Scale(dst, r, d.Source, d.Source.Bounds(), xdraw.Over, nil)
}

func (d ImageDrawable) scaler() xdraw.Scaler {
	switch d.Quality {
	case ScaleBilinear:
		return xdraw.ApproxBiLinear
	case ScaleCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}
