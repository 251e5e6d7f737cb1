// Package paintdebug is an explicitly external, non-core reference painter:
// it walks a FragmentGroup tree and rasterizes it for visual test
// verification. Real painting (glyph shaping, font loading, subpixel
// hinting) is outside flexml's scope; this package exists only so
// Fragment Model output can be eyeballed or diffed in tests, the same role
// the teacher's utils/images SVG/JPEG helpers play relative to its core
// conversion pipeline.
package paintdebug

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/fragment"
)

// Paint rasterizes group onto a canvas of the given pixel size. Background
// and border fragments are filled as (rounded) rectangles via rasterx;
// text fragments are painted as a flat tinted box standing in for the
// shaped glyph run, since flexml has no glyph shaper of its own.
func Paint(group fragment.FragmentGroup, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	paintGroup(dst, group)
	return dst
}

func paintGroup(dst *image.RGBA, group fragment.FragmentGroup) {
	for _, f := range group.Fragments {
		switch f.Kind {
		case fragment.KindBackground:
			fillRect(dst, f.Rect, f.Radius, f.Color)
		case fragment.KindBorder:
			strokeRect(dst, f.Rect, f.Radius, f.Color, f.BorderWidth)
		case fragment.KindText:
			if f.Run != nil {
				fillRect(dst, textBox(f), fragment.Radius{}, dimmed(f.Run.Color))
			}
		}
	}
	for _, child := range group.Children {
		paintGroup(dst, child)
	}
}

// textBox approximates a shaped run's footprint as a thin strip at its
// baseline, tall enough to suggest x-height, wide enough to fill its rect.
func textBox(f fragment.Fragment) fragment.Rect {
	h := f.Run.SizePx * 0.55
	return fragment.Rect{X: f.Rect.X, Y: f.Run.Baseline - h, Width: f.Rect.Width, Height: h}
}

func dimmed(c context.Color) context.Color {
	return context.Color{R: c.R, G: c.G, B: c.B, A: c.A / 2}
}

func fillRect(dst *image.RGBA, r fragment.Rect, radius fragment.Radius, c context.Color) {
	if c.A == 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	scanner := rasterx.NewScannerGV(dst.Bounds().Dx(), dst.Bounds().Dy(), dst, dst.Bounds())
	filler := rasterx.NewFiller(dst.Bounds().Dx(), dst.Bounds().Dy(), scanner)
	filler.SetColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	addRoundedRect(filler, r, radius)
	filler.Draw()
}

func strokeRect(dst *image.RGBA, r fragment.Rect, radius fragment.Radius, c context.Color, width float64) {
	if c.A == 0 || width <= 0 {
		return
	}
	scanner := rasterx.NewScannerGV(dst.Bounds().Dx(), dst.Bounds().Dy(), dst, dst.Bounds())
	dasher := rasterx.NewDasher(dst.Bounds().Dx(), dst.Bounds().Dy(), scanner)
	dasher.SetStroke(rasterx.ToFixed(width), 0, rasterx.ButtCap, nil, rasterx.ArcClip, nil, 0, nil)
	dasher.SetColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	addRoundedRect(dasher, r, radius)
	dasher.Stroke()
}

// addRoundedRect draws r into adder as a path, degrading to a plain
// rectangle when every corner radius is zero.
func addRoundedRect(adder rasterx.Adder, r fragment.Rect, radius fragment.Radius) {
	if radius.TopLeft == 0 && radius.TopRight == 0 && radius.BottomLeft == 0 && radius.BottomRight == 0 {
		rasterx.AddRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, 0, adder)
		return
	}
	rr := radius.TopLeft
	if radius.TopRight > rr {
		rr = radius.TopRight
	}
	if radius.BottomLeft > rr {
		rr = radius.BottomLeft
	}
	if radius.BottomRight > rr {
		rr = radius.BottomRight
	}
	rasterx.AddRoundRect(r.X, r.Y, r.X+r.Width, r.Y+r.Height, rr, rr, 0, rasterx.RoundGap, adder)
}

// Resize wraps disintegration/imaging's Lanczos resize, the same helper the
// teacher's utils/images package uses to fit raster backgrounds before
// compositing per bgSize/bgRepeat.
func Resize(img image.Image, w, h int) image.Image {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// CompositeScaled draws src into dst at dstRect using x/image/draw's
// high-quality scaler, for bgSize: cover/contain style compositing.
func CompositeScaled(dst *image.RGBA, src image.Image, dstRect image.Rectangle) {
	xdraw.CatmullRom.Scale(dst, dstRect, src, src.Bounds(), xdraw.Over, nil)
}
