package assets

import (
	"bytes"
	"math"

	"github.com/srwiley/oksvg"
)

// SVGIntrinsicSize extracts an SVG's viewBox width/height in user units,
// the value Dimension::Content resolves against for bgImage, grounded in
// the teacher's RasterizeSVGToImage (utils/images/svg.go) which reads the
// same icon.ViewBox before ever rasterizing a pixel.
func SVGIntrinsicSize(svgData []byte) (w, h float64, ok bool) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return 0, 0, false
	}
	w, h = icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return math.Ceil(w), math.Ceil(h), true
}

// IntrinsicSize reports the natural pixel size of the image at p, when
// known. SVGs report their viewBox; other formats are left to an external
// decoder (flexml does not ship a general raster decoder in the core).
func (r *Resolver) IntrinsicSize(p string) (w, h float64, ok bool) {
	data, err := r.read(p)
	if err != nil {
		return 0, 0, false
	}
	if looksLikeSVG(data) {
		return SVGIntrinsicSize(data)
	}
	return 0, 0, false
}
