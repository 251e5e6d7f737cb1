package registry

import (
	"github.com/zachzurn/flexml/context"
	"github.com/zachzurn/flexml/style"
)

// ResolveStyle builds a fresh Context from atomics (applying each atomic's
// apply function in order) then cascades it from parent.
func (r *Registry) ResolveStyle(parent *context.Context, atomics []style.AtomicStyle) context.Context {
	c := context.New()
	for _, as := range atomics {
		if int(as.Id) < 0 || int(as.Id) >= len(r.atomics) {
			continue
		}
		r.atomics[as.Id].ApplyFn(&c, as.Value)
	}
	c.Cascade(parent)
	return c
}

// Normative root page defaults (§4.5): 8.5in x 11in, 0.25in padding, 16px
// font, 160dpi, white background. Minima: dpi >= 100, font size and page
// dimensions clamped after resolution.
const (
	rootFontSizePx = 16.0
	rootDpi        = 160.0
	rootPaddingIn  = 0.25
	minPageSidePx  = 50.0
)

// ResolveRootStyle marks ctx as the document root, applies any atomics from
// the reserved root composite, then installs documented defaults for every
// page-level field the document did not set explicitly.
func (r *Registry) ResolveRootStyle(rootAtomics []style.AtomicStyle) context.Context {
	c := context.New()
	c.IsRoot = true
	for _, as := range rootAtomics {
		if int(as.Id) < 0 || int(as.Id) >= len(r.atomics) {
			continue
		}
		r.atomics[as.Id].ApplyFn(&c, as.Value)
	}

	if !c.Bits.Has(context.BitPixelsPerInch) {
		c.PixelsPerInch = rootDpi
	}
	if c.PixelsPerInch < 100 {
		c.PixelsPerInch = 100
	}
	c.Dpi = c.PixelsPerInch

	if !c.Bits.Has(context.BitPageWidth) {
		c.PageWidth = style.Inch(8.5)
	}
	if !c.Bits.Has(context.BitPageHeight) {
		c.PageHeight = style.Inch(11)
	}
	if !c.Bits.Has(context.BitPaddingTop) {
		c.PaddingTop = style.Inch(rootPaddingIn)
	}
	if !c.Bits.Has(context.BitPaddingBottom) {
		c.PaddingBottom = style.Inch(rootPaddingIn)
	}
	if !c.Bits.Has(context.BitPaddingLeft) {
		c.PaddingLeft = style.Inch(rootPaddingIn)
	}
	if !c.Bits.Has(context.BitPaddingRight) {
		c.PaddingRight = style.Inch(rootPaddingIn)
	}
	if !c.Bits.Has(context.BitFontSize) {
		c.FontSize = style.Px(rootFontSizePx)
	}
	if !c.Bits.Has(context.BitBgColor) {
		c.BgColor = context.Color{R: 255, G: 255, B: 255, A: 255}
	}

	widthPx := c.PageWidth.ToPixels(0, rootFontSizePx, rootFontSizePx, c.Dpi)
	if widthPx < minPageSidePx {
		widthPx = minPageSidePx
	}
	heightPx := c.PageHeight.ToPixels(0, rootFontSizePx, rootFontSizePx, c.Dpi)
	if heightPx < minPageSidePx {
		heightPx = minPageSidePx
	}
	c.PageWidth = style.Resolved(widthPx)
	c.PageHeight = style.Resolved(heightPx)

	fontPx := c.FontSize.ToPixels(0, rootFontSizePx, rootFontSizePx, c.Dpi)
	if fontPx < 1 {
		fontPx = 1
	}
	c.ResolvedFontSize = fontPx
	c.ResolvedRootFontSize = fontPx

	return c
}
