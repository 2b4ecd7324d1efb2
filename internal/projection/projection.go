// Package projection maps geographic coordinates onto the fixed-size map canvas.
//
// The mapping is a plain linear interpolation over a bounding box, good enough
// for plotting markers on a regional overview. It is not a cartographic projection.
package projection

import (
	"fmt"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/golang/geo/s2"
)

// Default map region (roughly Alberta/BC) and canvas.
const (
	DefaultMinLat = 49.0
	DefaultMaxLat = 54.0
	DefaultMinLng = -120.0
	DefaultMaxLng = -110.0

	DefaultWidth   = 800.0
	DefaultHeight  = 600.0
	DefaultPadding = 40.0
)

// Bounds is a latitude/longitude box in degrees.
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Canvas is the output surface. Points are placed inside the rectangle left
// after removing Padding from every side.
type Canvas struct {
	Width, Height, Padding float64
}

// Projector converts (lat, lng) to canvas pixels. It holds no mutable state
// and is safe for concurrent use.
type Projector struct {
	bounds Bounds
	canvas Canvas
	rect   s2.Rect
}

// Option configures a Projector.
type Option func(*Projector)

// WithBounds sets the geographic bounding box.
func WithBounds(b Bounds) Option {
	return func(p *Projector) {
		p.bounds = b
	}
}

// WithCanvas sets the canvas size and padding.
func WithCanvas(c Canvas) Option {
	return func(p *Projector) {
		p.canvas = c
	}
}

// New returns a Projector for the given options, defaulting to the
// Alberta/BC box on an 800x600 canvas with 40px padding.
func New(opts ...Option) (*Projector, error) {
	p := &Projector{
		bounds: Bounds{MinLat: DefaultMinLat, MaxLat: DefaultMaxLat, MinLng: DefaultMinLng, MaxLng: DefaultMaxLng},
		canvas: Canvas{Width: DefaultWidth, Height: DefaultHeight, Padding: DefaultPadding},
	}
	for _, opt := range opts {
		opt(p)
	}

	b, c := p.bounds, p.canvas
	if b.MaxLat <= b.MinLat || b.MaxLng <= b.MinLng {
		return nil, fmt.Errorf("degenerate bounds: lat [%g, %g], lng [%g, %g]", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	}
	if c.Padding < 0 || c.Width-2*c.Padding <= 0 || c.Height-2*c.Padding <= 0 {
		return nil, fmt.Errorf("canvas %gx%g with padding %g has no drawable area", c.Width, c.Height, c.Padding)
	}

	p.rect = s2.RectFromLatLng(s2.LatLngFromDegrees(b.MinLat, b.MinLng)).
		AddPoint(s2.LatLngFromDegrees(b.MaxLat, b.MaxLng))
	return p, nil
}

// Default returns the projector used by the dashboard.
func Default() *Projector {
	p, err := New()
	if err != nil {
		panic(err)
	}
	return p
}

// Bounds returns the bounding box.
func (p *Projector) Bounds() Bounds { return p.bounds }

// Canvas returns the canvas dimensions.
func (p *Projector) Canvas() Canvas { return p.canvas }

// Project maps lat/lng to a pixel position. Latitude grows northward, so it
// is inverted against the downward pixel y axis. Points outside the bounds
// land outside the padded rectangle; they are not clamped.
func (p *Projector) Project(lat, lng float64) model.PixelPoint {
	b, c := p.bounds, p.canvas
	w := c.Width - 2*c.Padding
	h := c.Height - 2*c.Padding

	return model.PixelPoint{
		X: c.Padding + (lng-b.MinLng)/(b.MaxLng-b.MinLng)*w,
		Y: c.Padding + (b.MaxLat-lat)/(b.MaxLat-b.MinLat)*h,
	}
}

// Contains reports whether lat/lng lies within the bounding box.
func (p *Projector) Contains(lat, lng float64) bool {
	return p.rect.ContainsLatLng(s2.LatLngFromDegrees(lat, lng))
}
