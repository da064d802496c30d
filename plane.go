package upsample

import "fmt"

// Plane is a view of a single-channel grid of integer samples. Sample
// (x, y) is Pix[y*Stride+x]. A Plane does not own Pix: several planes may
// share one slice, for instance the Y, Cb and Cr planes of a frame.
type Plane struct {
	Pix    []int32
	Width  int
	Height int
	Stride int
}

// NewPlane allocates a packed width x height plane.
func NewPlane(width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Plane{
		Pix:    make([]int32, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}, nil
}

// PlaneFromRaw wraps pix without copying. The slice must hold at least
// stride*(height-1)+width samples.
func PlaneFromRaw(pix []int32, width, height, stride int) (*Plane, error) {
	g := Geometry{Width: width, Height: height, Stride: stride}
	if err := g.validate(); err != nil {
		return nil, err
	}
	if len(pix) < g.SourceLen() {
		return nil, fmt.Errorf("%w: have %d samples, %dx%d with stride %d needs %d",
			ErrBufferTooSmall, len(pix), width, height, stride, g.SourceLen())
	}
	return &Plane{Pix: pix, Width: width, Height: height, Stride: stride}, nil
}

// Geometry returns the plane's layout.
func (p *Plane) Geometry() Geometry {
	return Geometry{Width: p.Width, Height: p.Height, Stride: p.Stride}
}

// Row returns the Width samples of row y, or nil if y is out of range.
func (p *Plane) Row(y int) []int32 {
	if y < 0 || y >= p.Height {
		return nil
	}
	start := y * p.Stride
	return p.Pix[start : start+p.Width]
}

// At returns sample (x, y), or 0 outside the plane.
func (p *Plane) At(x, y int) int32 {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return 0
	}
	return p.Pix[y*p.Stride+x]
}

// Set stores v at (x, y). Coordinates outside the plane are ignored.
func (p *Plane) Set(x, y int, v int32) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	p.Pix[y*p.Stride+x] = v
}

// Clone returns a packed copy of the plane.
func (p *Plane) Clone() *Plane {
	c := &Plane{
		Pix:    make([]int32, p.Width*p.Height),
		Width:  p.Width,
		Height: p.Height,
		Stride: p.Width,
	}
	for y := range p.Height {
		copy(c.Pix[y*p.Width:(y+1)*p.Width], p.Row(y))
	}
	return c
}

// Upsample doubles both axes of src with u and returns the result as a new
// packed plane. Unlike UpSampler.SuperSample it checks its input: src must
// have the width and height u was built for, a stride of at least that
// width, and enough samples.
func Upsample(u UpSampler, src *Plane) (*Plane, error) {
	g := u.Geometry()
	if src.Width != g.Width || src.Height != g.Height {
		return nil, fmt.Errorf("%w: plane is %dx%d, upsampler expects %dx%d",
			ErrGeometryMismatch, src.Width, src.Height, g.Width, g.Height)
	}
	if src.Stride != g.Stride {
		return nil, fmt.Errorf("%w: plane stride %d, upsampler expects %d",
			ErrGeometryMismatch, src.Stride, g.Stride)
	}
	if len(src.Pix) < g.SourceLen() {
		return nil, fmt.Errorf("%w: have %d samples, need %d", ErrBufferTooSmall, len(src.Pix), g.SourceLen())
	}

	d := g.Doubled()
	dst := &Plane{
		Pix:    make([]int32, d.Stride*d.Height),
		Width:  d.Width,
		Height: d.Height,
		Stride: d.Stride,
	}
	u.SuperSample(src.Pix, dst.Pix)

	Logger().Debug("upsample: plane doubled",
		"width", g.Width, "height", g.Height, "stride", g.Stride)
	return dst, nil
}
