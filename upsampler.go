package upsample

import (
	"fmt"
	"strings"
)

// UpSampler doubles the resolution of single-channel integer planes.
//
// Every implementation is bound to one source Geometry at construction and
// may be reused for any number of buffers of that geometry. Destination
// buffers are caller-allocated and row-major with no padding.
//
// Thread safety: implementations hold no mutable state and are safe for
// concurrent use on disjoint buffer pairs.
type UpSampler interface {
	// SuperSample doubles both axes. dst must hold 4*Width*Height samples
	// and is written with stride 2*Width. Short buffers panic.
	SuperSample(src, dst []int32)

	// SuperSampleHorizontal doubles the width only. dst is written with
	// stride 2*Width and Height rows.
	SuperSampleHorizontal(src, dst []int32) error

	// SuperSampleVertical doubles the height only. dst is written with
	// stride Width and 2*Height rows.
	SuperSampleVertical(src, dst []int32) error

	// SupportsScalingFactor reports whether factor is a supported scale.
	SupportsScalingFactor(factor int) bool

	// Geometry returns the source geometry fixed at construction.
	Geometry() Geometry
}

// Mode selects an UpSampler implementation.
type Mode uint8

const (
	// ModeEdgeDirected estimates the local edge orientation and
	// interpolates along it. Requires dimensions that are multiples of 8.
	ModeEdgeDirected Mode = iota

	// ModeBilinear averages the two neighbours of every new sample.
	ModeBilinear

	// ModeNearest replicates samples.
	ModeNearest
)

// String returns the lower-case name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeEdgeDirected:
		return "edge"
	case ModeBilinear:
		return "bilinear"
	case ModeNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseMode returns the Mode named by s. It accepts the names produced by
// Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge", "edge-directed", "edi":
		return ModeEdgeDirected, nil
	case "bilinear", "linear":
		return ModeBilinear, nil
	case "nearest", "replicate":
		return ModeNearest, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrUnsupportedOperation, s)
	}
}

// New returns the UpSampler for mode bound to the given source geometry.
// A stride of 0 means the rows are packed (stride == width).
func New(mode Mode, width, height, stride int) (UpSampler, error) {
	if stride == 0 {
		stride = width
	}

	var (
		u   UpSampler
		err error
	)
	switch mode {
	case ModeEdgeDirected:
		u, err = NewEdgeDirectedWithStride(width, height, stride)
	case ModeBilinear:
		u, err = NewBilinear(width, height, stride)
	case ModeNearest:
		u, err = NewNearest(width, height, stride)
	default:
		return nil, fmt.Errorf("%w: mode %d", ErrUnsupportedOperation, mode)
	}
	if err != nil {
		// u holds a typed nil here.
		return nil, err
	}
	return u, nil
}

// Geometry describes the layout of a plane: Width samples are meaningful in
// each of Height rows, and consecutive rows start Stride samples apart.
type Geometry struct {
	Width  int
	Height int
	Stride int
}

// SourceLen returns the minimum number of samples a buffer with this
// geometry must hold. The last row needs no padding.
func (g Geometry) SourceLen() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Stride*(g.Height-1) + g.Width
}

// Doubled returns the packed geometry produced by a 2x2 upsampling.
func (g Geometry) Doubled() Geometry {
	return Geometry{Width: 2 * g.Width, Height: 2 * g.Height, Stride: 2 * g.Width}
}

// validate checks the constraints shared by every upsampler.
func (g Geometry) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, g.Width, g.Height)
	}
	if g.Stride < g.Width {
		return fmt.Errorf("%w: stride %d is smaller than width %d", ErrInvalidDimension, g.Stride, g.Width)
	}
	return nil
}
