package upsample

import "fmt"

// edgeMargin is the number of rows (horizontal pass) or columns (vertical
// pass) at each border where the 8-tap kernels would read outside the
// plane. Sites in the margin are always averaged.
const edgeMargin = 3

// EdgeDirected is a 2x upsampler that interpolates along locally estimated
// edges instead of across them.
//
// Each new sample is classified from its 2x3 neighbourhood: flat or noisy
// sites get the average of their two neighbours, edge sites get one of five
// 8-tap kernels rotated to the quantised edge slope. Rows are doubled first,
// then the interleaved rows are reconstructed from the doubled rows with
// the same estimator turned by 90 degrees.
//
// Results are not clamped: directional kernels may overshoot the input
// range and consumers that need a display range must clamp themselves.
//
// Based on David Schleef's edge-directed interpolation (gstediupsample).
type EdgeDirected struct {
	geom Geometry
}

// NewEdgeDirected returns an edge-directed upsampler for packed planes of
// width x height samples.
func NewEdgeDirected(width, height int) (*EdgeDirected, error) {
	return NewEdgeDirectedWithStride(width, height, width)
}

// NewEdgeDirectedWithStride returns an edge-directed upsampler for planes
// whose rows start stride samples apart.
//
// Width and height must be multiples of 8 and at least 8, and stride must
// not be smaller than width; otherwise the error matches ErrInvalidDimension.
func NewEdgeDirectedWithStride(width, height, stride int) (*EdgeDirected, error) {
	g := Geometry{Width: width, Height: height, Stride: stride}
	if err := validateEdgeDirected(g); err != nil {
		Logger().Debug("upsample: edge-directed geometry rejected",
			"width", width, "height", height, "stride", stride, "err", err)
		return nil, err
	}
	return &EdgeDirected{geom: g}, nil
}

func validateEdgeDirected(g Geometry) error {
	switch {
	case g.Height < 8:
		return fmt.Errorf("%w: height %d is less than 8", ErrInvalidDimension, g.Height)
	case g.Width < 8:
		return fmt.Errorf("%w: width %d is less than 8", ErrInvalidDimension, g.Width)
	case g.Stride < g.Width:
		return fmt.Errorf("%w: stride %d is smaller than width %d", ErrInvalidDimension, g.Stride, g.Width)
	case g.Height&7 != 0:
		return fmt.Errorf("%w: height %d is not a multiple of 8", ErrInvalidDimension, g.Height)
	case g.Width&7 != 0:
		return fmt.Errorf("%w: width %d is not a multiple of 8", ErrInvalidDimension, g.Width)
	}
	return nil
}

// Geometry returns the source geometry.
func (e *EdgeDirected) Geometry() Geometry {
	return e.geom
}

// SupportsScalingFactor reports whether factor is 2, the only scale
// EdgeDirected implements.
func (e *EdgeDirected) SupportsScalingFactor(factor int) bool {
	return factor == 2
}

// SuperSampleHorizontal always fails: the direction estimate needs both
// axes doubled.
func (e *EdgeDirected) SuperSampleHorizontal(src, dst []int32) error {
	return fmt.Errorf("%w: edge-directed upsampling cannot double the width alone", ErrUnsupportedOperation)
}

// SuperSampleVertical always fails: the direction estimate needs both
// axes doubled.
func (e *EdgeDirected) SuperSampleVertical(src, dst []int32) error {
	return fmt.Errorf("%w: edge-directed upsampling cannot double the height alone", ErrUnsupportedOperation)
}

// SuperSample writes the 2x upsampled src into dst.
//
// src must hold at least Geometry().SourceLen() samples and dst at least
// 4*Width*Height; dst is written row-major with stride 2*Width. Every
// source sample (r, c) is copied unchanged to dst (2r, 2c). Short buffers
// panic.
func (e *EdgeDirected) SuperSample(src, dst []int32) {
	g := e.geom
	_ = src[g.SourceLen()-1]
	_ = dst[4*g.Width*g.Height-1]

	e.interpolateRows(src, dst)
	e.interpolateColumns(dst)
	e.duplicateLastRows(dst)
}

// interpolateRows doubles every source row into the even destination rows.
// Border rows are averaged and written twice, filling the following odd
// row as well.
func (e *EdgeDirected) interpolateRows(src, dst []int32) {
	w, h, st := e.geom.Width, e.geom.Height, e.geom.Stride
	dw := 2 * w

	for j := range h {
		s := j * st
		row := src[s : s+w]
		out := dst[2*j*dw : 2*j*dw+dw]

		if j < edgeMargin || j >= h-edgeMargin {
			averageRow(out, row)
			copy(dst[(2*j+1)*dw:(2*j+2)*dw], out)
			continue
		}

		above := src[s-st : s-st+w]
		below := src[s+st : s+st+w]
		for i := range w - 1 {
			m0, m1 := row[i], row[i+1]
			v := (m0 + m1 + 1) >> 1

			dx, dy, dx2 := orientation(above[i], m0, below[i], above[i+1], m1, below[i+1])
			if isEdge(dx, dx2) {
				step := st
				if dx > 0 {
					step = -st
				}
				v = diagonalTaps(src, s+i, step, &slopeKernels[slopeBin(dx, dy)])
			}

			out[2*i] = m0
			out[2*i+1] = v
		}
		out[dw-2] = row[w-1]
		out[dw-1] = row[w-1]
	}
}

// interpolateColumns fills each odd destination row from the even rows
// above and below it. The last odd row is left to duplicateLastRows.
func (e *EdgeDirected) interpolateColumns(dst []int32) {
	w, h := e.geom.Width, e.geom.Height
	dw := 2 * w

	for j := range h - 1 {
		o := 2 * j * dw
		upper := dst[o : o+dw]
		out := dst[o+dw : o+2*dw]
		lower := dst[o+2*dw : o+3*dw]

		for i := range dw {
			m0, m1 := upper[i], lower[i]
			v := (m0 + m1) >> 1

			if i >= edgeMargin && i < dw-edgeMargin-1 {
				dx, dy, dx2 := orientation(upper[i-1], m0, upper[i+1], lower[i-1], m1, lower[i+1])
				if isEdge(dx, dx2) {
					k := &slopeKernels[slopeBin(dx, dy)]
					if dx < 0 {
						v = crossTaps(upper, lower, i, k)
					} else {
						v = crossTaps(lower, upper, i, k)
					}
				}
			}

			out[i] = v
		}
	}
}

// duplicateLastRows replicates the even samples of the last even row over
// the final 2x2 blocks, which no vertical interpolation reaches.
func (e *EdgeDirected) duplicateLastRows(dst []int32) {
	dw := 2 * e.geom.Width
	o := (2*e.geom.Height - 2) * dw
	last := dst[o : o+dw]
	for i := 0; i < dw; i += 2 {
		last[i+1] = last[i]
	}
	copy(dst[o+dw:o+2*dw], last)
}

// averageRow doubles row into out with truncated midpoint averages and a
// duplicated last sample.
func averageRow(out, row []int32) {
	w := len(row)
	for i := range w - 1 {
		out[2*i] = row[i]
		out[2*i+1] = (row[i] + row[i+1]) >> 1
	}
	out[2*w-2] = row[w-1]
	out[2*w-1] = row[w-1]
}
