package upsample

// Bilinear is a 2x upsampler that places the rounded average of the two
// neighbouring samples between them. The last column and row repeat the
// edge sample. Unlike EdgeDirected it supports single-axis upsampling and
// any plane size.
type Bilinear struct {
	geom Geometry
}

// NewBilinear returns a bilinear upsampler for planes of width x height
// samples whose rows start stride samples apart.
func NewBilinear(width, height, stride int) (*Bilinear, error) {
	g := Geometry{Width: width, Height: height, Stride: stride}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &Bilinear{geom: g}, nil
}

// Geometry returns the source geometry.
func (b *Bilinear) Geometry() Geometry { return b.geom }

// SupportsScalingFactor reports whether factor is 2.
func (b *Bilinear) SupportsScalingFactor(factor int) bool { return factor == 2 }

// SuperSampleHorizontal writes Height rows of 2*Width samples into dst.
func (b *Bilinear) SuperSampleHorizontal(src, dst []int32) error {
	doubleWidth(b.geom, src, dst, 1, lerpRow)
	return nil
}

// SuperSampleVertical writes 2*Height rows of Width samples into dst.
func (b *Bilinear) SuperSampleVertical(src, dst []int32) error {
	g := b.geom
	for y := range g.Height {
		copy(dst[2*y*g.Width:(2*y+1)*g.Width], src[y*g.Stride:y*g.Stride+g.Width])
	}
	fillOddRows(dst, g.Width, g.Height, true)
	return nil
}

// SuperSample writes 2*Height rows of 2*Width samples into dst.
func (b *Bilinear) SuperSample(src, dst []int32) {
	doubleWidth(b.geom, src, dst, 2, lerpRow)
	fillOddRows(dst, 2*b.geom.Width, b.geom.Height, true)
}

// Nearest is a 2x upsampler that replicates every sample.
type Nearest struct {
	geom Geometry
}

// NewNearest returns a sample-replicating upsampler for planes of width x
// height samples whose rows start stride samples apart.
func NewNearest(width, height, stride int) (*Nearest, error) {
	g := Geometry{Width: width, Height: height, Stride: stride}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return &Nearest{geom: g}, nil
}

// Geometry returns the source geometry.
func (n *Nearest) Geometry() Geometry { return n.geom }

// SupportsScalingFactor reports whether factor is 2.
func (n *Nearest) SupportsScalingFactor(factor int) bool { return factor == 2 }

// SuperSampleHorizontal writes Height rows of 2*Width samples into dst.
func (n *Nearest) SuperSampleHorizontal(src, dst []int32) error {
	doubleWidth(n.geom, src, dst, 1, replicateRow)
	return nil
}

// SuperSampleVertical writes 2*Height rows of Width samples into dst.
func (n *Nearest) SuperSampleVertical(src, dst []int32) error {
	g := n.geom
	for y := range g.Height {
		copy(dst[2*y*g.Width:(2*y+1)*g.Width], src[y*g.Stride:y*g.Stride+g.Width])
	}
	fillOddRows(dst, g.Width, g.Height, false)
	return nil
}

// SuperSample writes 2*Height rows of 2*Width samples into dst.
func (n *Nearest) SuperSample(src, dst []int32) {
	doubleWidth(n.geom, src, dst, 2, replicateRow)
	fillOddRows(dst, 2*n.geom.Width, n.geom.Height, false)
}

// doubleWidth doubles each source row with fn and writes it to destination
// row y*rowStep. rowStep is 2 when the odd rows are filled afterwards.
func doubleWidth(g Geometry, src, dst []int32, rowStep int, fn func(out, row []int32)) {
	dw := 2 * g.Width
	for y := range g.Height {
		row := src[y*g.Stride : y*g.Stride+g.Width]
		o := y * rowStep * dw
		fn(dst[o:o+dw], row)
	}
}

// fillOddRows fills rows 1, 3, ... of a plane with width samples per row
// from the even rows around them. The last odd row repeats the row above.
func fillOddRows(dst []int32, width, evenRows int, lerp bool) {
	for y := range evenRows {
		upper := dst[2*y*width : (2*y+1)*width]
		out := dst[(2*y+1)*width : (2*y+2)*width]
		if !lerp || y == evenRows-1 {
			copy(out, upper)
			continue
		}
		lower := dst[(2*y+2)*width : (2*y+3)*width]
		for i := range out {
			out[i] = (upper[i] + lower[i] + 1) >> 1
		}
	}
}

func lerpRow(out, row []int32) {
	w := len(row)
	for i := range w - 1 {
		out[2*i] = row[i]
		out[2*i+1] = (row[i] + row[i+1] + 1) >> 1
	}
	out[2*w-2] = row[w-1]
	out[2*w-1] = row[w-1]
}

func replicateRow(out, row []int32) {
	for i, v := range row {
		out[2*i] = v
		out[2*i+1] = v
	}
}
