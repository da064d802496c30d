package upsample

// slopeKernels holds the (a, b, c, d) weights of the five slope bins,
// steepest edge first. A kernel is applied mirrored on both sides of the
// interpolation site (a b c d | d c b a), so the taps sum to 32.
var slopeKernels = [5][4]int32{
	{0, 0, 0, 16},
	{0, 0, 8, 8},
	{0, 4, 8, 4},
	{1, 7, 7, 1},
	{4, 8, 4, 0},
}

// orientation estimates the edge direction at the site between two
// parallel sample lines. a, m and c are the samples before, on and after the
// site along the interpolation axis; suffix 0 is the first line and 1 the
// second.
//
// dx measures change along the interpolation axis, dy across it and dx2 is
// the curvature used by the smoothness test. The result is normalised so
// that dy >= 0: an edge and its 180 degree rotation are the same edge.
func orientation(a0, m0, c0, a1, m1, c1 int32) (dx, dy, dx2 int32) {
	dx = (-a0 - a1 + c0 + c1) << 1
	dy = -a0 - 2*m0 - c0 + a1 + 2*m1 + c1
	dx2 = -a0 + 2*m0 - c0 - a1 + 2*m1 - c1
	if dy < 0 {
		dy = -dy
		dx = -dx
	}
	return dx, dy, dx2
}

// isEdge reports whether the gradient dominates the curvature enough for a
// directional kernel to be trusted. Sites failing the test are averaged.
func isEdge(dx, dx2 int32) bool {
	return abs32(dx) > 4*abs32(dx2)
}

// slopeBin maps the normalised gradient to an index into slopeKernels.
// The sign of dx does not matter here; it only picks the orientation in
// which the kernel is laid out.
func slopeBin(dx, dy int32) int {
	ax := abs32(dx)
	switch {
	case ax > 2*dy:
		return 0
	case ax > dy:
		return 1
	case 2*ax > dy:
		return 2
	case 3*ax > dy:
		return 3
	default:
		return 4
	}
}

// diagonalTaps reconstructs the sample between buf[o] and buf[o+1] from the
// column through o (rows o-3*step..o) and the column through o+1 (rows
// o+1..o+1+3*step). step is a signed row stride; its sign follows the edge.
func diagonalTaps(buf []int32, o, step int, k *[4]int32) int32 {
	x := buf[o-3*step] * k[0]
	x += buf[o-2*step] * k[1]
	x += buf[o-step] * k[2]
	x += buf[o] * k[3]
	o++
	x += buf[o] * k[3]
	x += buf[o+step] * k[2]
	x += buf[o+2*step] * k[1]
	x += buf[o+3*step] * k[0]
	return x >> 5
}

// crossTaps reconstructs the sample between first[i] and second[i], two
// rows apart, from first[i-3..i] and second[i..i+3]. Swapping the rows
// mirrors the direction.
func crossTaps(first, second []int32, i int, k *[4]int32) int32 {
	x := first[i-3] * k[0]
	x += first[i-2] * k[1]
	x += first[i-1] * k[2]
	x += first[i] * k[3]
	x += second[i] * k[3]
	x += second[i+1] * k[2]
	x += second[i+2] * k[1]
	x += second[i+3] * k[0]
	return x >> 5
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
