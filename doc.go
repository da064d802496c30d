// Package upsample doubles the resolution of single-channel integer planes.
//
// # Overview
//
// The main upsampler is EdgeDirected, an edge-directed interpolator that
// estimates the local edge orientation at every new sample and interpolates
// along the edge rather than across it. Diagonal lines and curved contours
// stay sharp where bilinear filtering would leave a staircase blur. Bilinear
// and Nearest are provided as references and as fallbacks for geometries
// EdgeDirected does not accept.
//
// # Quick Start
//
//	import "github.com/gogpu/upsample"
//
//	e, err := upsample.NewEdgeDirected(320, 240)
//	if err != nil {
//	    return err // width and height must be multiples of 8
//	}
//	dst := make([]int32, 4*320*240)
//	e.SuperSample(src, dst) // dst is 640x480, stride 640
//
// # Planes
//
// Samples are int32 so that intermediate values never overflow and callers
// can feed 8-bit, 10-bit or signed data alike. Source planes may carry row
// padding (stride > width); destinations are always packed. Plane wraps a
// sample slice with its geometry, and Upsample validates a Plane before
// handing it to an UpSampler.
//
// # Chroma
//
// UpsampleChroma converts a subsampled image.YCbCr to 4:4:4, doubling
// 4:2:0 chroma with EdgeDirected.
//
// # Errors
//
// Constructors return errors matching ErrInvalidDimension; operations an
// upsampler does not implement return ErrUnsupportedOperation. Compare with
// errors.Is.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package upsample
