// Command ediup doubles the resolution of an image with the upsample
// package and writes the result as PNG.
//
// Usage:
//
//	ediup -in photo.jpg -out photo2x.png [-mode edge|bilinear|nearest] [-compare] [-v]
//	ediup -in photo.jpg -out photo444.png -chroma
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/upsample"
	intImage "github.com/gogpu/upsample/internal/image"
)

// errNotYCbCr is returned by -chroma for inputs without subsampled chroma.
var errNotYCbCr = errors.New("ediup: input has no YCbCr planes")

type options struct {
	in      string
	out     string
	mode    upsample.Mode
	compare bool
	chroma  bool
}

func main() {
	var (
		in      = flag.String("in", "", "input image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
		out     = flag.String("out", "out.png", "output PNG file")
		mode    = flag.String("mode", "edge", "upsampler: edge, bilinear or nearest")
		compare = flag.Bool("compare", false, "report the difference to a Catmull-Rom reference")
		chroma  = flag.Bool("chroma", false, "reconstruct 4:4:4 chroma instead of doubling luma")
		verbose = flag.Bool("v", false, "debug logging on stderr")
	)
	flag.Parse()

	if *verbose {
		upsample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := upsample.ParseMode(*mode)
	if err != nil {
		log.Fatalf("ediup: %v", err)
	}
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := options{in: *in, out: *out, mode: m, compare: *compare, chroma: *chroma}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("ediup: %v", err)
	}
}

func run(opts options, report io.Writer) error {
	img, format, err := intImage.Load(opts.in)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	b := img.Bounds()
	p.Fprintf(report, "%s: %d x %d %s\n", opts.in, b.Dx(), b.Dy(), format)

	if opts.chroma {
		ycc, ok := img.(*image.YCbCr)
		if !ok {
			return errNotYCbCr
		}
		full, err := upsample.UpsampleChroma(ycc)
		if err != nil {
			return err
		}
		if err := intImage.SavePNG(opts.out, full); err != nil {
			return err
		}
		p.Fprintf(report, "%s: chroma %v -> 4:4:4\n", opts.out, ycc.SubsampleRatio)
		return nil
	}

	gray, err := doubleLuma(img, opts.mode)
	if err != nil {
		return err
	}
	if err := intImage.SavePNG(opts.out, gray); err != nil {
		return err
	}
	p.Fprintf(report, "%s: %d x %d (%v), %d samples\n",
		opts.out, gray.Rect.Dx(), gray.Rect.Dy(), opts.mode, gray.Rect.Dx()*gray.Rect.Dy())

	if opts.compare {
		src, err := toGray(img)
		if err != nil {
			return err
		}
		diff, err := intImage.Compare(gray, intImage.ScaleCatmullRom(src, 2))
		if err != nil {
			return err
		}
		p.Fprintf(report, "vs catmull-rom: MAE %.3f, PSNR %.2f dB, max %d\n", diff.MAE, diff.PSNR, diff.Max)
	}
	return nil
}

// doubleLuma upsamples the luma of img 2x with the given mode. The plane is
// padded to the geometry the upsampler needs and cropped afterwards.
func doubleLuma(img image.Image, mode upsample.Mode) (*image.Gray, error) {
	pix, w, h := intImage.Luma(img)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image: %w", intImage.ErrInvalidDimensions)
	}

	multiple := 1
	if mode == upsample.ModeEdgeDirected {
		multiple = 8
	}
	padded, pw, ph := intImage.PadEdge(pix, w, h, multiple)

	u, err := upsample.New(mode, pw, ph, pw)
	if err != nil {
		return nil, err
	}
	src, err := upsample.PlaneFromRaw(padded, pw, ph, pw)
	if err != nil {
		return nil, err
	}
	dst, err := upsample.Upsample(u, src)
	if err != nil {
		return nil, err
	}
	return intImage.ToGray(intImage.Crop(dst.Pix, dst.Stride, 2*w, 2*h), 2*w, 2*h, 2*w)
}

func toGray(img image.Image) (*image.Gray, error) {
	pix, w, h := intImage.Luma(img)
	return intImage.ToGray(pix, w, h, w)
}
