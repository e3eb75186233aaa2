// Package render draws a placed scene as a PNG for debugging.
//
// Each frame is outlined and labeled. Deeper frames use a different color so
// nested stacks stay readable.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/stacks/cmd/stacks/internal/scene"
	"github.com/go-drift/stacks/pkg/errors"
	"github.com/go-drift/stacks/pkg/geometry"
)

// Options controls the rendered image.
type Options struct {
	Scale   float64
	Padding int
	// Labels draws each frame's label in its top left corner.
	Labels bool
}

// DefaultOptions returns scale 1 with 8px padding and labels.
func DefaultOptions() Options {
	return Options{Scale: 1, Padding: 8, Labels: true}
}

// MaxDimension bounds the rendered image on either axis.
const MaxDimension = 8192

var (
	background = color.RGBA{0xfa, 0xfa, 0xfa, 0xff}
	textColor  = color.RGBA{0x21, 0x21, 0x21, 0xff}
	palette    = []color.RGBA{
		{0x15, 0x65, 0xc0, 0xff},
		{0x2e, 0x7d, 0x32, 0xff},
		{0xef, 0x6c, 0x00, 0xff},
		{0x6a, 0x1b, 0x9a, 0xff},
		{0xc6, 0x28, 0x28, 0xff},
	}
)

// Image draws res into a new RGBA image.
func Image(res *scene.Result, opts Options) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}

	extent := res.Bounds
	for _, f := range res.Frames {
		extent = extent.Union(f.Rect)
	}
	if !extent.Size().IsFinite() {
		return nil, &errors.LayoutError{Op: "render.Image", Kind: errors.KindRender, Err: errors.ErrNonFiniteGeometry}
	}

	w := int(math.Ceil(extent.Width()*opts.Scale)) + 2*opts.Padding + 1
	h := int(math.Ceil(extent.Height()*opts.Scale)) + 2*opts.Padding + 1
	if w > MaxDimension || h > MaxDimension {
		return nil, &errors.LayoutError{
			Op:     "render.Image",
			Kind:   errors.KindRender,
			Detail: res.Title,
			Err:    fmt.Errorf("image %dx%d exceeds %d pixels", w, h, MaxDimension),
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	origin := extent.Origin()
	toPixels := func(r geometry.Rect) image.Rectangle {
		return image.Rect(
			opts.Padding+int(math.Round((r.Left-origin.X)*opts.Scale)),
			opts.Padding+int(math.Round((r.Top-origin.Y)*opts.Scale)),
			opts.Padding+int(math.Round((r.Right-origin.X)*opts.Scale)),
			opts.Padding+int(math.Round((r.Bottom-origin.Y)*opts.Scale)),
		)
	}

	for _, f := range res.Frames {
		if !f.Placed {
			continue
		}
		c := palette[f.Depth%len(palette)]
		r := toPixels(f.Rect)
		outline(img, r, c)
		if opts.Labels && f.Label != "" {
			label(img, r, f.Label)
		}
	}
	return img, nil
}

// PNG renders res and encodes it to w.
func PNG(w io.Writer, res *scene.Result, opts Options) error {
	img, err := Image(res, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return &errors.LayoutError{Op: "render.PNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X, y, c)
	}
}

func label(img *image.RGBA, r image.Rectangle, text string) {
	limit := r.Dx() - 4
	if limit <= 0 {
		return
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+2+metrics.Ascent.Ceil()),
	}
	// Labels wider than the frame are clipped to it.
	if d.MeasureString(text).Ceil() > limit {
		text = fit(d, text, limit)
	}
	if text != "" {
		d.DrawString(text)
	}
}

func fit(d *font.Drawer, text string, width int) string {
	runes := []rune(text)
	for len(runes) > 0 && d.MeasureString(string(runes)).Ceil() > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
