package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/springsim/internal/viz"
)

// palette indices
const (
	colorBackground uint8 = iota
	colorAxis
	colorMarker
	colorText
)

// GIFAnimator encodes one frame per sample into an animated GIF written to
// Dir/Config.Filename.
type GIFAnimator struct {
	Config viz.RenderConfig
	Dir    string
	Out    io.Writer
	Logger *zap.Logger
}

func (a *GIFAnimator) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *GIFAnimator) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

// Path returns the absolute output path. An absolute Filename is used as
// is; a relative one is resolved against Dir or the working directory.
func (a *GIFAnimator) Path() (string, error) {
	name := a.Config.Filename
	if name == "" {
		name = viz.DefaultGIFName
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}

	dir := a.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	return filepath.Abs(filepath.Join(dir, name))
}

// Animate writes the GIF. Empty input is logged and skipped without error.
func (a *GIFAnimator) Animate(t, x []float64) error {
	log := a.logger()
	if len(t) == 0 || len(x) == 0 {
		log.Warn("animation data is empty, check simulation parameters",
			zap.Int("time_samples", len(t)), zap.Int("position_samples", len(x)))
		return nil
	}

	path, err := a.Path()
	if err != nil {
		return fmt.Errorf("resolve gif path: %w", err)
	}
	fmt.Fprintf(a.out(), "Saving GIF to: %s\n", path)

	anim := a.Frames(t, x)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close gif: %w", err)
	}

	log.Info("animation written", zap.String("path", path), zap.Int("frames", len(anim.Image)))
	fmt.Fprintln(a.out(), "Save completed")
	return nil
}

// Frames builds the animation in memory. Frames whose index has no
// position sample are skipped with a warning.
func (a *GIFAnimator) Frames(t, x []float64) *gif.GIF {
	cfg := a.Config
	theme := cfg.Theme
	palette := color.Palette{
		colorBackground: viz.RGBA(theme.Background),
		colorAxis:       viz.RGBA(theme.Muted),
		colorMarker:     viz.RGBA(theme.Primary),
		colorText:       viz.RGBA(theme.Text),
	}

	lo, hi := viz.AxisLimits(x)
	bounds := image.Rect(0, 0, cfg.Width, cfg.Height)
	base := a.background(bounds, palette)

	anim := &gif.GIF{LoopCount: -1}
	delay := cfg.GIFDelay()
	skipped := 0

	for i := range t {
		if i >= len(x) {
			skipped++
			continue
		}
		frame := image.NewPaletted(bounds, palette)
		copy(frame.Pix, base.Pix)

		cx := viz.Project(x[i], lo, hi, cfg.Width)
		fillCircle(frame, cx, cfg.Height/2, cfg.MarkerRadius, colorMarker)

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	if skipped > 0 {
		a.logger().Warn("skipping out-of-range frames", zap.Int("skipped", skipped), zap.Int("positions", len(x)))
	}
	return anim
}

// background draws the static parts shared by every frame: fill, the
// horizontal track and the title.
func (a *GIFAnimator) background(bounds image.Rectangle, palette color.Palette) *image.Paletted {
	img := image.NewPaletted(bounds, palette)
	draw.Draw(img, bounds, image.NewUniform(palette[colorBackground]), image.Point{}, draw.Src)

	mid := bounds.Dy() / 2
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		img.SetColorIndex(x, mid, colorAxis)
	}

	if face := a.Config.Font; face != nil {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(palette[colorText]),
			Face: face,
		}
		w := d.MeasureString(viz.AnimationTitle).Round()
		d.Dot = fixed.P((bounds.Dx()-w)/2, face.Metrics().Ascent.Ceil()+6)
		d.DrawString(viz.AnimationTitle)
	}
	return img
}

func fillCircle(img *image.Paletted, cx, cy, r int, idx uint8) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetColorIndex(cx+dx, cy+dy, idx)
			}
		}
	}
}
