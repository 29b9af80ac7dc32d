// Package scene loads declarative shape descriptions from YAML and draws them
// through a tessel.Context.
//
// A scene document looks like:
//
//	width: 256
//	height: 256
//	clear: [0.1, 0.1, 0.12, 1]
//	shapes:
//	  - kind: ellipse
//	    rect: [16, 16, 96, 64]
//	    resolution: 48
//	    color: [1, 0.4, 0.2, 1]
//	  - kind: tween
//	    frames: [[0, 0, 40, 0, 20, 30], [0, 0, 40, 10, 20, 50]]
//	    factor: 0.25
//	    translate: [128, 128]
//
// Supported kinds are rect, polygon, ellipse, round_rect, round_border and
// tween. Every shape may carry translate, rotate (radians) and scale, applied
// in that order on top of the context transform.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/tessel"
	"gopkg.in/yaml.v3"
)

// Shape kinds.
const (
	KindRect        = "rect"
	KindPolygon     = "polygon"
	KindEllipse     = "ellipse"
	KindRoundRect   = "round_rect"
	KindRoundBorder = "round_border"
	KindTween       = "tween"
)

// Default resolutions used when a shape leaves resolution at zero.
const (
	DefaultEllipseResolution = 64
	DefaultCornerResolution  = 8
	DefaultCapResolution     = 12
)

var (
	// ErrUnknownKind reports a shape kind this package cannot draw.
	ErrUnknownKind = errors.New("unknown shape kind")
	// ErrField reports a missing or malformed shape field.
	ErrField = errors.New("invalid field")
)

// Scene is a parsed scene document.
type Scene struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Clear  []float64 `yaml:"clear"`
	Shapes []Shape   `yaml:"shapes"`
}

// Shape is one drawable entry. Which geometry fields apply depends on Kind.
type Shape struct {
	Kind       string      `yaml:"kind"`
	Color      []float64   `yaml:"color"`
	Translate  []float64   `yaml:"translate"`
	Rotate     float64     `yaml:"rotate"`
	Scale      []float64   `yaml:"scale"`
	Rect       []float64   `yaml:"rect"`
	Line       []float64   `yaml:"line"`
	Radius     float64     `yaml:"radius"`
	Resolution int         `yaml:"resolution"`
	Points     []float64   `yaml:"points"`
	Frames     [][]float64 `yaml:"frames"`
	Factor     float64     `yaml:"factor"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene document and validates it. Unknown keys are
// rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse scene: empty document")
		}
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tessel.Logger().Debug("scene: parsed", "width", s.Width, "height", s.Height, "shapes", len(s.Shapes))
	return &s, nil
}

// Validate checks the canvas size and every shape.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene: size %dx%d: %w", s.Width, s.Height, ErrField)
	}
	if len(s.Clear) != 0 && len(s.Clear) != 4 {
		return fmt.Errorf("scene: clear needs 4 channels, got %d: %w", len(s.Clear), ErrField)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].Validate(); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	return nil
}

// Draw clears the back-end with the scene's clear color (if any) and fills
// every shape in order. offset is added to the factor of every tween shape,
// so stepping it from 0 to 1 plays each tween through one full cycle.
func (s *Scene) Draw(b tessel.Backend, ctx tessel.Context, offset float64) error {
	if len(s.Clear) == 4 {
		ctx.WithColor(color4(s.Clear)).Clear(b)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].Draw(b, ctx, offset); err != nil {
			return fmt.Errorf("scene: shape %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks that the fields Kind needs are present and well formed.
func (sh *Shape) Validate() error {
	if len(sh.Color) != 0 && len(sh.Color) != 4 {
		return fmt.Errorf("%s: color needs 4 channels, got %d: %w", sh.Kind, len(sh.Color), ErrField)
	}
	if len(sh.Translate) != 0 && len(sh.Translate) != 2 {
		return fmt.Errorf("%s: translate needs 2 values: %w", sh.Kind, ErrField)
	}
	if len(sh.Scale) != 0 && len(sh.Scale) != 2 {
		return fmt.Errorf("%s: scale needs 2 values: %w", sh.Kind, ErrField)
	}

	switch sh.Kind {
	case KindRect:
		return sh.needRect()
	case KindPolygon:
		return tessel.Polygon(sh.Points).Validate()
	case KindEllipse:
		if err := sh.needRect(); err != nil {
			return err
		}
		return sh.ellipse().Validate()
	case KindRoundRect:
		if err := sh.needRect(); err != nil {
			return err
		}
		return sh.roundRect().Validate()
	case KindRoundBorder:
		if len(sh.Line) != 4 {
			return fmt.Errorf("%s: line needs 4 values, got %d: %w", sh.Kind, len(sh.Line), ErrField)
		}
		return sh.roundBorder().Validate()
	case KindTween:
		return tessel.TweenPolygons{Frames: sh.Frames, Factor: sh.Factor}.Validate()
	default:
		return fmt.Errorf("%q: %w", sh.Kind, ErrUnknownKind)
	}
}

// Draw fills the shape through ctx after applying the shape's own transform
// and color.
func (sh *Shape) Draw(b tessel.Backend, ctx tessel.Context, offset float64) error {
	ctx = sh.context(ctx)
	switch sh.Kind {
	case KindRect:
		return ctx.FillRect(b, rect(sh.Rect))
	case KindPolygon:
		return ctx.FillPolygon(b, tessel.Polygon(sh.Points))
	case KindEllipse:
		return ctx.FillEllipse(b, sh.ellipse())
	case KindRoundRect:
		return ctx.FillRoundRect(b, sh.roundRect())
	case KindRoundBorder:
		return ctx.FillRoundBorder(b, sh.roundBorder())
	case KindTween:
		return ctx.WithPolygons(sh.Frames).WithTweenFactor(sh.Factor + offset).Fill(b)
	default:
		return fmt.Errorf("%q: %w", sh.Kind, ErrUnknownKind)
	}
}

func (sh *Shape) context(ctx tessel.Context) tessel.Context {
	if len(sh.Translate) == 2 {
		ctx = ctx.Trans(sh.Translate[0], sh.Translate[1])
	}
	if sh.Rotate != 0 {
		ctx = ctx.Rot(sh.Rotate)
	}
	if len(sh.Scale) == 2 {
		ctx = ctx.Scale(sh.Scale[0], sh.Scale[1])
	}
	if len(sh.Color) == 4 {
		ctx = ctx.WithColor(color4(sh.Color))
	}
	return ctx
}

func (sh *Shape) needRect() error {
	if len(sh.Rect) != 4 {
		return fmt.Errorf("%s: rect needs 4 values, got %d: %w", sh.Kind, len(sh.Rect), ErrField)
	}
	return nil
}

func (sh *Shape) ellipse() tessel.Ellipse {
	return tessel.Ellipse{Rect: rect(sh.Rect), Resolution: orDefault(sh.Resolution, DefaultEllipseResolution)}
}

func (sh *Shape) roundRect() tessel.RoundRect {
	return tessel.RoundRect{
		Rect:             rect(sh.Rect),
		Radius:           sh.Radius,
		CornerResolution: orDefault(sh.Resolution, DefaultCornerResolution),
	}
}

func (sh *Shape) roundBorder() tessel.RoundBorder {
	var l tessel.Line
	if len(sh.Line) == 4 {
		l = tessel.Line{X1: sh.Line[0], Y1: sh.Line[1], X2: sh.Line[2], Y2: sh.Line[3]}
	}
	return tessel.RoundBorder{
		Line:          l,
		Radius:        sh.Radius,
		CapResolution: orDefault(sh.Resolution, DefaultCapResolution),
	}
}

func rect(v []float64) tessel.Rect {
	if len(v) != 4 {
		return tessel.Rect{}
	}
	return tessel.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
}

func color4(v []float64) tessel.Color {
	return tessel.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
