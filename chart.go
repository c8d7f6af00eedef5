package threadchart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	DefaultTitle  = "Impacto do Balanceamento de Carga no Desempenho de Processamento"
	DefaultOutput = "Visualização.png"
	DefaultDPI    = 300

	BalancedLabel    = "Balanceado"
	NotBalancedLabel = "Não Balanceado"
	XAxisLabel       = "Número de Threads"
	YAxisLabel       = "Tempo de Execução (seg)"

	xTickStep = 1.0
	yTickStep = 0.1
)

var (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch

	Teal          = color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xff}
	Coral         = color.RGBA{R: 0xff, G: 0x7f, B: 0x50, A: 0xff}
	DarkSlateGray = color.RGBA{R: 0x2f, G: 0x4f, B: 0x4f, A: 0xff}
)

var (
	ErrEmptyData        = errors.New("result table has no rows")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
	ErrInvalidOption    = errors.New("invalid option")
)

// Comparison renders the balanced and not-balanced results as one line
// chart.
type Comparison struct {
	Balanced, NotBalanced ResultTable
	Title                 string
	Output                string
	Width, Height         vg.Length
	DPI                   int
	log                   logrus.FieldLogger
	display               Displayer
}

type Option func(*Comparison) error

func NewComparison(balanced, notBalanced ResultTable, opts ...Option) (*Comparison, error) {
	if len(balanced) == 0 {
		return nil, fmt.Errorf("%s: %w", BalancedLabel, ErrEmptyData)
	}
	if len(notBalanced) == 0 {
		return nil, fmt.Errorf("%s: %w", NotBalancedLabel, ErrEmptyData)
	}
	c := &Comparison{
		Balanced:    balanced,
		NotBalanced: notBalanced,
		Title:       DefaultTitle,
		Output:      DefaultOutput,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		DPI:         DefaultDPI,
		log:         logrus.StandardLogger(),
		display:     SystemViewer{},
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func WithTitle(title string) Option {
	return func(c *Comparison) error {
		c.Title = title
		return nil
	}
}

func WithOutput(path string) Option {
	return func(c *Comparison) error {
		if path == "" {
			return fmt.Errorf("%w: empty output path", ErrInvalidOption)
		}
		c.Output = path
		return nil
	}
}

func WithDPI(dpi int) Option {
	return func(c *Comparison) error {
		if dpi <= 0 {
			return fmt.Errorf("%w: %d is not a valid DPI", ErrInvalidOption, dpi)
		}
		c.DPI = dpi
		return nil
	}
}

func WithSize(w, h vg.Length) Option {
	return func(c *Comparison) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("%w: %vx%v is not a valid size", ErrInvalidOption, w, h)
		}
		c.Width, c.Height = w, h
		return nil
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Comparison) error {
		if log == nil {
			return ErrValueCannotBeNil
		}
		c.log = log
		return nil
	}
}

func WithDisplay(d Displayer) Option {
	return func(c *Comparison) error {
		if d == nil {
			return ErrValueCannotBeNil
		}
		c.display = d
		return nil
	}
}

// WithoutDisplay only saves the chart.
func WithoutDisplay() Option {
	return func(c *Comparison) error {
		c.display = nil
		return nil
	}
}

// Bounds are the axis limits of a chart.
type Bounds struct {
	MaxThreads int
	MaxTime    float64
	XMax, YMax float64
}

// Bounds computes the axis limits from both tables. The headroom added
// above each maximum is the integer part of the maximum divided, as an
// integer, by 20 on the X axis and by 5 on the Y axis, so maxima below the
// divisor get none.
func (c Comparison) Bounds() Bounds {
	threads := func(r Row, _ int) int { return r.Threads }
	times := func(r Row, _ int) float64 { return r.ElapsedSeconds }
	maxThreads := max(lo.Max(lo.Map(c.Balanced, threads)), lo.Max(lo.Map(c.NotBalanced, threads)))
	maxTime := max(lo.Max(lo.Map(c.Balanced, times)), lo.Max(lo.Map(c.NotBalanced, times)))
	return Bounds{
		MaxThreads: maxThreads,
		MaxTime:    maxTime,
		XMax:       float64(maxThreads + maxThreads/20),
		YMax:       maxTime + float64(int(maxTime)/5),
	}
}

// XTicks returns a labelled tick for every thread count from 0 to XMax.
func (b Bounds) XTicks() []plot.Tick {
	return steppedTicks(b.XMax, xTickStep, func(v float64) string {
		return strconv.Itoa(int(math.Round(v)))
	})
}

// YTicks returns a labelled tick every tenth of a second from 0 to YMax.
func (b Bounds) YTicks() []plot.Tick {
	return steppedTicks(b.YMax, yTickStep, func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64)
	})
}

func steppedTicks(upper, step float64, label func(float64) string) []plot.Tick {
	var ticks []plot.Tick
	// Multiplying rather than accumulating keeps 0.1 steps from drifting.
	for i := 0; ; i++ {
		v := float64(i) * step
		if v > upper+step*1e-9 {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label(v)})
	}
	return ticks
}

// Plot builds the chart.
func (c Comparison) Plot() (*plot.Plot, error) {
	p := plot.New()

	p.Add(plotter.NewGrid())
	if err := addSeries(p, BalancedLabel, c.Balanced, Teal); err != nil {
		return nil, err
	}
	if err := addSeries(p, NotBalancedLabel, c.NotBalanced, Coral); err != nil {
		return nil, err
	}

	// Add widens the axes to the data, so the limits are set afterwards.
	b := c.Bounds()
	p.X.Min, p.X.Max = 0, b.XMax
	p.Y.Min, p.Y.Max = 0, b.YMax
	p.X.Tick.Marker = plot.ConstantTicks(b.XTicks())
	p.Y.Tick.Marker = plot.ConstantTicks(b.YTicks())

	p.Title.Text = c.Title
	p.Title.TextStyle = labelStyle(p.Title.TextStyle, 15)
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = XAxisLabel
	p.X.Label.TextStyle = labelStyle(p.X.Label.TextStyle, 14)
	p.Y.Label.Text = YAxisLabel
	p.Y.Label.TextStyle = labelStyle(p.Y.Label.TextStyle, 14)

	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter
	return p, nil
}

func addSeries(p *plot.Plot, label string, t ResultTable, c color.Color) error {
	line, points, err := plotter.NewLinePoints(t)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	line.Color = c
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = c
	points.Radius = vg.Points(3)
	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return nil
}

func labelStyle(s text.Style, size float64) text.Style {
	s.Color = DarkSlateGray
	s.Font = font.Font{
		Typeface: "Liberation",
		Variant:  "Sans",
		Weight:   xfont.WeightBold,
		Size:     vg.Points(size),
	}
	return s
}

// Render draws the chart on fig and hands the figure back for saving.
func (c Comparison) Render(fig *Figure) (*Figure, error) {
	if fig == nil {
		return nil, ErrValueCannotBeNil
	}
	p, err := c.Plot()
	if err != nil {
		return nil, err
	}
	p.Draw(draw.New(fig.Canvas()))
	return fig, nil
}

// Run renders the chart, saves it to Output and then shows it. A display
// failure is logged and does not fail the run.
func (c *Comparison) Run() error {
	format := FormatFromPath(c.Output)
	fig, err := NewFigure(format, c.Width, c.Height, c.DPI)
	if err != nil {
		return err
	}
	log := c.log.WithFields(logrus.Fields{
		"path":   c.Output,
		"format": format,
		"dpi":    c.DPI,
	})
	log.Debug("rendering chart")
	fig, err = c.Render(fig)
	if err != nil {
		return err
	}
	if err := fig.Save(c.Output); err != nil {
		return err
	}
	log.Info("chart saved")
	if c.display == nil {
		return nil
	}
	if err := c.display.Display(c.Output); err != nil {
		log.WithError(err).Warn("cannot display chart")
	}
	return nil
}
