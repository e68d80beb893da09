package carousel

import (
	"fmt"
	"image"
	"slices"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"
)

const (
	defaultHeight  = 175
	defaultDotSize = 15
	dotSlotWidth   = 20
)

// Carousel shows one image at a time from an ordered set, with a row of
// indicator dots along the bottom edge.
//
// Swiping horizontally moves to the previous (rightward release) or next
// (leftward release) image, wrapping at both ends. Tapping a dot shows the
// image it represents. The dot of the image on display uses ActiveColor;
// every other dot uses InactiveColor.
//
// # Creation Pattern
//
// Use struct literal:
//
//	carousel.Carousel{
//	    Images:   []string{"a.png", "b.png", "c.png"},
//	    Shuffle:  true,
//	    Provider: provider,
//	}
//
// To drive the carousel from application code, create a [Controller] and
// pass it in. Images, Shuffle, and Seed are then ignored:
//
//	ctrl, _ := carousel.NewController(images)
//	carousel.Carousel{Controller: ctrl, Provider: provider}
//	// later
//	ctrl.Select("c.png")
//
// Construction errors (no images, duplicate identifiers) are reported
// through [errors.ReportBoundaryError] and the carousel renders the error widget.
type Carousel struct {
	core.StatefulBase

	// Images are the image identifiers in base display order.
	Images []string
	// Shuffle permutes Images once when the carousel is first mounted.
	Shuffle bool
	// Seed makes the shuffle reproducible. Implies Shuffle when set.
	Seed *int64
	// Controller is an optional externally owned controller.
	Controller *Controller

	// Provider resolves identifiers to images.
	Provider ImageProvider

	// ActiveColor is the dot color of the image on display. Defaults to black.
	//
	// The zero value ([graphics.ColorTransparent]) selects the default. For an
	// invisible dot use a transparent color with nonzero channels, such as
	// graphics.RGBA8(0xFF, 0xFF, 0xFF, 0).
	ActiveColor graphics.Color
	// InactiveColor is the color of every other dot. Defaults to white.
	// The zero value selects the default, as for ActiveColor.
	InactiveColor graphics.Color
	// Height of the carousel. Defaults to 175.
	Height float64
	// DotSize is the indicator dot diameter. Defaults to 15.
	DotSize float64
	// Caption is optional text drawn centered over the image.
	Caption string

	// OnChanged is called after the displayed image changes.
	OnChanged func(index int, image string)
}

// CreateState creates the state backing the carousel.
func (c Carousel) CreateState() core.State {
	return &carouselState{}
}

// controllerOptions converts the widget configuration to controller options.
func (c Carousel) controllerOptions() []Option {
	opts := []Option{WithShuffle(c.Shuffle)}
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}
	return opts
}

type carouselState struct {
	core.StateBase
	controller  *Controller
	owned       bool
	unsubscribe func()
	err         *errors.BoundaryError
	lastIndex   int
}

func (s *carouselState) widget() Carousel {
	return s.Element().Widget().(Carousel)
}

func (s *carouselState) InitState() {
	s.attach(s.widget())
	s.OnDispose(s.detach)
}

func (s *carouselState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old, ok := oldWidget.(Carousel)
	if !ok {
		return
	}
	w := s.widget()
	// An owned controller keeps its shuffled order across rebuilds unless
	// the images themselves change.
	imagesChanged := w.Controller == nil &&
		(!slices.Equal(w.Images, old.Images) || w.Shuffle != old.Shuffle || !sameSeed(w.Seed, old.Seed))
	if w.Controller != old.Controller || imagesChanged {
		s.detach()
		s.attach(w)
	}
}

func (s *carouselState) attach(w Carousel) {
	s.err = nil
	s.controller = w.Controller
	s.owned = false
	if s.controller == nil {
		ctrl, err := NewController(w.Images, w.controllerOptions()...)
		if err != nil {
			s.err = &errors.BoundaryError{
				Phase:  "build",
				Widget: "carousel.Carousel",
				Err:    err,
			}
			errors.ReportBoundaryError(s.err)
			return
		}
		s.controller = ctrl
		s.owned = true
	}
	s.lastIndex = s.controller.Index()
	s.unsubscribe = s.controller.AddListener(s.onControllerChanged)
}

func (s *carouselState) detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.owned && s.controller != nil {
		s.controller.Dispose()
	}
	s.controller = nil
	s.owned = false
}

func (s *carouselState) onControllerChanged() {
	s.SetState(nil)
	if s.controller == nil || s.controller.Index() == s.lastIndex {
		return
	}
	s.lastIndex = s.controller.Index()
	if cb := s.widget().OnChanged; cb != nil {
		cb(s.lastIndex, s.controller.Current())
	}
}

func (s *carouselState) onDotTap(id string) {
	if err := s.controller.Select(id); err != nil {
		errors.Report(&errors.DriftError{
			Op:   "carousel.Select",
			Kind: errors.KindUnknown,
			Err:  err,
		})
	}
}

func (s *carouselState) onSwipeEnd(d widgets.DragEndDetails) {
	s.controller.HandleSwipe(d.PrimaryVelocity)
}

func (s *carouselState) Build(ctx core.BuildContext) core.Widget {
	if s.err != nil {
		return core.GetErrorWidgetBuilder()(s.err)
	}
	return render(s.widget(), s.controller, s.onSwipeEnd, s.onDotTap)
}

// render builds the widget tree for the controller's current state.
func render(w Carousel, ctrl *Controller, onSwipeEnd func(widgets.DragEndDetails), onDotTap func(string)) core.Widget {
	height := w.Height
	if height <= 0 {
		height = defaultHeight
	}

	layers := []core.Widget{
		widgets.Image{
			Source:        resolve(w.Provider, ctrl.Current()),
			Height:        height,
			Fit:           widgets.ImageFitCover,
			Alignment:     layout.AlignmentCenter,
			SemanticLabel: fmt.Sprintf("Image %d of %d", ctrl.Index()+1, ctrl.Len()),
		},
	}
	if w.Caption != "" {
		layers = append(layers, widgets.Center{
			Child: widgets.Text{
				Content: w.Caption,
				Style: graphics.TextStyle{
					Color:      graphics.RGB(0xFF, 0xFF, 0xFF),
					FontSize:   25,
					FontWeight: graphics.FontWeightBold,
				},
				MaxLines: 1,
			},
		})
	}
	layers = append(layers, widgets.Align{
		Alignment: layout.AlignmentBottomCenter,
		Child:     indicatorRow(w, ctrl, onDotTap),
	})

	return widgets.GestureDetector{
		OnHorizontalDragEnd: onSwipeEnd,
		Child: widgets.SizedBox{
			Height: height,
			Child: widgets.Stack{
				Children: layers,
				Fit:      widgets.StackFitExpand,
			},
		},
	}
}

func indicatorRow(w Carousel, ctrl *Controller, onDotTap func(string)) core.Widget {
	active := w.ActiveColor
	if active == 0 {
		active = DefaultActiveColor
	}
	inactive := w.InactiveColor
	if inactive == 0 {
		inactive = DefaultInactiveColor
	}
	size := w.DotSize
	if size <= 0 {
		size = defaultDotSize
	}

	indicators := ctrl.Indicators()
	dots := make([]core.Widget, len(indicators))
	for i, ind := range indicators {
		color := inactive
		if ind.Active {
			color = active
		}
		id := ind.Image
		dots[i] = Dot{
			Image:  id,
			Active: ind.Active,
			Color:  color,
			Size:   size,
			OnTap:  func() { onDotTap(id) },
		}
	}
	return widgets.Row{
		Children:          dots,
		MainAxisAlignment: widgets.MainAxisAlignmentCenter,
		MainAxisSize:      widgets.MainAxisSizeMin,
	}
}

func sameSeed(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func resolve(p ImageProvider, id string) image.Image {
	if p == nil {
		return nil
	}
	return p.Image(id)
}

// Dot is a single tappable indicator.
type Dot struct {
	core.StatelessBase
	// Image is the identifier of the image the dot represents.
	Image string
	// Active is true when Image is on display.
	Active bool
	// Color fills the dot.
	Color graphics.Color
	// Size is the dot diameter.
	Size float64
	// OnTap is called when the dot is tapped.
	OnTap func()
}

// Key identifies the dot by its image so tests and diffing can find it.
func (d Dot) Key() any { return DotKey(d.Image) }

func (d Dot) Build(ctx core.BuildContext) core.Widget {
	return widgets.GestureDetector{
		OnTap: d.OnTap,
		Child: widgets.SizedBox{
			Width:  max(dotSlotWidth, d.Size),
			Height: max(dotSlotWidth, d.Size),
			Child: widgets.Center{
				Child: widgets.DecoratedBox{
					Color:        d.Color,
					BorderRadius: d.Size / 2,
					Child:        widgets.SizedBox{Width: d.Size, Height: d.Size},
				},
			},
		},
	}
}

// DotKey is the key of the indicator dot for image.
type DotKey string
