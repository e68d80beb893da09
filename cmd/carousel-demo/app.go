package main

import (
	"fmt"
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/config"
)

// App returns the root widget for the carousel demo.
func App(cfg *config.Resolved, provider carousel.ImageProvider) core.Widget {
	return DemoApp{Config: cfg, Provider: provider}
}

// DemoApp shows a carousel with a caption tracking the current image and
// buttons that drive the carousel programmatically.
type DemoApp struct {
	core.StatefulBase
	Config   *config.Resolved
	Provider carousel.ImageProvider
}

func (DemoApp) CreateState() core.State {
	return &demoState{}
}

type demoState struct {
	core.StateBase
	controller *carousel.Controller
	current    string
}

func (s *demoState) InitState() {
	cfg := s.Element().Widget().(DemoApp).Config
	var opts []carousel.Option
	if cfg.Seed != nil {
		opts = append(opts, carousel.WithSeed(*cfg.Seed))
	} else {
		opts = append(opts, carousel.WithShuffle(cfg.Shuffle))
	}

	ctrl, err := carousel.NewController(cfg.Images, opts...)
	if err != nil {
		// config.Resolve already rejects empty lists; duplicates land here.
		log.Fatalf("carousel-demo: %v", err)
	}
	s.controller = ctrl
	s.current = ctrl.Current()
	s.OnDispose(ctrl.Dispose)
}

func (s *demoState) Build(ctx core.BuildContext) core.Widget {
	_, colors, textTheme := theme.UseTheme(ctx)
	w := s.Element().Widget().(DemoApp)
	cfg := w.Config

	status := fmt.Sprintf("%d / %d  %s", s.controller.Index()+1, s.controller.Len(), s.current)

	return widgets.PaddingAll(20, widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentStart,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		MainAxisSize:       widgets.MainAxisSizeMax,
		Children: []core.Widget{
			theme.TextOf(ctx, cfg.Title, textTheme.TitleLarge),
			widgets.VSpace(16),
			carousel.Carousel{
				Controller:    s.controller,
				Provider:      w.Provider,
				ActiveColor:   cfg.ActiveColor,
				InactiveColor: cfg.InactiveColor,
				Height:        cfg.Height,
				Caption:       cfg.Caption,
				OnChanged: func(_ int, image string) {
					s.SetState(func() { s.current = image })
				},
			},
			widgets.VSpace(12),
			theme.TextOf(ctx, status, labelStyle(colors)),
			widgets.VSpace(16),
			widgets.Row{
				MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				MainAxisSize:       widgets.MainAxisSizeMax,
				Children: []core.Widget{
					theme.ButtonOf(ctx, "Previous", s.controller.Previous),
					widgets.HSpace(12),
					theme.ButtonOf(ctx, "Next", s.controller.Next),
				},
			},
		},
	})
}
