package main

import (
	"fmt"

	"github.com/nathoo/termfolio/config"
	"github.com/nathoo/termfolio/content"
	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/history"
	"github.com/nathoo/termfolio/engine/registry"
	"github.com/nathoo/termfolio/engine/store"
	"github.com/nathoo/termfolio/loader"
	"github.com/nathoo/termfolio/logging"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// app holds everything loaded once at startup.
type app struct {
	cfg       *config.Config
	log       *logging.Logger
	portfolio *content.Portfolio
	catalog   *render.Catalog
	root      *command.Branch
	store     store.Store
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogOptions())
	if err != nil {
		return nil, err
	}

	var p *content.Portfolio
	if cfg.Content.Dir != "" {
		p, err = loader.Load(cfg.Content.Dir)
	} else {
		p, err = loader.Default()
	}
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("loading content: %w", err)
	}

	st, err := cfg.OpenStore()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("opening history store: %w", err)
	}

	cat := render.NewCatalog()
	render.RegisterPortfolio(cat, p)

	return &app{
		cfg:       cfg,
		log:       log,
		portfolio: p,
		catalog:   cat,
		root:      registry.New(),
		store:     st,
	}, nil
}

// newEngine builds a terminal console engine writing to rec.
func (a *app) newEngine(rec *render.Recorder, onFrame func(types.Frame)) *engine.Engine {
	hist := history.New(a.store, a.cfg.History.Key, a.cfg.History.Capacity, a.log)
	a.log.Logf("engine start: scope=%s driver=%s entries=%d",
		a.cfg.History.Scope, a.cfg.Store.Driver, hist.Len())
	return engine.New(engine.Options{
		History: hist,
		Out:     rec,
		Root:    a.root,
		Logger:  a.log,
		OnFrame: onFrame,
	})
}

// greeting is shown before the first command.
func (a *app) greeting() []types.Element {
	pr := a.portfolio.Profile
	intro := pr.Name
	if pr.Title != "" {
		intro += " - " + pr.Title
	}
	return []types.Element{
		render.Para(render.Span("emph", intro)),
		render.Para(
			render.Text("Type "),
			render.Command("help", "help"),
			render.Text(" to list commands, or start with "),
			render.Command("about", "about"),
			render.Text("."),
		),
	}
}

func (a *app) title() string {
	if a.portfolio.Profile.Name == "" {
		return "termfolio"
	}
	return a.portfolio.Profile.Name
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.LogError(err)
	}
	a.log.Close()
}
