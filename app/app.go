// Package app wires the slicer's components into a Tk window and runs the
// UI loop.
package app

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/sprite-slicer-go/ui/theme"
)

const (
	tick = 16 * time.Millisecond
)

type app struct {
	c       *AppContainer
	title   string
	width   int
	height  int
	afterID string
}

func NewApp(title string, width, height int, c *AppContainer) *app {
	return &app{c: c, title: title, width: width, height: height}
}

// Start builds the window and blocks until it is closed.
func (a *app) Start() {
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))
	theme.SetDark(a.c.Config.Dark)

	rv := a.c.RootView
	rv.Build(a.c.Handlers(a.exitHandler))
	rv.SetMode(a.c.Document.Mode())

	a.c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()
	if a.c.Logger != nil {
		a.c.Logger.Info("ui started", "config", a.c.ConfigPath)
	}
	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.c.SaveGate.Busy() && a.c.Logger != nil {
		a.c.Logger.Warn("exiting with an export in progress")
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
