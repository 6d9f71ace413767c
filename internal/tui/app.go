// Package tui is the builder's preview shell. It renders a catalog page
// and plays every UI-side collaborator role for the intent pipeline:
// modal host, navigator, scroller and notifier.
package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge/siteforge/internal/catalog"
	"github.com/siteforge/siteforge/internal/config"
	"github.com/siteforge/siteforge/internal/database/repository"
	"github.com/siteforge/siteforge/internal/intent"
)

// App ties the page preview to the pipeline.
type App struct {
	ctx      context.Context
	cfg      config.Config
	tpl      catalog.Template
	repo     *repository.SubmissionRepo
	ctrl     *intent.Controller
	bus      *intent.Bus
	styles   styles
	controls []catalog.Control

	width  int
	height int
	cursor int

	// scrolledTo highlights the section a scroll action landed on.
	scrolledTo string
	dialogOpen bool

	// status fields are written by collaborator callbacks, which can
	// arrive from the bus pump goroutine, not only the update loop.
	mu          sync.Mutex
	status      string
	statusErr   bool
	submissions int
}

// New builds the preview app for one catalog template.
func New(ctx context.Context, cfg config.Config, tpl catalog.Template, repo *repository.SubmissionRepo) *App {
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		tpl:      tpl,
		repo:     repo,
		styles:   newStyles(cfg.UI.Accent),
		controls: tpl.Controls(),
		width:    100,
		height:   32,
		status:   "Ready",
	}
}

// Attach wires the controller and bus after construction; the controller
// needs the app as its collaborators, so it cannot exist first.
func (a *App) Attach(ctrl *intent.Controller, bus *intent.Bus) {
	a.ctrl = ctrl
	a.bus = bus
}

func (a *App) Init() tea.Cmd {
	return a.refreshCount()
}

// NavigateTo implements intent.Navigator. The preview has no real
// router; it surfaces where the visitor would have been taken.
func (a *App) NavigateTo(route string, state intent.NavState) {
	a.setStatus(fmt.Sprintf("→ %s (carrying %s)", route, state.Intent), false)
}

// ScrollToFormFor implements intent.Scroller.
func (a *App) ScrollToFormFor(in intent.Intent) bool {
	anchor, ok := a.tpl.FormAnchorFor(in)
	if !ok {
		return false
	}
	a.mu.Lock()
	a.scrolledTo = anchor
	a.mu.Unlock()
	return true
}

// Notify implements intent.Notifier.
func (a *App) Notify(kind intent.NoticeKind, message string) {
	a.setStatus(message, kind == intent.NoticeError)
}

// OpenDialog implements intent.DialogOpener.
func (a *App) OpenDialog(kind intent.ModalKind, in intent.Intent, p intent.Payload) {
	a.mu.Lock()
	a.dialogOpen = true
	a.mu.Unlock()
}

func (a *App) setStatus(msg string, isErr bool) {
	a.mu.Lock()
	a.status = msg
	a.statusErr = isErr
	a.mu.Unlock()
}

func (a *App) statusLine() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status, a.statusErr
}

// payloadFor supplies the preview's sample payloads; a published site
// collects these from its real forms.
func (a *App) payloadFor(in intent.Intent) intent.Payload {
	switch in {
	case intent.QuoteRequest:
		return intent.Payload{"name": "Jo Citizen", "phone": "0400 000 000", "email": "jo@example.com", "service": "Blocked drains"}
	case intent.CallbackRequest:
		return intent.Payload{"name": "Jo Citizen", "phone": "0400 000 000"}
	case intent.NewsletterSubscribe:
		return intent.Payload{"email": "jo@example.com"}
	case intent.ContactMessage:
		return intent.Payload{"name": "Jo Citizen", "message": "Hello!"}
	case intent.BookingRequest:
		return intent.Payload{"name": "Jo Citizen", "date": "next Tuesday"}
	}
	return nil
}
