package intent

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Executor performs an intent's real effect. It receives the dispatch
// options so implementations can record where the intent came from
// (notably the page category). Ordinary failures travel in Result.Err
// with a nil error; a non-nil error is fatal and propagates to the
// dispatcher unwrapped.
type Executor interface {
	Execute(ctx context.Context, in Intent, p Payload, o Options) (Result, error)
}

// NavState is the context bag handed to the navigator so the destination
// page can resume or display the originating intent.
type NavState struct {
	Intent  Intent
	Payload Payload
}

// Navigator performs route changes. Fire-and-forget: the pipeline does
// not wait for navigation to complete.
type Navigator interface {
	NavigateTo(route string, state NavState)
}

// Scroller scrolls the page to the form associated with an intent and
// reports whether a target was actually found.
type Scroller interface {
	ScrollToFormFor(in Intent) bool
}

// NoticeKind classifies user notifications.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notifier surfaces user-facing messages. Fire-and-forget.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// DialogOpener opens non-auth dialogs (e.g. a gallery). Optional.
type DialogOpener interface {
	OpenDialog(kind ModalKind, in Intent, p Payload)
}

// AuthState is the auth prompt's visibility and configuration.
type AuthState struct {
	Open   bool
	Prompt AuthPrompt
}

// ConfirmState is the confirmation prompt's visibility plus the
// snapshot taken when the confirm policy was chosen.
type ConfirmState struct {
	Open    bool
	Intent  Intent
	Payload Payload
	Fields  []string
}

// State is the controller's single source of mutable truth, exposed to
// the UI as a copy. Executing names the intent currently in flight, for
// spinners; it is orthogonal to the modal flags.
type State struct {
	Auth      AuthState
	Confirm   ConfirmState
	Executing Intent
}

// Deps are the collaborators a controller drives. Executor is required;
// the rest may be nil, in which case the corresponding branches degrade
// (no scroll target found, silent navigation, no notifications).
type Deps struct {
	Resolver  *Resolver
	Executor  Executor
	Navigator Navigator
	Scroller  Scroller
	Notifier  Notifier
	Dialogs   DialogOpener
}

// Option customises controller construction.
type Option func(*Controller)

// WithLogger attaches a structured logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBus subscribes the controller to a global intent bus for its
// lifetime. Events arriving on the bus dispatch with default options;
// Close tears the subscription down.
func WithBus(bus *Bus) Option {
	return func(c *Controller) {
		c.bus = bus
	}
}

// Controller owns the pipeline state machine: at most one auth prompt
// and one confirmation prompt at a time, the pending commit slot, and
// the executing-intent flag. All mutation happens through its methods;
// within one dispatch, resolution, state mutation and modal-open are
// atomic with respect to State readers.
type Controller struct {
	resolver *Resolver
	exec     Executor
	nav      Navigator
	scroll   Scroller
	notify   Notifier
	dialogs  DialogOpener
	log      *zap.Logger

	mu      sync.Mutex
	state   State
	pending continuation
	// outcome of the suspended confirm-gated dispatch, if any.
	pendingOutcome *Outcome
	closed         bool

	bus         *Bus
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewController wires a controller to its collaborators and, when a bus
// is supplied, starts listening for globally announced intents.
func NewController(deps Deps, opts ...Option) *Controller {
	c := &Controller{
		resolver: deps.Resolver,
		exec:     deps.Executor,
		nav:      deps.Navigator,
		scroll:   deps.Scroller,
		notify:   deps.Notifier,
		dialogs:  deps.Dialogs,
		log:      zap.NewNop(),
	}
	if c.resolver == nil {
		c.resolver = NewResolver()
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus != nil {
		ch, cancel := c.bus.Subscribe()
		c.unsubscribe = cancel
		c.wg.Add(1)
		go c.pump(ch)
	}
	return c
}

// pump forwards bus events into Dispatch with default options. Outcomes
// are settled by Dispatch itself (bus-raised intents have no caller to
// hand them to), so they are deliberately dropped here.
func (c *Controller) pump(ch <-chan Event) {
	defer c.wg.Done()
	for ev := range ch {
		out := c.Dispatch(context.Background(), ev.Intent, ev.Payload, Options{})
		if out.Settled() {
			continue
		}
		c.log.Debug("bus intent suspended on confirmation",
			zap.String("intent", string(ev.Intent)))
	}
}

// State returns a copy of the pipeline state for rendering.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Confirm.Payload = c.state.Confirm.Payload.clone()
	return st
}

// Dispatch routes one intent. The returned Outcome is already settled
// for every branch except confirm, which stays pending until Confirm or
// CancelConfirm (or Close) runs. Fatal executor errors surface through
// the Outcome's error; ordinary failures through Result.
func (c *Controller) Dispatch(ctx context.Context, in Intent, p Payload, o Options) *Outcome {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return settledOutcome(cancelledResult(), nil)
	}
	c.mu.Unlock()

	act := c.resolver.Resolve(in, o)
	c.log.Debug("dispatch",
		zap.String("intent", string(in)),
		zap.Stringer("action", act.Kind),
		zap.String("category", o.PageCategory))

	switch act.Kind {
	case ActionScroll:
		if c.scroll != nil && c.scroll.ScrollToFormFor(in) {
			return settledOutcome(Result{Success: true, Status: StatusScrolled}, nil)
		}
		// The resolver believed a form was in view but the page
		// disagrees; degrade to the redirect branch.
		c.log.Debug("scroll target missing, redirecting",
			zap.String("intent", string(in)), zap.String("route", act.Route))
		return c.redirect(in, p, act.Route)

	case ActionRedirect:
		return c.redirect(in, p, act.Route)

	case ActionModal:
		if act.Modal == ModalAuth {
			c.openAuth(act.Auth)
		} else if c.dialogs != nil {
			c.dialogs.OpenDialog(act.Modal, in, p)
		}
		// Opening the modal is the terminal outcome; callers that need
		// the post-auth result re-dispatch once authenticated.
		return settledOutcome(Result{Success: true, Status: StatusModalOpened}, nil)

	case ActionConfirm:
		if o.SkipConfirmation {
			return c.execute(ctx, in, p, o)
		}
		return c.openConfirm(ctx, in, p, o)
	}

	return c.execute(ctx, in, p, o)
}

func (c *Controller) redirect(in Intent, p Payload, route string) *Outcome {
	if c.nav != nil {
		c.nav.NavigateTo(route, NavState{Intent: in, Payload: p})
	}
	return settledOutcome(Result{Success: true, Status: StatusRedirect}, nil)
}

func (c *Controller) openAuth(prompt AuthPrompt) {
	if prompt.Mode == "" {
		prompt.Mode = AuthModeSignIn
	}
	c.mu.Lock()
	c.state.Auth = AuthState{Open: true, Prompt: prompt}
	c.mu.Unlock()
}

// openConfirm snapshots the dispatch, arms the commit slot and returns
// the pending outcome. A dispatch arriving while an earlier confirmation
// is still open wins the slot; the earlier caller is settled with a
// superseded result rather than orphaned.
func (c *Controller) openConfirm(ctx context.Context, in Intent, p Payload, o Options) *Outcome {
	cfg := c.resolver.ConfigFor(in, o.PageCategory)
	out := newOutcome()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return settledOutcome(cancelledResult(), nil)
	}
	if prev := c.pendingOutcome; prev != nil {
		c.log.Warn("confirmation superseded", zap.String("intent", string(c.state.Confirm.Intent)))
		prev.settle(supersededResult(), nil)
	}
	c.pendingOutcome = out
	c.state.Confirm = ConfirmState{
		Open:    true,
		Intent:  in,
		Payload: p.clone(),
		Fields:  cfg.PreviewFields,
	}
	// Armed under the same lock as pendingOutcome so the outcome and its
	// commit can only ever change as a pair.
	c.pending.arm(func(ctx context.Context) (Result, error) {
		res, err := c.execute(ctx, in, p, o).Result()
		return res, err
	})
	c.mu.Unlock()

	return out
}

// Confirm commits the suspended dispatch, settles its outcome and closes
// the confirmation prompt. Safe to call with nothing pending. The commit
// and the outcome leave the controller together, under the same lock
// they were stored under, so a confirm dispatch racing this call can
// never hand one caller another caller's execution.
func (c *Controller) Confirm(ctx context.Context) {
	c.mu.Lock()
	out := c.pendingOutcome
	fn := c.pending.take()
	c.pendingOutcome = nil
	c.state.Confirm = ConfirmState{}
	c.mu.Unlock()

	if fn == nil {
		if out != nil {
			out.settle(cancelledResult(), nil)
		}
		return
	}
	res, err := fn(ctx)
	if out != nil {
		out.settle(res, err)
	}
}

// CancelConfirm discards the pending commit and settles the suspended
// outcome as cancelled. Every UI close path must route here (or through
// Confirm) so no caller is left hanging.
func (c *Controller) CancelConfirm() {
	c.mu.Lock()
	out := c.pendingOutcome
	c.pending.clear()
	c.pendingOutcome = nil
	c.state.Confirm = ConfirmState{}
	c.mu.Unlock()

	if out != nil {
		out.settle(cancelledResult(), nil)
	}
}

// CloseAuth clears the auth prompt. It settles nothing: the modal branch
// already resolved when the prompt opened.
func (c *Controller) CloseAuth() {
	c.mu.Lock()
	c.state.Auth = AuthState{}
	c.mu.Unlock()
}

// Close unsubscribes from the bus and settles any suspended confirmation
// as cancelled so an armed-but-never-fired commit cannot leak a pending
// caller past teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.wg.Wait()
	c.CancelConfirm()
	c.CloseAuth()
}

// execute runs the intent through the Executor, tracking the in-flight
// intent for the whole call so a failing executor can never leave the UI
// stuck busy, and surfacing configured notifications on the way out.
func (c *Controller) execute(ctx context.Context, in Intent, p Payload, o Options) *Outcome {
	c.mu.Lock()
	c.state.Executing = in
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.state.Executing = ""
		c.mu.Unlock()
	}()

	res, err := c.exec.Execute(ctx, in, p, o)
	if err != nil {
		c.log.Error("execution failed", zap.String("intent", string(in)), zap.Error(err))
		return settledOutcome(Result{}, err)
	}

	if !c.resolver.Known(in) {
		if s, ok := c.resolver.Suggest(in); ok {
			res.Suggestion = s
		}
	}

	cfg := c.resolver.ConfigFor(in, o.PageCategory)
	if c.notify != nil {
		switch {
		case res.Success && cfg.SuccessMessage != "":
			c.notify.Notify(NoticeSuccess, cfg.SuccessMessage)
		case !res.Success && res.Err != "":
			c.notify.Notify(NoticeError, res.Err)
		}
	}
	return settledOutcome(res, nil)
}
