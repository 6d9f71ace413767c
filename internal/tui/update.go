package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/siteforge/siteforge/internal/intent"
)

type outcomeMsg struct {
	res intent.Result
	err error
}

type countMsg struct {
	n   int
	err error
}

type confirmedMsg struct{}

// awaitOutcome delivers a dispatch's terminal result back into the
// update loop. For confirm-gated dispatches this blocks (off the UI
// goroutine) until the user answers the modal.
func awaitOutcome(out *intent.Outcome) tea.Cmd {
	return func() tea.Msg {
		res, err := out.Wait(context.Background())
		return outcomeMsg{res: res, err: err}
	}
}

func (a *App) refreshCount() tea.Cmd {
	return func() tea.Msg {
		if a.repo == nil {
			return countMsg{}
		}
		n, err := a.repo.Count(a.ctx)
		return countMsg{n: n, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case countMsg:
		if msg.err == nil {
			a.mu.Lock()
			a.submissions = msg.n
			a.mu.Unlock()
		}
		return a, nil

	case outcomeMsg:
		if msg.err != nil {
			a.setStatus("fatal: "+msg.err.Error(), true)
			return a, a.refreshCount()
		}
		a.noteOutcome(msg.res)
		return a, a.refreshCount()

	case confirmedMsg:
		return a, a.refreshCount()

	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

// updateKey routes keys modal-first: the highest-priority open prompt
// owns the keyboard, mirroring how the published page stacks its
// overlays.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		a.ctrl.Close()
		return a, tea.Quit
	}

	st := a.ctrl.State()
	switch {
	case st.Confirm.Open:
		return a.updateConfirmModal(key)
	case st.Auth.Open:
		return a.updateAuthModal(key)
	case a.isDialogOpen():
		if key == "esc" || key == "q" || key == "enter" {
			a.mu.Lock()
			a.dialogOpen = false
			a.mu.Unlock()
		}
		return a, nil
	}

	switch key {
	case "q":
		a.ctrl.Close()
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.controls)-1 {
			a.cursor++
		}
	case "enter":
		return a, a.dispatchSelected(intent.Options{})
	case "x":
		// power-user path: commit without the confirmation preview
		return a, a.dispatchSelected(intent.Options{SkipConfirmation: true})
	case "g":
		// simulate markup raising an intent on the global channel
		if a.bus != nil {
			a.bus.Announce(intent.Event{
				Intent:  intent.NewsletterSubscribe,
				Payload: intent.Payload{"email": "visitor@example.com"},
			})
			a.setStatus("announced newsletter.subscribe on the page bus", false)
		}
	}
	return a, nil
}

func (a *App) updateConfirmModal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "y":
		return a, func() tea.Msg {
			a.ctrl.Confirm(a.ctx)
			return confirmedMsg{}
		}
	case "esc", "n":
		a.ctrl.CancelConfirm()
	}
	return a, nil
}

func (a *App) updateAuthModal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "esc":
		a.ctrl.CloseAuth()
	}
	return a, nil
}

func (a *App) dispatchSelected(opts intent.Options) tea.Cmd {
	if len(a.controls) == 0 {
		return nil
	}
	ctl := a.controls[a.cursor]
	opts.HasFormInView = a.tpl.HasFormFor(ctl.Intent)
	opts.PageCategory = a.tpl.CategoryFor(ctl.Intent)

	out := a.ctrl.Dispatch(a.ctx, ctl.Intent, a.payloadFor(ctl.Intent), opts)
	return awaitOutcome(out)
}

func (a *App) noteOutcome(res intent.Result) {
	switch res.Status {
	case intent.StatusScrolled:
		a.setStatus("scrolled to the on-page form", false)
	case intent.StatusCancelled:
		a.setStatus("cancelled", false)
	case intent.StatusSuperseded:
		a.setStatus("replaced by a newer request", true)
	case intent.StatusModalOpened, intent.StatusRedirect:
		// status already set by the collaborator callbacks
	default:
		if !res.Success && res.Err != "" {
			a.setStatus(res.Err, true)
		}
	}
}

func (a *App) isDialogOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dialogOpen
}
