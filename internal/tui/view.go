package tui

import (
	"fmt"
	"strings"

	"github.com/siteforge/siteforge/internal/intent"
)

func (a *App) View() string {
	base := a.renderPage()

	st := a.ctrl.State()
	switch {
	case st.Confirm.Open:
		return composite(base, a.renderConfirmCard(st.Confirm), a.width, a.height)
	case st.Auth.Open:
		return composite(base, a.renderAuthCard(st.Auth), a.width, a.height)
	case a.isDialogOpen():
		return composite(base, a.renderGalleryCard(), a.width, a.height)
	}
	return base
}

func (a *App) renderPage() string {
	var b strings.Builder

	b.WriteString(a.styles.header.Render(a.tpl.Name))
	b.WriteString("\n")
	b.WriteString(a.styles.tagline.Render(a.tpl.Tagline))
	b.WriteString("\n\n")

	a.mu.Lock()
	scrolledTo := a.scrolledTo
	subs := a.submissions
	a.mu.Unlock()

	for _, s := range a.tpl.Sections {
		marker := "  "
		if s.FormAnchor != "" && s.FormAnchor == scrolledTo {
			marker = a.styles.anchor.Render("▸ ")
		}
		b.WriteString(marker + a.styles.section.Render(s.Title))
		if s.FormAnchor != "" {
			b.WriteString(" " + a.styles.hint.Render(s.FormAnchor))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, ctl := range a.controls {
		line := "  [ " + ctl.Label + " ]"
		if i == a.cursor {
			line = a.styles.selected.Render("› [ " + ctl.Label + " ]")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if ex := a.ctrl.State().Executing; ex != "" {
		b.WriteString(a.styles.hint.Render(fmt.Sprintf("working on %s…", ex)) + "\n")
	}

	status, isErr := a.statusLine()
	line := a.styles.status.Render(status)
	if isErr {
		line = a.styles.errline.Render(status)
	}
	b.WriteString(line + "\n")
	b.WriteString(a.styles.hint.Render(fmt.Sprintf(
		"%d submissions · ↑/↓ select · enter trigger · x skip confirm · g page event · q quit", subs)))
	return b.String()
}

func (a *App) renderConfirmCard(st intent.ConfirmState) string {
	var b strings.Builder
	b.WriteString(a.styles.cardhead.Render("Please confirm"))
	b.WriteString("\n\n")
	b.WriteString(string(st.Intent) + "\n\n")
	for _, f := range st.Fields {
		v, ok := st.Payload[f]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%-10s %v\n", f, v))
	}
	b.WriteString("\n" + a.styles.hint.Render("enter confirm · esc cancel"))
	return a.styles.card.Render(b.String())
}

func (a *App) renderAuthCard(st intent.AuthState) string {
	title := "Sign in"
	if st.Prompt.Mode == intent.AuthModeSignUp {
		title = "Create an account"
	}
	var b strings.Builder
	b.WriteString(a.styles.cardhead.Render(title))
	b.WriteString("\n\n")
	if st.Prompt.Message != "" {
		b.WriteString(st.Prompt.Message + "\n\n")
	}
	b.WriteString("Continue on the published site to authenticate.\n")
	b.WriteString("\n" + a.styles.hint.Render("esc close"))
	return a.styles.card.Render(b.String())
}

func (a *App) renderGalleryCard() string {
	var b strings.Builder
	b.WriteString(a.styles.cardhead.Render("Gallery"))
	b.WriteString("\n\n")
	b.WriteString("▒▒▒  ▒▒▒  ▒▒▒\n▒▒▒  ▒▒▒  ▒▒▒\n")
	b.WriteString("\n" + a.styles.hint.Render("esc close"))
	return a.styles.card.Render(b.String())
}
