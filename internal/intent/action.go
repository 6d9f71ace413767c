package intent

// ActionKind is the closed set of strategies the resolver can pick.
type ActionKind int

const (
	// ActionExecute runs the intent through the Executor immediately.
	ActionExecute ActionKind = iota
	// ActionScroll scrolls the page to the intent's form anchor.
	ActionScroll
	// ActionRedirect navigates to a route carrying the intent context.
	ActionRedirect
	// ActionModal opens a modal (auth prompt or a plain dialog).
	ActionModal
	// ActionConfirm opens the confirmation preview and suspends the
	// dispatch until the user confirms or cancels.
	ActionConfirm
)

func (k ActionKind) String() string {
	switch k {
	case ActionExecute:
		return "execute"
	case ActionScroll:
		return "scroll"
	case ActionRedirect:
		return "redirect"
	case ActionModal:
		return "modal"
	case ActionConfirm:
		return "confirm"
	}
	return "unknown"
}

// ModalKind distinguishes the auth prompt from ordinary dialogs.
type ModalKind string

const (
	ModalAuth   ModalKind = "auth"
	ModalDialog ModalKind = "dialog"
)

// Auth prompt modes.
const (
	AuthModeSignIn = "signin"
	AuthModeSignUp = "signup"
)

// AuthPrompt configures the auth modal.
type AuthPrompt struct {
	Mode    string
	Message string
}

// Action is the resolver's output: exactly one kind per resolution, with
// the fields relevant to that kind populated.
type Action struct {
	Kind ActionKind
	// Route is the redirect target. It is also populated on scroll
	// actions so the controller can fall back to a redirect when the
	// page disagrees with the static resolution and no anchor exists.
	Route string
	// Modal is set for ActionModal.
	Modal ModalKind
	// Auth is set when Modal == ModalAuth.
	Auth AuthPrompt
}
