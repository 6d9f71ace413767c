// Package intent routes semantic user actions raised by rendered pages.
//
// A page control announces an Intent plus a Payload; the Controller asks
// the Resolver how the action must be carried out (execute, confirm,
// scroll, redirect, or open a modal), drives any modal UI state, and
// hands the caller an Outcome that settles once a terminal result is
// known. The pipeline never performs the business action itself; that is
// the Executor collaborator's job.
package intent

// Intent names a user action the pipeline can route. The set of known
// intents is closed and defined by the product; unknown intents still
// dispatch (execute policy) but carry a nearest-match suggestion.
type Intent string

const (
	AuthLogin           Intent = "auth.login"
	AuthRegister        Intent = "auth.register"
	QuoteRequest        Intent = "quote.request"
	BookingRequest      Intent = "booking.request"
	ContactMessage      Intent = "contact.message"
	NewsletterSubscribe Intent = "newsletter.subscribe"
	GalleryOpen         Intent = "gallery.open"
	CallbackRequest     Intent = "callback.request"
)

// Payload carries the data accompanying an intent. It is created by the
// caller, read-only to the pipeline, and passed through to the Executor
// unchanged. Only key presence is inspected, for confirmation previews.
type Payload map[string]any

// clone returns a shallow copy so a later caller mutation cannot change
// an armed confirmation snapshot.
func (p Payload) clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Options configures a single dispatch. Constructed fresh per call.
type Options struct {
	// HasFormInView reports whether the current page already renders a
	// form relevant to the intent, making an in-page scroll possible.
	HasFormInView bool
	// PageCategory is an optional hint naming the kind of page the
	// intent was raised from (e.g. "services", "landing").
	PageCategory string
	// SkipConfirmation bypasses the confirmation modal for intents that
	// would normally be confirm-gated.
	SkipConfirmation bool
}

// Result statuses reported on terminal outcomes.
const (
	StatusExecuted    = "executed"
	StatusScrolled    = "scrolled"
	StatusRedirect    = "redirect"
	StatusModalOpened = "modal_opened"
	StatusCancelled   = "cancelled"
	StatusSuperseded  = "superseded"
)

// Result is the terminal outcome of a dispatch.
type Result struct {
	Success bool
	Status  string
	// Message is an optional user-facing message from the Executor.
	Message string
	// Err holds an ordinary (non-fatal) failure description.
	Err string
	// Suggestion is set when an unknown intent was dispatched and a
	// known intent sits within editing distance of it.
	Suggestion Intent
}

func cancelledResult() Result {
	return Result{Success: false, Status: StatusCancelled, Err: "confirmation cancelled"}
}

func supersededResult() Result {
	return Result{Success: false, Status: StatusSuperseded, Err: "superseded by a newer confirmation request"}
}
