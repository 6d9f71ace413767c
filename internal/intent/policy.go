package intent

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far an unknown intent may sit from a
// known one before a "did you mean" suggestion is offered.
const maxSuggestDistance = 3

// policySpec declares how one intent is handled. A single table drives
// Resolve, RequiresAuth and ConfigFor so the three lookups can never
// disagree about an intent.
type policySpec struct {
	auth     bool   // auth gate; wins over everything else
	authMode string // signin/signup; blank = generic signin
	scroll   bool   // prefers scrolling to an on-page form
	route    string // redirect target (also the scroll fallback)
	confirm  bool   // requires human confirmation before committing
	modal    ModalKind
	preview  []string // payload fields shown in the confirmation card
	success  string   // user-facing message on successful execution

	// overrides refine preview/success for a named page category.
	overrides map[string]categoryOverride
}

type categoryOverride struct {
	preview []string
	success string
}

// Config is the per-intent configuration the controller consumes when
// previewing confirmations and surfacing success notifications.
type Config struct {
	SuccessMessage string
	PreviewFields  []string
}

// Resolver turns (intent, options) into a PipelineAction. It is a pure
// lookup over a static table: no side effects, no clock, no network.
type Resolver struct {
	specs         map[Intent]policySpec
	fallbackRoute string
}

// ResolverOption customises resolver construction.
type ResolverOption func(*Resolver)

// WithFallbackRoute sets the route used when a scroll-preferring intent
// has no route of its own and no form is in view.
func WithFallbackRoute(route string) ResolverOption {
	return func(r *Resolver) {
		if route != "" {
			r.fallbackRoute = route
		}
	}
}

// NewResolver builds a resolver over the product's intent table.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		specs:         defaultSpecs(),
		fallbackRoute: "/contact",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultSpecs() map[Intent]policySpec {
	return map[Intent]policySpec{
		AuthLogin:    {auth: true, authMode: AuthModeSignIn},
		AuthRegister: {auth: true, authMode: AuthModeSignUp},
		QuoteRequest: {
			confirm: true,
			preview: []string{"name", "phone", "email"},
			success: "Thanks! We'll be in touch with your quote shortly.",
			overrides: map[string]categoryOverride{
				"services": {
					preview: []string{"name", "phone", "email", "service"},
					success: "Thanks! The team will call you about this service.",
				},
			},
		},
		BookingRequest: {
			scroll:  true,
			route:   "/book",
			success: "Booking request received.",
		},
		ContactMessage: {
			scroll:  true,
			route:   "/contact",
			success: "Message sent. We usually reply within one business day.",
		},
		CallbackRequest: {
			confirm: true,
			preview: []string{"name", "phone"},
			success: "We'll call you back as soon as possible.",
		},
		NewsletterSubscribe: {
			success: "You're subscribed.",
		},
		GalleryOpen: {
			modal: ModalDialog,
		},
	}
}

// Resolve picks exactly one action for the given intent and context.
// Authentication gating always wins. For scroll-preferring intents the
// in-page scroll is chosen whenever a form is already visible; redirect
// is the graceful degradation, never the first choice.
func (r *Resolver) Resolve(in Intent, o Options) Action {
	spec := r.specs[in]

	if spec.auth {
		mode := spec.authMode
		if mode == "" {
			mode = AuthModeSignIn
		}
		return Action{Kind: ActionModal, Modal: ModalAuth, Auth: AuthPrompt{Mode: mode}}
	}
	if spec.scroll {
		route := spec.route
		if route == "" {
			route = r.fallbackRoute
		}
		if o.HasFormInView {
			return Action{Kind: ActionScroll, Route: route}
		}
		return Action{Kind: ActionRedirect, Route: route}
	}
	if spec.confirm {
		return Action{Kind: ActionConfirm}
	}
	if spec.modal != "" {
		return Action{Kind: ActionModal, Modal: spec.modal}
	}
	return Action{Kind: ActionExecute}
}

// RequiresAuth reports whether the intent is gated behind the auth
// prompt regardless of any other context.
func (r *Resolver) RequiresAuth(in Intent) bool {
	return r.specs[in].auth
}

// ConfigFor returns the confirmation preview fields and success message
// for an intent, applying any per-category override. Missing intents get
// a zero Config (no preview, no message): resolution never fails.
func (r *Resolver) ConfigFor(in Intent, category string) Config {
	spec, ok := r.specs[in]
	if !ok {
		return Config{}
	}
	cfg := Config{
		SuccessMessage: spec.success,
		PreviewFields:  slices.Clone(spec.preview),
	}
	if ov, ok := spec.overrides[category]; ok {
		if ov.success != "" {
			cfg.SuccessMessage = ov.success
		}
		if len(ov.preview) > 0 {
			cfg.PreviewFields = slices.Clone(ov.preview)
		}
	}
	return cfg
}

// Known reports whether the intent appears in the policy table.
func (r *Resolver) Known(in Intent) bool {
	_, ok := r.specs[in]
	return ok
}

// Intents returns the known intent set, sorted for stable output.
func (r *Resolver) Intents() []Intent {
	out := make([]Intent, 0, len(r.specs))
	for in := range r.specs {
		out = append(out, in)
	}
	slices.Sort(out)
	return out
}

// Suggest returns the known intent nearest to the given unknown one, if
// any sits within maxSuggestDistance edits. Used to enrich the result of
// an unknown-intent dispatch with a "did you mean".
func (r *Resolver) Suggest(in Intent) (Intent, bool) {
	needle := strings.ToLower(string(in))
	best := Intent("")
	bestDist := maxSuggestDistance + 1
	for _, known := range r.Intents() {
		d := levenshtein.ComputeDistance(needle, string(known))
		if d < bestDist {
			best, bestDist = known, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
