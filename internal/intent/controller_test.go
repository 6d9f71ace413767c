package intent

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type execCall struct {
	in Intent
	p  Payload
	o  Options
}

type fakeExecutor struct {
	calls  []execCall
	res    Result
	err    error
	during func() // observe controller state mid-execution
}

func (f *fakeExecutor) Execute(ctx context.Context, in Intent, p Payload, o Options) (Result, error) {
	f.calls = append(f.calls, execCall{in: in, p: p, o: o})
	if f.during != nil {
		f.during()
	}
	return f.res, f.err
}

type navCall struct {
	route string
	state NavState
}

type fakeNavigator struct{ calls []navCall }

func (f *fakeNavigator) NavigateTo(route string, state NavState) {
	f.calls = append(f.calls, navCall{route: route, state: state})
}

type fakeScroller struct {
	found bool
	calls []Intent
}

func (f *fakeScroller) ScrollToFormFor(in Intent) bool {
	f.calls = append(f.calls, in)
	return f.found
}

type notice struct {
	kind NoticeKind
	msg  string
}

type fakeNotifier struct{ notices []notice }

func (f *fakeNotifier) Notify(kind NoticeKind, msg string) {
	f.notices = append(f.notices, notice{kind: kind, msg: msg})
}

type harness struct {
	ctrl   *Controller
	exec   *fakeExecutor
	nav    *fakeNavigator
	scroll *fakeScroller
	notes  *fakeNotifier
}

func newHarness(opts ...Option) *harness {
	h := &harness{
		exec:   &fakeExecutor{res: Result{Success: true, Status: StatusExecuted}},
		nav:    &fakeNavigator{},
		scroll: &fakeScroller{},
		notes:  &fakeNotifier{},
	}
	h.ctrl = NewController(Deps{
		Resolver:  NewResolver(),
		Executor:  h.exec,
		Navigator: h.nav,
		Scroller:  h.scroll,
		Notifier:  h.notes,
	}, opts...)
	return h
}

func mustResult(t *testing.T, out *Outcome) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := out.Wait(ctx)
	if err != nil {
		t.Fatalf("outcome error: %v", err)
	}
	return res
}

func TestDispatchExecuteCallsExecutorOnceWithExactPayload(t *testing.T) {
	h := newHarness()
	p := Payload{"email": "a@b.com"}

	res := mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, p, Options{}))
	if !res.Success {
		t.Fatalf("dispatch failed: %+v", res)
	}
	if len(h.exec.calls) != 1 {
		t.Fatalf("executor called %d times, want 1", len(h.exec.calls))
	}
	if h.exec.calls[0].in != NewsletterSubscribe || !reflect.DeepEqual(h.exec.calls[0].p, p) {
		t.Fatalf("executor got %+v", h.exec.calls[0])
	}
	if h.ctrl.State().Executing != "" {
		t.Fatalf("executing intent not cleared")
	}
}

func TestDispatchConfirmSuspendsUntilConfirmed(t *testing.T) {
	h := newHarness()
	p := Payload{"name": "Jo", "phone": "555"}

	out := h.ctrl.Dispatch(context.Background(), QuoteRequest, p, Options{})
	if out.Settled() {
		t.Fatalf("confirm-gated dispatch settled before user response")
	}
	if len(h.exec.calls) != 0 {
		t.Fatalf("executor ran before confirmation")
	}

	st := h.ctrl.State()
	if !st.Confirm.Open || st.Confirm.Intent != QuoteRequest {
		t.Fatalf("confirm state = %+v", st.Confirm)
	}
	if !reflect.DeepEqual(st.Confirm.Fields, []string{"name", "phone", "email"}) {
		t.Fatalf("preview fields = %v", st.Confirm.Fields)
	}
	if !reflect.DeepEqual(st.Confirm.Payload, p) {
		t.Fatalf("snapshot payload = %v", st.Confirm.Payload)
	}

	h.ctrl.Confirm(context.Background())
	res := mustResult(t, out)
	if !res.Success || res.Status != StatusExecuted {
		t.Fatalf("confirmed outcome = %+v", res)
	}
	if len(h.exec.calls) != 1 || !reflect.DeepEqual(h.exec.calls[0].p, p) {
		t.Fatalf("executor calls = %+v", h.exec.calls)
	}
	if h.ctrl.State().Confirm.Open {
		t.Fatalf("confirm prompt still open after Confirm")
	}
}

func TestCancelConfirmAlwaysSettles(t *testing.T) {
	h := newHarness()
	out := h.ctrl.Dispatch(context.Background(), QuoteRequest, Payload{"name": "Jo"}, Options{})

	h.ctrl.CancelConfirm()
	res := mustResult(t, out)
	if res.Success || res.Status != StatusCancelled {
		t.Fatalf("cancelled outcome = %+v", res)
	}
	if len(h.exec.calls) != 0 {
		t.Fatalf("executor ran despite cancel")
	}
	if h.ctrl.State().Confirm.Open {
		t.Fatalf("confirm prompt still open after cancel")
	}
}

func TestSkipConfirmationExecutesDirectly(t *testing.T) {
	h := newHarness()
	out := h.ctrl.Dispatch(context.Background(), QuoteRequest, Payload{"name": "Jo"}, Options{SkipConfirmation: true})

	res := mustResult(t, out)
	if !res.Success {
		t.Fatalf("skip-confirmation dispatch failed: %+v", res)
	}
	if h.ctrl.State().Confirm.Open {
		t.Fatalf("confirmation UI opened despite skip flag")
	}
	if len(h.exec.calls) != 1 {
		t.Fatalf("executor called %d times, want 1", len(h.exec.calls))
	}
}

func TestDispatchAuthOpensModalAndResolvesImmediately(t *testing.T) {
	h := newHarness()
	out := h.ctrl.Dispatch(context.Background(), AuthLogin, nil, Options{})

	res := mustResult(t, out)
	if !res.Success || res.Status != StatusModalOpened {
		t.Fatalf("auth dispatch = %+v", res)
	}
	st := h.ctrl.State()
	if !st.Auth.Open || st.Auth.Prompt.Mode != AuthModeSignIn {
		t.Fatalf("auth state = %+v", st.Auth)
	}
	if len(h.exec.calls) != 0 {
		t.Fatalf("executor must not run for auth intents")
	}

	h.ctrl.CloseAuth()
	if h.ctrl.State().Auth.Open {
		t.Fatalf("auth prompt still open after CloseAuth")
	}
}

func TestDispatchScrollHappyPath(t *testing.T) {
	h := newHarness()
	h.scroll.found = true

	res := mustResult(t, h.ctrl.Dispatch(context.Background(), ContactMessage, nil, Options{HasFormInView: true}))
	if !res.Success || res.Status != StatusScrolled {
		t.Fatalf("scroll dispatch = %+v", res)
	}
	if len(h.nav.calls) != 0 {
		t.Fatalf("navigated despite successful scroll")
	}
}

func TestDispatchScrollFallsBackToRedirectWhenTargetMissing(t *testing.T) {
	h := newHarness()
	h.scroll.found = false
	p := Payload{"message": "hi"}

	res := mustResult(t, h.ctrl.Dispatch(context.Background(), ContactMessage, p, Options{HasFormInView: true}))
	if !res.Success || res.Status != StatusRedirect {
		t.Fatalf("fallback dispatch = %+v", res)
	}
	if len(h.scroll.calls) != 1 {
		t.Fatalf("scroller not consulted")
	}
	if len(h.nav.calls) != 1 || h.nav.calls[0].route != "/contact" {
		t.Fatalf("nav calls = %+v", h.nav.calls)
	}
	if h.nav.calls[0].state.Intent != ContactMessage || !reflect.DeepEqual(h.nav.calls[0].state.Payload, p) {
		t.Fatalf("nav state bag = %+v", h.nav.calls[0].state)
	}
	if len(h.exec.calls) != 0 {
		t.Fatalf("executor must not run on redirect")
	}
}

func TestExecutingIntentVisibleDuringAndClearedAfter(t *testing.T) {
	h := newHarness()
	var during Intent
	h.exec.during = func() { during = h.ctrl.State().Executing }

	mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{}))
	if during != NewsletterSubscribe {
		t.Fatalf("executing intent during call = %q", during)
	}
	if h.ctrl.State().Executing != "" {
		t.Fatalf("executing intent not cleared after success")
	}

	h.exec.res = Result{Success: false, Err: "server said no"}
	mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{}))
	if h.ctrl.State().Executing != "" {
		t.Fatalf("executing intent not cleared after failure")
	}
}

func TestFatalExecutorErrorPropagatesAndClearsBusyFlag(t *testing.T) {
	h := newHarness()
	fatal := errors.New("connection torn down")
	h.exec.err = fatal

	out := h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{})
	if _, err := out.Result(); !errors.Is(err, fatal) {
		t.Fatalf("fatal error not propagated: %v", err)
	}
	if h.ctrl.State().Executing != "" {
		t.Fatalf("executing intent leaked after fatal error")
	}
	if len(h.notes.notices) != 0 {
		t.Fatalf("fatal errors must not be notified as ordinary failures")
	}
}

func TestNotificationsOnSuccessAndFailure(t *testing.T) {
	h := newHarness()

	mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{}))
	if len(h.notes.notices) != 1 || h.notes.notices[0].kind != NoticeSuccess {
		t.Fatalf("success notices = %+v", h.notes.notices)
	}

	h.exec.res = Result{Success: false, Err: "storage offline"}
	res := mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{}))
	if res.Success {
		t.Fatalf("failure result = %+v", res)
	}
	last := h.notes.notices[len(h.notes.notices)-1]
	if last.kind != NoticeError || last.msg != "storage offline" {
		t.Fatalf("failure notice = %+v", last)
	}
}

func TestSecondConfirmDispatchSupersedesFirstDeterministically(t *testing.T) {
	h := newHarness()
	first := h.ctrl.Dispatch(context.Background(), QuoteRequest, Payload{"name": "first"}, Options{})
	second := h.ctrl.Dispatch(context.Background(), CallbackRequest, Payload{"name": "second"}, Options{})

	// the first caller is settled, not orphaned
	res := mustResult(t, first)
	if res.Success || res.Status != StatusSuperseded {
		t.Fatalf("superseded outcome = %+v", res)
	}

	st := h.ctrl.State()
	if st.Confirm.Intent != CallbackRequest {
		t.Fatalf("snapshot should belong to the latest dispatch: %+v", st.Confirm)
	}

	h.ctrl.Confirm(context.Background())
	res = mustResult(t, second)
	if !res.Success {
		t.Fatalf("second outcome = %+v", res)
	}
	if len(h.exec.calls) != 1 || h.exec.calls[0].in != CallbackRequest {
		t.Fatalf("executor calls = %+v; only the winning commit may run", h.exec.calls)
	}
}

func TestConfirmPairsOutcomeWithItsOwnCommit(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	first := h.ctrl.Dispatch(ctx, QuoteRequest, Payload{"name": "first"}, Options{})

	// a new confirm-gated dispatch arrives while the first commit is
	// executing; it must arm its own slot, not inherit or steal the one
	// being fired
	var second *Outcome
	h.exec.during = func() {
		if second == nil {
			second = h.ctrl.Dispatch(ctx, CallbackRequest, Payload{"name": "second"}, Options{})
		}
	}
	h.ctrl.Confirm(ctx)

	res := mustResult(t, first)
	if !res.Success || res.Status != StatusExecuted {
		t.Fatalf("first outcome = %+v", res)
	}
	if len(h.exec.calls) != 1 || h.exec.calls[0].in != QuoteRequest {
		t.Fatalf("first confirm executed %+v, want %s", h.exec.calls, QuoteRequest)
	}
	if second == nil || second.Settled() {
		t.Fatalf("interleaved dispatch must stay pending on its own confirmation")
	}

	h.exec.during = nil
	h.ctrl.Confirm(ctx)
	res = mustResult(t, second)
	if !res.Success {
		t.Fatalf("second outcome = %+v", res)
	}
	if len(h.exec.calls) != 2 || h.exec.calls[1].in != CallbackRequest {
		t.Fatalf("executor calls = %+v; each caller gets its own execution", h.exec.calls)
	}
}

func TestDispatchOptionsReachExecutor(t *testing.T) {
	h := newHarness()
	o := Options{PageCategory: "services"}

	mustResult(t, h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, o))
	out := h.ctrl.Dispatch(context.Background(), QuoteRequest, Payload{"name": "Jo"}, o)
	h.ctrl.Confirm(context.Background())
	mustResult(t, out)

	if len(h.exec.calls) != 2 {
		t.Fatalf("executor called %d times, want 2", len(h.exec.calls))
	}
	for i, call := range h.exec.calls {
		if call.o.PageCategory != "services" {
			t.Fatalf("call %d lost page category: %+v", i, call.o)
		}
	}
}

func TestCloseSettlesOutstandingConfirmation(t *testing.T) {
	h := newHarness()
	out := h.ctrl.Dispatch(context.Background(), QuoteRequest, Payload{"name": "Jo"}, Options{})

	h.ctrl.Close()
	res := mustResult(t, out)
	if res.Success || res.Status != StatusCancelled {
		t.Fatalf("teardown outcome = %+v", res)
	}

	// dispatch after close must not hang either
	late := h.ctrl.Dispatch(context.Background(), NewsletterSubscribe, nil, Options{})
	if res := mustResult(t, late); res.Status != StatusCancelled {
		t.Fatalf("post-close dispatch = %+v", res)
	}
}

func TestUnknownIntentCarriesSuggestion(t *testing.T) {
	h := newHarness()
	res := mustResult(t, h.ctrl.Dispatch(context.Background(), "quote.requst", nil, Options{}))
	if res.Suggestion != QuoteRequest {
		t.Fatalf("suggestion = %q, want %q", res.Suggestion, QuoteRequest)
	}
}
