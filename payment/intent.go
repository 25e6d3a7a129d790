package payment

import (
	"errors"
	"fmt"

	"github.com/ndhoang/shopfront/notify"
)

// Status is the lifecycle state of the panel's payment session.
type Status int

const (
	StatusIdle Status = iota
	StatusInitializing
	StatusAwaitingConfirmation
	StatusSucceeded
	StatusFailed
	StatusCancelled
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInitializing:
		return "initializing"
	case StatusAwaitingConfirmation:
		return "awaiting-confirmation"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition reports a lifecycle call made from the wrong state.
// These are programming errors, not remote failures.
var ErrInvalidTransition = errors.New("invalid payment transition")

// transitions enumerates the legal state machine edges. Reset back to
// StatusIdle is always legal and not listed.
var transitions = map[Status][]Status{
	StatusIdle:                 {StatusInitializing},
	StatusInitializing:         {StatusAwaitingConfirmation, StatusIdle},
	StatusAwaitingConfirmation: {StatusSucceeded, StatusFailed, StatusCancelled},
}

func canTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Manager owns exactly one in-flight transaction per panel session. All
// methods run on the event loop; the guard in Begin flips state before any
// remote call is issued, so there is no window in which two submits both
// observe StatusIdle.
type Manager struct {
	status        Status
	transactionID string
	clientSecret  string
	amount        float64
	sink          notify.Sink
}

// NewManager creates an idle manager reporting through sink.
func NewManager(sink notify.Sink) *Manager {
	return &Manager{sink: sink}
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status { return m.status }

// TransactionID returns the remote transaction identifier, if any.
func (m *Manager) TransactionID() string { return m.transactionID }

// ClientSecret returns the opaque confirmation token, if any.
func (m *Manager) ClientSecret() string { return m.clientSecret }

// Amount returns the total the transaction was created for.
func (m *Manager) Amount() float64 { return m.amount }

// Begin starts transaction creation for the given total. It is the
// idempotency boundary: from any state but StatusIdle it is a guarded
// no-op and the caller must not issue a remote call.
func (m *Manager) Begin(total float64) bool {
	if m.status != StatusIdle {
		return false
	}
	m.status = StatusInitializing
	m.amount = total
	return true
}

// FinishCreate applies the result of the remote creation. On failure the
// session reverts to StatusIdle and the error is surfaced; retry is a new
// Begin.
func (m *Manager) FinishCreate(res CreateResult, err error) {
	if m.status != StatusInitializing {
		return // panel was closed while the call was in flight
	}
	if err != nil {
		m.status = StatusIdle
		m.amount = 0
		m.notify(notify.Error, fmt.Sprintf("could not initialize payment: %v", err))
		return
	}
	m.status = StatusAwaitingConfirmation
	m.transactionID = res.TransactionID
	m.clientSecret = res.ClientSecret
	m.notify(notify.Info, "payment form ready — confirm to complete the purchase")
}

// BeginConfirm guards a confirmation attempt. Calling it outside
// StatusAwaitingConfirmation is a programming error.
func (m *Manager) BeginConfirm() error {
	if m.status != StatusAwaitingConfirmation {
		return fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, m.status)
	}
	return nil
}

// FinishConfirm applies the gateway's confirmation outcome. Declines and
// requires-action keep the transaction open for retry; only a transport
// error fails the attempt.
func (m *Manager) FinishConfirm(res ConfirmResult, err error) {
	if m.status != StatusAwaitingConfirmation {
		return
	}
	if err != nil {
		m.transition(StatusFailed)
		m.notify(notify.Error, fmt.Sprintf("payment error: %v", err))
		return
	}
	switch res.Status {
	case ConfirmSucceeded:
		m.transition(StatusSucceeded)
		m.notify(notify.Success, "payment succeeded — we will be in touch shortly")
	case ConfirmDeclined:
		reason := res.Reason
		if reason == "" {
			reason = "payment was declined"
		}
		m.notify(notify.Error, reason)
	case ConfirmRequiresAction:
		m.notify(notify.Info, "additional authentication required to complete the payment")
	default:
		m.notify(notify.Warning, fmt.Sprintf("payment not complete (status: %s), please retry", res.RawStatus))
	}
}

// Cancel honors the user's intent to stop. It is valid only from
// StatusAwaitingConfirmation; local state resets to StatusIdle immediately
// and unconditionally. The returned transaction ID is for the caller's
// best-effort remote cancel; a remote failure must never undo this.
func (m *Manager) Cancel() (transactionID string, ok bool) {
	if m.status != StatusAwaitingConfirmation {
		return "", false
	}
	transactionID = m.transactionID
	m.transition(StatusCancelled)
	m.clear()
	m.notify(notify.Info, "payment cancelled")
	return transactionID, true
}

// ReportCancelResult surfaces the outcome of the best-effort remote
// cancel. Local state is already reset either way.
func (m *Manager) ReportCancelResult(err error) {
	if err != nil {
		m.notify(notify.Warning, fmt.Sprintf("remote cancel failed: %v", err))
	}
}

// Reset clears the session. Called when the panel closes; an in-flight
// transaction is abandoned, not awaited.
func (m *Manager) Reset() {
	m.clear()
}

func (m *Manager) clear() {
	m.status = StatusIdle
	m.transactionID = ""
	m.clientSecret = ""
	m.amount = 0
}

func (m *Manager) transition(to Status) {
	if !canTransition(m.status, to) {
		// lifecycle methods guard their own entry states; reaching this
		// means the table and the guards disagree
		panic(fmt.Sprintf("payment: illegal transition %s -> %s", m.status, to))
	}
	m.status = to
}

func (m *Manager) notify(severity notify.Severity, message string) {
	if m.sink == nil {
		return
	}
	m.sink.Notify(notify.Notification{Severity: severity, Message: message})
}
