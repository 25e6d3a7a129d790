// Package payment drives the lifecycle of a remote payment transaction:
// create, confirm, cancel, and the terminal success/failure states.
package payment

// TransactionMetadata is attached to a transaction at creation.
type TransactionMetadata struct {
	ProductID string
	Title     string
}

// CreateResult is returned by a successful transaction creation.
type CreateResult struct {
	TransactionID string
	ClientSecret  string
}

// ConfirmStatus classifies the outcome of a confirmation attempt.
type ConfirmStatus int

const (
	// ConfirmSucceeded means funds moved; terminal for the attempt.
	ConfirmSucceeded ConfirmStatus = iota
	// ConfirmDeclined is a card-level decline or validation error; the
	// transaction stays open for retry.
	ConfirmDeclined
	// ConfirmRequiresAction means the gateway needs additional buyer
	// authentication before the attempt can complete.
	ConfirmRequiresAction
	// ConfirmOther covers any gateway status not modeled above.
	ConfirmOther
)

// ConfirmResult is the gateway's answer to a confirmation attempt.
type ConfirmResult struct {
	Status ConfirmStatus
	// Reason is the gateway's human-readable message for declines.
	Reason string
	// RawStatus is the gateway's verbatim status for ConfirmOther.
	RawStatus string
}

// Gateway is the opaque payment capability. Card handling, PCI and
// cryptography live entirely behind it.
type Gateway interface {
	CreateTransaction(amount float64, meta TransactionMetadata) (CreateResult, error)
	ConfirmTransaction(clientSecret string) (ConfirmResult, error)
	CancelTransaction(transactionID string) error
}
