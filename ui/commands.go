package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndhoang/shopfront/offer"
	"github.com/ndhoang/shopfront/payment"
	"github.com/ndhoang/shopfront/types"
)

// Message types for async operations. Payment and debounce messages carry
// the panel session they belong to; results from a closed session are
// dropped.

type catalogMsg struct {
	products []types.Product
	err      error
}

type offerElapsedMsg struct {
	session int
	seq     int
}

type transactionCreatedMsg struct {
	session int
	res     payment.CreateResult
	err     error
}

type confirmResultMsg struct {
	session int
	res     payment.ConfirmResult
	err     error
}

type cancelResultMsg struct {
	session int
	err     error
}

type successCloseMsg struct {
	session int
}

type toastExpiredMsg struct {
	id int
}

// fetchCatalog returns a tea.Cmd that loads the catalog asynchronously
func fetchCatalog(source types.CatalogSource) tea.Cmd {
	return func() tea.Msg {
		products, err := source.Listing()
		return catalogMsg{products: products, err: err}
	}
}

// scheduleOfferValidation arms the debounce timer for one accepted
// keystroke. A newer keystroke supersedes it by sequence.
func scheduleOfferValidation(session, seq int) tea.Cmd {
	return tea.Tick(offer.DebounceInterval, func(time.Time) tea.Msg {
		return offerElapsedMsg{session: session, seq: seq}
	})
}

// createTransaction issues the remote transaction creation. The caller
// must have passed the idempotency guard first.
func createTransaction(gateway payment.Gateway, session int, amount float64, meta payment.TransactionMetadata) tea.Cmd {
	return func() tea.Msg {
		res, err := gateway.CreateTransaction(amount, meta)
		return transactionCreatedMsg{session: session, res: res, err: err}
	}
}

// confirmTransaction delegates confirmation to the gateway.
func confirmTransaction(gateway payment.Gateway, session int, clientSecret string) tea.Cmd {
	return func() tea.Msg {
		res, err := gateway.ConfirmTransaction(clientSecret)
		return confirmResultMsg{session: session, res: res, err: err}
	}
}

// cancelTransaction fires the best-effort remote cancel. Local state is
// already reset by the time this runs.
func cancelTransaction(gateway payment.Gateway, session int, transactionID string) tea.Cmd {
	return func() tea.Msg {
		err := gateway.CancelTransaction(transactionID)
		return cancelResultMsg{session: session, err: err}
	}
}

// scheduleSuccessClose closes the panel shortly after a successful
// payment, as the storefront does.
func scheduleSuccessClose(session int) tea.Cmd {
	return tea.Tick(3500*time.Millisecond, func(time.Time) tea.Msg {
		return successCloseMsg{session: session}
	})
}

// scheduleToastDismiss expires a toast after its auto-dismiss interval.
func scheduleToastDismiss(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
