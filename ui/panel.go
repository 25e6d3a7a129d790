package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndhoang/shopfront/notify"
	"github.com/ndhoang/shopfront/offer"
	"github.com/ndhoang/shopfront/payment"
	"github.com/ndhoang/shopfront/pricing"
	"github.com/ndhoang/shopfront/types"
)

// Panel is the checkout side panel. It owns the panel session (selected
// item, offer state, payment session) and fully resets it on close so
// nothing leaks between items viewed in sequence.
type Panel struct {
	gateway payment.Gateway
	sink    notify.Sink

	// session invalidates in-flight async results when the panel closes
	// or reopens on another item
	session int
	open    bool
	item    types.Product

	validator  *offer.Validator
	manager    *payment.Manager
	input      textinput.Model
	confirming bool

	width  int
	height int
}

// NewPanel creates a closed panel wired to the injected gateway.
func NewPanel(gateway payment.Gateway, sink notify.Sink) *Panel {
	return &Panel{
		gateway: gateway,
		sink:    sink,
		manager: payment.NewManager(sink),
	}
}

// Opened reports whether the panel is showing an item.
func (p *Panel) Opened() bool { return p.open }

// Item returns the selected item; meaningful only while opened.
func (p *Panel) Item() types.Product { return p.item }

// Open binds the panel to an item. Reopening on a different item runs the
// full reset sequence first.
func (p *Panel) Open(item types.Product) tea.Cmd {
	if p.open && p.item.ID() == item.ID() {
		return nil
	}
	if p.open {
		p.reset()
	}
	p.session++
	p.open = true
	p.item = item
	p.validator = offer.NewValidator(item.Price().Amount)
	p.input = newOfferInput()
	return p.input.Focus()
}

// Close unconditionally resets the session and clears the selected item.
// An in-flight transaction is abandoned, not awaited.
func (p *Panel) Close() {
	if !p.open {
		return
	}
	p.reset()
	p.session++
}

func (p *Panel) reset() {
	p.open = false
	p.item = types.Product{}
	p.validator = nil
	p.manager.Reset()
	p.confirming = false
	p.input.Blur()
	p.input.SetValue("")
}

// SetSize configures the panel dimensions.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	inputWidth := width - 18
	if inputWidth < 10 {
		inputWidth = 10
	}
	p.input.Width = inputWidth
}

// Quote returns the current price breakdown: confirmed offer, else typed
// offer, else list price.
func (p *Panel) Quote() pricing.Quote {
	base := p.item.Price().Amount
	if p.validator != nil {
		base = p.validator.State().BaseAmount(p.item.Price().Amount)
	}
	return pricing.Compute(base)
}

// Update processes messages while the panel is open.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	if !p.open {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case offerElapsedMsg:
		if msg.session == p.session {
			p.validator.Elapse(msg.seq)
		}

	case transactionCreatedMsg:
		if msg.session == p.session {
			p.manager.FinishCreate(msg.res, msg.err)
		}

	case confirmResultMsg:
		if msg.session != p.session {
			return nil
		}
		p.confirming = false
		p.manager.FinishConfirm(msg.res, msg.err)
		if p.manager.Status() == payment.StatusSucceeded {
			return scheduleSuccessClose(p.session)
		}

	case cancelResultMsg:
		if msg.session == p.session {
			p.manager.ReportCancelResult(msg.err)
		}

	case successCloseMsg:
		if msg.session == p.session && p.manager.Status() == payment.StatusSucceeded {
			p.Close()
		}
	}
	return nil
}

func (p *Panel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// the global cancel gesture means close
		p.Close()
		return nil
	case "enter":
		switch p.manager.Status() {
		case payment.StatusIdle:
			return p.submitPayment()
		case payment.StatusAwaitingConfirmation:
			return p.confirmPayment()
		}
		return nil
	case "c":
		if p.manager.Status() == payment.StatusAwaitingConfirmation {
			return p.cancelPayment()
		}
	}
	return p.handleOfferInput(msg)
}

// handleOfferInput gates free text through the validator: malformed
// keystrokes are reverted with no state change, accepted ones arm the
// debounce timer.
func (p *Panel) handleOfferInput(msg tea.KeyMsg) tea.Cmd {
	if p.manager.Status() != payment.StatusIdle || p.validator.State().Frozen {
		return nil
	}

	prev := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() == prev {
		return cmd
	}

	seq, accepted := p.validator.Input(p.input.Value())
	if !accepted {
		p.input.SetValue(prev)
		p.input.CursorEnd()
		return nil
	}
	return tea.Batch(cmd, scheduleOfferValidation(p.session, seq))
}

// submitPayment starts transaction creation. A pending debounce is forced
// first so initialization never races a stale validation result.
func (p *Panel) submitPayment() tea.Cmd {
	state := p.validator.State()
	if state.Raw != "" {
		p.validator.Elapse(p.validator.Seq())
		state = p.validator.State()
		if !state.Valid {
			return nil // inline warning blocks initialization
		}
	}

	quote := p.Quote()
	if quote.Base <= 0 {
		return nil
	}
	if !p.manager.Begin(quote.Total) {
		return nil // already initializing or beyond
	}
	if state.Raw != "" {
		p.validator.Freeze()
	}
	p.input.Blur()
	return createTransaction(p.gateway, p.session, quote.Total, payment.TransactionMetadata{
		ProductID: p.item.ID(),
		Title:     p.item.Title(),
	})
}

func (p *Panel) confirmPayment() tea.Cmd {
	if p.confirming {
		return nil
	}
	if err := p.manager.BeginConfirm(); err != nil {
		p.sink.Notify(notify.Notification{Severity: notify.Error, Message: err.Error()})
		return nil
	}
	p.confirming = true
	return confirmTransaction(p.gateway, p.session, p.manager.ClientSecret())
}

func (p *Panel) cancelPayment() tea.Cmd {
	transactionID, ok := p.manager.Cancel()
	if !ok {
		return nil
	}
	p.confirming = false
	return cancelTransaction(p.gateway, p.session, transactionID)
}

// View renders the panel box.
func (p *Panel) View() string {
	if !p.open {
		return ""
	}

	price := p.item.Price()
	quote := p.Quote()
	state := p.validator.State()

	lines := []string{
		PanelTitleStyle.Render("Package Details"),
		"",
		PanelLabelStyle.Render("Name:     ") + p.item.Title(),
		PanelLabelStyle.Render("ID:       ") + "#" + p.item.ID(),
		PanelLabelStyle.Render("Price:    ") + price.String(),
		"",
		p.renderOfferRow(state),
	}
	if state.Warning != "" {
		lines = append(lines, WarningStyle.Render("  "+state.Warning))
	}
	lines = append(lines,
		"",
		PanelLabelStyle.Render(fmt.Sprintf("Tax (%d%%): ", int(pricing.TaxRate*100)))+formatAmount(price.Currency, quote.Tax),
		PanelTotalStyle.Render("Total:    "+formatAmount(price.Currency, quote.Total)),
		"",
		p.renderStatusLine(),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return PanelFrameStyle.Render(body)
}

func (p *Panel) renderOfferRow(state offer.State) string {
	label := PanelLabelStyle.Render("Offer:    ")
	if state.Frozen {
		return label + formatAmount(p.item.Price().Currency, state.Confirmed) + PanelLabelStyle.Render(" (locked)")
	}
	return label + p.input.View()
}

func (p *Panel) renderStatusLine() string {
	switch p.manager.Status() {
	case payment.StatusInitializing:
		return StatusBarStyle.Render("Initializing payment…")
	case payment.StatusAwaitingConfirmation:
		if p.confirming {
			return StatusBarStyle.Render("Confirming payment…")
		}
		return StatusBarStyle.Render("Enter to confirm • c to cancel • Esc to close")
	case payment.StatusSucceeded:
		return SuccessStyle.Render("Payment succeeded! We will be in touch shortly.")
	case payment.StatusFailed:
		return ErrorStyle.Render("Payment failed. Esc to close.")
	default:
		return StatusBarStyle.Render("Enter to pay • Esc to close")
	}
}

func newOfferInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "offer above list price"
	input.Prompt = ""
	input.CharLimit = 12
	return input
}

func formatAmount(currency string, amount float64) string {
	return types.Price{Amount: amount, Currency: currency}.String()
}
