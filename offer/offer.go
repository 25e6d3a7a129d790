// Package offer validates a buyer's counter-price against the item's list
// price. Validation is debounced: every accepted keystroke supersedes the
// pending validation pass, so at most one is in flight per input session.
package offer

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DebounceInterval is the quiet period after the last keystroke before a
// validation pass runs.
const DebounceInterval = 600 * time.Millisecond

// decimalPattern admits free text only when it is a decimal number with at
// most 2 fractional digits, or empty.
var decimalPattern = regexp.MustCompile(`^\d*(\.\d{0,2})?$`)

// State is the externally visible validation state.
type State struct {
	Raw       string
	Amount    float64
	Warning   string
	Valid     bool
	Confirmed float64
	Frozen    bool
}

// BaseAmount selects the amount quotes are computed from: the confirmed
// offer once one exists, else the current input (unparsable input counts
// as 0), else the list price.
func (s State) BaseAmount(listPrice float64) float64 {
	if s.Frozen {
		return s.Confirmed
	}
	if s.Raw != "" {
		return s.Amount
	}
	return listPrice
}

// Validator owns the offer input for one panel session.
type Validator struct {
	listPrice float64
	state     State
	seq       int
}

// NewValidator creates a validator bound to the item's list price.
func NewValidator(listPrice float64) *Validator {
	return &Validator{listPrice: listPrice}
}

// State returns a snapshot of the current validation state.
func (v *Validator) State() State { return v.state }

// Seq returns the sequence of the most recent accepted keystroke. A
// pending debounce elapse is applied only if its sequence still matches.
func (v *Validator) Seq() int { return v.seq }

// Input accepts a keystroke-level edit of the raw value. Malformed input
// and edits after freezing are rejected with no state change. On accept it
// returns the new debounce sequence; the caller schedules the elapse.
func (v *Validator) Input(raw string) (seq int, accepted bool) {
	if v.state.Frozen {
		return v.seq, false
	}
	if !decimalPattern.MatchString(raw) {
		return v.seq, false
	}
	v.state.Raw = raw
	v.state.Amount = parseAmount(raw)
	v.seq++
	return v.seq, true
}

// Elapse runs the validation pass scheduled under seq. A stale sequence,
// one superseded by a later keystroke, is dropped, keeping results
// ordered with respect to the latest input.
func (v *Validator) Elapse(seq int) bool {
	if seq != v.seq || v.state.Frozen {
		return false
	}
	v.validate()
	return true
}

// Freeze pins validation at the amount a transaction was requested with.
// Further input is read-only for the rest of the session.
func (v *Validator) Freeze() {
	v.state.Confirmed = v.state.Amount
	v.state.Frozen = true
	v.state.Warning = ""
}

func (v *Validator) validate() {
	amount, ok := parse(v.state.Raw)
	if !ok || amount <= v.listPrice {
		v.state.Valid = false
		v.state.Warning = fmt.Sprintf("value must exceed list price of %v", v.listPrice)
		return
	}
	v.state.Amount = amount
	v.state.Valid = true
	v.state.Warning = ""
}

func parse(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func parseAmount(raw string) float64 {
	amount, _ := parse(raw)
	return amount
}
