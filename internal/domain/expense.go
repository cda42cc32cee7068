package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is one shared spending record. Payer fronted the full amount;
// every name in Involved owes an equal share of it.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	Involved    []string        `json:"involved"`
}

// Clone returns a deep copy of the expense.
func (e Expense) Clone() Expense {
	out := e
	out.Involved = append([]string(nil), e.Involved...)
	return out
}

// InvolvedContains reports whether name is in the expense's involved set.
func (e Expense) InvolvedContains(name string) bool {
	for _, n := range e.Involved {
		if n == name {
			return true
		}
	}
	return false
}

// Ledger holds the participant roster and the recorded expenses.
// The roster is an ordered set of names, mutable independently of the
// expenses already recorded.
type Ledger struct {
	Participants []string  `json:"participants"`
	Expenses     []Expense `json:"expenses"`
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{Participants: []string{}, Expenses: []Expense{}}
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := Ledger{
		Participants: append([]string(nil), l.Participants...),
		Expenses:     make([]Expense, len(l.Expenses)),
	}
	for i, e := range l.Expenses {
		out.Expenses[i] = e.Clone()
	}
	return out
}

// HasParticipant reports whether name is on the roster.
func (l Ledger) HasParticipant(name string) bool {
	for _, n := range l.Participants {
		if n == name {
			return true
		}
	}
	return false
}

// Balance is a participant's derived net position. Positive means the
// group owes them, negative means they owe the group. Balances are never
// stored, only recomputed from the current roster and expenses.
type Balance struct {
	Participant string          `json:"participant"`
	Amount      decimal.Decimal `json:"amount"`
}

// Settlement is a derived payment instruction that, if executed, moves
// both parties' balances toward zero.
type Settlement struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// Session is the full in-memory state for one planning session: the
// itinerary plus the expense ledger. Every mutation replaces the whole
// snapshot atomically.
type Session struct {
	Itinerary Itinerary `json:"itinerary"`
	Ledger    Ledger    `json:"ledger"`
}

// NewSession returns the starting session state.
func NewSession() Session {
	return Session{Itinerary: NewItinerary(), Ledger: NewLedger()}
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	return Session{Itinerary: s.Itinerary.Clone(), Ledger: s.Ledger.Clone()}
}
