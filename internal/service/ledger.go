package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/store"
)

// LedgerService implements the expense ledger: the participant roster,
// the recorded expenses and the deletion-safety rules around them.
type LedgerService struct {
	store store.SessionStore
}

// NewLedgerService constructs a LedgerService backed by the provided
// session store.
func NewLedgerService(s store.SessionStore) *LedgerService {
	return &LedgerService{store: s}
}

// Snapshot returns the current ledger state.
func (s *LedgerService) Snapshot(ctx context.Context) (domain.Ledger, error) {
	sess, err := s.store.View(ctx)
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("service.LedgerService.Snapshot: %w", err)
	}
	return sess.Ledger, nil
}

// AddParticipant appends a name to the roster. Adding a name that is
// already present is a silent no-op.
func (s *LedgerService) AddParticipant(ctx context.Context, name string) (domain.Ledger, error) {
	name = strings.TrimSpace(name)
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		if name == "" {
			return domain.Session{}, fmt.Errorf("%w: participant name is required", domain.ErrValidation)
		}
		if sess.Ledger.HasParticipant(name) {
			return sess, nil
		}
		sess.Ledger.Participants = append(sess.Ledger.Participants, name)
		return sess, nil
	})
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("service.LedgerService.AddParticipant: %w", err)
	}
	return sess.Ledger, nil
}

// RemoveParticipant removes a name from the roster.
//
// Removal is blocked outright (domain.ErrPayerOfRecord) while the name is
// the payer on any expense — deleting a payer silently would destroy
// ledger integrity, so the caller must resolve those records first. When
// the name appears only in involved sets, removal requires confirmed=true
// (domain.ErrConfirmationRequired otherwise); on confirmation the name is
// stripped from every involved set, which redistributes those expenses'
// shares among the remaining involved participants on the next balance
// computation.
func (s *LedgerService) RemoveParticipant(ctx context.Context, name string, confirmed bool) (domain.Ledger, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		l := sess.Ledger
		if !l.HasParticipant(name) {
			return domain.Session{}, fmt.Errorf("%w: participant %q", domain.ErrNotFound, name)
		}

		paid := 0
		involved := 0
		for _, e := range l.Expenses {
			if e.Payer == name {
				paid++
			}
			if e.InvolvedContains(name) {
				involved++
			}
		}
		if paid > 0 {
			return domain.Session{}, fmt.Errorf("%w: %q is the payer on %d expense(s)", domain.ErrPayerOfRecord, name, paid)
		}
		if involved > 0 && !confirmed {
			return domain.Session{}, fmt.Errorf("%w: %q is involved in %d expense(s)", domain.ErrConfirmationRequired, name, involved)
		}

		for i, e := range l.Expenses {
			if !e.InvolvedContains(name) {
				continue
			}
			kept := e.Involved[:0]
			for _, n := range e.Involved {
				if n != name {
					kept = append(kept, n)
				}
			}
			l.Expenses[i].Involved = kept
		}

		roster := l.Participants[:0]
		for _, n := range l.Participants {
			if n != name {
				roster = append(roster, n)
			}
		}
		l.Participants = roster
		sess.Ledger = l
		return sess, nil
	})
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("service.LedgerService.RemoveParticipant: %w", err)
	}
	return sess.Ledger, nil
}

// ExpenseInput carries the caller-supplied fields of a new expense.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Payer       string
	Involved    []string
}

// AddExpense validates and records a new expense.
// Returns domain.ErrValidation when the description is empty, the amount
// is not positive, the involved set is empty, or the payer or any involved
// name is not on the roster.
func (s *LedgerService) AddExpense(ctx context.Context, in ExpenseInput) (domain.Ledger, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		if err := validateExpense(sess.Ledger, in); err != nil {
			return domain.Session{}, err
		}
		sess.Ledger.Expenses = append(sess.Ledger.Expenses, domain.Expense{
			ID:          uuid.New(),
			Description: strings.TrimSpace(in.Description),
			Amount:      in.Amount,
			Payer:       in.Payer,
			Involved:    append([]string(nil), in.Involved...),
		})
		return sess, nil
	})
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("service.LedgerService.AddExpense: %w", err)
	}
	return sess.Ledger, nil
}

// RemoveExpense removes an expense by ID.
func (s *LedgerService) RemoveExpense(ctx context.Context, id uuid.UUID) (domain.Ledger, error) {
	sess, err := s.store.Update(ctx, func(sess domain.Session) (domain.Session, error) {
		for i, e := range sess.Ledger.Expenses {
			if e.ID == id {
				sess.Ledger.Expenses = append(sess.Ledger.Expenses[:i], sess.Ledger.Expenses[i+1:]...)
				return sess, nil
			}
		}
		return domain.Session{}, fmt.Errorf("%w: expense %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return domain.Ledger{}, fmt.Errorf("service.LedgerService.RemoveExpense: %w", err)
	}
	return sess.Ledger, nil
}

// Settlements recomputes the derived balances and the greedy transfer plan
// from the current roster and expenses.
func (s *LedgerService) Settlements(ctx context.Context) ([]domain.Balance, []domain.Settlement, error) {
	sess, err := s.store.View(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("service.LedgerService.Settlements: %w", err)
	}
	balances := ComputeBalances(sess.Ledger.Participants, sess.Ledger.Expenses)
	return balances, SolveSettlements(balances), nil
}

// validateExpense enforces the preconditions for recording an expense.
func validateExpense(l domain.Ledger, in ExpenseInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if len(in.Involved) == 0 {
		return fmt.Errorf("%w: at least one involved participant is required", domain.ErrValidation)
	}
	if !l.HasParticipant(in.Payer) {
		return fmt.Errorf("%w: payer %q is not on the roster", domain.ErrValidation, in.Payer)
	}
	for _, n := range in.Involved {
		if !l.HasParticipant(n) {
			return fmt.Errorf("%w: involved participant %q is not on the roster", domain.ErrValidation, n)
		}
	}
	return nil
}
