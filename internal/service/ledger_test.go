package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelgenie/backend/internal/domain"
	"github.com/travelgenie/backend/internal/service"
	"github.com/travelgenie/backend/internal/store"
)

// newLedgerService returns a LedgerService with the given roster already
// in place.
func newLedgerService(t *testing.T, roster ...string) *service.LedgerService {
	t.Helper()
	svc := service.NewLedgerService(store.NewMemoryStore())
	for _, name := range roster {
		_, err := svc.AddParticipant(context.Background(), name)
		require.NoError(t, err)
	}
	return svc
}

func dinner(amount float64, payer string, involved ...string) service.ExpenseInput {
	return service.ExpenseInput{
		Description: "Kyoto dinner",
		Amount:      decimal.NewFromFloat(amount),
		Payer:       payer,
		Involved:    involved,
	}
}

// ---- participants ----------------------------------------------------------

func TestAddParticipant_DuplicateIsNoOp(t *testing.T) {
	svc := newLedgerService(t, "Alice")

	l, err := svc.AddParticipant(context.Background(), "Alice")

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, l.Participants)
}

func TestAddParticipant_EmptyNameRejected(t *testing.T) {
	svc := newLedgerService(t)

	_, err := svc.AddParticipant(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRemoveParticipant_Unknown(t *testing.T) {
	svc := newLedgerService(t, "Alice")

	_, err := svc.RemoveParticipant(context.Background(), "Bob", false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveParticipant_PayerBlocked(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob")
	_, err := svc.AddExpense(context.Background(), dinner(40, "Bob", "Alice", "Bob"))
	require.NoError(t, err)

	_, err = svc.RemoveParticipant(context.Background(), "Bob", true)

	assert.ErrorIs(t, err, domain.ErrPayerOfRecord)

	// Roster and ledger unchanged.
	l, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, l.Participants)
	require.Len(t, l.Expenses, 1)
	assert.Equal(t, []string{"Alice", "Bob"}, l.Expenses[0].Involved)
}

func TestRemoveParticipant_InvolvedNeedsConfirmation(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob", "Cara")
	_, err := svc.AddExpense(context.Background(), dinner(90, "Alice", "Alice", "Bob", "Cara"))
	require.NoError(t, err)

	_, err = svc.RemoveParticipant(context.Background(), "Cara", false)

	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	l, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Contains(t, l.Participants, "Cara")
}

func TestRemoveParticipant_ConfirmedStripsInvolved(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob", "Cara")
	_, err := svc.AddExpense(context.Background(), dinner(90, "Alice", "Alice", "Bob", "Cara"))
	require.NoError(t, err)

	l, err := svc.RemoveParticipant(context.Background(), "Cara", true)

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, l.Participants)
	require.Len(t, l.Expenses, 1)
	assert.Equal(t, []string{"Alice", "Bob"}, l.Expenses[0].Involved)
	assert.True(t, l.Expenses[0].Amount.Equal(decimal.NewFromInt(90)), "amount must be unchanged")

	// Balances recompute as if Cara never participated: 90 split two ways.
	balances, _, err := svc.Settlements(context.Background())
	require.NoError(t, err)
	assert.True(t, balances[0].Amount.Equal(decimal.NewFromInt(45)))
	assert.True(t, balances[1].Amount.Equal(decimal.NewFromInt(-45)))
}

func TestRemoveParticipant_UninvolvedRemovedDirectly(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob")

	l, err := svc.RemoveParticipant(context.Background(), "Bob", false)

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, l.Participants)
}

// ---- expenses --------------------------------------------------------------

func TestAddExpense_OK(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob")

	l, err := svc.AddExpense(context.Background(), dinner(40, "Alice", "Alice", "Bob"))

	require.NoError(t, err)
	require.Len(t, l.Expenses, 1)
	assert.NotEqual(t, uuid.Nil, l.Expenses[0].ID)
	assert.Equal(t, "Kyoto dinner", l.Expenses[0].Description)
}

func TestAddExpense_Invalid(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob")
	ctx := context.Background()

	cases := map[string]service.ExpenseInput{
		"empty description": {Description: " ", Amount: decimal.NewFromInt(10), Payer: "Alice", Involved: []string{"Alice"}},
		"zero amount":       {Description: "x", Amount: decimal.Zero, Payer: "Alice", Involved: []string{"Alice"}},
		"negative amount":   {Description: "x", Amount: decimal.NewFromInt(-5), Payer: "Alice", Involved: []string{"Alice"}},
		"empty involved":    {Description: "x", Amount: decimal.NewFromInt(10), Payer: "Alice", Involved: nil},
		"unknown payer":     {Description: "x", Amount: decimal.NewFromInt(10), Payer: "Mallory", Involved: []string{"Alice"}},
		"unknown involved":  {Description: "x", Amount: decimal.NewFromInt(10), Payer: "Alice", Involved: []string{"Mallory"}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddExpense(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// None of the rejected inputs may have created a record.
	l, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, l.Expenses)
}

func TestRemoveExpense(t *testing.T) {
	svc := newLedgerService(t, "Alice", "Bob")
	l, err := svc.AddExpense(context.Background(), dinner(40, "Alice", "Alice", "Bob"))
	require.NoError(t, err)

	l, err = svc.RemoveExpense(context.Background(), l.Expenses[0].ID)

	require.NoError(t, err)
	assert.Empty(t, l.Expenses)
}

func TestRemoveExpense_Unknown(t *testing.T) {
	svc := newLedgerService(t, "Alice")

	_, err := svc.RemoveExpense(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
