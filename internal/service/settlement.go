package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/travelgenie/backend/internal/domain"
)

// Epsilon is the tolerance below which a monetary balance is treated as
// settled. It absorbs the rounding produced by equal splits.
var Epsilon = decimal.NewFromFloat(0.01)

// ComputeBalances derives the net position of every roster participant
// from the recorded expenses. Each expense credits the payer the full
// amount and debits each involved participant an equal share of it, so
// the balances always sum to zero within Epsilon.
//
// Involved names that have left the roster are dropped from the split
// (the stored expense is untouched). An expense whose effective involved
// set is empty, or whose payer is no longer on the roster, is skipped
// entirely — a safety fallback that keeps the totals balanced rather than
// a modeled business rule.
//
// The result is ordered by roster position, one entry per participant.
func ComputeBalances(roster []string, expenses []domain.Expense) []domain.Balance {
	byName := make(map[string]decimal.Decimal, len(roster))
	for _, name := range roster {
		byName[name] = decimal.Zero
	}

	for _, e := range expenses {
		var involved []string
		for _, n := range e.Involved {
			if _, ok := byName[n]; ok {
				involved = append(involved, n)
			}
		}
		if len(involved) == 0 {
			continue
		}
		if _, ok := byName[e.Payer]; !ok {
			continue
		}

		share := e.Amount.Div(decimal.NewFromInt(int64(len(involved))))
		byName[e.Payer] = byName[e.Payer].Add(e.Amount)
		for _, n := range involved {
			byName[n] = byName[n].Sub(share)
		}
	}

	balances := make([]domain.Balance, len(roster))
	for i, name := range roster {
		balances[i] = domain.Balance{Participant: name, Amount: byName[name]}
	}
	return balances
}

// SolveSettlements turns a balance snapshot into a greedy transfer plan
// that drives every balance to within Epsilon of zero.
//
// Debtors are matched against creditors largest-first: each step transfers
// the smaller of the two outstanding amounts, then advances whichever side
// is settled (both, when the amounts are exactly equal). The plan has at
// most debtors+creditors-1 instructions — deterministic and stable for a
// given snapshot, though not always the global minimum.
func SolveSettlements(balances []domain.Balance) []domain.Settlement {
	var debtors, creditors []domain.Balance
	for _, b := range balances {
		switch {
		case b.Amount.LessThan(Epsilon.Neg()):
			debtors = append(debtors, b)
		case b.Amount.GreaterThan(Epsilon):
			creditors = append(creditors, b)
		}
	}

	// Stable sorts keep roster order as the tie-break so the plan is
	// deterministic even with equal balances.
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Amount.LessThan(debtors[j].Amount)
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Amount.GreaterThan(creditors[j].Amount)
	})

	var plan []domain.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].Amount.Abs(), creditors[j].Amount)
		plan = append(plan, domain.Settlement{
			From:   debtors[i].Participant,
			To:     creditors[j].Participant,
			Amount: amount,
		})

		debtors[i].Amount = debtors[i].Amount.Add(amount)
		creditors[j].Amount = creditors[j].Amount.Sub(amount)

		if debtors[i].Amount.Abs().LessThan(Epsilon) {
			i++
		}
		if creditors[j].Amount.LessThan(Epsilon) {
			j++
		}
	}
	return plan
}
