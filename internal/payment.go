package internal

import (
	"math/rand"

	"github.com/google/uuid"
)

// Receipt describes the outcome of a successful charge
type Receipt struct {
	Reference string
	Amount    float64
	Note      string
}

// PaymentGate is the external pass/fail payment collaborator the ledger
// calls during borrow. Implementations report success with a bool; failure
// carries no reason.
type PaymentGate interface {
	Charge(amount float64, note string) (Receipt, bool)
}

// SimulatedGate approves charges at a configurable rate. The rand source is
// injected so tests can pin the outcome.
type SimulatedGate struct {
	SuccessRate float64
	rnd         *rand.Rand
}

// NewSimulatedGate creates a gate that approves at successRate (0.0-1.0)
func NewSimulatedGate(successRate float64, seed int64) *SimulatedGate {
	return &SimulatedGate{
		SuccessRate: successRate,
		rnd:         rand.New(rand.NewSource(seed)),
	}
}

// Charge simulates a payment attempt
func (g *SimulatedGate) Charge(amount float64, note string) (Receipt, bool) {
	if g.rnd.Float64() >= g.SuccessRate {
		LogDebug("simulated charge declined: amount=%.2f note=%q", amount, note)
		return Receipt{}, false
	}
	receipt := Receipt{
		Reference: uuid.NewString(),
		Amount:    amount,
		Note:      note,
	}
	LogDebug("simulated charge approved: ref=%s amount=%.2f", receipt.Reference, amount)
	return receipt, true
}
