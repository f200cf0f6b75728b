package internal

import "testing"

func TestSimulatedGate_AlwaysApproves(t *testing.T) {
	g := NewSimulatedGate(1.0, 42)

	for i := 0; i < 100; i++ {
		receipt, ok := g.Charge(50, "Borrow fee for Drill")
		if !ok {
			t.Fatal("gate with success rate 1.0 should always approve")
		}
		if receipt.Reference == "" {
			t.Error("approved charge should carry a reference")
		}
		if receipt.Amount != 50 {
			t.Errorf("receipt amount = %v, want 50", receipt.Amount)
		}
	}
}

func TestSimulatedGate_AlwaysDeclines(t *testing.T) {
	g := NewSimulatedGate(0, 42)

	for i := 0; i < 100; i++ {
		if _, ok := g.Charge(50, "note"); ok {
			t.Fatal("gate with success rate 0 should always decline")
		}
	}
}

func TestSimulatedGate_DeterministicWithSeed(t *testing.T) {
	a := NewSimulatedGate(0.5, 7)
	b := NewSimulatedGate(0.5, 7)

	for i := 0; i < 50; i++ {
		_, okA := a.Charge(10, "")
		_, okB := b.Charge(10, "")
		if okA != okB {
			t.Fatalf("gates with the same seed diverged at charge %d", i)
		}
	}
}
