package ident

import "testing"

func TestStartIsDeterministic(t *testing.T) {
	a := Start(Scope("prefix")).Finish()
	b := Start(Scope("prefix")).Finish()
	if a != b {
		t.Fatalf("same scope produced different ids: %d != %d", a, b)
	}
}

func TestDifferentScopesDiffer(t *testing.T) {
	a := Start(Scope("prefix")).Finish()
	b := Start(Scope("external-choice")).Finish()
	if a == b {
		t.Fatal("distinct scopes collided")
	}
}

func TestAddIDOrderMatters(t *testing.T) {
	a := Start(Scope("seq")).AddID(1).AddID(2).Finish()
	b := Start(Scope("seq")).AddID(2).AddID(1).Finish()
	if a == b {
		t.Fatal("AddID should be order-sensitive")
	}
}

func TestAddIDSetOrderIndependent(t *testing.T) {
	a := Start(Scope("choice")).AddIDSet([]ID{1, 2, 3}).Finish()
	b := Start(Scope("choice")).AddIDSet([]ID{3, 1, 2}).Finish()
	if a != b {
		t.Fatal("AddIDSet should be order-independent")
	}
}

func TestAddWeightedIDSetSensitiveToCount(t *testing.T) {
	a := Start(Scope("interleave")).AddWeightedIDSet(map[ID]int{1: 1}).Finish()
	b := Start(Scope("interleave")).AddWeightedIDSet(map[ID]int{1: 2}).Finish()
	if a == b {
		t.Fatal("bag fingerprint must distinguish multiplicities")
	}
}

func TestStructuralEquality(t *testing.T) {
	// Two independently-built "prefix tau -> STOP" fingerprints must match.
	stopID := Start(Scope("stop")).Finish()
	tauID := HashName([]byte("tau"))

	build := func() ID {
		return Start(Scope("prefix")).AddID(tauID).AddID(stopID).Finish()
	}
	if build() != build() {
		t.Fatal("identical structure must fingerprint identically")
	}
}
