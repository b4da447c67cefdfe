package process

import (
	"testing"

	"github.com/hst-go/hst/csp/event"
)

func TestInterleaveAdvancesOneMemberAtATime(t *testing.T) {
	env := NewEnv()
	a, b := event.Get("a"), event.Get("b")
	left := Prefix(env, a, Stop(env))
	right := Prefix(env, b, Stop(env))
	p := Interleave(env, NewBag(left, right))

	if !Enabled(p, a) || !Enabled(p, b) {
		t.Fatal("interleave should offer both members' initials")
	}
	afterA := Afters(p, a)
	if len(afterA) != 1 {
		t.Fatalf("expected exactly one successor on a, got %d", len(afterA))
	}
	if !Enabled(afterA[0], b) {
		t.Fatal("after a, the interleave should still offer b from the untouched member")
	}
}

func TestInterleaveTickOnlyWhenAllStuck(t *testing.T) {
	env := NewEnv()
	p := Interleave(env, NewBag(Stop(env), Stop(env)))
	if !Enabled(p, event.Tick()) {
		t.Fatal("an all-STOP bag must offer the generalised tick rule")
	}
	succ := Afters(p, event.Tick())
	if len(succ) != 1 || succ[0].Variant() != VariantStop {
		t.Fatal("tick on an all-stuck bag must yield STOP")
	}
}

func TestInterleaveNotTickWhenAMemberHasInitials(t *testing.T) {
	env := NewEnv()
	a := event.Get("a")
	p := Interleave(env, NewBag(Stop(env), Prefix(env, a, Stop(env))))
	if Enabled(p, event.Tick()) {
		t.Fatal("tick must not be offered while a member still has initials")
	}
}

func TestInterleaveTickMemberCollapsesToStopOnTau(t *testing.T) {
	env := NewEnv()
	p := Interleave(env, NewBag(Skip(env), Stop(env)))
	found := false
	for _, successor := range Afters(p, event.Tau()) {
		il, ok := successor.(*interleaveProcess)
		if !ok {
			continue
		}
		members := il.members.DistinctMembers()
		if len(members) == 1 && members[0].Variant() == VariantStop && il.members.Counts()[members[0].ID()] == 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("a SKIP member should be able to silently collapse to STOP via tau")
	}
}
