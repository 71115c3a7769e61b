package state

import "testing"

func TestBossUnlockRequiresAllPrereqs(t *testing.T) {
	cases := []struct {
		name string
		set  []string
		want bool
	}{
		{"none", nil, false},
		{"power_only", []string{FlagPowerRestored}, false},
		{"two_of_three", []string{FlagPowerRestored, FlagSecretKnown}, false},
		{"all_three", []string{FlagPowerRestored, FlagSecretKnown, FlagRepairDone}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFlags()
			for _, name := range c.set {
				f.Set(name)
			}
			f.Reevaluate()
			if got := f.BossUnlocked(); got != c.want {
				t.Fatalf("BossUnlocked() = %t, want %t", got, c.want)
			}
		})
	}
}

func TestUnlockNotVisibleUntilReevaluate(t *testing.T) {
	f := NewFlags()
	f.Set(FlagPowerRestored)
	f.Set(FlagSecretKnown)
	f.Set(FlagRepairDone)

	if f.BossUnlocked() {
		t.Fatalf("gate must not move before Reevaluate")
	}
	f.Reevaluate()
	if !f.BossUnlocked() {
		t.Fatalf("gate should open after Reevaluate")
	}
}

func TestFlagsLatchOn(t *testing.T) {
	f := NewFlags()
	f.Set(FlagRepairDone)
	f.Set(FlagRepairDone)
	if !f.Get(FlagRepairDone) {
		t.Fatalf("flag lost after repeated set")
	}
	if f.Get(FlagPowerRestored) {
		t.Fatalf("unset flag must read false")
	}
}

func TestUnlockStaysOpenAcrossReevaluations(t *testing.T) {
	f := NewFlags()
	for _, name := range []string{FlagPowerRestored, FlagSecretKnown, FlagRepairDone} {
		f.Set(name)
	}
	f.Reevaluate()
	f.Reevaluate()
	if !f.BossUnlocked() {
		t.Fatalf("latched flags mean the gate can never close again")
	}
}

func TestCustomPrereqs(t *testing.T) {
	f := NewFlags("a", "b")
	f.Set("a")
	f.Reevaluate()
	if f.BossUnlocked() {
		t.Fatalf("half the prereqs should not unlock")
	}
	f.Set("b")
	f.Reevaluate()
	if !f.BossUnlocked() {
		t.Fatalf("custom prereq set should unlock")
	}
}
