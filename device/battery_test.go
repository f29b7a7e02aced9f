package device

import "testing"

func TestBatteryString(t *testing.T) {
	for _, test := range []struct {
		state BatteryState
		want  string
	}{
		{BatteryFull, "Battery level: 100 % (Full), device is plugged in."},
		{Charging(75), "Battery level: 75%, device is plugged in."},
		{Unplugged(2), "Battery level: 2%, device is unplugged."},
		{Charging(150), "Battery level: 100%, device is plugged in."},
		{Unplugged(-3), "Battery level: 0%, device is unplugged."},
	} {
		if have := test.state.String(); have != test.want {
			t.Errorf("have: %q, want: %q", have, test.want)
		}
	}
}

func TestBatteryOrdering(t *testing.T) {
	for _, test := range []struct {
		a, b BatteryState
		less bool
	}{
		{Charging(99), BatteryFull, true},
		{Unplugged(100), BatteryFull, true},
		{Charging(100), BatteryFull, true},
		{BatteryFull, Charging(100), false},
		{BatteryFull, BatteryFull, false},
		{Charging(1), Unplugged(2), true},
		{Unplugged(2), Charging(1), false},
		{Unplugged(1), Unplugged(50), true},
	} {
		if have := test.a.Less(test.b); have != test.less {
			t.Errorf("%v < %v: have: %v, want: %v", test.a, test.b, have, test.less)
		}
	}
	if BatteryFull.Compare(Charging(99)) != 1 {
		t.Error("expected full to sort after charging(99)")
	}
	if BatteryFull.Compare(BatteryFull) != 0 {
		t.Error("expected full to compare equal to itself")
	}
}

// Ordering looks only at the level of non-full states while equality
// compares display strings. Both behaviors are kept as-is.
func TestBatteryOrderingDisagreesWithEqual(t *testing.T) {
	a, b := Charging(75), Unplugged(75)
	if a.Compare(b) != 0 || a.Less(b) || b.Less(a) {
		t.Error("expected charging(75) and unplugged(75) to be unordered")
	}
	if a.Equal(b) {
		t.Error("expected charging(75) and unplugged(75) to differ under Equal")
	}
}

func TestBatteryLevel(t *testing.T) {
	if BatteryFull.Level() != 100 {
		t.Errorf("have: %d, want: 100", BatteryFull.Level())
	}
	if Unplugged(42).Level() != 42 {
		t.Errorf("have: %d, want: 42", Unplugged(42).Level())
	}
	if !Charging(5).PluggedIn() || Unplugged(5).PluggedIn() {
		t.Error("unexpected plugged in state")
	}
}

func TestParseBatteryState(t *testing.T) {
	for in, want := range map[string]BatteryState{
		"full":         BatteryFull,
		"charging:75":  Charging(75),
		"Unplugged:0":  Unplugged(0),
		" charging:1 ": Charging(1),
	} {
		have, err := ParseBatteryState(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !have.Equal(want) {
			t.Errorf("%q: have: %v, want: %v", in, have, want)
		}
		text, err := have.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back BatteryState
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if !back.Equal(have) {
			t.Errorf("%q: text round trip: have: %v, want: %v", in, back, have)
		}
	}
	for _, in := range []string{"", "empty", "charging", "charging:x", "charging:101", "draining:5"} {
		if _, err := ParseBatteryState(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
