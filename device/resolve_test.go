package device

import (
	"math/rand"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func TestResolveKnown(t *testing.T) {
	r := NewResolver(WithLookupEnv(noEnv))
	for _, test := range []struct {
		identifier string
		model      Model
		name       string
	}{
		{"iPhone14,2", IPhone13Pro, "iPhone 13 Pro"},
		{"iPhone14,5", IPhone13, "iPhone 13"},
		{"iPad13,1", IPadAir4, "iPad Air (4th generation)"},
		{"iPad13,2", IPadAir4, "iPad Air (4th generation)"},
		{"iPhone3,1", IPhone4, "iPhone 4"},
		{"iPhone3,3", IPhone4, "iPhone 4"},
		{"AppleTV5,3", AppleTVHD, "Apple TV HD"},
		{"AudioAccessory5,1", HomePodMini, "HomePod mini"},
		{"Watch6,18", AppleWatchUltra, "Apple Watch Ultra"},
		{"RealityDevice14,1", AppleVisionPro, "Apple Vision Pro"},
	} {
		t.Run(test.identifier, func(t *testing.T) {
			d := r.Resolve(test.identifier)
			m, ok := d.Model()
			if !ok {
				t.Fatalf("expected known model for %q, got %v", test.identifier, d)
			}
			if have, want := m, test.model; have != want {
				t.Errorf("model: have: %v, want: %v", have, want)
			}
			if have, want := d.String(), test.name; have != want {
				t.Errorf("name: have: %q, want: %q", have, want)
			}
			if !d.Equal(New(test.model)) {
				t.Errorf("expected %v to equal %v", d, New(test.model))
			}
		})
	}
}

func TestResolveEveryIdentifier(t *testing.T) {
	for _, m := range Models() {
		for _, id := range m.Identifiers() {
			if have, ok := Lookup(id); !ok || have != m {
				t.Errorf("lookup %q: have: %v, want: %v", id, have, m)
			}
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	d := Resolve("banana")
	id, ok := d.UnknownIdentifier()
	if !ok {
		t.Fatalf("expected unknown device, got %v", d)
	}
	if id != "banana" {
		t.Errorf("have: %q, want: %q", id, "banana")
	}
	if d.String() != "banana" {
		t.Errorf("name: have: %q, want: %q", d.String(), "banana")
	}
}

func TestResolveRandomUnknown(t *testing.T) {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789,_ "
	rng := rand.New(rand.NewSource(1))
	r := NewResolver(WithLookupEnv(noEnv))
	for i := 0; i < 500; i++ {
		b := make([]byte, rng.Intn(24))
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		s := string(b)
		if _, ok := Lookup(s); ok || IsSimulatorIdentifier(s) {
			continue
		}
		id, ok := r.Resolve(s).UnknownIdentifier()
		if !ok || id != s {
			t.Errorf("resolve %q: have: %q (unknown %v)", s, id, ok)
		}
	}
}

func FuzzResolve(f *testing.F) {
	for _, s := range []string{"", "banana", "iPhone14,2", "x86_64", "iPhone99,9"} {
		f.Add(s)
	}
	r := NewResolver(WithLookupEnv(noEnv))
	f.Fuzz(func(t *testing.T, s string) {
		d := r.Resolve(s)
		switch {
		case IsSimulatorIdentifier(s):
			if _, ok := d.Inner(); !ok {
				t.Errorf("expected simulator for %q", s)
			}
		case d.IsUnknown():
			if id, _ := d.UnknownIdentifier(); id != s {
				t.Errorf("payload: have: %q, want: %q", id, s)
			}
		default:
			if _, ok := Lookup(s); !ok {
				t.Errorf("resolved %q to %v without a catalog entry", s, d)
			}
		}
	})
}

func TestResolveSimulator(t *testing.T) {
	for _, id := range []string{"i386", "x86_64", "arm64"} {
		r := NewResolver(WithSimulatorModel("iPhone14,2"))
		d := r.Resolve(id)
		inner, ok := d.Inner()
		if !ok {
			t.Fatalf("%s: expected simulator, got %v", id, d)
		}
		if !inner.Equal(r.Resolve("iPhone14,2")) {
			t.Errorf("%s: inner: have: %v, want: %v", id, inner, "iPhone 13 Pro")
		}
		if have, want := d.String(), "Simulator (iPhone 13 Pro)"; have != want {
			t.Errorf("%s: have: %q, want: %q", id, have, want)
		}
		if !d.IsSimulator() {
			t.Errorf("%s: expected IsSimulator", id)
		}
		if !d.IsPhone() || !d.IsFaceIDCapable() {
			t.Errorf("%s: expected simulator to inherit capabilities", id)
		}
	}
}

func TestResolveSimulatorPlaceholder(t *testing.T) {
	for _, test := range []struct {
		platform Platform
		name     string
	}{
		{PlatformIOS, "Simulator (iOS)"},
		{PlatformTVOS, "Simulator (tvOS)"},
		{PlatformWatchOS, "Simulator (watchOS)"},
		{PlatformVisionOS, "Simulator (xrOS)"},
	} {
		r := NewResolver(WithPlatform(test.platform), WithLookupEnv(noEnv))
		d := r.Resolve("arm64")
		if have, want := d.String(), test.name; have != want {
			t.Errorf("have: %q, want: %q", have, want)
		}
		inner, ok := d.Inner()
		if !ok || !inner.IsUnknown() {
			t.Errorf("expected unknown inner device, got %v", inner)
		}
		// placeholders are not catalog models
		if d.IsSimulator() {
			t.Errorf("%s: simulator of a placeholder reported as simulator", test.platform)
		}
	}
}

func TestResolveSimulatorNoRecursion(t *testing.T) {
	r := NewResolver(WithSimulatorModel("x86_64"))
	d := r.Resolve("arm64")
	inner, ok := d.Inner()
	if !ok {
		t.Fatal("expected simulator")
	}
	if id, ok := inner.UnknownIdentifier(); !ok || id != "x86_64" {
		t.Errorf("inner: have: %v, want: unknown x86_64", inner)
	}
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{
		"iOS":      PlatformIOS,
		"tvos":     PlatformTVOS,
		"watchOS":  PlatformWatchOS,
		"xrOS":     PlatformVisionOS,
		"visionOS": PlatformVisionOS,
	} {
		have, err := ParsePlatform(in)
		if err != nil {
			t.Fatal(err)
		}
		if have != want {
			t.Errorf("%s: have: %v, want: %v", in, have, want)
		}
	}
	if _, err := ParsePlatform("android"); err == nil {
		t.Error("expected error")
	}
}
