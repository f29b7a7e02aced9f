package device

import (
	"fmt"
	"strconv"
	"strings"
)

type batteryTag int

const (
	batteryFull batteryTag = iota
	batteryCharging
	batteryUnplugged
)

// BatteryState is a snapshot of a device battery.
// The zero value is BatteryFull.
//
// Ordering and equality disagree: Compare looks only at the charge level
// of non-full states, so Charging(75) and Unplugged(75) compare as 0 while
// Equal, which compares display strings, reports them as different.
type BatteryState struct {
	tag   batteryTag
	level int
}

// BatteryFull is a fully charged battery that is plugged in.
var BatteryFull = BatteryState{tag: batteryFull}

func clampLevel(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Charging is a plugged in battery at p percent. p is clamped to [0,100].
func Charging(p int) BatteryState {
	return BatteryState{tag: batteryCharging, level: clampLevel(p)}
}

// Unplugged is a battery at p percent running on battery power.
// p is clamped to [0,100].
func Unplugged(p int) BatteryState {
	return BatteryState{tag: batteryUnplugged, level: clampLevel(p)}
}

// IsFull reports whether b is BatteryFull.
func (b BatteryState) IsFull() bool {
	return b.tag == batteryFull
}

// PluggedIn reports whether the device is connected to power.
func (b BatteryState) PluggedIn() bool {
	return b.tag != batteryUnplugged
}

// Level returns the charge level in percent. A full battery is 100.
func (b BatteryState) Level() int {
	if b.tag == batteryFull {
		return 100
	}
	return b.level
}

func (b BatteryState) String() string {
	switch b.tag {
	case batteryCharging:
		return fmt.Sprintf("Battery level: %d%%, device is plugged in.", b.level)
	case batteryUnplugged:
		return fmt.Sprintf("Battery level: %d%%, device is unplugged.", b.level)
	}
	return "Battery level: 100 % (Full), device is plugged in."
}

// Equal reports whether b and o have the same display string.
func (b BatteryState) Equal(o BatteryState) bool {
	return b.String() == o.String()
}

// Less reports whether b sorts before o.
// A full battery is never less than anything. Any other state is less
// than a full one.
func (b BatteryState) Less(o BatteryState) bool {
	switch {
	case b.tag == batteryFull:
		return false
	case o.tag == batteryFull:
		return true
	}
	return b.level < o.level
}

// Compare returns -1, 0 or 1 as b sorts before, with or after o.
func (b BatteryState) Compare(o BatteryState) int {
	switch {
	case b.Less(o):
		return -1
	case o.Less(b):
		return 1
	}
	return 0
}

// ParseBatteryState parses "full", "charging:<p>" or "unplugged:<p>".
func ParseBatteryState(s string) (BatteryState, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "full" {
		return BatteryFull, nil
	}
	tag, num, ok := strings.Cut(s, ":")
	if !ok {
		return BatteryState{}, fmt.Errorf("invalid battery state: %q", s)
	}
	p, err := strconv.Atoi(num)
	if err != nil {
		return BatteryState{}, fmt.Errorf("invalid battery level %q: %w", num, err)
	}
	if p < 0 || p > 100 {
		return BatteryState{}, fmt.Errorf("battery level out of range: %d", p)
	}
	switch tag {
	case "charging":
		return Charging(p), nil
	case "unplugged":
		return Unplugged(p), nil
	}
	return BatteryState{}, fmt.Errorf("invalid battery state: %q", s)
}

// MarshalText encodes b in the form accepted by ParseBatteryState.
func (b BatteryState) MarshalText() ([]byte, error) {
	switch b.tag {
	case batteryCharging:
		return []byte("charging:" + strconv.Itoa(b.level)), nil
	case batteryUnplugged:
		return []byte("unplugged:" + strconv.Itoa(b.level)), nil
	}
	return []byte("full"), nil
}

// UnmarshalText decodes the form produced by MarshalText.
func (b *BatteryState) UnmarshalText(text []byte) error {
	parsed, err := ParseBatteryState(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
