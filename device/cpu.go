package device

import (
	"fmt"
	"strings"
)

// CPU is an Apple system-on-chip.
// CPUs are ordered by release chronology with CPUUnknown lowest.
// Values compare with the usual integer operators.
type CPU int

const (
	CPUUnknown CPU = iota
	CPUA4
	CPUA5
	CPUA5X
	CPUA6
	CPUA6X
	CPUA7
	CPUA8
	CPUA8X
	CPUA9
	CPUA9X
	CPUA10Fusion
	CPUA10XFusion
	CPUA11Bionic
	CPUA12Bionic
	CPUA12XBionic
	CPUA12ZBionic
	CPUA13Bionic
	CPUA14Bionic
	CPUA15Bionic
	CPUA16Bionic
	CPUA17Pro
	CPUA18
	CPUA18Pro
	CPUM1
	CPUM2
	CPUM4
	CPUS1
	CPUS1P
	CPUS2
	CPUS3
	CPUS4
	CPUS5
	CPUS6
	CPUS7
	CPUS8
	CPUS9
	CPUS10
	cpuEnd
)

var cpuNames = [...]string{
	CPUUnknown:    "unknown",
	CPUA4:         "A4",
	CPUA5:         "A5",
	CPUA5X:        "A5X",
	CPUA6:         "A6",
	CPUA6X:        "A6X",
	CPUA7:         "A7",
	CPUA8:         "A8",
	CPUA8X:        "A8X",
	CPUA9:         "A9",
	CPUA9X:        "A9X",
	CPUA10Fusion:  "A10 Fusion",
	CPUA10XFusion: "A10X Fusion",
	CPUA11Bionic:  "A11 Bionic",
	CPUA12Bionic:  "A12 Bionic",
	CPUA12XBionic: "A12X Bionic",
	CPUA12ZBionic: "A12Z Bionic",
	CPUA13Bionic:  "A13 Bionic",
	CPUA14Bionic:  "A14 Bionic",
	CPUA15Bionic:  "A15 Bionic",
	CPUA16Bionic:  "A16 Bionic",
	CPUA17Pro:     "A17 Pro",
	CPUA18:        "A18",
	CPUA18Pro:     "A18 Pro",
	CPUM1:         "M1",
	CPUM2:         "M2",
	CPUM4:         "M4",
	CPUS1:         "S1",
	CPUS1P:        "S1P",
	CPUS2:         "S2",
	CPUS3:         "S3",
	CPUS4:         "S4",
	CPUS5:         "S5",
	CPUS6:         "S6",
	CPUS7:         "S7",
	CPUS8:         "S8",
	CPUS9:         "S9",
	CPUS10:        "S10",
}

func (c CPU) valid() bool {
	return c >= CPUUnknown && c < cpuEnd
}

// String returns the marketing name of c, e.g. "A15 Bionic".
func (c CPU) String() string {
	if !c.valid() {
		return fmt.Sprintf("CPU(%d)", int(c))
	}
	return cpuNames[c]
}

// Less reports whether c was released before o.
// Invalid values sort as CPUUnknown.
func (c CPU) Less(o CPU) bool {
	return c.Compare(o) < 0
}

// Compare returns -1, 0 or 1 as c sorts before, with or after o.
func (c CPU) Compare(o CPU) int {
	if !c.valid() {
		c = CPUUnknown
	}
	if !o.valid() {
		o = CPUUnknown
	}
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	}
	return 0
}

// ParseCPU parses a CPU marketing name. Matching ignores case and
// surrounding whitespace. Both "A10 Fusion" and "A10Fusion" are accepted.
func ParseCPU(s string) (CPU, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	for i, name := range cpuNames {
		if strings.ReplaceAll(strings.ToLower(name), " ", "") == norm {
			return CPU(i), nil
		}
	}
	return CPUUnknown, fmt.Errorf("unknown cpu: %q", s)
}

// MarshalText encodes c as its marketing name.
func (c CPU) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a marketing name produced by MarshalText.
func (c *CPU) UnmarshalText(text []byte) error {
	parsed, err := ParseCPU(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
