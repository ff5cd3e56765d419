package record

import "fmt"

// Format selects the line and file naming variant.
type Format int

const (
	// Canonical lines end in a bare newline and files use the .dat extension.
	Canonical Format = iota
	// Legacy lines keep a trailing comma and files use the .txt extension.
	Legacy
)

// Ext returns the file extension used for f, including the dot.
func (f Format) Ext() string {
	if f == Legacy {
		return ".txt"
	}
	return ".dat"
}

func (f Format) String() string {
	switch f {
	case Canonical:
		return "canonical"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses the name of a format as returned by Format.String.
// An empty name is Canonical.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "canonical":
		return Canonical, nil
	case "legacy":
		return Legacy, nil
	}
	return Canonical, fmt.Errorf("unknown record format %q", s)
}
