package style

import (
	"fmt"
	"strings"
)

// PseudoState is a set of interaction conditions a control may be in.
type PseudoState uint8

const (
	Pressed PseudoState = 1 << iota
	Checked
	Hover
	Disabled
	Default
	Mixed

	Standard PseudoState = 0
)

var pseudoStateNames = []struct {
	state PseudoState
	name  string
}{
	{Pressed, "pressed"},
	{Checked, "checked"},
	{Hover, "hover"},
	{Disabled, "disabled"},
	{Default, "default"},
	{Mixed, "mixed"},
}

// String renders "standard" or flag names joined with "|".
func (p PseudoState) String() string {
	if p == Standard {
		return "standard"
	}
	var parts []string
	for _, n := range pseudoStateNames {
		if p&n.state != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

func (p PseudoState) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PseudoState) UnmarshalText(text []byte) error {
	v, err := ParsePseudoState(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePseudoState accepts flag names separated with "|", "," or ":". Empty
// string and "standard" mean no flags.
func ParsePseudoState(s string) (PseudoState, error) {
	var res PseudoState
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == ':' || r == ' '
	})
next:
	for _, f := range fields {
		if f == "standard" {
			continue
		}
		for _, n := range pseudoStateNames {
			if n.name == f {
				res |= n.state
				continue next
			}
		}
		return 0, fmt.Errorf("unknown pseudo state %q", f)
	}
	return res, nil
}
