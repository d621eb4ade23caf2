package classbuilder

import (
	"strings"

	"github.com/teranos/classbuilder/errors"
)

// Modifier is the access modifier of a class or member
type Modifier int

const (
	Public Modifier = iota
	Private
	Internal
	Protected
)

var modifierNames = [...]string{
	Public:    "Public",
	Private:   "Private",
	Internal:  "Internal",
	Protected: "Protected",
}

// String returns the modifier name ("Public", "Private", ...)
func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "Modifier(invalid)"
	}
	return modifierNames[m]
}

// keyword is the rendered spelling: the lower-cased name
func (m Modifier) keyword() string {
	return strings.ToLower(m.String())
}

// ParseModifier resolves a modifier from its name, case-insensitively
func ParseModifier(s string) (Modifier, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modifierNames {
		if strings.ToLower(name) == key {
			return Modifier(i), nil
		}
	}
	return 0, errors.Newf("unknown modifier %q (want public, private, internal or protected)", s)
}

// Qualifier is a structural modifier. Setting one replaces any previous one.
type Qualifier string

const (
	NoQualifier Qualifier = ""
	Static      Qualifier = "static"
	Sealed      Qualifier = "sealed"
	Abstract    Qualifier = "abstract"
)

// ParseQualifier resolves a qualifier from its name; empty means none
func ParseQualifier(s string) (Qualifier, error) {
	switch q := Qualifier(strings.ToLower(strings.TrimSpace(s))); q {
	case NoQualifier, Static, Sealed, Abstract:
		return q, nil
	default:
		return NoQualifier, errors.Newf("unknown qualifier %q (want static, sealed or abstract)", s)
	}
}
