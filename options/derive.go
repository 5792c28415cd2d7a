package options

import (
	"fmt"
	"strings"
)

// DeriveEnum is the set of optional behaviors synthesized for a generated
// error type.
type DeriveEnum int

const (
	DeriveDebug   DeriveEnum = 1 << iota // GoString, Error and the error interface
	DeriveEqual                          // Equal(other) over expected, actual and value
	DeriveCompare                        // Compare(other) ordering by expected, actual, value presence
	DeriveHash                           // Hash() over expected and actual
	DeriveClone                          // Clone() copying the captured value

	DeriveAll  DeriveEnum = (1 << iota) - 1 // all behaviors combined
	DeriveNone DeriveEnum = 0               // no optional behavior
)

var deriveNames = []struct {
	name  string
	value DeriveEnum
}{
	{"Debug", DeriveDebug},
	{"Equal", DeriveEqual},
	{"Compare", DeriveCompare},
	{"Hash", DeriveHash},
	{"Clone", DeriveClone},
}

// Has reports whether every behavior in flag is part of d.
func (d DeriveEnum) Has(flag DeriveEnum) bool {
	return d&flag == flag
}

// Names returns the behavior names in canonical order.
func (d DeriveEnum) Names() []string {
	var names []string

	for _, dn := range deriveNames {
		if d.Has(dn.value) {
			names = append(names, dn.name)
		}
	}

	return names
}

// String returns the behaviors as a comma separated list.
func (d DeriveEnum) String() string {
	if d == DeriveNone {
		return "none"
	}

	return strings.Join(d.Names(), ",")
}

// DeriveNames lists every recognized behavior name.
func DeriveNames() []string {
	names := make([]string, 0, len(deriveNames))
	for _, dn := range deriveNames {
		names = append(names, dn.name)
	}

	return names
}

// ParseDerive parses a single behavior name.
func ParseDerive(name string) (DeriveEnum, error) {
	for _, dn := range deriveNames {
		if dn.name == name {
			return dn.value, nil
		}
	}

	return DeriveNone, fmt.Errorf("unknown derive %q (known: %s)", name, strings.Join(DeriveNames(), ", "))
}

// SplitDeriveList splits a directive argument such as "Debug, Equal" or
// "Debug Equal" into its names.
func SplitDeriveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '(' || r == ')'
	})
}
