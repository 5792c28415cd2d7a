package gen

import (
	"maps"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"enumtry-generator/internal/analyze"
	"enumtry-generator/internal/common"
	"enumtry-generator/internal/naming"
)

// typeRef is a reference to a possibly generic type declared in the
// generated package.
type typeRef struct {
	Name   string                  // Type name
	Params []analyze.TypeParamInfo // Type parameters, empty if not generic
}

// String returns the instantiated type (e.g., "Light", "Generic[T, U]").
func (t typeRef) String() string {
	if len(t.Params) == 0 {
		return t.Name
	}

	return t.Name + t.Args()
}

// Args returns the type argument list (e.g., "[T, U]"), or "" if not generic.
func (t typeRef) Args() string {
	if len(t.Params) == 0 {
		return ""
	}

	names := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		names = append(names, p.Name)
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// Decl returns the type parameter declaration (e.g., "[T comparable, U any]"),
// or "" if not generic.
func (t typeRef) Decl() string {
	if len(t.Params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		parts = append(parts, p.Name+" "+p.Constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string // Empty when the package name matches the last path element
	Path  string
}

// newImportSpec drops the alias when the default package name already matches it.
func newImportSpec(imp analyze.Import) importSpec {
	if imp.Alias == common.PkgAlias(imp.Path) {
		return importSpec{Path: imp.Path}
	}

	return importSpec{Alias: imp.Alias, Path: imp.Path}
}

// receiverName returns the receiver for methods of the type: its first
// letter, lower-cased.
func receiverName(t typeRef) string {
	r, _ := utf8.DecodeRuneInString(t.Name)
	recv := string(unicode.ToLower(r))

	for _, p := range t.Params {
		if p.Name == recv {
			return "recv"
		}
	}

	return recv
}

// identSet tracks identifiers a generated parameter or result must not shadow.
type identSet map[string]bool

func newIdentSet(names ...string) identSet {
	s := make(identSet, len(names))
	for _, n := range names {
		s[n] = true
	}

	return s
}

// claim returns name, suffixed with underscores until it is free, and marks
// it as taken.
func (s identSet) claim(name string) string {
	for s[name] {
		name += "_"
	}

	s[name] = true

	return name
}

// clone returns an independent copy of s.
func (s identSet) clone() identSet {
	return maps.Clone(s)
}

// storageName returns the struct field holding field i of a variant.
func storageName(v *analyze.VariantInfo, i int) string {
	return naming.LowerCamel(v.GoName) + "F" + strconv.Itoa(i)
}
