package analyze

import (
	"fmt"
	"go/types"
	"sort"
)

// ReservedImports are standard library packages generated code may import
// for the error type. Their aliases are reserved so field types never take them.
var ReservedImports = []Import{
	{Alias: "cmp", Path: "cmp"},
	{Alias: "fmt", Path: "fmt"},
	{Alias: "fnv", Path: "hash/fnv"},
	{Alias: "reflect", Path: "reflect"},
}

// importCollector is a types.Qualifier that records every package a type
// expression refers to. Aliases are unique across the whole package so all
// enums of one generated file agree on them.
type importCollector struct {
	pkg    *types.Package
	byPath map[string]string
	taken  map[string]bool
	used   map[string]bool
}

func newImportCollector(pkg *types.Package) *importCollector {
	c := &importCollector{
		pkg:    pkg,
		byPath: make(map[string]string),
		taken:  make(map[string]bool),
		used:   make(map[string]bool),
	}

	for _, imp := range ReservedImports {
		c.byPath[imp.Path] = imp.Alias
		c.taken[imp.Alias] = true
	}

	return c
}

// reset forgets which packages were used, keeping their aliases.
func (c *importCollector) reset() {
	clear(c.used)
}

// qualify implements types.Qualifier.
func (c *importCollector) qualify(p *types.Package) string {
	if p == nil || (c.pkg != nil && p.Path() == c.pkg.Path()) {
		return ""
	}

	c.used[p.Path()] = true

	if alias, ok := c.byPath[p.Path()]; ok {
		return alias
	}

	alias := p.Name()
	for i := 2; c.taken[alias]; i++ {
		alias = fmt.Sprintf("%s%d", p.Name(), i)
	}

	c.byPath[p.Path()] = alias
	c.taken[alias] = true

	return alias
}

// typeString renders t relative to the declaring package.
func (c *importCollector) typeString(t types.Type) string {
	return types.TypeString(t, c.qualify)
}

// imports returns the packages used since the last reset, sorted by path.
func (c *importCollector) imports() []Import {
	out := make([]Import, 0, len(c.used))
	for path := range c.used {
		out = append(out, Import{Alias: c.byPath[path], Path: path})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
