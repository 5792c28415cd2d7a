package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"enumtry-generator/internal/diagnostic"
	"enumtry-generator/internal/naming"
	"enumtry-generator/options"
)

// Options select and configure enum declarations.
type Options struct {
	// Types lists declaration names to reflect. Empty selects every
	// declaration carrying an enumtry:enum directive.
	Types []string
	// DeriveErr is added to the behaviors requested by each declaration.
	DeriveErr options.DeriveEnum
}

// candidate is a type declaration that may be an enum.
type candidate struct {
	spec       *ast.TypeSpec
	directives directives
}

type reflector struct {
	pkg       *packages.Package
	opts      Options
	out       *PackageEnums
	collector *importCollector

	// claimed maps package-level identifiers to a description of their owner:
	// a declaration of the package or a name generated for an earlier enum.
	claimed map[string]string
}

// generatedName is a package-level identifier emitted for an enum.
type generatedName struct {
	name    string
	what    string   // e.g. "error type LightError"
	variant string   // Declared variant name, empty for enum-wide names
	node    ast.Node // Reported position
}

// Reflect builds the enum descriptions of a loaded package. The package must
// carry syntax and type information (see LoadMode).
func Reflect(pkg *packages.Package, opts Options) *PackageEnums {
	r := &reflector{
		pkg:       pkg,
		opts:      opts,
		collector: newImportCollector(pkg.Types),
		out: &PackageEnums{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Dir:  packageDir(pkg),
		},
	}

	for _, c := range r.selectCandidates(r.collectCandidates()) {
		if enum := r.reflectEnum(c); enum != nil {
			r.out.Enums = append(r.out.Enums, enum)
		}
	}

	return r.out
}

// collectCandidates returns every type spec of the package in source order.
func (r *reflector) collectCandidates() []candidate {
	var out []candidate

	for _, file := range r.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}

				out = append(out, candidate{spec: ts, directives: parseDirectives(doc)})
			}
		}
	}

	return out
}

// selectCandidates keeps the declarations named in Options.Types, or the ones
// carrying an enumtry:enum directive when no names are given.
func (r *reflector) selectCandidates(all []candidate) []candidate {
	if len(r.opts.Types) == 0 {
		var out []candidate

		for _, c := range all {
			if c.directives.enum {
				out = append(out, c)
			}
		}

		return out
	}

	var (
		out   []candidate
		found = make(map[string]bool)
	)

	for _, c := range all {
		if slices.Contains(r.opts.Types, c.spec.Name.Name) {
			out = append(out, c)
			found[c.spec.Name.Name] = true
		}
	}

	for _, name := range r.opts.Types {
		if found[name] {
			continue
		}

		// Reported as info: the name may live in another loaded package.
		// Analyzer.LoadPackages promotes it to an error when no package has it.
		r.out.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityInfo,
			Code:        diagnostic.CodeUnknownType,
			Message:     fmt.Sprintf("type %s not found in package %s", name, r.pkg.PkgPath),
			Decl:        name,
			Suggestions: naming.Suggest(name, r.typeNames(all)),
		})
	}

	return out
}

func (r *reflector) typeNames(all []candidate) []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.spec.Name.Name)
	}

	return names
}

// reflectEnum builds the description of one declaration, or returns nil after
// reporting why it cannot be generated.
func (r *reflector) reflectEnum(c candidate) *EnumInfo {
	spec := c.spec
	declName := spec.Name.Name

	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok || spec.Assign.IsValid() {
		r.errorAt(spec.Name, diagnostic.CodeNotEnum, declName, "",
			"`%s` is not an enum", declName)

		return nil
	}

	name, ok := r.targetName(c)
	if !ok {
		return nil
	}

	enum := &EnumInfo{
		Name:     name,
		DeclName: declName,
		Position: r.position(spec.Pos()),
	}

	collector := r.collector
	collector.reset()

	valid := true

	if tparams := r.typeParams(spec.Name); tparams != nil {
		for i := range tparams.Len() {
			tp := tparams.At(i)
			enum.TypeParams = append(enum.TypeParams, TypeParamInfo{
				Name:       tp.Obj().Name(),
				Constraint: collector.typeString(tp.Constraint()),
			})
		}
	}

	variants := linkedhashmap.New()
	idents := make(map[string]*ast.Ident)

	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			r.errorAt(field, diagnostic.CodeInvalidVariant, declName, "",
				"`%s` embeds %s; only methods can declare variants", declName, types.ExprString(field.Type))

			valid = false

			continue
		}

		for _, ident := range field.Names {
			variant, ok := r.reflectVariant(declName, ident, collector)
			if !ok {
				valid = false

				continue
			}

			if prev, found := variants.Get(variant.GoName); found {
				r.errorAt(ident, diagnostic.CodeNameCollision, declName, variant.Name,
					"variants %s and %s of `%s` both convert to %s",
					prev.(VariantInfo).Name, variant.Name, declName, variant.GoName)

				valid = false

				continue
			}

			variants.Put(variant.GoName, variant)
			idents[variant.GoName] = ident
		}
	}

	for _, v := range variants.Values() {
		enum.Variants = append(enum.Variants, v.(VariantInfo))
	}

	derive, ok := r.deriveErr(c)
	if !ok {
		valid = false
	}

	enum.DeriveErr = derive
	enum.Imports = collector.imports()

	if !valid || !r.claimNames(enum, c, idents) {
		return nil
	}

	return enum
}

// claimNames reserves the package-level identifiers generated for enum. It
// reports every one already declared in the package, generated for an earlier
// enum or generated twice for this one.
func (r *reflector) claimNames(enum *EnumInfo, c candidate, idents map[string]*ast.Ident) bool {
	if r.claimed == nil {
		r.claimed = r.declaredNames()
	}

	names := []generatedName{
		{name: enum.Name, what: "type " + enum.Name, node: c.spec.Name},
		{name: enum.ErrorName(), what: "error type " + enum.ErrorName(), node: c.spec.Name},
		{name: enum.ErrorConstructor(), what: "error constructor " + enum.ErrorConstructor(), node: c.spec.Name},
	}

	for i := range enum.Variants {
		v := &enum.Variants[i]

		names = append(names,
			generatedName{
				name:    enum.Constructor(v),
				what:    fmt.Sprintf("constructor %s of variant %s", enum.Constructor(v), v.Name),
				variant: v.Name,
				node:    idents[v.GoName],
			},
			generatedName{
				name:    enum.TagConst(v),
				what:    fmt.Sprintf("tag constant %s of variant %s", enum.TagConst(v), v.Name),
				variant: v.Name,
				node:    idents[v.GoName],
			})
	}

	own := make(map[string]string, len(names))
	ok := true

	for _, n := range names {
		owner, taken := r.claimed[n.name]
		if !taken {
			owner, taken = own[n.name]
		}

		if taken {
			r.errorAt(n.node, diagnostic.CodeNameCollision, enum.DeclName, n.variant,
				"%s of `%s` clashes with %s", n.what, enum.DeclName, owner)

			ok = false

			continue
		}

		own[n.name] = fmt.Sprintf("the %s of `%s`", n.what, enum.DeclName)
	}

	if ok {
		maps.Copy(r.claimed, own)
	}

	return ok
}

// declaredNames returns the package-level identifiers declared outside
// generated files.
func (r *reflector) declaredNames() map[string]string {
	scope := r.pkg.Types.Scope()
	out := make(map[string]string, scope.Len())

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if r.inGeneratedFile(obj.Pos()) {
			continue
		}

		out[name] = fmt.Sprintf("`%s` declared at %s", name, r.position(obj.Pos()))
	}

	return out
}

// targetName returns the name of the generated type for a declaration.
func (r *reflector) targetName(c candidate) (string, bool) {
	declName := c.spec.Name.Name

	name := c.directives.name
	if name == "" {
		rest, ok := strings.CutPrefix(declName, DeclPrefix)
		if !ok || rest == "" {
			r.errorAt(c.spec.Name, diagnostic.CodeInvalidName, declName, "",
				"cannot derive a type name from `%s`: name it %s<Name> or add %q",
				declName, DeclPrefix, DirectiveEnum+" <Name>")

			return "", false
		}

		name = rest
	}

	if !token.IsIdentifier(name) || name == "_" || name == declName {
		r.errorAt(c.spec.Name, diagnostic.CodeInvalidName, declName, "",
			"`%s` is not a valid name for the type generated from `%s`", name, declName)

		return "", false
	}

	if obj := r.pkg.Types.Scope().Lookup(name); obj != nil && !r.inGeneratedFile(obj.Pos()) {
		r.errorAt(c.spec.Name, diagnostic.CodeInvalidName, declName, "",
			"`%s` is already declared at %s", name, r.position(obj.Pos()))

		return "", false
	}

	return name, true
}

// reflectVariant describes the method ident of an enum declaration.
func (r *reflector) reflectVariant(declName string, ident *ast.Ident, collector *importCollector) (VariantInfo, bool) {
	variant := VariantInfo{
		Name:     ident.Name,
		GoName:   naming.Camel(ident.Name),
		Position: r.position(ident.Pos()),
	}

	fn, ok := r.pkg.TypesInfo.Defs[ident].(*types.Func)
	if !ok {
		r.errorAt(ident, diagnostic.CodeInvalidVariant, declName, ident.Name,
			"variant %s of `%s` has no type information", ident.Name, declName)

		return variant, false
	}

	if variant.GoName == "" || !unicode.IsLetter([]rune(variant.GoName)[0]) {
		r.errorAt(ident, diagnostic.CodeInvalidVariant, declName, ident.Name,
			"variant %s of `%s` does not convert to a Go identifier", ident.Name, declName)

		return variant, false
	}

	sig := fn.Type().(*types.Signature)

	if sig.Results().Len() > 0 {
		r.errorAt(ident, diagnostic.CodeInvalidVariant, declName, ident.Name,
			"variant %s of `%s` must not declare results", ident.Name, declName)

		return variant, false
	}

	if sig.Variadic() {
		r.errorAt(ident, diagnostic.CodeInvalidVariant, declName, ident.Name,
			"variant %s of `%s` must not be variadic", ident.Name, declName)

		return variant, false
	}

	params := sig.Params()
	named := false

	for i := range params.Len() {
		p := params.At(i)

		if p.Name() == "_" {
			r.errorAt(ident, diagnostic.CodeInvalidVariant, declName, ident.Name,
				"variant %s of `%s` has a blank field name", ident.Name, declName)

			return variant, false
		}

		named = named || p.Name() != ""

		variant.Fields = append(variant.Fields, FieldInfo{
			Index: i,
			Name:  p.Name(),
			Type:  collector.typeString(p.Type()),
		})
	}

	switch {
	case params.Len() == 0:
		variant.Shape = ShapeEmpty
	case named:
		variant.Shape = ShapeStruct
	default:
		variant.Shape = ShapeTuple
	}

	return variant, true
}

// deriveErr combines the configured behaviors with the declaration's directive.
func (r *reflector) deriveErr(c candidate) (options.DeriveEnum, bool) {
	derive := r.opts.DeriveErr
	ok := true

	for _, name := range c.directives.derive {
		d, err := options.ParseDerive(name)
		if err != nil {
			r.errorAtPos(c.directives.derivePos, c.directives.derivePos, diagnostic.CodeUnknownDerive,
				c.spec.Name.Name, "", "`%s`: %v", c.spec.Name.Name, err)

			ok = false

			continue
		}

		derive |= d
	}

	return derive, ok
}

func (r *reflector) typeParams(ident *ast.Ident) *types.TypeParamList {
	obj := r.pkg.TypesInfo.Defs[ident]
	if obj == nil {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() == 0 {
		return nil
	}

	return named.TypeParams()
}

func (r *reflector) inGeneratedFile(pos token.Pos) bool {
	for _, f := range r.pkg.Syntax {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return ast.IsGenerated(f)
		}
	}

	return false
}

func (r *reflector) position(pos token.Pos) token.Position {
	if r.pkg.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return r.pkg.Fset.Position(pos)
}

func (r *reflector) errorAt(node ast.Node, code, decl, variant, format string, args ...any) {
	r.errorAtPos(node.Pos(), node.End(), code, decl, variant, format, args...)
}

func (r *reflector) errorAtPos(pos, end token.Pos, code, decl, variant, format string, args ...any) {
	r.out.Diagnostics.AddError(code, fmt.Sprintf(format, args...), decl, variant).
		At(r.pkg.Fset, pos, end)
}
