// Package capability type-checks a Go package and reports which of its
// concrete types satisfy which of its interfaces. The capabilities lecture
// points it at the animal package to show that ancestry (Mammal, Monotreme)
// and capability (EggLayer) are separate axes.
package capability

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyze loads the single package in dir and finds all interface-implementation relationships.
func Analyze(ctx context.Context, dir string, logger *slog.Logger) (*Result, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("loading package: %w", err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
	}
	if pkg.Types == nil || len(pkg.Syntax) == 0 {
		return nil, fmt.Errorf("no Go package loaded from %s", dir)
	}

	logger.Info("package loaded", "package", pkg.PkgPath)

	var ifaces []InterfaceDef
	var namedTypes []TypeDef

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		// Generic types cannot be checked until instantiated.
		if named.TypeParams().Len() > 0 {
			logger.Debug("skipping generic type", "name", tn.Name())
			continue
		}

		source := resolveSourceFile(pkg.Fset, tn.Pos(), dir)
		if iface, ok := named.Underlying().(*types.Interface); ok {
			ifaces = append(ifaces, InterfaceDef{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				Methods:    extractIfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: source,
			})
			logger.Debug("found interface", "name", tn.Name(), "methods", iface.NumMethods())
			continue
		}

		methods := extractTypeMethods(named)
		namedTypes = append(namedTypes, TypeDef{
			Name:       tn.Name(),
			PkgPath:    pkg.PkgPath,
			PkgName:    pkg.Name,
			IsStruct:   isStruct(named),
			Methods:    methods,
			TypeObj:    named,
			SourceFile: source,
		})
		logger.Debug("found type", "name", tn.Name(), "methods", len(methods))
	}

	logger.Info("types collected", "interfaces", len(ifaces), "types", len(namedTypes))

	var methodSetCache typeutil.MethodSetCache
	var relations []Relation

	for i := range namedTypes {
		t := &namedTypes[i]
		for j := range ifaces {
			iface := &ifaces[j]

			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			valType := t.TypeObj
			valMethodSet := methodSetCache.MethodSet(valType)
			ptrMethodSet := methodSetCache.MethodSet(types.NewPointer(valType))

			if types.Implements(valType, iface.TypeObj) || matchesMethodSet(valMethodSet, iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			} else if types.Implements(types.NewPointer(valType), iface.TypeObj) || matchesMethodSet(ptrMethodSet, iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}

	logger.Info("analysis complete", "relations", len(relations))

	return &Result{
		Interfaces: ifaces,
		Types:      namedTypes,
		Relations:  relations,
	}, nil
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

// extractTypeMethods returns the methods declared directly on named. Methods
// promoted from embedded fields are not listed.
func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		})
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to root.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(root, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
