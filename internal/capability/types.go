package capability

import (
	"go/types"
	"sort"
)

// InterfaceDef is an interface declared in the analyzed package.
type InterfaceDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// TypeDef is a concrete named type declared in the analyzed package.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation records that a concrete type satisfies an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// Result holds the complete analysis output.
type Result struct {
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
}

// Options controls which names survive Filter.
type Options struct {
	IncludeUnexported bool
}

// Implements reports whether the named type satisfies the named interface,
// by value or through a pointer.
func (r *Result) Implements(typeName, ifaceName string) bool {
	for _, rel := range r.Relations {
		if rel.Type.Name == typeName && rel.Interface.Name == ifaceName {
			return true
		}
	}
	return false
}

// Row is one line of the capability matrix.
type Row struct {
	Type       string
	Interfaces []string
}

// Matrix lists every type with the interfaces it satisfies, both sorted by name.
func (r *Result) Matrix() []Row {
	byType := make(map[string][]string)
	for _, t := range r.Types {
		byType[t.Name] = nil
	}
	for _, rel := range r.Relations {
		byType[rel.Type.Name] = append(byType[rel.Type.Name], rel.Interface.Name)
	}

	rows := make([]Row, 0, len(byType))
	for name, ifaces := range byType {
		sort.Strings(ifaces)
		rows = append(rows, Row{Type: name, Interfaces: ifaces})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })
	return rows
}
