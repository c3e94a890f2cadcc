package capability

import (
	"unicode"
)

// Filter drops unexported names (unless asked to keep them) and prunes
// interfaces and types that no longer take part in any relation.
func Filter(result *Result, opts Options) *Result {
	filtered := &Result{}

	ifaceSet := make(map[string]bool)
	typeSet := make(map[string]bool)

	for _, rel := range result.Relations {
		iface := rel.Interface
		typ := rel.Type

		if !opts.IncludeUnexported {
			if isUnexported(iface.Name) || isUnexported(typ.Name) {
				continue
			}
		}

		filtered.Relations = append(filtered.Relations, rel)
		ifaceSet[ifaceKey(iface)] = true
		typeSet[typeKey(typ)] = true
	}

	for i := range result.Interfaces {
		iface := &result.Interfaces[i]
		if ifaceSet[ifaceKey(iface)] {
			filtered.Interfaces = append(filtered.Interfaces, *iface)
		}
	}

	for i := range result.Types {
		typ := &result.Types[i]
		if typeSet[typeKey(typ)] {
			filtered.Types = append(filtered.Types, *typ)
		}
	}

	return filtered
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}

func ifaceKey(iface *InterfaceDef) string {
	return iface.PkgPath + "." + iface.Name
}

func typeKey(typ *TypeDef) string {
	return typ.PkgPath + "." + typ.Name
}
