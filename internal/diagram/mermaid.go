// Package diagram renders a capability report as a Mermaid class diagram.
package diagram

import (
	"fmt"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"github.com/olehluchkiv/golectures/internal/capability"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// GenerateMermaid produces a Mermaid classDiagram string from a capability report.
// Interface embedding (Mammal embeds Animal) is drawn with the same arrow as
// implementation.
func GenerateMermaid(result *capability.Result, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := make([]capability.InterfaceDef, len(result.Interfaces))
	copy(ifaces, result.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool { return ifaces[i].Name < ifaces[j].Name })

	typs := make([]capability.TypeDef, len(result.Types))
	copy(typs, result.Types)
	sort.Slice(typs, func(i, j int) bool { return typs[i].Name < typs[j].Name })

	rels := make([]capability.Relation, len(result.Relations))
	copy(rels, result.Relations)
	sort.Slice(rels, func(i, j int) bool {
		if rels[i].Type.Name != rels[j].Type.Name {
			return rels[i].Type.Name < rels[j].Type.Name
		}
		return rels[i].Interface.Name < rels[j].Interface.Name
	})

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) == 0 && len(typs) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString("    direction LR\n")
	b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
	b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ)
	}

	arrows := collectEmbeddingArrows(ifaces)
	for _, rel := range rels {
		arrows = append(arrows, relationLine(rel))
	}
	if len(arrows) > 0 {
		b.WriteString("\n")
	}
	for _, line := range arrows {
		b.WriteString("\n")
		b.WriteString(line)
	}

	b.WriteString("\n")
	for _, iface := range ifaces {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" interfaceStyle", NodeID(iface.PkgName, iface.Name))
	}
	for _, typ := range typs {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" implStyle", NodeID(typ.PkgName, typ.Name))
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" alone is reserved by Mermaid's <<interface>> tag parsing.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(pkgName + "_" + name)
}

func writeInterfaceBlock(b *strings.Builder, iface capability.InterfaceDef, opts DiagramOptions) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(iface.PkgName, iface.Name))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	writeMethodLines(b, exportedOnly(iface.Methods), opts)
	b.WriteString("    }")
}

// writeTypeBlock writes only the type name; its methods already appear on the
// interfaces it implements.
func writeTypeBlock(b *strings.Builder, typ capability.TypeDef) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(typ.PkgName, typ.Name))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []capability.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(methods[i].Signature))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

// exportedOnly hides sealing methods such as sealed() and mammal().
func exportedOnly(methods []capability.MethodSig) []capability.MethodSig {
	var out []capability.MethodSig
	for _, m := range methods {
		if token.IsExported(m.Name) {
			out = append(out, m)
		}
	}
	return out
}

func relationLine(rel capability.Relation) string {
	typeID := NodeID(rel.Type.PkgName, rel.Type.Name)
	ifaceID := NodeID(rel.Interface.PkgName, rel.Interface.Name)
	return fmt.Sprintf("    %s ..|> %s", typeID, ifaceID)
}

// collectEmbeddingArrows returns sorted arrows from each interface to the
// interfaces of the same result set that it embeds.
func collectEmbeddingArrows(ifaces []capability.InterfaceDef) []string {
	lookup := make(map[string]capability.InterfaceDef, len(ifaces))
	for _, iface := range ifaces {
		lookup[iface.PkgPath+"."+iface.Name] = iface
	}

	var arrows []string
	for _, child := range ifaces {
		if child.TypeObj == nil {
			continue
		}
		for i := 0; i < child.TypeObj.NumEmbeddeds(); i++ {
			named, ok := child.TypeObj.EmbeddedType(i).(*types.Named)
			if !ok {
				continue
			}
			obj := named.Obj()
			if obj.Pkg() == nil {
				continue
			}
			parent, ok := lookup[obj.Pkg().Path()+"."+obj.Name()]
			if !ok {
				continue
			}
			arrows = append(arrows, fmt.Sprintf("    %s --|> %s",
				NodeID(child.PkgName, child.Name), NodeID(parent.PkgName, parent.Name)))
		}
	}

	sort.Strings(arrows)
	return arrows
}
