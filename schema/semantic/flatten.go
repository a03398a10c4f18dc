package semantic

import "github.com/bearlytools/flatcore/schema/ast"

// declKind distinguishes the four declaration kinds a rawDecl can hold.
type declKind uint8

const (
	declEnum declKind = iota
	declStruct
	declTable
	declUnion
)

// rawDecl pairs one unvalidated declaration with the effective
// namespace it was found under.
type rawDecl struct {
	namespace string
	name      string
	kind      declKind
	enum      *ast.EnumDecl
	strct     *ast.StructDecl
	table     *ast.TableDecl
	union     *ast.UnionDecl
}

// registry is the flattened view of a schema tree: every declaration
// reachable from the root, indexed for namespace-walk-up lookup, plus
// an order slice so validation is deterministic.
type registry struct {
	byKey map[string]*rawDecl
	order []*rawDecl
	root  *ast.Schema
}

func flatten(root *ast.Schema) *registry {
	reg := &registry{byKey: make(map[string]*rawDecl), root: root}
	visited := make(map[*ast.Schema]bool)
	var walk func(s *ast.Schema)
	walk = func(s *ast.Schema) {
		if s == nil || visited[s] {
			return
		}
		visited[s] = true
		for _, inc := range s.Includes {
			walk(inc)
		}
		for _, e := range s.Enums {
			reg.add(&rawDecl{namespace: e.Namespace, name: e.Name, kind: declEnum, enum: e})
		}
		for _, st := range s.Structs {
			reg.add(&rawDecl{namespace: st.Namespace, name: st.Name, kind: declStruct, strct: st})
		}
		for _, t := range s.Tables {
			reg.add(&rawDecl{namespace: t.Namespace, name: t.Name, kind: declTable, table: t})
		}
		for _, u := range s.Unions {
			reg.add(&rawDecl{namespace: u.Namespace, name: u.Name, kind: declUnion, union: u})
		}
	}
	walk(root)
	return reg
}

func (r *registry) add(d *rawDecl) {
	key := nsKey(d.namespace, d.name)
	if _, exists := r.byKey[key]; exists {
		return // first declaration wins; duplicate-declaration reporting belongs to the parser, not here
	}
	r.byKey[key] = d
	r.order = append(r.order, d)
}

func (r *registry) lookup(namespace string, ref ast.TypeRef) (*rawDecl, []string) {
	candidates := candidateNamespaces(namespace)
	for _, ns := range candidates {
		if d, ok := r.byKey[nsKey(ns, ref.Name)]; ok {
			return d, candidates
		}
	}
	return nil, candidates
}

func nsKey(namespace, name string) string {
	return namespace + "\x00" + name
}
