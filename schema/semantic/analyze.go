package semantic

import (
	"strconv"
	"strings"

	"github.com/bearlytools/flatcore/schema/ast"
)

// Analyze runs the full validation pipeline over the schema tree
// rooted at root: flatten, validate enums, detect struct cycles and
// validate structs, then validate tables and unions.
func Analyze(root *ast.Schema) (*IR, error) {
	reg := flatten(root)

	enums, err := validateEnums(reg)
	if err != nil {
		return nil, err
	}

	structs, err := validateStructs(reg, enums)
	if err != nil {
		return nil, err
	}

	tables, unions, err := validateTablesAndUnions(reg, enums, structs)
	if err != nil {
		return nil, err
	}

	ir := &IR{Enums: enums, Structs: structs, Tables: tables, Unions: unions}

	if root.RootType != nil {
		d, candidates := reg.lookup(root.Namespace, *root.RootType)
		if d == nil || d.kind != declTable {
			if d == nil {
				return nil, &ValidationError{
					Context: "root_type",
					Message: "type " + strconv.Quote(root.RootType.Name) + " does not exist (checked in these namespaces: " + strings.Join(candidates, ", ") + ")",
				}
			}
			return nil, &ValidationError{Context: "root_type", Message: "root_type must name a table"}
		}
		ir.Root = tables[qualify(d.namespace, d.name)]
	}

	return ir, nil
}
