// Package sheet defines the contract between style production and a
// rendering surface, plus an in-memory surface implementation. Concrete
// surfaces live in the adapter subpackages.
package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Factory creates stylesheets on a rendering surface. A style producer
// allocates one sheet per produced rule and disposes of it when the rule
// goes away.
type Factory interface {
	NewSheet() Sheet
}

// Sheet is one stylesheet on a rendering surface: an indexed list of CSS
// rules. Implementations are not required to tolerate use after Remove.
type Sheet interface {
	// Len returns the number of rules in the sheet.
	Len() int
	// Rule returns the rule at the given index.
	Rule(i int) Rule
	// Insert creates an empty rule with the given selector text at the
	// given index, shifting subsequent rules up.
	Insert(selector string, i int) (Rule, error)
	// InsertText inserts verbatim CSS rule text at the given index.
	InsertText(cssText string, i int) error
	// Delete removes the rule at the given index.
	Delete(i int)
	// Remove disposes of the whole sheet.
	Remove()
}

// Rule is one CSS rule within a sheet.
type Rule interface {
	// Selector returns the rule's selector text.
	Selector() string
	// Set adds or replaces the declaration for the given property.
	Set(name, value string, important bool)
	// Decls returns the rule's declarations in order.
	Decls() []Decl
}

// Decl is one CSS declaration.
type Decl struct {
	Name      string
	Value     string
	Important bool
}

// Clear deletes all rules of a sheet.
func Clear(s Sheet) {
	for s.Len() > 0 {
		s.Delete(s.Len() - 1)
	}
}
