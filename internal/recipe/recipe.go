// Package recipe loads and models the recipe registry backing jib.
//
// A recipe file is plain UTF-8 text. A recipe starts with a header line
// (a bare identifier, optionally ending in a colon), may carry a one-line
// summary from the # comment immediately above the header, and is followed
// by one or more indented shell command lines. A Set is built once from
// the file and never mutated afterwards.
package recipe

import "sort"

// Recipe is a named, independently invocable unit of one or more
// sequential shell command lines.
type Recipe struct {
	Name    string
	Summary string
	// Commands holds the shell command lines run in order on dispatch.
	Commands []string
	// Line is the 1-based source line of the recipe's header.
	Line int
}

// Order selects how List arranges its output.
type Order int

const (
	// DeclarationOrder reproduces the source order of the recipe file.
	DeclarationOrder Order = iota
	// Alphabetical sorts by recipe name.
	Alphabetical
)

// Entry is one row of a listing.
type Entry struct {
	Name    string
	Summary string
}

// Set is an immutable, ordered collection of uniquely named recipes.
// Build one with Parse or Load.
type Set struct {
	recipes []*Recipe
	byName  map[string]*Recipe
}

// Len returns the number of recipes in the set.
func (s *Set) Len() int {
	return len(s.recipes)
}

// List returns the (name, summary) pairs of every recipe. Each call
// builds a fresh slice, so callers may reorder or reuse it freely.
func (s *Set) List(order Order) []Entry {
	entries := make([]Entry, len(s.recipes))
	for i, r := range s.recipes {
		entries[i] = Entry{Name: r.Name, Summary: r.Summary}
	}
	if order == Alphabetical {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	}
	return entries
}

// Names returns every recipe name in declaration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.recipes))
	for i, r := range s.recipes {
		names[i] = r.Name
	}
	return names
}

// Recipes returns the recipes in declaration order.
func (s *Set) Recipes() []*Recipe {
	recipes := make([]*Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	return recipes
}

// Lookup resolves name to its recipe. Absent names fail with
// *UnknownRecipeError, never silently.
func (s *Set) Lookup(name string) (*Recipe, error) {
	r, ok := s.byName[name]
	if !ok {
		return nil, &UnknownRecipeError{Name: name}
	}
	return r, nil
}
