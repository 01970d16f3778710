package recipe

import "fmt"

// DuplicateNameError reports two recipe headers declaring the same name.
type DuplicateNameError struct {
	Name      string
	FirstLine int
	Line      int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("recipe %q on line %v already declared on line %v",
		e.Name, e.Line, e.FirstLine)
}

// MalformedBlockError reports a recipe body that is empty, inconsistently
// indented, or a line that fits no part of the format. Recipe is empty when
// the offending line precedes any header.
type MalformedBlockError struct {
	Recipe string
	Line   int
	Reason string
}

func (e *MalformedBlockError) Error() string {
	if e.Recipe == "" {
		return fmt.Sprintf("line %v: %v", e.Line, e.Reason)
	}
	return fmt.Sprintf("recipe %q: line %v: %v", e.Recipe, e.Line, e.Reason)
}

// UnknownRecipeError reports a dispatch request for a name not in the set.
type UnknownRecipeError struct {
	Name string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe %q", e.Name)
}
