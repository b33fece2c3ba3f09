package cssom

import (
	"regexp"
)

// DefaultSubstitutionLimit caps the number of replacements performed when
// resolving a single value. Cyclic variable definitions would otherwise
// never terminate.
const DefaultSubstitutionLimit = 100

// words are runs of characters which may form a token of a property value.
// '#' is included so that hex colors like "#abc" are never mistaken for a
// variable reference.
var words = regexp.MustCompile(`[A-Za-z0-9_#-]+`)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// IsIdentifier is a predicate for strings of identifier shape.
func IsIdentifier(s string) bool {
	return identifier.MatchString(s)
}

// Substitute resolves variable references in a value. It repeatedly replaces
// the first bare word naming a variable by the variable's value, until no
// more replacements occur or limit replacements have been done (limit <= 0
// selects DefaultSubstitutionLimit).
//
// Substitute returns the resulting value and a flag telling whether the
// resolution converged. Substituting an already resolved value again does not
// change it.
func Substitute(value string, vars map[string]string, limit int) (string, bool) {
	if len(vars) == 0 {
		return value, true
	}
	if limit <= 0 {
		limit = DefaultSubstitutionLimit
	}
	for n := 0; n < limit; n++ {
		loc := firstReference(value, vars)
		if loc == nil {
			return value, true
		}
		name := value[loc[0]:loc[1]]
		value = value[:loc[0]] + vars[name] + value[loc[1]:]
	}
	if firstReference(value, vars) == nil {
		return value, true
	}
	tracer().Infof("cssom: variable substitution did not converge after %d steps, cyclic definition? value = %q",
		limit, value)
	return value, false
}

// firstReference finds the position of the first word naming a variable.
func firstReference(value string, vars map[string]string) []int {
	for _, loc := range words.FindAllStringIndex(value, -1) {
		w := value[loc[0]:loc[1]]
		if !IsIdentifier(w) {
			continue
		}
		if _, ok := vars[w]; ok {
			return loc
		}
	}
	return nil
}
