package collate

import "github.com/cockroachdb/errors"

// Wildcard is the literal marker the archive API uses for "everything".
// ParseSelection maps it to All; comparison is by value, so a wildcard
// assembled at runtime selects everything just the same.
const Wildcard = "*"

// Selection states which values of an enumerated parameter a request
// means: either all of them, or an explicit list. The zero value is an
// empty explicit selection, which never validates; construct via All,
// Values or ParseSelection.
type Selection struct {
	all    bool
	values []string
}

// All selects every value of the enumeration.
func All() Selection {
	return Selection{all: true}
}

// Values selects exactly the given values.
func Values(vs ...string) Selection {
	values := make([]string, len(vs))
	copy(values, vs)

	return Selection{values: values}
}

// ParseSelection maps the boundary string form onto a Selection: the
// literal Wildcard means all, anything else is a one-element explicit
// selection.
func ParseSelection(s string) Selection {
	if s == Wildcard {
		return All()
	}

	return Values(s)
}

// IsAll reports whether the selection means every value.
func (s Selection) IsAll() bool {
	return s.all
}

// resolve expands the selection against the valid enumeration: All
// yields a copy of the whole enumeration, an explicit selection is
// validated value by value. The parameter name is used in errors only.
func (s Selection) resolve(valid []string, name string) ([]string, error) {
	if s.all {
		expanded := make([]string, len(valid))
		copy(expanded, valid)

		return expanded, nil
	}
	if len(s.values) == 0 {
		return nil, errors.Wrapf(ErrEmptyValue, "parameter %s", name)
	}
	if err := checkValues(s.values, valid, name); err != nil {
		return nil, err
	}
	resolved := make([]string, len(s.values))
	copy(resolved, s.values)

	return resolved, nil
}
