package collate

import "github.com/cockroachdb/errors"

// checkValue validates a single parameter value against its valid set.
// An empty value and a value outside the set are distinct failures, and
// both errors name the parameter; the unknown-value error also
// enumerates the valid choices.
func checkValue(value string, valid []string, name string) error {
	if value == "" {
		return errors.Wrapf(ErrEmptyValue, "parameter %s", name)
	}
	for _, candidate := range valid {
		if candidate == value {
			return nil
		}
	}

	return errors.Wrapf(ErrUnknownValue, "parameter %s value %q; use a value from %v", name, value, valid)
}

// checkValues validates each value in order, failing on the first bad one.
func checkValues(values, valid []string, name string) error {
	var err error
	for _, value := range values {
		if err = checkValue(value, valid, name); err != nil {
			return err
		}
	}

	return nil
}
