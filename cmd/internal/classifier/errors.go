package classifier

import "fmt"

// QuantityError is returned when eligibility needs the numeric value of a
// quantity that does not parse as a number.
type QuantityError struct {
	Value string
	Err   error
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity %q is not a number: %v", e.Value, e.Err)
}

func (e *QuantityError) Unwrap() error {
	return e.Err
}
