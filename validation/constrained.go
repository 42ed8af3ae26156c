package validation

// Constrained wraps a scalar together with the predicate it must satisfy.
// The predicate holds at every observable instant: construction and mutation
// both run it and fail rather than store an invalid value.
type Constrained[T comparable] struct {
	field     string
	predicate Predicate[T]
	value     T
}

// NewConstrained creates a constrained value for the named field. It fails
// with a FieldError when the predicate rejects the initial value.
func NewConstrained[T comparable](field string, predicate Predicate[T], value T) (Constrained[T], error) {
	if err := predicate.Validate(field, value); err != nil {
		return Constrained[T]{}, err
	}
	return Constrained[T]{field: field, predicate: predicate, value: value}, nil
}

// Value returns the wrapped value.
func (c Constrained[T]) Value() T {
	return c.value
}

// Set replaces the wrapped value if the predicate accepts the replacement.
// On failure the previously stored value is left untouched.
func (c *Constrained[T]) Set(value T) error {
	if err := c.predicate.Validate(c.field, value); err != nil {
		return err
	}
	c.value = value
	return nil
}

// Revalidate re-runs the predicate against the stored value. A stored value
// is always valid, so this only fails on a zero-valued Constrained that was
// never built through NewConstrained.
func (c Constrained[T]) Revalidate() error {
	if c.predicate.check == nil {
		return NewFieldError(c.field, "value was never validated")
	}
	return c.predicate.Validate(c.field, c.value)
}

// Equal compares wrapped values only; the predicates that produced the two
// sides are not part of the comparison.
func (c Constrained[T]) Equal(other Constrained[T]) bool {
	return c.value == other.value
}
