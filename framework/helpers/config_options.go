package helpers

// ConfigOption is the building block of the vararg options pattern used by
// the harness constructors: each option mutates the target configuration and
// may reject an invalid value.
type ConfigOption[T any] interface {
	Configure(*T) error
}

// ApplyOptions runs each option against the target, stopping at the first
// error.
func ApplyOptions[T any, U ConfigOption[T]](target *T, options ...U) error {
	// The extra U parameter lets callers declare their own named option type
	// rather than writing ConfigOption[T] at every call site.
	for _, o := range options {
		if err := o.Configure(target); err != nil {
			return err
		}
	}
	return nil
}
