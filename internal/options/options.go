// Package options implements the generic functional options used by the
// clordid, journal and logging constructors.
//
// A package declares its own alias over an unexported config type:
//
//	type Option = options.Option[*config]
//
//	func WithSegmentSize(n int) Option {
//	    return options.New(func(c *config) error { ... })
//	}
//
// and applies them in its constructor with Apply, which stops at the first error.
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function.
// It implements the Option interface for any type T.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option that can reject its argument.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and returns the first error.
// Options after a failing one are not applied. Nil options, including a nil
// *Func, are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if f, ok := opt.(*Func[T]); ok && f == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
