package envutil

// Option adjusts a Reader after the raw variable has been read and parsed.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies dfl when the variable is unset. A variable that is set
// but fails to parse keeps its error.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}
