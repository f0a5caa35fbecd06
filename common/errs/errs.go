package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when an expected item is missing from an upstream response.
	NotFound = ErrorKind("Not Found")

	// Unsupported is returned when an upstream value falls outside the closed
	// vocabulary this tool understands. Encountering one means the API contract
	// changed, or we hit a transaction shape we never designed for.
	Unsupported = ErrorKind("Unsupported")

	// InvalidArgument is returned when a raw value fails numeric or temporal coercion.
	InvalidArgument = ErrorKind("Invalid Argument")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
