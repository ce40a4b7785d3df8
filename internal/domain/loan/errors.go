package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")
	// ErrInvalidInput flags caller-correctable input, as opposed to
	// internal failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Kind classifies a validation failure. The update flow treats
// KindFundsExceeded as recoverable; every other kind aborts the mutation.
type Kind string

const (
	KindFundsExceeded    Kind = "funds_exceeded"
	KindNoActivePolicy   Kind = "no_active_policy"
	KindAmountOutOfRange Kind = "amount_out_of_range"
	KindRateMismatch     Kind = "rate_mismatch"
	KindTermMismatch     Kind = "term_mismatch"
)

// ValidationError is a caller-correctable verdict from the validation rules.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, k Kind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == k
}
