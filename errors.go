package ragdoll

import "errors"

// Error reports a failure with the operation that produced it: an Op/Err
// wrapper paired with a sentinel and an Is* predicate for callers that
// want to branch on the failure kind without string matching.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

var errUnknownBody = errors.New("body not found")

// IsUnknownBody reports whether err indicates that an operation named a
// body part the core doesn't currently have (most commonly: called
// before the first Reset).
func IsUnknownBody(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		err = e.Err
	}
	return err == errUnknownBody
}
