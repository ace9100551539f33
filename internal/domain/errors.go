package domain

import "errors"

var (
	// ErrUnauthorized means the user is not on the whitelist.
	ErrUnauthorized = errors.New("user is not authorized")

	// ErrDraftIncomplete means a draft was submitted with required fields missing.
	ErrDraftIncomplete = errors.New("draft is missing required fields")

	// ErrNoDraft means no report is being filled for this user.
	ErrNoDraft = errors.New("no report in progress")
)

// ValidationError marks input that does not match an enumerated option or
// fails numeric parsing. The form re-prompts the same step; it is not a
// system failure.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
