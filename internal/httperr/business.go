package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Rejection codes shared between use cases and handlers.
const (
	CodeValidation         = "validation_error"
	CodeEmailTaken         = "email_taken"
	CodeUsernameTaken      = "username_taken"
	CodeInvalidBirthDate   = "invalid_birth_date"
	CodeWeakPassword       = "weak_password"
	CodeFieldMismatch      = "field_mismatch"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
)

// BusinessError is a caller-fixable rejection. Field names the offending
// input field when the code alone is not enough to build a message.
type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrValidation(field string) error {
	return BusinessError{Code: CodeValidation, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

var messages = map[string]string{
	CodeValidation:         "Invalid value.",
	CodeEmailTaken:         "This email is already taken.",
	CodeUsernameTaken:      "This username is already taken.",
	CodeInvalidBirthDate:   "Birth date cannot be in the future.",
	CodeWeakPassword:       "Password must be at least 8 characters and not entirely numeric.",
	CodeFieldMismatch:      "Service category must match the company's field of work.",
	CodeForbidden:          "You do not have permission to do that.",
	CodeNotFound:           "Not found.",
	CodeInvalidCredentials: "Invalid credentials. Please try again.",
}

// WriteBusiness renders a BusinessError with its mapped status and message.
func WriteBusiness(c *gin.Context, be BusinessError) {
	msg, ok := messages[be.Code]
	if !ok {
		msg = "Request rejected."
	}
	c.JSON(statusFor(be.Code), HTTPError{
		Code:    be.Code,
		Message: msg,
		Field:   be.Field,
	})
}

func statusFor(code string) int {
	switch code {
	case CodeForbidden:
		return 403
	case CodeNotFound:
		return 404
	case CodeInvalidCredentials:
		return 401
	default:
		return 400
	}
}

