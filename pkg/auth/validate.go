package auth

import (
	"regexp"
	"strings"
	"unicode"
)

// User-facing messages. Kept as constants so tests and screens agree on the
// exact wording.
const (
	MsgEnterEmailAndPassword = "Enter your email and password."
	MsgInvalidCredentials    = "Invalid email or password."
	MsgServerUnreachable     = "Could not reach the server. Try again later."

	MsgAllFieldsRequired = "All fields are required."
	MsgInvalidEmail      = "Invalid email format. Please try again."
	MsgWeakPassword      = "Password does not meet the requirements. It must be at least 8 characters long and contain an uppercase letter, a digit and a special character. Please try again."
	MsgPasswordsMismatch = "Passwords do not match."
	MsgEmailTaken        = "A user with this email address is already registered. Please enter a different email address."
	MsgRegistrationLost  = "Could not create the account."
	MsgServerCheckInput  = "Server error. Check your input."

	MsgResetFailed = "Something went wrong. Try again later."
	// The reset-confirm password rule additionally demands a lowercase letter.
	MsgWeakResetPassword = "Password does not meet the requirements. It must be at least 8 characters long and contain uppercase and lowercase letters, a digit and a special character. Please try again."
	MsgResetLinkInvalid  = "Access denied. This link has already been used or is invalid."
	MsgResetConfirmError = "Something went wrong while changing the password. Try again."
	MsgPasswordChanged   = "Password changed successfully! Log in with your new password."
)

// Requires a local part, an @, a domain with at least one dot and a final
// label of two or more letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// validPassword checks the password policy: at least 8 characters, one
// digit, one uppercase letter and one special character. The reset-confirm
// flow additionally requires a lowercase letter (needLower); registration
// does not. The two policies diverge in the backend contract too, so both
// are kept as-is.
func validPassword(password string, needLower bool) bool {
	if len(password) < 8 {
		return false
	}
	var digit, upper, lower, special bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if needLower && !lower {
		return false
	}
	return digit && upper && special
}

// RegisterForm is the raw input of the registration screen.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate applies the registration rules in order and stops at the first
// violation: empty fields, email format, password policy, confirmation.
func (f RegisterForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" ||
		f.Password == "" || f.ConfirmPassword == "" {
		return validationErr(MsgAllFieldsRequired)
	}
	if !validEmail(f.Email) {
		return validationErr(MsgInvalidEmail)
	}
	if !validPassword(f.Password, false) {
		return validationErr(MsgWeakPassword)
	}
	if f.Password != f.ConfirmPassword {
		return validationErr(MsgPasswordsMismatch)
	}
	return nil
}

// validateResetPassword applies the stricter reset-confirm policy.
func validateResetPassword(newPassword, rePassword string) error {
	if !validPassword(newPassword, true) {
		return validationErr(MsgWeakResetPassword)
	}
	if newPassword != rePassword {
		return validationErr(MsgPasswordsMismatch)
	}
	return nil
}
