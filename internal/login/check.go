// Package login gives field-by-field feedback on the login and sign-up
// forms. It only judges what the user typed; nothing is authenticated here.
package login

import "unicode/utf8"

const (
	// MinAccountLength is the shortest accepted account name.
	MinAccountLength = 4
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
)

// AccountStatus is the verdict on an account name.
type AccountStatus int

const (
	AccountOK AccountStatus = iota
	AccountTooShort
	AccountBlank
)

var accountMessages = [...]string{
	AccountOK:       "Ok",
	AccountTooShort: "Not enough characters",
	AccountBlank:    "Blank character",
}

func (s AccountStatus) String() string {
	return accountMessages[s]
}

// OK reports whether the account name can be submitted.
func (s AccountStatus) OK() bool { return s == AccountOK }

// PasswordStatus is the verdict on a password.
type PasswordStatus int

const (
	PasswordStrong PasswordStatus = iota
	PasswordTooShort
	PasswordBlank
	PasswordWeak
)

var passwordMessages = [...]string{
	PasswordStrong:   "Strong password",
	PasswordTooShort: "Not enough characters",
	PasswordBlank:    "Blank character",
	PasswordWeak:     "Weak Password",
}

func (s PasswordStatus) String() string {
	return passwordMessages[s]
}

// OK reports whether the password can be submitted.
func (s PasswordStatus) OK() bool { return s == PasswordStrong }

// RepeatStatus is the verdict on a password confirmation.
type RepeatStatus int

const (
	RepeatMatch RepeatStatus = iota
	RepeatMismatch
)

func (s RepeatStatus) String() string {
	if s == RepeatMatch {
		return "Ok"
	}
	return "Passwords do not match"
}

// OK reports whether the confirmation matches.
func (s RepeatStatus) OK() bool { return s == RepeatMatch }

// CheckAccount rejects names containing a space, then names shorter than
// MinAccountLength.
func CheckAccount(v string) AccountStatus {
	for _, r := range v {
		if r == ' ' {
			return AccountBlank
		}
	}
	if utf8.RuneCountInString(v) < MinAccountLength {
		return AccountTooShort
	}
	return AccountOK
}

// CheckPassword rates a password. It must be at least MinPasswordLength
// long, contain no space, and mix characters below 'A' (digits and most
// punctuation) with characters from 'A' up.
func CheckPassword(v string) PasswordStatus {
	if utf8.RuneCountInString(v) < MinPasswordLength {
		return PasswordTooShort
	}
	var low, high int
	for _, r := range v {
		switch {
		case r == ' ':
			return PasswordBlank
		case r < 'A':
			low++
		default:
			high++
		}
	}
	if low > 0 && high > 0 {
		return PasswordStrong
	}
	return PasswordWeak
}

// CheckRepeat compares a password with its confirmation.
func CheckRepeat(password, repeat string) RepeatStatus {
	if password != repeat {
		return RepeatMismatch
	}
	return RepeatMatch
}
