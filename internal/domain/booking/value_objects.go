package booking

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 255 characters)")
	ErrInvalidEmail        = errors.New("customer email is invalid")
	ErrTermsNotAccepted    = errors.New("terms and safety policy must be accepted")
)

const MaxCustomerNameLength = 255

type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len(name) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return Customer{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Customer{}, ErrInvalidEmail
	}

	return Customer{name: name, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

// ValidateTerms enforces the checkout's terms-acceptance flag before any
// store call is made.
func ValidateTerms(accepted bool) error {
	if !accepted {
		return ErrTermsNotAccepted
	}
	return nil
}
