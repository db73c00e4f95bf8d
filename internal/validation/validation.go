// Package validation holds the pure field validators the services run before
// touching the store. Each validator returns nil on success or an error whose
// message is suitable for the API response as-is.
package validation

import (
	"errors"
	"regexp"
)

var (
	hexIDRe       = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	personNameRe  = regexp.MustCompile(`^[A-Za-z\s]{3,50}$`)
	productNameRe = regexp.MustCompile(`^[A-Za-z0-9\s\-'.]{3,50}$`)
	categoryRe    = regexp.MustCompile(`^[A-Za-z\s]{3,50}$`)
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe       = regexp.MustCompile(`^\d{10}$`)
)

// IsHexID reports whether s is a 24-character hexadecimal identifier.
func IsHexID(s string) bool {
	return hexIDRe.MatchString(s)
}

// PersonName checks a user's name: 3-50 characters, letters and spaces only.
func PersonName(s string) error {
	if !personNameRe.MatchString(s) {
		return errors.New("Name must be between 3 and 50 characters.")
	}
	return nil
}

// ProductName checks a product name: 3-50 characters, alphanumeric plus
// space, hyphen, apostrophe and period.
func ProductName(s string) error {
	if !productNameRe.MatchString(s) {
		return errors.New("Product name must be between 3 and 50 characters and can include special characters.")
	}
	return nil
}

// Category checks a product category: 3-50 characters, letters and spaces.
func Category(s string) error {
	if !categoryRe.MatchString(s) {
		return errors.New("Category must be between 3 and 50 characters.")
	}
	return nil
}

// Email checks for a single "@" separating non-whitespace local and domain
// parts, with a "." somewhere in the domain.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return errors.New("Invalid email format.")
	}
	return nil
}

// Phone checks for exactly 10 decimal digits.
func Phone(s string) error {
	if !phoneRe.MatchString(s) {
		return errors.New("Phone number must be 10 digits.")
	}
	return nil
}

// PositivePrice checks that a price is strictly positive.
func PositivePrice(f float64) error {
	if f <= 0 {
		return errors.New("Price must be a positive number.")
	}
	return nil
}

// NonNegativeStock checks that a stock count is zero or more.
func NonNegativeStock(n int) error {
	if n < 0 {
		return errors.New("Stock must be a non-negative integer.")
	}
	return nil
}

// PositiveQuantity checks that an order quantity is strictly positive.
func PositiveQuantity(n int) error {
	if n <= 0 {
		return errors.New("Quantity must be a positive number.")
	}
	return nil
}
