package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/validation"
)

func TestIsHexID(t *testing.T) {
	assert.True(t, validation.IsHexID("0123456789abcdef01234567"))
	assert.True(t, validation.IsHexID("ABCDEFABCDEFABCDEFABCDEF"))

	assert.False(t, validation.IsHexID(""))
	assert.False(t, validation.IsHexID("0123456789abcdef0123456"))   // 23 chars
	assert.False(t, validation.IsHexID("0123456789abcdef012345678")) // 25 chars
	assert.False(t, validation.IsHexID("0123456789abcdef0123456g"))  // non-hex
}

func TestPersonName(t *testing.T) {
	assert.NoError(t, validation.PersonName("Ada Lovelace"))
	assert.NoError(t, validation.PersonName("Bob"))
	assert.NoError(t, validation.PersonName(strings.Repeat("a", 50)))

	assert.Error(t, validation.PersonName("Al"))
	assert.Error(t, validation.PersonName(strings.Repeat("a", 51)))
	assert.Error(t, validation.PersonName("Ada99"))
	assert.Error(t, validation.PersonName("Ada-Lovelace"))
	assert.Error(t, validation.PersonName(""))
}

func TestProductName(t *testing.T) {
	assert.NoError(t, validation.ProductName("Widget"))
	assert.NoError(t, validation.ProductName("O'Brien's Multi-Tool v2.0"))
	assert.NoError(t, validation.ProductName("USB-C Cable 1.5m"))

	assert.Error(t, validation.ProductName("Wi"))
	assert.Error(t, validation.ProductName(strings.Repeat("x", 51)))
	assert.Error(t, validation.ProductName("Widget@Home"))
	assert.Error(t, validation.ProductName("Widget_Pro"))
}

func TestCategory(t *testing.T) {
	assert.NoError(t, validation.Category("Tools"))
	assert.NoError(t, validation.Category("Home and Garden"))

	assert.Error(t, validation.Category("IT"))
	assert.Error(t, validation.Category("Tools2"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validation.Email("ada@x.com"))
	assert.NoError(t, validation.Email("first.last@sub.example.org"))

	assert.Error(t, validation.Email("ada@nodot"))
	assert.Error(t, validation.Email("ada.x.com"))
	assert.Error(t, validation.Email("ada@@x.com"))
	assert.Error(t, validation.Email("ada lovelace@x.com"))
	assert.Error(t, validation.Email(""))
}

func TestPhone(t *testing.T) {
	assert.NoError(t, validation.Phone("1234567890"))

	assert.Error(t, validation.Phone("123456789"))   // 9 digits
	assert.Error(t, validation.Phone("12345678901")) // 11 digits
	assert.Error(t, validation.Phone("12345abcde"))
	assert.Error(t, validation.Phone("123-456-7890"))
}

func TestNumericValidators(t *testing.T) {
	assert.NoError(t, validation.PositivePrice(0.01))
	assert.Error(t, validation.PositivePrice(0))
	assert.Error(t, validation.PositivePrice(-9.99))

	assert.NoError(t, validation.NonNegativeStock(0))
	assert.NoError(t, validation.NonNegativeStock(100))
	assert.Error(t, validation.NonNegativeStock(-1))

	assert.NoError(t, validation.PositiveQuantity(1))
	assert.Error(t, validation.PositiveQuantity(0))
	assert.Error(t, validation.PositiveQuantity(-3))
}

func TestValidatorMessages(t *testing.T) {
	// The error text is sent to API clients verbatim.
	assert.EqualError(t, validation.PersonName("x"), "Name must be between 3 and 50 characters.")
	assert.EqualError(t, validation.Email("bad"), "Invalid email format.")
	assert.EqualError(t, validation.Phone("bad"), "Phone number must be 10 digits.")
	assert.EqualError(t, validation.PositivePrice(0), "Price must be a positive number.")
	assert.EqualError(t, validation.NonNegativeStock(-1), "Stock must be a non-negative integer.")
	assert.EqualError(t, validation.PositiveQuantity(0), "Quantity must be a positive number.")
}
