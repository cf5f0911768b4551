package checkout

import (
	"regexp"
	"strings"

	"github.com/Lilianobi/audiophile/internal/domain"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// fieldOrder is the validation (and focus) order of the checkout form.
// The two e-money fields are appended only for the e-money payment method.
var fieldOrder = []string{"name", "email", "phone", "address", "zipCode", "city", "country"}

// ValidateField returns the error message for one field, or "" when valid.
func ValidateField(form domain.CheckoutForm, field string) string {
	switch field {
	case "name":
		v := strings.TrimSpace(form.Name)
		if v == "" {
			return "Name is required"
		}
		if len(v) < 2 {
			return "Name must be at least 2 characters"
		}
	case "email":
		if strings.TrimSpace(form.Email) == "" {
			return "Email is required"
		}
		if !emailRe.MatchString(form.Email) {
			return "Wrong format"
		}
	case "phone":
		if strings.TrimSpace(form.Phone) == "" {
			return "Phone is required"
		}
		if !phoneRe.MatchString(form.Phone) {
			return "Wrong format"
		}
		if len(digits(form.Phone)) < 10 {
			return "Phone must be at least 10 digits"
		}
	case "address":
		v := strings.TrimSpace(form.Address)
		if v == "" {
			return "Address is required"
		}
		if len(v) < 5 {
			return "Address must be at least 5 characters"
		}
	case "zipCode":
		v := strings.TrimSpace(form.ZipCode)
		if v == "" {
			return "ZIP Code is required"
		}
		if len(v) < 3 {
			return "Wrong format"
		}
	case "city":
		if strings.TrimSpace(form.City) == "" {
			return "City is required"
		}
	case "country":
		if strings.TrimSpace(form.Country) == "" {
			return "Country is required"
		}
	case "eMoneyNumber":
		if form.PaymentMethod != domain.PaymentEMoney {
			return ""
		}
		if strings.TrimSpace(form.EMoneyNumber) == "" {
			return "e-Money Number is required"
		}
		if len(digits(form.EMoneyNumber)) < 9 {
			return "Must be at least 9 digits"
		}
	case "eMoneyPin":
		if form.PaymentMethod != domain.PaymentEMoney {
			return ""
		}
		if strings.TrimSpace(form.EMoneyPin) == "" {
			return "e-Money PIN is required"
		}
		if len(digits(form.EMoneyPin)) < 4 {
			return "Must be at least 4 digits"
		}
	}
	return ""
}

// Validate checks the whole form. It returns the per-field error messages
// and the first failing field in form order, which the client gives focus.
// An empty map means the form may be submitted.
func Validate(form domain.CheckoutForm) (map[string]string, string) {
	fields := fieldOrder
	if form.PaymentMethod == domain.PaymentEMoney {
		fields = append(append([]string{}, fieldOrder...), "eMoneyNumber", "eMoneyPin")
	}

	errs := make(map[string]string)
	first := ""
	for _, field := range fields {
		if msg := ValidateField(form, field); msg != "" {
			errs[field] = msg
			if first == "" {
				first = field
			}
		}
	}

	return errs, first
}

func digits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}
