package checkout

import (
	"fmt"
	"strings"

	"storefront/internal/geo"
	"storefront/internal/models"
)

const requiredMessage = "This field is required"

// FieldErrors maps billing field names to validation messages. Empty means
// the form may proceed to submission.
type FieldErrors map[string]string

type billingRule struct {
	field    string
	value    func(b models.BillingInfo) string
	validate func(v string) string
}

func requireNonEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return requiredMessage
	}
	return ""
}

// billingRules enumerates every billing field with its own validator.
// stateProvince is validated here like any other field but has no editor of
// its own: an unknown city leaves it empty and it fails the required rule.
var billingRules = []billingRule{
	{"fullName", func(b models.BillingInfo) string { return b.FullName }, requireNonEmpty},
	{"phoneNumber", func(b models.BillingInfo) string { return b.PhoneNumber }, requireNonEmpty},
	{"address", func(b models.BillingInfo) string { return b.Address }, requireNonEmpty},
	{"city", func(b models.BillingInfo) string { return b.City }, requireNonEmpty},
	{"stateProvince", func(b models.BillingInfo) string { return b.StateProvince }, requireNonEmpty},
	{"postalCode", func(b models.BillingInfo) string { return b.PostalCode }, requireNonEmpty},
	{"deliveryLabel", func(b models.BillingInfo) string { return b.DeliveryLabel }, requireNonEmpty},
}

// ValidateBilling runs every per-field validator and returns the collected
// errors, keyed by field name.
func ValidateBilling(b models.BillingInfo) FieldErrors {
	errs := FieldErrors{}
	for _, rule := range billingRules {
		if msg := rule.validate(rule.value(b)); msg != "" {
			errs[rule.field] = msg
		}
	}
	return errs
}

// applyBillingField writes one named field. city also rederives
// stateProvince (empty when the city is outside the coverage table), and
// stateProvince itself is not writable.
func applyBillingField(b *models.BillingInfo, field, value string) error {
	switch field {
	case "fullName":
		b.FullName = value
	case "phoneNumber":
		b.PhoneNumber = value
	case "address":
		b.Address = value
	case "city":
		b.City = value
		b.StateProvince, _ = geo.ProvinceFor(value)
	case "postalCode":
		b.PostalCode = value
	case "deliveryLabel":
		if value != models.DeliveryLabelHome && value != models.DeliveryLabelWork {
			return fmt.Errorf("deliveryLabel must be %q or %q", models.DeliveryLabelHome, models.DeliveryLabelWork)
		}
		b.DeliveryLabel = value
	case "stateProvince":
		return fmt.Errorf("stateProvince is derived from city and cannot be set")
	default:
		return fmt.Errorf("unknown billing field %q", field)
	}
	return nil
}
