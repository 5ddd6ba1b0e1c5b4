package validation

import (
	"fmt"
	"strings"

	"github.com/SouthBennett/pizza/internal/entity"
)

// Result is the verdict for a submitted order form. Every violation is
// collected; nothing short-circuits.
type Result struct {
	IsValid bool
	Errors  []string
}

var (
	validMethods = map[string]bool{
		"pickup":   true,
		"delivery": true,
	}

	validSizes = map[string]bool{
		"small":  true,
		"medium": true,
		"large":  true,
	}

	validToppings = map[string]bool{
		"pepperoni": true,
		"pineapple": true,
		"sausage":   true,
	}
)

// ValidateOrderForm inspects the raw submitted fields and returns the
// validity verdict plus the ordered list of human-readable messages.
// Pure and deterministic: no I/O, same input always yields the same
// result.
func ValidateOrderForm(form *entity.OrderForm) Result {
	var errs []string

	if strings.TrimSpace(form.FirstName) == "" {
		errs = append(errs, "First name is required")
	}

	if strings.TrimSpace(form.LastName) == "" {
		errs = append(errs, "Last name is required")
	}

	// Presence and an "@" are all that is checked; full address
	// validation is not attempted.
	if email := strings.TrimSpace(form.Email); email == "" || !strings.Contains(email, "@") {
		errs = append(errs, "Email is invalid")
	}

	if !validMethods[form.Method] {
		errs = append(errs, "Method is invalid")
	}

	if !validSizes[form.Size] {
		errs = append(errs, "Size is invalid")
	}

	for _, topping := range form.Toppings {
		if !validToppings[topping] {
			errs = append(errs, fmt.Sprintf("Topping %q is invalid", topping))
		}
	}

	return Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
