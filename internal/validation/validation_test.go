package validation_test

import (
	"testing"

	"github.com/SouthBennett/pizza/internal/entity"
	"github.com/SouthBennett/pizza/internal/validation"
)

func validForm() *entity.OrderForm {
	return &entity.OrderForm{
		FirstName: "Al",
		LastName:  "Pacino",
		Email:     "al@x.com",
		Method:    "pickup",
		Size:      "medium",
		Toppings:  []string{"pepperoni", "sausage"},
	}
}

func TestValidateOrderForm(t *testing.T) {
	testCases := []struct {
		desc     string
		mutate   func(*entity.OrderForm)
		expected []string
	}{
		{
			desc:     "ValidForm",
			mutate:   func(*entity.OrderForm) {},
			expected: nil,
		},
		{
			desc:     "MissingFirstName",
			mutate:   func(f *entity.OrderForm) { f.FirstName = "" },
			expected: []string{"First name is required"},
		},
		{
			desc:     "BlankFirstNameAfterTrim",
			mutate:   func(f *entity.OrderForm) { f.FirstName = "   " },
			expected: []string{"First name is required"},
		},
		{
			desc:     "MissingLastName",
			mutate:   func(f *entity.OrderForm) { f.LastName = "" },
			expected: []string{"Last name is required"},
		},
		{
			desc:     "EmailWithoutAtSign",
			mutate:   func(f *entity.OrderForm) { f.Email = "al.example.com" },
			expected: []string{"Email is invalid"},
		},
		{
			desc:     "MissingEmail",
			mutate:   func(f *entity.OrderForm) { f.Email = "" },
			expected: []string{"Email is invalid"},
		},
		{
			desc:     "InvalidMethodOnly",
			mutate:   func(f *entity.OrderForm) { f.Method = "carrier-pigeon" },
			expected: []string{"Method is invalid"},
		},
		{
			desc:     "EmptyMethod",
			mutate:   func(f *entity.OrderForm) { f.Method = "" },
			expected: []string{"Method is invalid"},
		},
		{
			desc:     "InvalidSize",
			mutate:   func(f *entity.OrderForm) { f.Size = "colossal" },
			expected: []string{"Size is invalid"},
		},
		{
			desc:     "SingleScalarToppingIsValid",
			mutate:   func(f *entity.OrderForm) { f.Toppings = []string{"pineapple"} },
			expected: nil,
		},
		{
			desc:     "NoToppingsIsValid",
			mutate:   func(f *entity.OrderForm) { f.Toppings = nil },
			expected: nil,
		},
		{
			desc:   "OneErrorPerInvalidTopping",
			mutate: func(f *entity.OrderForm) { f.Toppings = []string{"anchovies", "pepperoni", "olives"} },
			expected: []string{
				`Topping "anchovies" is invalid`,
				`Topping "olives" is invalid`,
			},
		},
		{
			desc: "AllViolationsCollected",
			mutate: func(f *entity.OrderForm) {
				f.FirstName = " "
				f.LastName = ""
				f.Email = "nope"
				f.Method = "fax"
				f.Size = "xl"
				f.Toppings = []string{"gravel"}
			},
			expected: []string{
				"First name is required",
				"Last name is required",
				"Email is invalid",
				"Method is invalid",
				"Size is invalid",
				`Topping "gravel" is invalid`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tc.mutate(form)

			result := validation.ValidateOrderForm(form)

			wantValid := len(tc.expected) == 0
			if result.IsValid != wantValid {
				t.Errorf("IsValid = %v; want %v (errors: %v)", result.IsValid, wantValid, result.Errors)
			}

			if len(result.Errors) != len(tc.expected) {
				t.Fatalf("Errors = %v; want %v", result.Errors, tc.expected)
			}
			for i, msg := range tc.expected {
				if result.Errors[i] != msg {
					t.Errorf("Errors[%d] = %q; want %q", i, result.Errors[i], msg)
				}
			}
		})
	}
}

func TestValidateOrderForm_Deterministic(t *testing.T) {
	form := validForm()
	form.Method = "fax"
	form.Toppings = []string{"gravel", "pepperoni"}

	first := validation.ValidateOrderForm(form)
	second := validation.ValidateOrderForm(form)

	if len(first.Errors) != len(second.Errors) {
		t.Fatalf("error count changed between runs: %v vs %v", first.Errors, second.Errors)
	}
	for i := range first.Errors {
		if first.Errors[i] != second.Errors[i] {
			t.Errorf("Errors[%d] differs: %q vs %q", i, first.Errors[i], second.Errors[i])
		}
	}
}
