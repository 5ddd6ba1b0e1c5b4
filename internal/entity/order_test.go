package entity_test

import (
	"testing"
	"time"

	"github.com/SouthBennett/pizza/internal/entity"
)

func TestOrderForm_Normalize_Toppings(t *testing.T) {
	testCases := []struct {
		desc     string
		toppings []string
		expected string
	}{
		{
			desc:     "TwoToppings",
			toppings: []string{"pepperoni", "sausage"},
			expected: "pepperoni, sausage",
		},
		{
			desc:     "SingleTopping",
			toppings: []string{"pineapple"},
			expected: "pineapple",
		},
		{
			desc:     "NoToppings",
			toppings: nil,
			expected: "",
		},
		{
			desc:     "OrderPreserved",
			toppings: []string{"sausage", "pepperoni", "pineapple"},
			expected: "sausage, pepperoni, pineapple",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			form := &entity.OrderForm{
				FirstName: "Al",
				LastName:  "Pacino",
				Email:     "al@x.com",
				Method:    "pickup",
				Size:      "medium",
				Toppings:  tc.toppings,
			}

			order := form.Normalize()
			if order.Toppings != tc.expected {
				t.Errorf("Toppings = %q; want %q", order.Toppings, tc.expected)
			}
		})
	}
}

func TestOrderForm_Normalize_PassThrough(t *testing.T) {
	// Trimming is only used for validation decisions; the normalizer
	// must carry fields over exactly as submitted.
	form := &entity.OrderForm{
		FirstName: "  Al ",
		LastName:  "Pacino",
		Email:     "al@x.com",
		Method:    "delivery",
		Size:      "large",
		Comment:   "ring the bell",
	}

	order := form.Normalize()

	if order.FirstName != "  Al " {
		t.Errorf("FirstName = %q; want %q", order.FirstName, "  Al ")
	}
	if order.LastName != form.LastName ||
		order.Email != form.Email ||
		order.Method != form.Method ||
		order.Size != form.Size ||
		order.Comment != form.Comment {
		t.Errorf("normalized order mutated pass-through fields: %+v", order)
	}
	if order.ID != 0 {
		t.Errorf("ID = %d; want 0 before persistence", order.ID)
	}
}

func TestOrderForm_Normalize_StampsCreatedAt(t *testing.T) {
	before := time.Now()
	order := (&entity.OrderForm{}).Normalize()
	after := time.Now()

	if order.CreatedAt.Before(before) || order.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v; want between %v and %v", order.CreatedAt, before, after)
	}
}
