package entity

import (
	"strings"
	"time"
)

// Order is a single customer submission: identity, fulfillment
// preference, size, toppings and timestamp. Once stored it is never
// updated or deleted.
type Order struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Email     string    `json:"email"`
	Method    string    `json:"method"`
	Size      string    `json:"size"`
	Toppings  string    `json:"toppings"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// OrderForm is the raw submission as it arrives from the form body.
// Checkbox toppings keep their submission order; a single selected
// topping is a one-element slice.
type OrderForm struct {
	FirstName string
	LastName  string
	Email     string
	Method    string
	Size      string
	Toppings  []string
	Comment   string
}

// Normalize converts the raw form into a canonical Order: toppings are
// joined with ", " preserving order (empty string when none were
// selected) and CreatedAt is stamped with the current time. All other
// fields are carried over exactly as submitted; trimming is a
// validation concern only.
func (f *OrderForm) Normalize() *Order {
	return &Order{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Method:    f.Method,
		Size:      f.Size,
		Toppings:  strings.Join(f.Toppings, ", "),
		Comment:   f.Comment,
		CreatedAt: time.Now(),
	}
}
