package main

import (
	"strings"
	"testing"
)

func TestFormGenerator_NextEmail(t *testing.T) {
	t.Run("AlwaysDuplicate", func(t *testing.T) {
		gen := &formGenerator{duplicateRate: 1}

		first := gen.nextEmail()
		for i := 0; i < 10; i++ {
			if got := gen.nextEmail(); got != first {
				t.Fatalf("nextEmail() = %q; want reuse of %q at rate 1", got, first)
			}
		}
	})

	t.Run("NeverDuplicate", func(t *testing.T) {
		gen := &formGenerator{duplicateRate: 0}

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			email := gen.nextEmail()
			if !strings.Contains(email, "@") {
				t.Fatalf("nextEmail() = %q; want an email address", email)
			}
			seen[email] = true
		}
		if len(seen) < 2 {
			t.Errorf("expected fresh emails at rate 0, got %d distinct from 10 draws", len(seen))
		}
	})
}

func TestFormGenerator_Next(t *testing.T) {
	gen := &formGenerator{}
	form := gen.next()

	for _, field := range []string{"fname", "lname", "email", "method", "size"} {
		if form.Get(field) == "" {
			t.Errorf("next() missing %q field", field)
		}
	}

	validMethod := map[string]bool{"pickup": true, "delivery": true}
	if !validMethod[form.Get("method")] {
		t.Errorf("next() method = %q; want pickup or delivery", form.Get("method"))
	}
}
