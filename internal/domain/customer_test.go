package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		got, err := SanitizeEmail("  Jane.Doe@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", got)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := SanitizeEmail("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email is required")
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"not-an-email", "missing@tld@twice", "@example.com"} {
			_, err := SanitizeEmail(input)
			assert.Error(t, err, input)
		}
	})

	t.Run("rejects overlong addresses", func(t *testing.T) {
		_, err := SanitizeEmail(strings.Repeat("a", 250) + "@example.com")
		require.Error(t, err)
	})
}

func TestUpsertCustomerRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		first := "Jane"
		age := 34
		req := &UpsertCustomerRequest{
			Email:     "Jane@Example.com",
			FirstName: &first,
			Age:       &age,
		}

		customer, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", customer.Email)
		assert.Equal(t, &first, customer.FirstName)
		assert.Equal(t, &age, customer.Age)
	})

	t.Run("invalid email", func(t *testing.T) {
		req := &UpsertCustomerRequest{Email: "nope"}
		_, err := req.Validate()
		require.Error(t, err)
	})

	t.Run("age out of range", func(t *testing.T) {
		for _, age := range []int{-1, 151} {
			a := age
			req := &UpsertCustomerRequest{Email: "jane@example.com", Age: &a}
			_, err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "age")
		}
	})
}
