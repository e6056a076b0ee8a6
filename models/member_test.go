package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zambiatennis/ztaweb/pkg"
)

func TestRegistrationRequestValidate(t *testing.T) {
	t.Run("requires name", func(t *testing.T) {
		req := &RegistrationRequest{Name: "   ", Email: "jane@example.com"}
		m, err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, pkg.ErrValidation)
		assert.Nil(t, m)
	})

	t.Run("requires email", func(t *testing.T) {
		req := &RegistrationRequest{Name: "Jane Doe", Email: ""}
		m, err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, pkg.ErrValidation)
		assert.Nil(t, m)
	})

	t.Run("rejects non-numeric age", func(t *testing.T) {
		req := &RegistrationRequest{Name: "Jane Doe", Email: "jane@example.com", Age: "abc"}
		m, err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, pkg.ErrValidation)
		assert.Nil(t, m)
	})

	t.Run("accepts minimal request", func(t *testing.T) {
		req := &RegistrationRequest{Name: "Jane Doe", Email: "jane@example.com"}
		m, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", m.Name)
		assert.Equal(t, "jane@example.com", m.Email)
		assert.Nil(t, m.Phone)
		assert.Nil(t, m.Category)
		assert.Nil(t, m.Address)
		assert.Nil(t, m.Age)
	})

	t.Run("trims and parses all fields", func(t *testing.T) {
		req := &RegistrationRequest{
			Name:     "  Jane Doe  ",
			Email:    " jane@example.com ",
			Phone:    " 0977123456 ",
			Category: "senior",
			Address:  "Lusaka",
			Age:      "30",
		}
		m, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", m.Name)
		assert.Equal(t, "jane@example.com", m.Email)
		require.NotNil(t, m.Phone)
		assert.Equal(t, "0977123456", *m.Phone)
		require.NotNil(t, m.Age)
		assert.Equal(t, 30, *m.Age)
	})

	t.Run("validation message is user readable", func(t *testing.T) {
		req := &RegistrationRequest{}
		_, err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Name and email are required.", err.Error())
	})
}
