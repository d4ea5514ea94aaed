package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCarrier() *Carrier {
	return &Carrier{
		ID:    "abc123",
		Name:  "Alpine Logistics",
		Types: []TransportType{TransportTruck},
		Lanes: []Lane{{Origin: "FR", Destination: "DE"}},
	}
}

func TestValidateCarrier(t *testing.T) {
	t.Run("valid carrier", func(t *testing.T) {
		assert.NoError(t, ValidateCarrier(validCarrier()))
	})

	t.Run("nil carrier", func(t *testing.T) {
		err := ValidateCarrier(nil)
		assert.ErrorIs(t, err, ErrInvalidCarrier)
	})

	t.Run("empty id", func(t *testing.T) {
		c := validCarrier()
		c.ID = ""
		err := ValidateCarrier(c)
		assert.ErrorIs(t, err, ErrInvalidCarrier)
		assert.ErrorIs(t, err, ErrEmptyCarrierID)
	})

	t.Run("empty name", func(t *testing.T) {
		c := validCarrier()
		c.Name = ""
		err := ValidateCarrier(c)
		assert.ErrorIs(t, err, ErrEmptyCarrierName)
	})

	t.Run("no transport types", func(t *testing.T) {
		c := validCarrier()
		c.Types = nil
		err := ValidateCarrier(c)
		assert.ErrorIs(t, err, ErrNoTransportTypes)
	})

	t.Run("unknown transport type", func(t *testing.T) {
		c := validCarrier()
		c.Types = []TransportType{"zeppelin"}
		err := ValidateCarrier(c)
		assert.ErrorIs(t, err, ErrInvalidTransportType)
	})

	t.Run("bad lane", func(t *testing.T) {
		c := validCarrier()
		c.Lanes = []Lane{{Origin: "FRA", Destination: "DE"}}
		err := ValidateCarrier(c)
		assert.ErrorIs(t, err, ErrInvalidCountryCode)
	})

	t.Run("no lanes is valid", func(t *testing.T) {
		c := validCarrier()
		c.Lanes = nil
		assert.NoError(t, ValidateCarrier(c))
	})

	t.Run("rating bounds", func(t *testing.T) {
		c := validCarrier()
		good := 4.5
		c.Rating = &good
		assert.NoError(t, ValidateCarrier(c))

		bad := 5.1
		c.Rating = &bad
		assert.ErrorIs(t, ValidateCarrier(c), ErrInvalidRating)

		negative := -0.1
		c.Rating = &negative
		assert.ErrorIs(t, ValidateCarrier(c), ErrInvalidRating)
	})
}

func TestValidateLane(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateLane(Lane{Origin: "FR", Destination: "ES"}))
	})

	t.Run("lowercase origin", func(t *testing.T) {
		err := ValidateLane(Lane{Origin: "fr", Destination: "ES"})
		assert.ErrorIs(t, err, ErrInvalidCountryCode)
	})

	t.Run("empty destination", func(t *testing.T) {
		err := ValidateLane(Lane{Origin: "FR"})
		assert.ErrorIs(t, err, ErrInvalidCountryCode)
	})
}

func TestIsCountryCode(t *testing.T) {
	assert.True(t, IsCountryCode("FR"))
	assert.True(t, IsCountryCode("DE"))
	assert.False(t, IsCountryCode("F"))
	assert.False(t, IsCountryCode("FRA"))
	assert.False(t, IsCountryCode("fr"))
	assert.False(t, IsCountryCode("F1"))
	assert.False(t, IsCountryCode(""))
}
