package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ShippedTables(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidate_BrokenTables(t *testing.T) {
	good := Provider{
		ID:      "acme",
		Name:    "Acme",
		Methods: []Method{MethodBank},
		FeeUSD: map[Method]FeeModel{
			MethodBank: {Fixed: 1, Pct: 0.01},
		},
		ETAHours: map[Method]ETARange{
			MethodBank: {MinHours: 1, MaxHours: 2},
		},
	}

	t.Run("bad: country references unknown provider", func(t *testing.T) {
		countries := []Country{{Code: "BR", Providers: []string{"ghost"}}}
		err := validate([]Provider{good}, countries)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("bad: method without fee model", func(t *testing.T) {
		p := good
		p.Methods = []Method{MethodBank, MethodCash}
		p.ETAHours = map[Method]ETARange{
			MethodBank: {MinHours: 1, MaxHours: 2},
			MethodCash: {MinHours: 0.1, MaxHours: 1},
		}
		err := validate([]Provider{p}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no fee model")
	})

	t.Run("bad: method without ETA range", func(t *testing.T) {
		p := good
		p.Methods = []Method{MethodBank, MethodCash}
		p.FeeUSD = map[Method]FeeModel{
			MethodBank: {Fixed: 1, Pct: 0.01},
			MethodCash: {Fixed: 2, Pct: 0.02},
		}
		err := validate([]Provider{p}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no ETA range")
	})

	t.Run("bad: inverted ETA range", func(t *testing.T) {
		p := good
		p.ETAHours = map[Method]ETARange{
			MethodBank: {MinHours: 5, MaxHours: 1},
		}
		err := validate([]Provider{p}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inverted")
	})

	t.Run("bad: unknown method", func(t *testing.T) {
		p := good
		p.Methods = []Method{Method("carrier_pigeon")}
		err := validate([]Provider{p}, nil)
		require.Error(t, err)
	})

	t.Run("bad: duplicate provider id", func(t *testing.T) {
		err := validate([]Provider{good, good}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("bad: duplicate country code", func(t *testing.T) {
		countries := []Country{{Code: "BR"}, {Code: "BR"}}
		err := validate([]Provider{good}, countries)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestLookups(t *testing.T) {
	t.Run("happy: provider by id", func(t *testing.T) {
		p, ok := ProviderByID("wise")
		require.True(t, ok)
		assert.Equal(t, "Wise", p.Name)
	})

	t.Run("happy: country by code", func(t *testing.T) {
		c, ok := CountryByCode("BR")
		require.True(t, ok)
		assert.Equal(t, "BRL", c.CurrencyCode)
	})

	t.Run("bad: unknown ids", func(t *testing.T) {
		_, ok := ProviderByID("ghost")
		assert.False(t, ok)
		_, ok = CountryByCode("ZZ")
		assert.False(t, ok)
	})
}

func TestMembership(t *testing.T) {
	wise, ok := ProviderByID("wise")
	require.True(t, ok)
	assert.True(t, wise.Supports(MethodBank))
	assert.True(t, wise.Supports(MethodDebit))
	assert.False(t, wise.Supports(MethodCash))

	ve, ok := CountryByCode("VE")
	require.True(t, ok)
	assert.True(t, ve.Serves("western_union"))
	assert.False(t, ve.Serves("wise"))
}

func TestMethodValid(t *testing.T) {
	assert.True(t, MethodBank.Valid())
	assert.True(t, MethodDebit.Valid())
	assert.True(t, MethodCash.Valid())
	assert.False(t, Method("wire").Valid())
	assert.False(t, Method("").Valid())
}
