package normalize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{"", 0},
		{"abc", 0},
		{"--", 0},
		{"12", 12},
		{" 7 ", 7},
		{"-3", -3},
		{"$1.5", 1.5},
		{"10 unidades", 10},
		{4, 4},
		{int32(9), 9},
		{int64(-2), -2},
		{2.25, 2.25},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{map[string]any{"n": 1}, 0},
		{[]any{1, 2}, 0},
		{true, 0},
	}
	for _, c := range cases {
		got := normalize.CoerceNumber(c.in)
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "%#v debe dar un número finito", c.in)
		assert.Equal(t, c.want, got, "%#v", c.in)
	}
}

func TestStrictNumber(t *testing.T) {
	v, ok := normalize.StrictNumber("5")
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, ok = normalize.StrictNumber(nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	v, ok = normalize.StrictNumber("  ")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	v, ok = normalize.StrictNumber(3)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = normalize.StrictNumber("abc")
	assert.False(t, ok, "texto no numérico")

	_, ok = normalize.StrictNumber("5 kg")
	assert.False(t, ok, "no se limpia el texto")

	_, ok = normalize.StrictNumber(map[string]any{})
	assert.False(t, ok)
}

func TestCleanPrizeNameYCafeCombo(t *testing.T) {
	assert.Equal(t, "Café con leche", normalize.CleanPrizeName("(1062) Café con leche"))
	assert.Equal(t, "Mate", normalize.CleanPrizeName("  (12)Mate  "))
	assert.Equal(t, "Sin código", normalize.CleanPrizeName("Sin código"))
	assert.Equal(t, "", normalize.CleanPrizeName(""))

	assert.True(t, normalize.IsCafeCombo("(1062) Café con leche"))
	assert.True(t, normalize.IsCafeCombo("  (1064) Combo"))
	assert.True(t, normalize.IsCafeCombo("(1063)"))
	assert.False(t, normalize.IsCafeCombo("(9999) Otra cosa"))
	assert.False(t, normalize.IsCafeCombo("Combo (1062)"))
	assert.False(t, normalize.IsCafeCombo(""))
}

func TestEntityToDeposit(t *testing.T) {
	cases := map[any]string{
		"Monteverde Centro": entity.DepositMonteverde,
		"BETTICA":           entity.DepositBettica,
		"tobago 1":          entity.DepositTobago1,
		"Sucursal Norte":    "Sucursal Norte",
		"":                  entity.Placeholder,
		"   ":               entity.Placeholder,
	}
	for in, want := range cases {
		assert.Equal(t, want, normalize.EntityToDeposit(in), "%#v", in)
	}
	assert.Equal(t, entity.Placeholder, normalize.EntityToDeposit(nil))
}

func TestParseActive(t *testing.T) {
	assert.True(t, normalize.ParseActive(nil))
	assert.True(t, normalize.ParseActive(""))
	assert.True(t, normalize.ParseActive("Active"))
	assert.True(t, normalize.ParseActive("pendiente"))
	assert.False(t, normalize.ParseActive("Inactive"))
	assert.False(t, normalize.ParseActive("INACTIVE"))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", normalize.Text(nil))
	assert.Equal(t, "hola", normalize.Text("  hola "))
	assert.Equal(t, "12.5", normalize.Text(12.5))
	assert.Equal(t, "7", normalize.Text(int64(7)))
	assert.Equal(t, "", normalize.Text(map[string]any{"a": 1}))
	assert.Equal(t, "", normalize.Text(entity.Document{"a": 1}))
	assert.Equal(t, "", normalize.Text([]any{"a"}))
}

func TestCatalogKey_IgnoraTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "CAFE PREMIUM", normalize.CatalogKey("  Café Premium "))
	assert.Equal(t, normalize.CatalogKey("CAFÉ + ALFAJOR"), normalize.CatalogKey("cafe + alfajor"))
}
