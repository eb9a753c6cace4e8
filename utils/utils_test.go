package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU(t *testing.T) {
	assert.Equal(t, "SEM-BER-001", GenerateSKU("Beras 5kg", "Sembako", 1))
	assert.Equal(t, "PRD-GUL-012", GenerateSKU("gula", "", 12))
	assert.Equal(t, "MIN-AI-001", GenerateSKU("ai", "minuman", 0))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "Rp 25.000", FormatRupiah(25000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "-Rp 5.000", FormatRupiah(-5000))
}

func TestParseRupiah(t *testing.T) {
	assert.Equal(t, int64(30000), ParseRupiah("Rp 30.000"))
	assert.Equal(t, int64(30000), ParseRupiah("30000"))
	assert.Equal(t, int64(0), ParseRupiah(""))
	assert.Equal(t, int64(0), ParseRupiah("abc"))
}

func TestParseRupiahStrict(t *testing.T) {
	n, err := ParseRupiahStrict("Rp 9.223.372.036.854.775.807")
	assert.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), n)

	_, err = ParseRupiahStrict("Rp 9.223.372.036.854.775.808")
	assert.ErrorIs(t, err, ErrNominalTerlaluBesar)
	assert.Equal(t, int64(0), ParseRupiah("Rp 9.223.372.036.854.775.808"))

	n, err = ParseRupiahStrict("")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
