package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,234.50 €", FormatMoney(1234.5, "€"))
	assert.Equal(t, "-700.00 €", FormatMoney(-700, "€"))
	assert.Equal(t, "0.00 $", FormatMoney(0, "$"))
	assert.Equal(t, "2,300.00", FormatMoney(2300, ""))
}

func TestFormatSignedMoney(t *testing.T) {
	assert.Equal(t, "+2,000.00 €", FormatSignedMoney(2000, "€"))
	assert.Equal(t, "-500.00 €", FormatSignedMoney(-500, "€"))
	assert.Equal(t, "0.00 €", FormatSignedMoney(0, "€"))
}

func TestFormatRunway(t *testing.T) {
	assert.Equal(t, "n/a", FormatRunway(nil))
	days := 42
	assert.Equal(t, "42d", FormatRunway(&days))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "2024-01", FormatMonth(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRenderSparklineHandlesNegatives(t *testing.T) {
	s := RenderSparkline([]float64{-100, 0, 100})
	assert.Equal(t, 3, len([]rune(s)))
	assert.Equal(t, '▁', []rune(s)[0])
	assert.Equal(t, '█', []rune(s)[2])
}

func TestRenderSparklineFlatSeries(t *testing.T) {
	s := RenderSparkline([]float64{5, 5, 5})
	assert.Equal(t, "▁▁▁", s)
}
