package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "small positive amount",
			amount:   506.69,
			expected: "$506.69",
		},
		{
			name:     "thousands separator",
			amount:   1234.56,
			expected: "$1,234.56",
		},
		{
			name:     "millions",
			amount:   1234567.89,
			expected: "$1,234,567.89",
		},
		{
			name:     "negative amount keeps sign before symbol",
			amount:   -1234.56,
			expected: "-$1,234.56",
		},
		{
			name:     "zero",
			amount:   0,
			expected: "$0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "positive amount",
			amount:   99868.31,
			expected: "99,868.31",
		},
		{
			name:     "negative amount",
			amount:   -1234.56,
			expected: "-1,234.56",
		},
		{
			name:     "no separator below one thousand",
			amount:   999.99,
			expected: "999.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumericCurrency(tt.amount)
			if result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{
			name:     "typical tax rate",
			rate:     0.20,
			expected: "20.00%",
		},
		{
			name:     "fractional percentage",
			rate:     0.045,
			expected: "4.50%",
		},
		{
			name:     "full rate",
			rate:     1.0,
			expected: "100.00%",
		},
		{
			name:     "zero",
			rate:     0,
			expected: "0.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.rate)
			if result != tt.expected {
				t.Errorf("Percent(%v) = %s, expected %s", tt.rate, result, tt.expected)
			}
		})
	}
}
