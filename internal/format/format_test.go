package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
	}{
		{
			name:   "full mobile number",
			digits: "27999990000",
			want:   "(27) 99999-0000",
		},
		{
			name:   "another area code",
			digits: "11988887777",
			want:   "(11) 98888-7777",
		},
		{
			name:   "short input keeps going without panicking",
			digits: "2799",
			want:   "(27) 99-",
		},
		{
			name:   "empty input",
			digits: "",
			want:   "() -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.digits))
		})
	}
}

func TestTaxpayerID(t *testing.T) {
	assert.Equal(t, "111.222.333-44", TaxpayerID("11122233344"))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount float64
	}{
		{name: "zero", amount: 0, want: "R$ 0,00"},
		{name: "cents", amount: 0.01, want: "R$ 0,01"},
		{name: "thousands grouped", amount: 1234.56, want: "R$ 1.234,56"},
		{name: "millions grouped", amount: 1234567.89, want: "R$ 1.234.567,89"},
		{name: "negative", amount: -12.5, want: "-R$ 12,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "25/12/2021", Date("2021-12-25"))
	assert.Equal(t, "not-a-date", Date("not-a-date"))
}

func TestParseDisplayDate(t *testing.T) {
	got, err := ParseDisplayDate("25/12/2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDisplayDate("2021-12-25")
	require.Error(t, err)
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11122233344", OnlyDigits("111.222.333-44"))
	assert.Equal(t, "27999990000", OnlyDigits("(27) 99999-0000"))
	assert.Equal(t, "", OnlyDigits("abc"))
}
