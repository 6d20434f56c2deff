// Package format holds display formatting helpers shared by the TUI and CLI.
package format

import (
	"fmt"
	"strings"
	"time"
)

const (
	// APIDate is the calendar date layout used on the wire.
	APIDate = "2006-01-02"
	// DisplayDate is the calendar date layout shown to the user.
	DisplayDate = "02/01/2006"
)

// Phone renders an 11-digit phone number as "(27) 99999-0000":
// two area-code digits, five digits, four digits.
func Phone(digits string) string {
	area := sliceDigits(digits, 0, 2)
	first := sliceDigits(digits, 2, 7)
	last := sliceDigits(digits, 7, 11)

	return fmt.Sprintf("(%s) %s-%s", area, first, last)
}

// TaxpayerID renders an 11-digit taxpayer id as "111.222.333-44".
func TaxpayerID(digits string) string {
	return fmt.Sprintf("%s.%s.%s-%s",
		sliceDigits(digits, 0, 3),
		sliceDigits(digits, 3, 6),
		sliceDigits(digits, 6, 9),
		sliceDigits(digits, 9, 11))
}

// Money renders an amount in the platform currency, e.g. "R$ 1.234,56".
func Money(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	var groups []string
	for {
		if whole < 1000 {
			groups = append([]string{fmt.Sprintf("%d", whole)}, groups...)
			break
		}
		groups = append([]string{fmt.Sprintf("%03d", whole%1000)}, groups...)
		whole /= 1000
	}

	s := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), frac)
	if negative {
		return "-" + s
	}
	return s
}

// Date converts an API calendar date (YYYY-MM-DD) into the display layout.
// Values that do not parse are returned unchanged.
func Date(apiDate string) string {
	t, err := time.Parse(APIDate, apiDate)
	if err != nil {
		return apiDate
	}
	return t.Format(DisplayDate)
}

// ParseDisplayDate converts a display date (DD/MM/YYYY) back to a time.Time.
func ParseDisplayDate(value string) (time.Time, error) {
	return time.Parse(DisplayDate, value)
}

// OnlyDigits strips every non-digit rune, undoing input masks before submit.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sliceDigits(s string, start, end int) string {
	if start > len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
