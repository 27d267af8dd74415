package types

import "fmt"

// MonthNumber is a calendar month within a budget's year.
type MonthNumber int

// Valid reports whether the month number is in the 1-12 range.
func (m MonthNumber) Valid() bool {
	return m >= 1 && m <= 12
}

// String returns the month number zero-padded to two digits.
func (m MonthNumber) String() string {
	return fmt.Sprintf("%02d", int(m))
}
