package helpers

import "fmt"

// Ordinal returns the English ordinal form of n (1st, 2nd, 3rd, 4th, …).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
		// teens always take "th"
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// YearLabel returns the display label for an academic year, e.g. "2nd Year".
func YearLabel(year int) string {
	return Ordinal(year) + " Year"
}
