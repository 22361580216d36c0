package services

import (
	"fmt"
	"time"
)

// dateLayout is the ISO 8601 calendar date used in datetime attributes and
// the sitemap
const dateLayout = "2006-01-02"

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate formats a date the Brazilian way, "28 de outubro de 2024"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// ISODate formats a date as YYYY-MM-DD, or "" for the zero time
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
