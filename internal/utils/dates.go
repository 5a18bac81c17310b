package utils

import (
	"fmt"
	"time"
)

// FormatDateArabic renders a date as DD/MM/YYYY with Arabic-Indic digits.
func FormatDateArabic(t time.Time) string {
	return ToArabicNumerals(fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year()))
}

// FormatDateHijri renders a date in the Hijri calendar with Arabic-Indic
// digits. The conversion is an approximate proleptic julian-day algorithm,
// good enough for display but not for legal or religious use.
func FormatDateHijri(t time.Time) string {
	day, month, year := hijriFromTime(t)
	return ToArabicNumerals(fmt.Sprintf("%d/%d/%d", day, month, year))
}

func hijriFromTime(t time.Time) (day, month, year int) {
	// Julian day number of the date in its own time zone. 2440588 is the JDN
	// of 1970-01-01.
	_, offset := t.Zone()
	jd := (t.Unix()+int64(offset))/86400 + 2440588

	// Tabular Islamic calendar, civil epoch (1 Muharram 1 AH = JDN 1948440).
	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	month = int((24 * l) / 709)
	day = int(l - (709*int64(month))/24)
	year = int(30*n + j - 30)
	return day, month, year
}
