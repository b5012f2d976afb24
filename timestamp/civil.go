package timestamp

// The conversions below are the days_from_civil / civil_from_days algorithms of the
// proleptic Gregorian calendar, shifted so that eras start on March 1st. They use
// floor division throughout and are exact for every day before and after 1970.

const (
	daysPerEra     = 146_097
	daysToEpoch    = 719_468 // 0000-03-01 to 1970-01-01
	secondsPerDay  = 86_400
	secondsPerHour = 3_600
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// DaysFromCivil returns the number of days from 1970-01-01 to y-m-d.
//
// Parameters:
//   - y: Proleptic Gregorian year
//   - m: Month, 1..12
//   - d: Day of month, 1..31
//
// Returns:
//   - int64: Epoch day, negative before 1970
func DaysFromCivil(y, m, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := floorDiv(yy, 400)
	yoe := yy - era*400

	mp := int64(m) + 9
	if m > 2 {
		mp = int64(m) - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*daysPerEra + doe - daysToEpoch
}

// CivilFromDays returns the calendar date of an epoch day. Day 0 is 1970-01-01.
func CivilFromDays(days int64) (y, m, d int) {
	z := days + daysToEpoch
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1_460 + doe/36_524 - doe/146_096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	d = int(doy - (153*mp+2)/5 + 1)
	m = int(mp + 3)
	if mp >= 10 {
		m = int(mp - 9)
	}
	y = int(yoe + era*400)
	if m <= 2 {
		y++
	}

	return y, m, d
}

// split returns the epoch day of sec and the second within that day.
func split(sec int64) (day int64, sod int64) {
	day = floorDiv(sec, secondsPerDay)

	return day, sec - day*secondsPerDay
}
