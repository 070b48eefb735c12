package rtc

import "fmt"

// Afternoon flag in the hour register.
const hourPM = 0x80

// DateTime holds the clock registers. Year counts from 2000. Weekday is the
// chip's own day counter and not derived from the date, see WeekdayOffset.
type DateTime struct {
	Year, Month, Day int
	Weekday          int
	Hour             int // 0-23
	Minute, Second   int
	Afternoon        bool
}

var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// Weekday returns the day of week of a Gregorian date, 0 being Sunday.
// Months outside 1-12 wrap around instead of being rejected.
func Weekday(year, month, day int) int {
	if month < 3 {
		year--
	}
	m := ((month-1)%12 + 12) % 12
	w := (year + year/4 - year/100 + year/400 + monthOffsets[m] + day) % 7
	return (w + 7) % 7
}

// CalendarWeekday is the weekday the calendar assigns to dt's date.
func (dt DateTime) CalendarWeekday() int {
	return Weekday(2000+dt.Year, dt.Month, dt.Day)
}

// WeekdayOffset is the difference between the chip's day counter and the
// calendar.
func (dt DateTime) WeekdayOffset() int {
	return dt.Weekday - dt.CalendarWeekday()
}

// WithWeekdayOffset returns dt with Weekday set to the calendar weekday moved
// by off. Applying the offset captured before an edit keeps the chip's day
// counter convention intact.
func (dt DateTime) WithWeekdayOffset(off int) DateTime {
	dt.Weekday = (dt.CalendarWeekday() + off + 7) % 7
	return dt
}

// Encode returns the seven BCD registers in transfer order. In 12 hour mode
// the hour is reduced to 0-11 and the afternoon flag set in bit 7.
func (dt DateTime) Encode(h24 bool) [7]byte {
	hour := ToBCD(dt.Hour)
	if !h24 {
		hour = ToBCD(dt.Hour % 12)
		if dt.Afternoon {
			hour |= hourPM
		}
	}
	return [7]byte{
		ToBCD(dt.Year),
		ToBCD(dt.Month),
		ToBCD(dt.Day),
		ToBCD(dt.Weekday),
		hour,
		ToBCD(dt.Minute),
		ToBCD(dt.Second),
	}
}

// Decode parses the seven BCD registers. It returns false if the data can't
// come from a working chip: all bits equal or digits out of range.
func Decode(raw [7]byte) (dt DateTime, ok bool) {
	if raw == [7]byte{} || raw == [7]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff} {
		return dt, false
	}
	hour := raw[4]
	raw[4] &^= hourPM
	for _, b := range raw {
		if !ValidBCD(b) {
			return dt, false
		}
	}
	dt = DateTime{
		Year:    FromBCD(raw[0]),
		Month:   FromBCD(raw[1]),
		Day:     FromBCD(raw[2]),
		Weekday: FromBCD(raw[3]),
		Hour:    FromBCD(raw[4]),
		Minute:  FromBCD(raw[5]),
		Second:  FromBCD(raw[6]),
	}
	dt.Afternoon = hour&hourPM != 0 || dt.Hour >= 12
	if dt.Afternoon && dt.Hour < 12 {
		dt.Hour += 12
	}
	return dt, true
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// String formats dt for the wall clock: calendar weekday, the chip's day
// counter in parentheses, date and time.
func (dt DateTime) String() string {
	return dt.Format(true)
}

// Format is like String but shows a 12 hour clock unless h24 is set.
func (dt DateTime) Format(h24 bool) string {
	s := fmt.Sprintf("%s(%d) %d/%d/%d ", weekdayNames[dt.CalendarWeekday()],
		dt.Weekday, 2000+dt.Year, dt.Month, dt.Day)
	if h24 {
		return s + fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	}
	suffix := "AM"
	if dt.Afternoon {
		suffix = "PM"
	}
	return s + fmt.Sprintf("%02d:%02d:%02d %s", Hour12(dt.Hour), dt.Minute, dt.Second, suffix)
}

// Hour12 maps a 0-23 hour to the 1-12 clock face.
func Hour12(h int) int {
	if h %= 12; h == 0 {
		return 12
	}
	return h
}
