// Package timefmt renders the editable date and time line.
package timefmt

import (
	"fmt"
	"strings"

	"github.com/clktmr/agbrtc/drivers/rtc"
)

// Component selects a field of the line.
type Component int

const (
	Year Component = iota
	Month
	Day
	Hour
	Minute
	Second
	Afternoon
)

var componentNames = [...]string{"year", "month", "day", "hour", "minute", "second", "afternoon"}

func (c Component) String() string {
	if c < Year || c > Afternoon {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// Next returns the component right of c, staying at the last one.
func (c Component) Next() Component { return min(c+1, Afternoon) }

// Prev returns the component left of c, staying at the first one.
func (c Component) Prev() Component { return max(c-1, Year) }

// Render formats dt as "YY/MM/DD HH:MM:SS", followed by " AM" or " PM"
// unless h24 is set. The selected token is wrapped in angle brackets. In 12
// hour mode the hour is shown on a 1-12 face, dt itself is not changed.
func Render(dt rtc.DateTime, sel Component, h24 bool) string {
	hour := dt.Hour
	if !h24 {
		hour = rtc.Hour12(hour)
	}
	var b strings.Builder
	for c, v := range [...]int{dt.Year, dt.Month, dt.Day, hour, dt.Minute, dt.Second} {
		switch Component(c) {
		case Month, Day:
			b.WriteByte('/')
		case Hour:
			b.WriteByte(' ')
		case Minute, Second:
			b.WriteByte(':')
		}
		token(&b, fmt.Sprintf("%02d", v), Component(c) == sel)
	}
	if !h24 {
		b.WriteByte(' ')
		ampm := "AM"
		if dt.Afternoon {
			ampm = "PM"
		}
		token(&b, ampm, sel == Afternoon)
	}
	return b.String()
}

func token(b *strings.Builder, s string, selected bool) {
	if selected {
		b.WriteByte('<')
		b.WriteString(s)
		b.WriteByte('>')
		return
	}
	b.WriteString(s)
}

// Limit of every numeric field, the largest two digit BCD value.
const Limit = 99

func field(dt *rtc.DateTime, c Component) *int {
	switch c {
	case Year:
		return &dt.Year
	case Month:
		return &dt.Month
	case Day:
		return &dt.Day
	case Hour:
		return &dt.Hour
	case Minute:
		return &dt.Minute
	case Second:
		return &dt.Second
	}
	return nil
}

// Increment returns dt with component c raised by one. Numeric fields wrap
// from 99 to 0 regardless of the calendar, Afternoon toggles.
func Increment(dt rtc.DateTime, c Component) rtc.DateTime {
	if c == Afternoon {
		dt.Afternoon = !dt.Afternoon
		return dt
	}
	if f := field(&dt, c); f != nil {
		*f = (*f + 1) % (Limit + 1)
	}
	return dt
}

// Decrement returns dt with component c lowered by one, stopping at 0.
// Afternoon toggles.
func Decrement(dt rtc.DateTime, c Component) rtc.DateTime {
	if c == Afternoon {
		dt.Afternoon = !dt.Afternoon
		return dt
	}
	if f := field(&dt, c); f != nil {
		*f = max(*f-1, 0)
	}
	return dt
}
