package timetable

import (
	"fmt"
	"time"
)

// ReminderMinutes — за сколько минут до урока приходит напоминание.
const ReminderMinutes = 10

// DefaultTimezone is used when the TIMEZONE variable is not set.
const DefaultTimezone = "Europe/Moscow"

// Slot is one entry of the fixed daily lesson grid. Start and End are
// minutes since midnight, which keeps comparisons numeric instead of
// relying on "HH:MM" string ordering.
type Slot struct {
	Number int
	Start  int
	End    int
}

var slots = map[int]Slot{
	1: {1, 8*60 + 0, 8*60 + 40},
	2: {2, 8*60 + 50, 9*60 + 30},
	3: {3, 9*60 + 50, 10*60 + 30},
	4: {4, 10*60 + 50, 11*60 + 30},
	5: {5, 11*60 + 40, 12*60 + 20},
	6: {6, 12*60 + 30, 13*60 + 10},
	7: {7, 13*60 + 20, 14*60 + 0},
	8: {8, 14*60 + 10, 14*60 + 50},
}

// Lookup returns the slot for a lesson number (1-8).
func Lookup(number int) (Slot, bool) {
	s, ok := slots[number]
	return s, ok
}

// StartEnd returns the slot boundaries formatted as "HH:MM", or "??:??"
// placeholders for a lesson number outside the grid.
func StartEnd(number int) (string, string) {
	s, ok := slots[number]
	if !ok {
		return "??:??", "??:??"
	}
	return FormatMinute(s.Start), FormatMinute(s.End)
}

// FormatMinute renders minutes since midnight as zero-padded "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay truncates a timestamp to whole minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ISOWeekday returns the ISO weekday number (Monday=1 .. Sunday=7).
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// IsWeekend reports whether an ISO weekday falls on Saturday or Sunday.
func IsWeekend(day int) bool {
	return day > 5
}

// DayNames — полные названия учебных дней.
var DayNames = map[int]string{
	1: "Понедельник",
	2: "Вторник",
	3: "Среда",
	4: "Четверг",
	5: "Пятница",
}

// DayNamesUpper используются в заголовках расписаний.
var DayNamesUpper = map[int]string{
	1: "ПОНЕДЕЛЬНИК",
	2: "ВТОРНИК",
	3: "СРЕДА",
	4: "ЧЕТВЕРГ",
	5: "ПЯТНИЦА",
}

// DayNamesShort используются в недельной сводке и заголовках таблиц.
var DayNamesShort = map[int]string{
	1: "ПН",
	2: "ВТ",
	3: "СР",
	4: "ЧТ",
	5: "ПТ",
}

// LoadLocation resolves the bot timezone, falling back to the default
// when the name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}
