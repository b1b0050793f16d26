package schedule

import (
	"time"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/timetable"
)

// Source указывает, откуда взято расписание.
type Source string

const (
	SourceGlobal   Source = "global"
	SourcePersonal Source = "personal"
)

// Lesson is a single schedule entry as shown to the student.
type Lesson struct {
	Number  int
	Subject string
}

// Repository is the slice of the persistent store the resolver needs.
type Repository interface {
	GlobalLessons(grade int, letter string, day int) ([]Lesson, error)
	PersonalLessons(studentID uint, day int) ([]Lesson, error)
}

// Resolver picks between the class-wide and the personal schedule.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the lesson list for a student on the given ISO weekday.
// A student on the global schedule with a class set gets the class-wide
// lessons when any exist; in every other case the personal lessons are
// returned, possibly as an empty list. An empty list is not an error.
func (r *Resolver) Resolve(student *models.Student, day int) ([]Lesson, Source, error) {
	if student.UseGlobal && student.HasClass() {
		lessons, err := r.repo.GlobalLessons(*student.Grade, *student.Letter, day)
		if err != nil {
			return nil, SourceGlobal, err
		}
		if len(lessons) > 0 {
			return lessons, SourceGlobal, nil
		}
	}

	lessons, err := r.repo.PersonalLessons(student.ID, day)
	if err != nil {
		return nil, SourcePersonal, err
	}
	return lessons, SourcePersonal, nil
}

// Upcoming describes the next lesson of the day.
type Upcoming struct {
	Lesson       Lesson
	Slot         timetable.Slot
	MinutesUntil int
}

// Next returns the first lesson of today whose start is strictly after now,
// at minute precision. A lesson starting exactly now is already in progress
// and is not "next". On weekends there is no next lesson.
func (r *Resolver) Next(student *models.Student, now time.Time) (*Upcoming, error) {
	day := timetable.ISOWeekday(now)
	if timetable.IsWeekend(day) {
		return nil, nil
	}

	lessons, _, err := r.Resolve(student, day)
	if err != nil {
		return nil, err
	}

	minute := timetable.MinuteOfDay(now)
	for _, lesson := range lessons {
		slot, ok := timetable.Lookup(lesson.Number)
		if !ok {
			continue
		}
		if slot.Start > minute {
			return &Upcoming{
				Lesson:       lesson,
				Slot:         slot,
				MinutesUntil: slot.Start - minute,
			}, nil
		}
	}
	return nil, nil
}
