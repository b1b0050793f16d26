// Package notifier drives the two background pushes: the 6:30 morning
// digest and the per-lesson reminder sent ten minutes before each start.
// Both loops poll the wall clock and fire on exact minute equality; there
// is no persisted "already sent" marker, so a tick missed during the
// trigger minute means a silently missed push.
package notifier

import (
	"fmt"
	"log"
	"time"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/schedule"
	"github.com/abumalik-cmd/tg-bot/timetable"
)

const (
	morningHour   = 6
	morningMinute = 30

	morningPoll  = 60 * time.Second
	reminderPoll = 30 * time.Second
	errorBackoff = 60 * time.Second
)

// Sender delivers one outbound message. Failures are logged by the loops
// and never propagated further.
type Sender interface {
	SendText(chatID int64, text string) error
}

// Store is the slice of the persistent store the loops read.
type Store interface {
	schedule.Repository
	ListStudents() ([]models.Student, error)
}

// Notifier runs the two push loops.
type Notifier struct {
	store    Store
	sender   Sender
	resolver *schedule.Resolver
	now      func() time.Time
}

// New builds a notifier. now must return the current time in the bot's
// timezone; tests substitute a fixed clock.
func New(store Store, sender Sender, now func() time.Time) *Notifier {
	return &Notifier{
		store:    store,
		sender:   sender,
		resolver: schedule.NewResolver(store),
		now:      now,
	}
}

// RunMorning polls once a minute and sends every student their schedule
// for the day when the clock reads 6:30. Never returns.
func (n *Notifier) RunMorning() {
	log.Println("Поток утренней рассылки запущен")
	n.run("утренняя рассылка", morningPoll, n.morningTick)
}

// RunReminders polls every thirty seconds and sends a reminder for each
// lesson starting in exactly ReminderMinutes. Never returns.
func (n *Notifier) RunReminders() {
	log.Println("Поток напоминаний запущен")
	n.run("напоминания", reminderPoll, n.reminderTick)
}

// run executes ticks forever. A failed or panicking tick is logged and
// followed by the longer backoff sleep; the loop itself never stops.
func (n *Notifier) run(name string, poll time.Duration, tick func(time.Time) error) {
	for {
		if err := n.safeTick(tick); err != nil {
			log.Printf("Ошибка в фоновом потоке (%s): %v", name, err)
			time.Sleep(errorBackoff)
			continue
		}
		time.Sleep(poll)
	}
}

func (n *Notifier) safeTick(tick func(time.Time) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника: %v", r)
		}
	}()
	return tick(n.now())
}

func (n *Notifier) morningTick(now time.Time) error {
	if !morningDue(now) {
		return nil
	}

	day := timetable.ISOWeekday(now)
	if timetable.IsWeekend(day) {
		return nil
	}

	students, err := n.store.ListStudents()
	if err != nil {
		return err
	}

	for i := range students {
		student := &students[i]
		lessons, source, err := n.resolver.Resolve(student, day)
		if err != nil {
			log.Printf("Ошибка расписания для %d: %v", student.TelegramID, err)
			continue
		}
		if len(lessons) == 0 {
			continue
		}
		text := formatDigest(student, day, lessons, source)
		if err := n.sender.SendText(student.TelegramID, text); err != nil {
			log.Printf("Ошибка рассылки для %d: %v", student.TelegramID, err)
			continue
		}
		log.Println("Рассылка отправлена:", student.Name)
	}
	return nil
}

func (n *Notifier) reminderTick(now time.Time) error {
	day := timetable.ISOWeekday(now)
	if timetable.IsWeekend(day) {
		return nil
	}

	students, err := n.store.ListStudents()
	if err != nil {
		return err
	}

	for i := range students {
		student := &students[i]
		lessons, _, err := n.resolver.Resolve(student, day)
		if err != nil {
			log.Printf("Ошибка расписания для %d: %v", student.TelegramID, err)
			continue
		}
		for _, lesson := range dueLessons(lessons, now) {
			if err := n.sender.SendText(student.TelegramID, formatReminder(lesson)); err != nil {
				log.Printf("Ошибка напоминания для %d: %v", student.TelegramID, err)
				continue
			}
			log.Printf("Напоминание отправлено: %s — %s", student.Name, lesson.Subject)
		}
	}
	return nil
}

// morningDue reports whether now falls inside the digest trigger minute.
func morningDue(now time.Time) bool {
	return now.Hour() == morningHour && now.Minute() == morningMinute
}

// dueLessons returns the lessons whose reminder instant (start minus
// ReminderMinutes, at minute precision) equals the current minute.
func dueLessons(lessons []schedule.Lesson, now time.Time) []schedule.Lesson {
	minute := timetable.MinuteOfDay(now)
	var due []schedule.Lesson
	for _, lesson := range lessons {
		slot, ok := timetable.Lookup(lesson.Number)
		if !ok {
			continue
		}
		if slot.Start-timetable.ReminderMinutes == minute {
			due = append(due, lesson)
		}
	}
	return due
}
