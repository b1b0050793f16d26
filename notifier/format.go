package notifier

import (
	"fmt"
	"strings"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/schedule"
	"github.com/abumalik-cmd/tg-bot/timetable"
)

func formatDigest(student *models.Student, day int, lessons []schedule.Lesson, source schedule.Source) string {
	icon := "👤"
	if source == schedule.SourceGlobal {
		icon = "🌍"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *Доброе утро, %s!*\n\n", icon, student.Name)
	fmt.Fprintf(&b, "📅 *%s*\n", timetable.DayNamesUpper[day])
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	for _, lesson := range lessons {
		start, end := timetable.StartEnd(lesson.Number)
		fmt.Fprintf(&b, "*%d. %s*\n", lesson.Number, lesson.Subject)
		fmt.Fprintf(&b, "   ⏰ %s - %s\n\n", start, end)
	}

	b.WriteString("💪 *Удачного дня!*")
	return b.String()
}

func formatReminder(lesson schedule.Lesson) string {
	start, _ := timetable.StartEnd(lesson.Number)
	var b strings.Builder
	b.WriteString("⚠️ *НАПОМИНАНИЕ!*\n\n")
	fmt.Fprintf(&b, "⏰ Через *%d минут* урок:\n\n", timetable.ReminderMinutes)
	fmt.Fprintf(&b, "📚 *%d. %s*\n", lesson.Number, lesson.Subject)
	fmt.Fprintf(&b, "🕐 Начало: %s\n\n", start)
	b.WriteString("💼 Пора собираться!")
	return b.String()
}
