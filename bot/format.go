package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/schedule"
	"github.com/abumalik-cmd/tg-bot/timetable"
)

const divider = "━━━━━━━━━━━━━━━━━━━━\n"

const welcomeText = "🎓 *Добро пожаловать в бот расписания!*\n\n" +
	"Я помогу тебе:\n" +
	"✅ Всегда знать своё расписание\n" +
	"✅ Не пропускать уроки\n" +
	"✅ Получать напоминания\n\n" +
	"📚 *Для начала выбери свой класс:*"

const dayPromptText = "📝 *Создание личного расписания*\n\n" +
	"Введи день недели (цифру):\n\n" +
	"1️⃣ - Понедельник\n" +
	"2️⃣ - Вторник\n" +
	"3️⃣ - Среда\n" +
	"4️⃣ - Четверг\n" +
	"5️⃣ - Пятница"

func sourceLabel(source schedule.Source) string {
	if source == schedule.SourceGlobal {
		return "🌍 Глобальное"
	}
	return "👤 Личное"
}

func formatMainMenu(student *models.Student, next *schedule.Upcoming, now time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 *Главное меню*\n\n")
	fmt.Fprintf(&b, "👤 *Ученик:* %s\n", student.Name)
	fmt.Fprintf(&b, "🎓 *Класс:* %s\n", student.ClassLabel())

	label := "👤 Личное"
	if student.UseGlobal {
		label = "🌍 Глобальное"
	}
	fmt.Fprintf(&b, "📋 *Расписание:* %s\n", label)

	switch {
	case next != nil:
		fmt.Fprintf(&b, "\n⏰ *Следующий урок:*\n📚 %s в %s",
			next.Lesson.Subject, timetable.FormatMinute(next.Slot.Start))
	case timetable.IsWeekend(timetable.ISOWeekday(now)):
		b.WriteString("\n\n🎉 *Выходной день!*")
	default:
		b.WriteString("\n\n✨ *Уроков больше нет*")
	}

	b.WriteString("\n\n*Выбери действие:*")
	return b.String()
}

// formatToday renders today's lessons with a status mark per lesson:
// upcoming, finished or in progress.
func formatToday(day int, source schedule.Source, lessons []schedule.Lesson, now time.Time) string {
	minute := timetable.MinuteOfDay(now)

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *%s*\n", timetable.DayNamesUpper[day])
	fmt.Fprintf(&b, "📋 %s расписание\n", sourceLabel(source))
	b.WriteString(divider + "\n")

	for _, lesson := range lessons {
		status := " 🔴"
		if slot, ok := timetable.Lookup(lesson.Number); ok {
			switch {
			case slot.Start > minute:
				status = " ⏳"
			case slot.End < minute:
				status = " ✅"
			}
		}
		start, end := timetable.StartEnd(lesson.Number)
		fmt.Fprintf(&b, "*%d. %s*%s\n", lesson.Number, lesson.Subject, status)
		fmt.Fprintf(&b, "   ⏰ %s - %s\n\n", start, end)
	}
	return b.String()
}

func formatTomorrow(day int, source schedule.Source, lessons []schedule.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📆 *%s (завтра)*\n", timetable.DayNamesUpper[day])
	fmt.Fprintf(&b, "📋 %s расписание\n", sourceLabel(source))
	b.WriteString(divider + "\n")

	for _, lesson := range lessons {
		start, end := timetable.StartEnd(lesson.Number)
		fmt.Fprintf(&b, "*%d. %s*\n", lesson.Number, lesson.Subject)
		fmt.Fprintf(&b, "   ⏰ %s - %s\n\n", start, end)
	}
	return b.String()
}

func formatWeekHeader(useGlobal bool) string {
	label := "👤 Личное"
	if useGlobal {
		label = "🌍 Глобальное"
	}
	return "📚 *Расписание на неделю*\n" + fmt.Sprintf("📋 %s расписание\n", label) + divider
}

func formatWeekDay(day int, lessons []schedule.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n*%s:*\n", timetable.DayNamesShort[day])

	if len(lessons) == 0 {
		b.WriteString("_нет уроков_\n")
		return b.String()
	}

	parts := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		start, _ := timetable.StartEnd(lesson.Number)
		parts = append(parts, fmt.Sprintf("%d.%s (%s)", lesson.Number, lesson.Subject, start))
	}
	b.WriteString(strings.Join(parts, " | "))
	b.WriteString("\n")
	return b.String()
}

func formatNext(next *schedule.Upcoming) string {
	start, end := timetable.StartEnd(next.Lesson.Number)

	var b strings.Builder
	b.WriteString("⏰ *Следующий урок*\n\n")
	fmt.Fprintf(&b, "📚 *%s*\n", next.Lesson.Subject)
	fmt.Fprintf(&b, "🔢 Урок №%d\n", next.Lesson.Number)
	fmt.Fprintf(&b, "⏱️ %s - %s\n", start, end)
	fmt.Fprintf(&b, "⌛️ До начала: %d мин.\n", next.MinutesUntil)

	if next.MinutesUntil <= timetable.ReminderMinutes {
		b.WriteString("\n⚠️ *Урок начнётся совсем скоро!*")
	}
	return b.String()
}

func formatNoSchedule(student *models.Student, adminContact string) string {
	return fmt.Sprintf(
		"📭 *Расписание не найдено*\n\n"+
			"Для класса *%s* пока нет глобального расписания в системе.\n\n"+
			"🔹 *Что можно сделать?*\n\n"+
			"1️⃣ Попросить господина %s добавить расписание для вашего класса\n"+
			"   _(нажми кнопку ниже, чтобы написать ему)_\n\n"+
			"2️⃣ Создать своё личное расписание прямо в боте\n"+
			"   _(это займёт всего минуту!)_",
		student.ClassLabel(), adminContact)
}

func formatSettings(student *models.Student) string {
	label := "👤 Личное"
	if student.UseGlobal {
		label = "🌍 Глобальное"
	}
	return fmt.Sprintf(
		"⚙️ *НАСТРОЙКИ*\n\n"+
			"👤 *Имя:* %s\n"+
			"🎓 *Класс:* %s\n"+
			"📋 *Тип:* %s\n\n"+
			"*Выбери действие:*",
		student.Name, student.ClassLabel(), label)
}

func formatSubjectsPrompt(day int) string {
	return fmt.Sprintf(
		"✅ День: *%s*\n\n"+
			"📝 Теперь введи предметы\n\n"+
			"*Каждый с новой строки!*\n\n"+
			"*Пример:*\n"+
			"Русский язык\n"+
			"Математика\n"+
			"Литература",
		timetable.DayNames[day])
}

func formatIntakeDone(day int, subjects []string) string {
	var b strings.Builder
	b.WriteString("✅ *Личное расписание создано!*\n\n")
	fmt.Fprintf(&b, "📅 %s\n", timetable.DayNames[day])
	fmt.Fprintf(&b, "📚 Добавлено: %d уроков\n\n", len(subjects))

	for i, subject := range subjects {
		start, end := timetable.StartEnd(i + 1)
		fmt.Fprintf(&b, "%d. %s (%s-%s)\n", i+1, subject, start, end)
	}

	b.WriteString("\n💡 Переключись на личное в настройках!")
	return b.String()
}

const aboutSimpleText = "🤖 *О БОТЕ РАСПИСАНИЯ*\n" + divider + "\n" +
	"👨‍💻 *Разработчик:* " + models.DefaultAdminContact + "\n\n" +
	"✨ *ЧТО УМЕЕТ БОТ:*\n\n" +
	"📅 *Расписание*\n" +
	"   • Сегодня\n" +
	"   • Завтра\n" +
	"   • Вся неделя\n\n" +
	"⏰ *Напоминания*\n" +
	"   • Утренняя рассылка в 6:30\n" +
	"   • За 10 минут до урока\n\n" +
	"📋 *Два типа*\n" +
	"   • 🌍 Глобальное - для всего класса\n" +
	"   • 👤 Личное - твоё расписание\n\n" +
	"⚙️ *Настройки*\n" +
	"   • Смена класса\n" +
	"   • Переключение типа\n\n" +
	"💡 *КАК ПОЛЬЗОВАТЬСЯ?*\n" +
	"1. Выбери класс\n" +
	"2. Смотри расписание\n" +
	"3. Получай напоминания\n\n" +
	"🌟 *Учись на отлично!* 📚"

const aboutTechText = "🔧 *ТЕХНИЧЕСКАЯ ИНФОРМАЦИЯ*\n" + divider + "\n" +
	"🗄️ *База данных (PostgreSQL):*\n" +
	"   • Student - данные учеников\n" +
	"   • GlobalLesson - глобальное расписание\n" +
	"   • PersonalLesson - личное расписание\n" +
	"   • AdminSettings - настройки администратора\n\n" +
	"🔔 *Фоновые процессы:*\n" +
	"   • Рассылка расписания в 6:30\n" +
	"   • Напоминание за 10 минут до урока\n\n" +
	"🔧 *Технологии:*\n" +
	"   • Go, telebot, GORM\n" +
	"   • PostgreSQL\n\n" +
	"🎯 *Поддержка:*\n" +
	"   • Классы: 1-11 (А-Г)\n" +
	"   • Дни: ПН-ПТ\n" +
	"   • Уроки: 1-8\n" +
	"   • Часовой пояс: МСК"
