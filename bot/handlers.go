package bot

import (
	"github.com/abumalik-cmd/tg-bot/database"
	"github.com/abumalik-cmd/tg-bot/intake"
	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/timetable"

	"gopkg.in/telebot.v3"
)

// onStart регистрирует ученика и показывает меню либо выбор класса.
func (b *Bot) onStart(c telebot.Context) error {
	name := "Ученик"
	if c.Sender() != nil && c.Sender().FirstName != "" {
		name = c.Sender().FirstName
	}

	student, created, err := b.store.GetOrCreateStudent(c.Chat().ID, name)
	if err != nil {
		return err
	}

	if created || !student.HasClass() {
		return c.Send(welcomeText, gradeKeyboard())
	}
	return b.sendMainMenu(c, student)
}

// student loads the sender's record. A missing record sends the user back
// to registration and returns nil.
func (b *Bot) student(c telebot.Context) (*models.Student, error) {
	student, err := b.store.GetStudent(c.Chat().ID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, b.onStart(c)
		}
		return nil, err
	}
	return student, nil
}

func (b *Bot) sendMainMenu(c telebot.Context, student *models.Student) error {
	now := b.now()
	next, err := b.resolver.Next(student, now)
	if err != nil {
		return err
	}
	return c.Send(formatMainMenu(student, next, now), mainMenu)
}

func (b *Bot) onBack(c telebot.Context) error {
	b.intake.Cancel(c.Chat().ID)

	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}
	return b.sendMainMenu(c, student)
}

func (b *Bot) onToday(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	now := b.now()
	day := timetable.ISOWeekday(now)

	if timetable.IsWeekend(day) {
		return c.Send(
			"🎉 *Сегодня выходной!* 🎉\n\n"+
				"Отдыхай, набирайся сил и готовься к новой учебной неделе! 💪",
			mainMenu)
	}

	lessons, source, err := b.resolver.Resolve(student, day)
	if err != nil {
		return err
	}

	if len(lessons) == 0 {
		contact := b.store.AdminContact()
		return c.Send(formatNoSchedule(student, contact), noScheduleKeyboard(contact))
	}
	return c.Send(formatToday(day, source, lessons, now), mainMenu)
}

func (b *Bot) onTomorrow(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	tomorrow := timetable.ISOWeekday(b.now()) + 1

	if tomorrow == 6 {
		return c.Send(
			"🎉 *Завтра суббота - выходной!* 🎉\n\n"+
				"Планируй свои выходные и отдыхай! 🌟",
			mainMenu)
	}
	if tomorrow == 7 {
		tomorrow = 1
	}

	lessons, source, err := b.resolver.Resolve(student, tomorrow)
	if err != nil {
		return err
	}

	if len(lessons) == 0 {
		return c.Send("📭 *На завтра расписание отсутствует*", mainMenu)
	}
	return c.Send(formatTomorrow(tomorrow, source, lessons), mainMenu)
}

func (b *Bot) onWeek(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	text := formatWeekHeader(student.UseGlobal)
	for day := 1; day <= 5; day++ {
		lessons, _, err := b.resolver.Resolve(student, day)
		if err != nil {
			return err
		}
		text += formatWeekDay(day, lessons)
	}
	return c.Send(text, mainMenu)
}

func (b *Bot) onNext(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	now := b.now()
	next, err := b.resolver.Next(student, now)
	if err != nil {
		return err
	}

	if next == nil {
		if timetable.IsWeekend(timetable.ISOWeekday(now)) {
			return c.Send("🎉 *Сегодня выходной!*", mainMenu)
		}
		return c.Send("✨ *На сегодня все уроки закончились*", mainMenu)
	}
	return c.Send(formatNext(next), mainMenu)
}

func (b *Bot) onSettings(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}
	return c.Send(formatSettings(student), settingsMenu)
}

func (b *Bot) onChangeClass(c telebot.Context) error {
	return c.Send(
		"🔄 *Смена класса*\n\n📚 Выбери свой новый класс:",
		gradeKeyboard())
}

func (b *Bot) onScheduleType(c telebot.Context) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}
	return c.Send(
		"📋 *Тип расписания*\n\n"+
			"🌍 *Глобальное* - общее для всего класса\n"+
			"👤 *Личное* - твоё индивидуальное\n\n"+
			"Выбери нужный:",
		scheduleTypeKeyboard(student.UseGlobal))
}

func (b *Bot) onInfo(c telebot.Context) error {
	return c.Send("ℹ️ *Информация*\n\nВыбери, что хочешь узнать:", infoKeyboard())
}

// onText кормит свободный текст в активную сессию ввода расписания.
// Сообщения вне сессии игнорируются.
func (b *Bot) onText(c telebot.Context) error {
	chatID := c.Chat().ID
	if !b.intake.Active(chatID) {
		return nil
	}

	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	result, err := b.intake.HandleText(chatID, student.ID, c.Text())
	if err != nil {
		return err
	}

	switch result.Outcome {
	case intake.OutcomeInvalidDay:
		return c.Reply("❌ Нужно ввести число от 1 до 5")
	case intake.OutcomeDayAccepted:
		return c.Send(formatSubjectsPrompt(result.Day), backMenu)
	case intake.OutcomeEmptySubjects:
		return c.Send("❌ Нет предметов!")
	case intake.OutcomeSaved:
		return c.Send(formatIntakeDone(result.Day, result.Subjects), mainMenu)
	}
	return nil
}
