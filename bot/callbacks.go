package bot

import (
	"fmt"
	"strconv"

	"github.com/abumalik-cmd/tg-bot/models"

	"gopkg.in/telebot.v3"
)

// onGrade запоминает выбранный класс и спрашивает букву.
func (b *Bot) onGrade(c telebot.Context) error {
	grade, err := strconv.Atoi(c.Data())
	if err != nil || !models.ValidGrade(grade) {
		return c.Respond(&telebot.CallbackResponse{Text: "Неизвестный класс"})
	}

	b.intake.BeginClass(c.Chat().ID, grade)

	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit(
		fmt.Sprintf("📚 *Класс %d*\n\nТеперь выбери букву:", grade),
		letterKeyboard())
}

// onLetter завершает выбор класса.
func (b *Bot) onLetter(c telebot.Context) error {
	letter, ok := models.NormalizeLetter(c.Data())
	if !ok {
		return c.Respond(&telebot.CallbackResponse{Text: "Неизвестная буква"})
	}

	grade, ok := b.intake.TakeClass(c.Chat().ID)
	if !ok {
		return c.Respond(&telebot.CallbackResponse{Text: "Сначала выбери класс"})
	}

	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	student.Grade = &grade
	student.Letter = &letter
	if err := b.store.SaveStudent(student); err != nil {
		return err
	}

	if err := c.Respond(); err != nil {
		return err
	}
	if err := c.Edit(fmt.Sprintf(
		"✅ *Класс успешно установлен!*\n\n📚 Твой класс: *%d%s*",
		grade, letter)); err != nil {
		return err
	}
	return b.sendMainMenu(c, student)
}

func (b *Bot) onUseGlobal(c telebot.Context) error {
	return b.setScheduleType(c, true,
		"✅ Включено глобальное расписание",
		"✅ *Глобальное расписание активировано!*\n\n"+
			"🌍 Теперь ты видишь общее расписание для всего класса.")
}

func (b *Bot) onUsePersonal(c telebot.Context) error {
	return b.setScheduleType(c, false,
		"✅ Включено личное расписание",
		"✅ *Личное расписание активировано!*\n\n"+
			"👤 Теперь ты видишь только своё расписание.")
}

func (b *Bot) setScheduleType(c telebot.Context, useGlobal bool, toast, confirmation string) error {
	student, err := b.student(c)
	if err != nil || student == nil {
		return err
	}

	student.UseGlobal = useGlobal
	if err := b.store.SaveStudent(student); err != nil {
		return err
	}

	if err := c.Respond(&telebot.CallbackResponse{Text: toast}); err != nil {
		return err
	}
	if err := c.Edit(confirmation); err != nil {
		return err
	}
	return b.sendMainMenu(c, student)
}

// onAddPersonal запускает пошаговый ввод личного расписания.
func (b *Bot) onAddPersonal(c telebot.Context) error {
	b.intake.Begin(c.Chat().ID)

	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit(dayPromptText)
}

func (b *Bot) onAboutSimple(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit(aboutSimpleText)
}

func (b *Bot) onAboutTech(c telebot.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit(aboutTechText)
}
