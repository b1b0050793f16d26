package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abumalik-cmd/tg-bot/models"

	"gopkg.in/telebot.v3"
)

// Кнопки главного меню и меню настроек (reply-клавиатуры).
var (
	mainMenu     = &telebot.ReplyMarkup{ResizeKeyboard: true}
	settingsMenu = &telebot.ReplyMarkup{ResizeKeyboard: true}
	backMenu     = &telebot.ReplyMarkup{ResizeKeyboard: true}

	btnToday    = mainMenu.Text("📅 Сегодня")
	btnTomorrow = mainMenu.Text("📆 Завтра")
	btnWeek     = mainMenu.Text("📚 Неделя")
	btnNext     = mainMenu.Text("⏰ Следующий урок")
	btnSettings = mainMenu.Text("⚙️ Настройки")
	btnInfo     = mainMenu.Text("ℹ️ Информация")

	btnChangeClass  = settingsMenu.Text("🔄 Сменить класс")
	btnScheduleType = settingsMenu.Text("📋 Тип расписания")
	btnBack         = settingsMenu.Text("🔙 Назад в меню")
)

// Inline-кнопки; обработчики подбираются по Unique.
var (
	btnGrade       = telebot.Btn{Unique: "grade"}
	btnLetter      = telebot.Btn{Unique: "letter"}
	btnUseGlobal   = telebot.Btn{Unique: "use_global"}
	btnUsePersonal = telebot.Btn{Unique: "use_personal"}
	btnAddPersonal = telebot.Btn{Unique: "add_personal"}
	btnAboutSimple = telebot.Btn{Unique: "about_simple"}
	btnAboutTech   = telebot.Btn{Unique: "about_tech"}
)

func init() {
	mainMenu.Reply(
		mainMenu.Row(btnToday, btnTomorrow),
		mainMenu.Row(btnWeek, btnNext),
		mainMenu.Row(btnSettings, btnInfo),
	)
	settingsMenu.Reply(
		settingsMenu.Row(btnChangeClass),
		settingsMenu.Row(btnScheduleType),
		settingsMenu.Row(btnBack),
	)
	backMenu.Reply(backMenu.Row(btnBack))
}

// gradeKeyboard — inline-выбор класса 1-11, по четыре в ряд.
func gradeKeyboard() *telebot.ReplyMarkup {
	kb := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	var row []telebot.Btn
	for g := 1; g <= 11; g++ {
		row = append(row, kb.Data(strconv.Itoa(g), btnGrade.Unique, strconv.Itoa(g)))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	kb.Inline(rows...)
	return kb
}

// letterKeyboard — inline-выбор буквы класса.
func letterKeyboard() *telebot.ReplyMarkup {
	kb := &telebot.ReplyMarkup{}
	var row []telebot.Btn
	for _, letter := range models.Letters {
		row = append(row, kb.Data(letter, btnLetter.Unique, letter))
	}
	kb.Inline(kb.Row(row...))
	return kb
}

// scheduleTypeKeyboard отмечает галочкой активный тип расписания.
func scheduleTypeKeyboard(useGlobal bool) *telebot.ReplyMarkup {
	kb := &telebot.ReplyMarkup{}

	globalText := "🌍 Глобальное"
	personalText := "👤 Личное"
	if useGlobal {
		globalText = "✅ Глобальное"
	} else {
		personalText = "✅ Личное"
	}

	kb.Inline(
		kb.Row(kb.Data(globalText, btnUseGlobal.Unique)),
		kb.Row(kb.Data(personalText, btnUsePersonal.Unique)),
		kb.Row(kb.Data("📝 Создать личное", btnAddPersonal.Unique)),
	)
	return kb
}

// noScheduleKeyboard предлагает написать администратору или завести личное
// расписание.
func noScheduleKeyboard(adminContact string) *telebot.ReplyMarkup {
	kb := &telebot.ReplyMarkup{}
	kb.Inline(
		kb.Row(kb.Data("📝 Создать своё расписание", btnAddPersonal.Unique)),
		kb.Row(kb.URL(
			fmt.Sprintf("✉️ Написать %s", adminContact),
			"https://t.me/"+strings.TrimPrefix(adminContact, "@"),
		)),
	)
	return kb
}

// infoKeyboard — выбор справки.
func infoKeyboard() *telebot.ReplyMarkup {
	kb := &telebot.ReplyMarkup{}
	kb.Inline(
		kb.Row(kb.Data("📖 О боте", btnAboutSimple.Unique)),
		kb.Row(kb.Data("🔧 Техническая информация", btnAboutTech.Unique)),
	)
	return kb
}
