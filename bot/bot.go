package bot

import (
	"log"
	"time"

	"github.com/abumalik-cmd/tg-bot/database"
	"github.com/abumalik-cmd/tg-bot/intake"
	"github.com/abumalik-cmd/tg-bot/schedule"

	"gopkg.in/telebot.v3"
)

// Bot связывает telegram-транспорт с расписанием и сессиями ввода.
type Bot struct {
	tb       *telebot.Bot
	store    *database.Store
	resolver *schedule.Resolver
	intake   *intake.Store
	now      func() time.Time
}

// New создаёт бота. now должен возвращать время в часовом поясе школы.
func New(token string, store *database.Store, now func() time.Time) (*Bot, error) {
	pref := telebot.Settings{
		Token:     token,
		Poller:    &telebot.LongPoller{Timeout: 10 * time.Second},
		ParseMode: telebot.ModeMarkdown,
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Chat() != nil {
				log.Printf("Ошибка обработчика для %d: %v", c.Chat().ID, err)
				return
			}
			log.Println("Ошибка обработчика:", err)
		},
	}

	tb, err := telebot.NewBot(pref)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		tb:       tb,
		store:    store,
		resolver: schedule.NewResolver(store),
		intake:   intake.NewStore(store),
		now:      now,
	}
	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.tb.Handle("/start", b.onStart)

	b.tb.Handle(&btnToday, b.onToday)
	b.tb.Handle(&btnTomorrow, b.onTomorrow)
	b.tb.Handle(&btnWeek, b.onWeek)
	b.tb.Handle(&btnNext, b.onNext)
	b.tb.Handle(&btnSettings, b.onSettings)
	b.tb.Handle(&btnInfo, b.onInfo)
	b.tb.Handle(&btnBack, b.onBack)
	b.tb.Handle(&btnChangeClass, b.onChangeClass)
	b.tb.Handle(&btnScheduleType, b.onScheduleType)

	b.tb.Handle(&btnGrade, b.onGrade)
	b.tb.Handle(&btnLetter, b.onLetter)
	b.tb.Handle(&btnUseGlobal, b.onUseGlobal)
	b.tb.Handle(&btnUsePersonal, b.onUsePersonal)
	b.tb.Handle(&btnAddPersonal, b.onAddPersonal)
	b.tb.Handle(&btnAboutSimple, b.onAboutSimple)
	b.tb.Handle(&btnAboutTech, b.onAboutTech)

	b.tb.Handle(telebot.OnText, b.onText)
}

// Start запускает long polling и блокирует горутину.
func (b *Bot) Start() {
	b.tb.Start()
}

// SendText delivers a push to one chat. Satisfies notifier.Sender.
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.tb.Send(telebot.ChatID(chatID), text)
	return err
}
