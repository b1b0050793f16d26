package main

import (
	"log"
	"time"

	"github.com/abumalik-cmd/tg-bot/bot"
	"github.com/abumalik-cmd/tg-bot/config"
	"github.com/abumalik-cmd/tg-bot/database"
	"github.com/abumalik-cmd/tg-bot/health"
	"github.com/abumalik-cmd/tg-bot/notifier"
	"github.com/abumalik-cmd/tg-bot/parser"
	"github.com/abumalik-cmd/tg-bot/timetable"
)

// updateGlobalSchedule подтягивает опубликованное расписание и целиком
// заменяет глобальные уроки.
func updateGlobalSchedule(store *database.Store, url string) error {
	lessons, err := parser.FetchGlobalLessons(url)
	if err != nil {
		log.Println("Ошибка загрузки расписания:", err)
		return err
	}
	if err := store.SaveGlobalLessons(lessons); err != nil {
		log.Println("Ошибка сохранения расписания:", err)
		return err
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Ошибка загрузки конфигурации: ", err)
	}

	loc, err := timetable.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("Ошибка загрузки часового пояса: ", err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	store := database.NewStore(db)

	if cfg.ScheduleURL != "" {
		if err := updateGlobalSchedule(store, cfg.ScheduleURL); err == nil {
			log.Println("Глобальное расписание успешно обновлено.")
		}

		ticker := time.NewTicker(30 * time.Minute)
		go func() {
			for range ticker.C {
				log.Println("Обновление глобального расписания...")
				if err := updateGlobalSchedule(store, cfg.ScheduleURL); err != nil {
					continue
				}
				log.Println("Расписание успешно обновлено.")
			}
		}()
	}

	b, err := bot.New(cfg.TelegramToken, store, now)
	if err != nil {
		log.Fatal("Ошибка запуска бота: ", err)
	}

	n := notifier.New(store, b, now)
	go n.RunMorning()
	go n.RunReminders()

	if cfg.HTTPAddr != "" {
		go func() {
			if err := health.Start(cfg.HTTPAddr); err != nil {
				log.Println("Ошибка health-сервера:", err)
			}
		}()
	}

	log.Println("Бот запущен.")
	go b.Start()

	select {}
}
