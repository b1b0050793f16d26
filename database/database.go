package database

import (
	"errors"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/schedule"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the bot tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.GlobalLesson{},
		&models.PersonalLesson{},
		&models.AdminSettings{},
	)
}

// Store exposes the CRUD operations the bot and the background loops use.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// GetOrCreateStudent returns the student with the given telegram id,
// creating a fresh record on the global schedule when none exists. The
// second return value reports whether the record was just created.
func (s *Store) GetOrCreateStudent(telegramID int64, name string) (*models.Student, bool, error) {
	var student models.Student
	result := s.db.Where(&models.Student{TelegramID: telegramID}).
		Attrs(models.Student{Name: name, UseGlobal: true}).
		FirstOrCreate(&student)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &student, result.RowsAffected > 0, nil
}

func (s *Store) GetStudent(telegramID int64) (*models.Student, error) {
	var student models.Student
	if err := s.db.Where(&models.Student{TelegramID: telegramID}).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Store) SaveStudent(student *models.Student) error {
	return s.db.Save(student).Error
}

func (s *Store) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// GlobalLessons returns the class-wide lessons for one day, ordered by
// lesson number.
func (s *Store) GlobalLessons(grade int, letter string, day int) ([]schedule.Lesson, error) {
	var rows []models.GlobalLesson
	err := s.db.Where(&models.GlobalLesson{Grade: grade, Letter: letter, Day: day}).
		Order("number").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	lessons := make([]schedule.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, schedule.Lesson{Number: row.Number, Subject: row.Subject})
	}
	return lessons, nil
}

// PersonalLessons returns one student's lessons for one day, ordered by
// lesson number.
func (s *Store) PersonalLessons(studentID uint, day int) ([]schedule.Lesson, error) {
	var rows []models.PersonalLesson
	err := s.db.Where(&models.PersonalLesson{StudentID: studentID, Day: day}).
		Order("number").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	lessons := make([]schedule.Lesson, 0, len(rows))
	for _, row := range rows {
		lessons = append(lessons, schedule.Lesson{Number: row.Number, Subject: row.Subject})
	}
	return lessons, nil
}

// ReplacePersonalLessons swaps the student's lessons for one day with the
// given subjects, numbered 1..N in input order. Delete and insert run in
// one transaction, so the day never holds a partial list.
func (s *Store) ReplacePersonalLessons(studentID uint, day int, subjects []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("student_id = ? AND day = ?", studentID, day).
			Delete(&models.PersonalLesson{}).Error
		if err != nil {
			return err
		}

		if len(subjects) == 0 {
			return nil
		}

		rows := make([]models.PersonalLesson, 0, len(subjects))
		for i, subject := range subjects {
			rows = append(rows, models.PersonalLesson{
				StudentID: studentID,
				Day:       day,
				Number:    i + 1,
				Subject:   subject,
			})
		}
		return tx.Create(&rows).Error
	})
}

// SaveGlobalLessons replaces the whole class-wide schedule with a freshly
// imported batch.
func (s *Store) SaveGlobalLessons(lessons []models.GlobalLesson) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.GlobalLesson{}).Error; err != nil {
			return err
		}
		if len(lessons) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&lessons).Error
	})
}

// AdminContact returns the configured admin handle, or the built-in one
// when no settings row exists.
func (s *Store) AdminContact() string {
	var settings models.AdminSettings
	if err := s.db.First(&settings).Error; err != nil || settings.Contact == "" {
		return models.DefaultAdminContact
	}
	return settings.Contact
}
