package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Letters — допустимые буквы класса.
var Letters = []string{"А", "Б", "В", "Г"}

// Student — зарегистрированный ученик.
type Student struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	Name       string
	Grade      *int    // Класс (1-11), nil пока не выбран
	Letter     *string `gorm:"size:4"` // Буква класса, nil пока не выбрана
	UseGlobal  bool    // Глобальное расписание вместо личного
}

// HasClass reports whether both grade and letter are set.
func (s *Student) HasClass() bool {
	return s.Grade != nil && s.Letter != nil
}

// ClassLabel returns the class in "10Б" form, or an empty string.
func (s *Student) ClassLabel() string {
	if !s.HasClass() {
		return ""
	}
	return fmt.Sprintf("%d%s", *s.Grade, *s.Letter)
}

// GlobalLesson — урок из общего расписания класса.
type GlobalLesson struct {
	gorm.Model
	Grade   int    `gorm:"uniqueIndex:idx_global_slot"`
	Letter  string `gorm:"size:4;uniqueIndex:idx_global_slot"`
	Day     int    `gorm:"uniqueIndex:idx_global_slot"` // День недели (1-5)
	Number  int    `gorm:"uniqueIndex:idx_global_slot"` // Номер урока
	Subject string
}

// PersonalLesson — урок из личного расписания ученика.
type PersonalLesson struct {
	gorm.Model
	StudentID uint `gorm:"uniqueIndex:idx_personal_slot"`
	Day       int  `gorm:"uniqueIndex:idx_personal_slot"`
	Number    int  `gorm:"uniqueIndex:idx_personal_slot"`
	Subject   string
}

// AdminSettings — единственная запись с контактом администратора.
type AdminSettings struct {
	gorm.Model
	Contact string
}

// DefaultAdminContact is shown when no settings row exists yet.
const DefaultAdminContact = "@Abumalik08"

// ValidGrade reports whether g is a school grade.
func ValidGrade(g int) bool {
	return g >= 1 && g <= 11
}

// NormalizeLetter uppercases and trims a class letter and checks that it is
// one of the allowed four.
func NormalizeLetter(letter string) (string, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, l := range Letters {
		if letter == l {
			return letter, true
		}
	}
	return "", false
}
