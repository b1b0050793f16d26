package database

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/abumalik-cmd/tg-bot/models"
	"github.com/abumalik-cmd/tg-bot/notifier"
	"github.com/abumalik-cmd/tg-bot/schedule"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store покрывает интерфейсы, которые от него ждут остальные пакеты.
var (
	_ schedule.Repository = (*Store)(nil)
	_ notifier.Store      = (*Store)(nil)
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := Migrate(db); err != nil {
		t.Fatal(err)
	}
	return NewStore(db)
}

func TestGetOrCreateStudent(t *testing.T) {
	store := newTestStore(t)

	student, created, err := store.GetOrCreateStudent(100, "Аня")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("первая запись должна создаваться")
	}
	if !student.UseGlobal {
		t.Fatal("новый ученик должен быть на глобальном расписании")
	}

	again, created, err := store.GetOrCreateStudent(100, "Другое имя")
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("повторный вызов не должен создавать запись")
	}
	if again.ID != student.ID || again.Name != "Аня" {
		t.Fatalf("вернулась не та запись: %+v", again)
	}
}

func TestGetStudentNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetStudent(999)
	if err == nil || !IsNotFound(err) {
		t.Fatalf("ожидался NotFound, получено %v", err)
	}
}

func TestReplacePersonalLessons(t *testing.T) {
	store := newTestStore(t)

	student, _, err := store.GetOrCreateStudent(100, "Аня")
	if err != nil {
		t.Fatal(err)
	}

	subjects := []string{"Математика", "ИЗО", "История"}
	if err := store.ReplacePersonalLessons(student.ID, 3, subjects); err != nil {
		t.Fatal(err)
	}

	lessons, err := store.PersonalLessons(student.ID, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []schedule.Lesson{
		{Number: 1, Subject: "Математика"},
		{Number: 2, Subject: "ИЗО"},
		{Number: 3, Subject: "История"},
	}
	if !reflect.DeepEqual(lessons, want) {
		t.Fatalf("уроки = %+v, ожидалось %+v", lessons, want)
	}
}

func TestReplacePersonalLessonsIdempotent(t *testing.T) {
	store := newTestStore(t)

	student, _, err := store.GetOrCreateStudent(100, "Аня")
	if err != nil {
		t.Fatal(err)
	}

	subjects := []string{"Математика", "ИЗО"}
	for i := 0; i < 2; i++ {
		if err := store.ReplacePersonalLessons(student.ID, 2, subjects); err != nil {
			t.Fatal(err)
		}
	}

	lessons, err := store.PersonalLessons(student.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 2 {
		t.Fatalf("повторная замена продублировала уроки: %+v", lessons)
	}
}

func TestReplacePersonalLessonsOverwritesDay(t *testing.T) {
	store := newTestStore(t)

	student, _, err := store.GetOrCreateStudent(100, "Аня")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.ReplacePersonalLessons(student.ID, 1, []string{"Химия", "Физика", "Труд"}); err != nil {
		t.Fatal(err)
	}
	if err := store.ReplacePersonalLessons(student.ID, 1, []string{"Литература"}); err != nil {
		t.Fatal(err)
	}

	lessons, err := store.PersonalLessons(student.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 1 || lessons[0].Subject != "Литература" || lessons[0].Number != 1 {
		t.Fatalf("день должен заменяться целиком: %+v", lessons)
	}
}

func TestGlobalLessonsOrdered(t *testing.T) {
	store := newTestStore(t)

	batch := []models.GlobalLesson{
		{Grade: 10, Letter: "Б", Day: 2, Number: 2, Subject: "История"},
		{Grade: 10, Letter: "Б", Day: 2, Number: 1, Subject: "Математика"},
		{Grade: 10, Letter: "Б", Day: 3, Number: 1, Subject: "Физика"},
		{Grade: 9, Letter: "А", Day: 2, Number: 1, Subject: "Химия"},
	}
	if err := store.SaveGlobalLessons(batch); err != nil {
		t.Fatal(err)
	}

	lessons, err := store.GlobalLessons(10, "Б", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []schedule.Lesson{
		{Number: 1, Subject: "Математика"},
		{Number: 2, Subject: "История"},
	}
	if !reflect.DeepEqual(lessons, want) {
		t.Fatalf("уроки = %+v, ожидалось %+v", lessons, want)
	}
}

func TestSaveGlobalLessonsReplacesAll(t *testing.T) {
	store := newTestStore(t)

	first := []models.GlobalLesson{
		{Grade: 10, Letter: "Б", Day: 1, Number: 1, Subject: "Старый предмет"},
	}
	if err := store.SaveGlobalLessons(first); err != nil {
		t.Fatal(err)
	}

	second := []models.GlobalLesson{
		{Grade: 10, Letter: "Б", Day: 1, Number: 1, Subject: "Новый предмет"},
	}
	if err := store.SaveGlobalLessons(second); err != nil {
		t.Fatal(err)
	}

	lessons, err := store.GlobalLessons(10, "Б", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 1 || lessons[0].Subject != "Новый предмет" {
		t.Fatalf("импорт должен заменять всё: %+v", lessons)
	}
}

func TestAdminContact(t *testing.T) {
	store := newTestStore(t)

	if got := store.AdminContact(); got != models.DefaultAdminContact {
		t.Fatalf("контакт по умолчанию = %q", got)
	}

	if err := store.db.Create(&models.AdminSettings{Contact: "@director"}).Error; err != nil {
		t.Fatal(err)
	}
	if got := store.AdminContact(); got != "@director" {
		t.Fatalf("контакт = %q, ожидался @director", got)
	}
}

func TestListStudents(t *testing.T) {
	store := newTestStore(t)

	for i := int64(1); i <= 3; i++ {
		if _, _, err := store.GetOrCreateStudent(i, fmt.Sprintf("Ученик %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	students, err := store.ListStudents()
	if err != nil {
		t.Fatal(err)
	}
	if len(students) != 3 {
		t.Fatalf("учеников %d, ожидалось 3", len(students))
	}
}
