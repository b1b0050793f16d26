package schedule

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abumalik-cmd/tg-bot/models"
)

type fakeRepo struct {
	global   map[string][]Lesson
	personal map[string][]Lesson
	err      error
}

func (r *fakeRepo) GlobalLessons(grade int, letter string, day int) ([]Lesson, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.global[fmt.Sprintf("%d%s-%d", grade, letter, day)], nil
}

func (r *fakeRepo) PersonalLessons(studentID uint, day int) ([]Lesson, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.personal[fmt.Sprintf("%d-%d", studentID, day)], nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func testStudent(useGlobal bool) *models.Student {
	s := &models.Student{
		TelegramID: 100,
		Name:       "Тест",
		Grade:      intPtr(10),
		Letter:     strPtr("Б"),
		UseGlobal:  useGlobal,
	}
	s.ID = 1
	return s
}

func TestResolveGlobal(t *testing.T) {
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-2": {{Number: 1, Subject: "Математика"}, {Number: 2, Subject: "История"}},
		},
		personal: map[string][]Lesson{
			"1-2": {{Number: 1, Subject: "ИЗО"}},
		},
	}
	r := NewResolver(repo)

	lessons, source, err := r.Resolve(testStudent(true), 2)
	if err != nil {
		t.Fatal(err)
	}
	if source != SourceGlobal {
		t.Fatalf("source = %q, ожидался global", source)
	}
	if len(lessons) != 2 || lessons[0].Subject != "Математика" || lessons[1].Subject != "История" {
		t.Fatalf("неожиданные уроки: %+v", lessons)
	}
}

func TestResolvePersonalMode(t *testing.T) {
	// Личный режим игнорирует глобальное расписание, даже если оно есть.
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-2": {{Number: 1, Subject: "Математика"}},
		},
		personal: map[string][]Lesson{
			"1-2": {{Number: 1, Subject: "ИЗО"}},
		},
	}
	r := NewResolver(repo)

	lessons, source, err := r.Resolve(testStudent(false), 2)
	if err != nil {
		t.Fatal(err)
	}
	if source != SourcePersonal {
		t.Fatalf("source = %q, ожидался personal", source)
	}
	if len(lessons) != 1 || lessons[0].Subject != "ИЗО" {
		t.Fatalf("неожиданные уроки: %+v", lessons)
	}
}

func TestResolveFallsBackWhenGlobalEmpty(t *testing.T) {
	repo := &fakeRepo{
		personal: map[string][]Lesson{
			"1-3": {{Number: 1, Subject: "Физика"}},
		},
	}
	r := NewResolver(repo)

	lessons, source, err := r.Resolve(testStudent(true), 3)
	if err != nil {
		t.Fatal(err)
	}
	if source != SourcePersonal {
		t.Fatalf("source = %q, ожидался personal", source)
	}
	if len(lessons) != 1 || lessons[0].Subject != "Физика" {
		t.Fatalf("неожиданные уроки: %+v", lessons)
	}
}

func TestResolveWithoutClassUsesPersonal(t *testing.T) {
	repo := &fakeRepo{}
	r := NewResolver(repo)

	student := testStudent(true)
	student.Grade = nil
	student.Letter = nil

	lessons, source, err := r.Resolve(student, 1)
	if err != nil {
		t.Fatal(err)
	}
	if source != SourcePersonal {
		t.Fatalf("source = %q, ожидался personal", source)
	}
	if len(lessons) != 0 {
		t.Fatalf("ожидался пустой список, получено %+v", lessons)
	}
}

func TestResolvePropagatesStoreError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("база недоступна")}
	r := NewResolver(repo)

	if _, _, err := r.Resolve(testStudent(true), 1); err == nil {
		t.Fatal("ожидалась ошибка")
	}
}

// Вторник.
func tuesday(hour, minute int) time.Time {
	return time.Date(2024, 9, 3, hour, minute, 0, 0, time.UTC)
}

func TestNextReturnsUpcomingLesson(t *testing.T) {
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-2": {{Number: 1, Subject: "Математика"}, {Number: 2, Subject: "История"}},
		},
	}
	r := NewResolver(repo)

	// Урок 1 идёт с 08:00, урок 2 начнётся в 08:50.
	next, err := r.Next(testStudent(true), tuesday(8, 45))
	if err != nil {
		t.Fatal(err)
	}
	if next == nil {
		t.Fatal("следующий урок не найден")
	}
	if next.Lesson.Number != 2 || next.Lesson.Subject != "История" {
		t.Fatalf("неожиданный урок: %+v", next.Lesson)
	}
	if next.MinutesUntil != 5 {
		t.Fatalf("до начала %d мин., ожидалось 5", next.MinutesUntil)
	}
}

func TestNextSkipsLessonStartingNow(t *testing.T) {
	// Урок, начавшийся ровно сейчас, уже идёт и не считается следующим.
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-2": {{Number: 1, Subject: "Математика"}, {Number: 2, Subject: "История"}},
		},
	}
	r := NewResolver(repo)

	next, err := r.Next(testStudent(true), tuesday(8, 0))
	if err != nil {
		t.Fatal(err)
	}
	if next == nil || next.Lesson.Number != 2 {
		t.Fatalf("ожидался урок 2, получено %+v", next)
	}
}

func TestNextAfterLastLesson(t *testing.T) {
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-2": {{Number: 1, Subject: "Математика"}},
		},
	}
	r := NewResolver(repo)

	next, err := r.Next(testStudent(true), tuesday(15, 0))
	if err != nil {
		t.Fatal(err)
	}
	if next != nil {
		t.Fatalf("ожидалось отсутствие урока, получено %+v", next)
	}
}

func TestNextOnWeekend(t *testing.T) {
	repo := &fakeRepo{
		global: map[string][]Lesson{
			"10Б-6": {{Number: 1, Subject: "Математика"}},
		},
	}
	r := NewResolver(repo)

	saturday := time.Date(2024, 9, 7, 7, 0, 0, 0, time.UTC)
	next, err := r.Next(testStudent(true), saturday)
	if err != nil {
		t.Fatal(err)
	}
	if next != nil {
		t.Fatalf("в выходной не бывает следующего урока, получено %+v", next)
	}
}
