// Package intake holds the per-user conversation state the bot keeps
// between messages: the two-step personal-schedule builder and the
// grade-then-letter class selection. Sessions live in memory only and are
// lost on restart, in which case the user simply starts the flow again.
package intake

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// ErrNoSession means the chat has no schedule intake in progress.
var ErrNoSession = errors.New("нет активной сессии ввода расписания")

// Step of the personal-schedule builder.
type Step int

const (
	// StepDay — ждём номер дня недели (1-5).
	StepDay Step = iota + 1
	// StepSubjects — ждём список предметов, по одному на строку.
	StepSubjects
)

// Outcome of feeding one text message into the builder.
type Outcome int

const (
	// OutcomeDayAccepted — день принят, ждём предметы.
	OutcomeDayAccepted Outcome = iota + 1
	// OutcomeInvalidDay — ввод не является числом 1-5, состояние не изменилось.
	OutcomeInvalidDay
	// OutcomeEmptySubjects — ни одной непустой строки, состояние не изменилось.
	OutcomeEmptySubjects
	// OutcomeSaved — расписание заменено, сессия завершена.
	OutcomeSaved
)

// Result reports what happened to the message and, for OutcomeSaved, which
// day and subjects were written.
type Result struct {
	Outcome  Outcome
	Day      int
	Subjects []string
}

// Saver persists the finished personal schedule for one day.
type Saver interface {
	ReplacePersonalLessons(studentID uint, day int, subjects []string) error
}

type session struct {
	step Step
	day  int
}

// Store keeps the in-flight sessions, keyed by chat id.
type Store struct {
	saver Saver

	mu         sync.Mutex
	sessions   map[int64]*session
	classPicks map[int64]int // выбранный класс, ждём букву
}

func NewStore(saver Saver) *Store {
	return &Store{
		saver:      saver,
		sessions:   make(map[int64]*session),
		classPicks: make(map[int64]int),
	}
}

// Begin starts the personal-schedule flow for a chat, replacing any
// previous unfinished session.
func (s *Store) Begin(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = &session{step: StepDay}
}

// Active reports whether the chat has an unfinished schedule session.
func (s *Store) Active(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[chatID]
	return ok
}

// Step returns the current step of the chat's session.
func (s *Store) Step(chatID int64) (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		return 0, false
	}
	return sess.step, true
}

// Cancel drops the chat's session, if any.
func (s *Store) Cancel(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
	delete(s.classPicks, chatID)
}

// HandleText advances the chat's session with one message. Invalid input
// keeps the session where it is so the user can retry. A storage error is
// returned as-is, also without losing the session.
func (s *Store) HandleText(chatID int64, studentID uint, text string) (Result, error) {
	s.mu.Lock()
	sess, ok := s.sessions[chatID]
	s.mu.Unlock()
	if !ok {
		return Result{}, ErrNoSession
	}

	switch sess.step {
	case StepDay:
		day, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || day < 1 || day > 5 {
			return Result{Outcome: OutcomeInvalidDay}, nil
		}
		s.mu.Lock()
		sess.day = day
		sess.step = StepSubjects
		s.mu.Unlock()
		return Result{Outcome: OutcomeDayAccepted, Day: day}, nil

	case StepSubjects:
		subjects := SplitSubjects(text)
		if len(subjects) == 0 {
			return Result{Outcome: OutcomeEmptySubjects, Day: sess.day}, nil
		}
		if err := s.saver.ReplacePersonalLessons(studentID, sess.day, subjects); err != nil {
			return Result{}, err
		}
		day := sess.day
		s.mu.Lock()
		delete(s.sessions, chatID)
		s.mu.Unlock()
		return Result{Outcome: OutcomeSaved, Day: day, Subjects: subjects}, nil
	}

	return Result{}, ErrNoSession
}

// SplitSubjects turns the raw message into the subject list: one subject
// per line, trimmed, empty lines dropped.
func SplitSubjects(text string) []string {
	var subjects []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects
}

// BeginClass remembers the grade a user tapped while they pick a letter.
func (s *Store) BeginClass(chatID int64, grade int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classPicks[chatID] = grade
}

// TakeClass returns and clears the remembered grade.
func (s *Store) TakeClass(chatID int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	grade, ok := s.classPicks[chatID]
	if ok {
		delete(s.classPicks, chatID)
	}
	return grade, ok
}
