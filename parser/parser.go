// Package parser загружает опубликованную HTML-страницу с расписанием школы
// и превращает её в набор глобальных уроков.
//
// Ожидаемая разметка: по одной таблице на класс. Подпись таблицы (caption
// или первая ячейка thead) содержит класс вида "10Б". Первая строка
// заголовка перечисляет дни ("ПН".."ПТ"), каждая строка tbody начинается с
// номера урока, дальше идут предметы по дням; пустые ячейки пропускаются.
package parser

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/abumalik-cmd/tg-bot/models"

	"github.com/PuerkitoBio/goquery"
)

var classRx = regexp.MustCompile(`^(\d{1,2})\s*([А-Яа-я])$`)

// FetchGlobalLessons downloads and parses the timetable page.
func FetchGlobalLessons(url string) ([]models.GlobalLesson, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("страница расписания вернула статус %d", resp.StatusCode)
	}
	return ParseTimetable(resp.Body)
}

// ParseTimetable reads the timetable HTML and returns the lessons of every
// class table it recognises. Tables without a valid class label are
// skipped, not failed on.
func ParseTimetable(r io.Reader) ([]models.GlobalLesson, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var lessons []models.GlobalLesson
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		grade, letter, ok := classOfTable(table)
		if !ok {
			return
		}
		days := dayColumns(table)
		if len(days) == 0 {
			return
		}

		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			number, fromTh, ok := lessonNumber(row)
			if !ok {
				return
			}
			row.Find("td").Each(func(col int, cell *goquery.Selection) {
				// Без th номер урока занимает первую ячейку данных.
				if !fromTh {
					if col == 0 {
						return
					}
					col--
				}
				if col >= len(days) {
					return
				}
				subject := strings.TrimSpace(cell.Text())
				if subject == "" {
					return
				}
				lessons = append(lessons, models.GlobalLesson{
					Grade:   grade,
					Letter:  letter,
					Day:     days[col],
					Number:  number,
					Subject: subject,
				})
			})
		})
	})

	return lessons, nil
}

// classOfTable reads the class label from the caption or, failing that,
// the first header cell.
func classOfTable(table *goquery.Selection) (int, string, bool) {
	label := strings.TrimSpace(table.Find("caption").First().Text())
	if label == "" {
		label = strings.TrimSpace(table.Find("thead tr:first-child th").First().Text())
	}

	m := classRx.FindStringSubmatch(label)
	if m == nil {
		return 0, "", false
	}
	grade, err := strconv.Atoi(m[1])
	if err != nil || !models.ValidGrade(grade) {
		return 0, "", false
	}
	letter, ok := models.NormalizeLetter(m[2])
	if !ok {
		return 0, "", false
	}
	return grade, letter, true
}

// dayColumns maps header columns to ISO weekday numbers, in order.
func dayColumns(table *goquery.Selection) []int {
	short := map[string]int{}
	for day, name := range map[int]string{1: "ПН", 2: "ВТ", 3: "СР", 4: "ЧТ", 5: "ПТ"} {
		short[name] = day
	}

	var days []int
	table.Find("thead tr").Last().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		name := strings.ToUpper(strings.TrimSpace(cell.Text()))
		if day, ok := short[name]; ok {
			days = append(days, day)
		}
	})
	return days
}

// lessonNumber reads the lesson number from the row's th cell, or from the
// first td when the markup has no row header.
func lessonNumber(row *goquery.Selection) (int, bool, bool) {
	fromTh := true
	raw := strings.TrimSpace(row.Find("th").First().Text())
	if raw == "" {
		fromTh = false
		raw = strings.TrimSpace(row.Find("td").First().Text())
	}
	raw = strings.TrimSuffix(raw, ".")

	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 || number > 8 {
		return 0, false, false
	}
	return number, fromTh, true
}
