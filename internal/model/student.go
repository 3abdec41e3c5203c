package model

import (
	"fmt"
	"math"
)

// SubjectCount is the fixed number of marks carried by every student record.
const SubjectCount = 3

type Student struct {
	Roll  string            `json:"roll"` // Roll is the primary key
	Name  string            `json:"name"`
	Marks [SubjectCount]int `json:"marks"`
}

func (s Student) Total() int {
	total := 0
	for _, m := range s.Marks {
		total += m
	}
	return total
}

// Average returns the mean of the marks rounded to 2 decimal places,
// half away from zero.
func (s Student) Average() float64 {
	if len(s.Marks) == 0 {
		return 0.0
	}
	avg := float64(s.Total()) / float64(len(s.Marks))
	return math.Round(avg*100) / 100
}

// Grade bands the average into six tiers. Bands are inclusive on the
// lower bound: 90 and above is A+, 89.99 is A.
func (s Student) Grade() string {
	avg := s.Average()
	switch {
	case avg >= 90:
		return "A+"
	case avg >= 80:
		return "A"
	case avg >= 70:
		return "B"
	case avg >= 60:
		return "C"
	case avg >= 50:
		return "D"
	default:
		return "F"
	}
}

// Remark maps the grade to a fixed textual judgment.
func (s Student) Remark() string {
	switch s.Grade() {
	case "A+", "A":
		return "Excellent"
	case "B":
		return "Good"
	case "C":
		return "Average"
	case "D":
		return "Needs Improvement"
	default:
		return "Fail"
	}
}

// FormatAverage renders the average with two decimal places, the way it
// appears in CSV exports and report cards.
func (s Student) FormatAverage() string {
	return fmt.Sprintf("%.2f", s.Average())
}

// FormatMarks renders the marks as a literal 3-element list, e.g. "[90, 92, 88]".
func (s Student) FormatMarks() string {
	return fmt.Sprintf("[%d, %d, %d]", s.Marks[0], s.Marks[1], s.Marks[2])
}
