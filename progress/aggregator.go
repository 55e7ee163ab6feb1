// Package progress derives the dashboard and profile metrics from the
// durable quiz-result and course-progress records. Everything here is
// recomputed on read from the full per-user history; nothing is cached
// or stored, so the derived views cannot drift from the records.
package progress

import (
	"math"
	"time"

	"learnhub/models"

	"github.com/jinzhu/now"
)

// SubjectRollup aggregates course progress per subject
type SubjectRollup struct {
	Subject         string `json:"subject"`
	AverageProgress int    `json:"average_progress"`
	CourseCount     int    `json:"course_count"`
}

// OverallProgress is the mean completion percentage across all course
// progress records; 0 with no records.
func OverallProgress(records []models.UserProgress) int {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range records {
		sum += rec.Progress
	}
	return int(math.Round(float64(sum) / float64(len(records))))
}

// AverageQuizScore is the mean of per-result percentages, rounded; 0
// with no results.
func AverageQuizScore(results []models.QuizResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range results {
		sum += float64(r.Score) / float64(r.TotalQuestions) * 100
	}
	return int(math.Round(sum / float64(len(results))))
}

// SubjectRollups groups course progress by the subject of the referenced
// course. Records pointing at a course missing from the catalog are
// skipped; historical progress can outlive catalog entries. Emission
// order is the order subjects are first seen in the records, so a given
// input set always produces the same output.
func SubjectRollups(records []models.UserProgress, courses []models.Course) []SubjectRollup {
	subjectByCourse := make(map[uint]string, len(courses))
	for _, course := range courses {
		subjectByCourse[course.ID] = course.Subject
	}

	type bucket struct {
		sum   int
		count int
	}
	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		subject, ok := subjectByCourse[rec.CourseID]
		if !ok {
			continue
		}
		b, seen := buckets[subject]
		if !seen {
			b = &bucket{}
			buckets[subject] = b
			order = append(order, subject)
		}
		b.sum += rec.Progress
		b.count++
	}

	rollups := make([]SubjectRollup, 0, len(order))
	for _, subject := range order {
		b := buckets[subject]
		rollups = append(rollups, SubjectRollup{
			Subject:         subject,
			AverageProgress: int(math.Round(float64(b.sum) / float64(b.count))),
			CourseCount:     b.count,
		})
	}
	return rollups
}

// DayStreak counts consecutive days with learning activity (a quiz
// completed or a course touched), ending today or yesterday relative to
// ref. A streak broken yesterday still shows until the day is over.
func DayStreak(results []models.QuizResult, records []models.UserProgress, ref time.Time) int {
	days := make(map[string]bool)
	for _, r := range results {
		days[r.CompletedAt.Format("2006-01-02")] = true
	}
	for _, rec := range records {
		if rec.LastAccessed != nil {
			days[rec.LastAccessed.Format("2006-01-02")] = true
		}
	}
	if len(days) == 0 {
		return 0
	}

	day := now.With(ref).BeginningOfDay()
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
