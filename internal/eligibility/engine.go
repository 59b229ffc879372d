// Package eligibility holds the pure matching rules that decide which exams a
// candidate qualifies for. No I/O, no side effects: the engine borrows a
// read-only catalog snapshot for the duration of a scan and retains nothing.
package eligibility

import (
	"github.com/eligify/eligify-backend/internal/model"
)

// Engine evaluates candidates against exam criteria. Kept as a type (rather
// than free functions) so callers can swap in an indexed implementation if
// the catalog ever outgrows a linear scan.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate returns the exams the candidate satisfies every predicate for,
// preserving the catalog's original ordering.
func (e *Engine) Evaluate(c *model.Candidate, catalog []model.ExamCriteria) []model.ExamCriteria {
	matches := []model.ExamCriteria{}
	for _, exam := range catalog {
		if Eligible(c, &exam) {
			matches = append(matches, exam)
		}
	}
	return matches
}

// Outcomes returns a per-exam verdict for the whole catalog, in catalog
// order. Used for audit recording, where failures matter as much as passes.
func (e *Engine) Outcomes(c *model.Candidate, catalog []model.ExamCriteria) []model.CheckOutcome {
	outcomes := make([]model.CheckOutcome, 0, len(catalog))
	for _, exam := range catalog {
		outcomes = append(outcomes, model.CheckOutcome{
			ExamID:   exam.ExamID,
			Eligible: Eligible(c, &exam),
		})
	}
	return outcomes
}

// Eligible reports whether the candidate satisfies all four predicates.
// Logical AND, no partial credit, no weighting.
func Eligible(c *model.Candidate, exam *model.ExamCriteria) bool {
	return ageInRange(c, exam) &&
		meets10Percent(c, exam) &&
		meets12Percent(c, exam) &&
		meetsUgCgpa(c, exam)
}

// Each predicate is an inclusive bound: a candidate sitting exactly on a
// threshold is eligible.

func ageInRange(c *model.Candidate, exam *model.ExamCriteria) bool {
	return c.Age >= exam.MinAge && c.Age <= exam.MaxAge
}

func meets10Percent(c *model.Candidate, exam *model.ExamCriteria) bool {
	return c.P10 >= exam.Min10Percent
}

func meets12Percent(c *model.Candidate, exam *model.ExamCriteria) bool {
	return c.P12 >= exam.Min12Percent
}

func meetsUgCgpa(c *model.Candidate, exam *model.ExamCriteria) bool {
	return c.UgCgpa >= exam.MinUgCgpa
}
