package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligify/eligify-backend/internal/model"
)

func candidate() *model.Candidate {
	return &model.Candidate{
		FirstName: "Asha",
		Email:     "a@b.com",
		Category:  "GEN",
		P10:       92,
		P12:       88,
		UgCgpa:    8.2,
		Age:       21,
	}
}

func exam(id int) model.ExamCriteria {
	return model.ExamCriteria{
		ExamID:       id,
		ExamName:     "Exam",
		MinAge:       18,
		MaxAge:       30,
		Min10Percent: 60,
		Min12Percent: 60,
		MinUgCgpa:    6,
	}
}

func TestEligibleAllPredicatesSatisfied(t *testing.T) {
	e := exam(1)
	assert.True(t, Eligible(candidate(), &e))
}

func TestBoundsAreInclusive(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Candidate)
		want   bool
	}{
		{"age at lower bound", func(c *model.Candidate) { c.Age = 18 }, true},
		{"age below lower bound", func(c *model.Candidate) { c.Age = 17 }, false},
		{"age at upper bound", func(c *model.Candidate) { c.Age = 30 }, true},
		{"age above upper bound", func(c *model.Candidate) { c.Age = 31 }, false},
		{"p10 exactly at threshold", func(c *model.Candidate) { c.P10 = 60 }, true},
		{"p10 just below threshold", func(c *model.Candidate) { c.P10 = 59.999 }, false},
		{"p12 exactly at threshold", func(c *model.Candidate) { c.P12 = 60 }, true},
		{"p12 just below threshold", func(c *model.Candidate) { c.P12 = 59.999 }, false},
		{"cgpa exactly at threshold", func(c *model.Candidate) { c.UgCgpa = 6 }, true},
		{"cgpa just below threshold", func(c *model.Candidate) { c.UgCgpa = 5.999 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate()
			tt.mutate(c)
			e := exam(1)
			assert.Equal(t, tt.want, Eligible(c, &e))
		})
	}
}

func TestFailingAnySinglePredicateDisqualifies(t *testing.T) {
	// Strict conjunction: one miss rules the exam out no matter how strong
	// the other scores are.
	tests := []struct {
		name   string
		mutate func(*model.Candidate)
	}{
		{"too young", func(c *model.Candidate) { c.Age = 17 }},
		{"too old", func(c *model.Candidate) { c.Age = 31 }},
		{"p10 short", func(c *model.Candidate) { c.P10 = 40 }},
		{"p12 short", func(c *model.Candidate) { c.P12 = 40 }},
		{"cgpa short", func(c *model.Candidate) { c.UgCgpa = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate()
			tt.mutate(c)
			e := exam(1)
			assert.False(t, Eligible(c, &e))
		})
	}
}

func TestEvaluatePreservesCatalogOrder(t *testing.T) {
	catalog := []model.ExamCriteria{exam(104), exam(101), exam(103), exam(102)}
	catalog[2].MinUgCgpa = 9.5 // 103 drops out

	matches := NewEngine().Evaluate(candidate(), catalog)

	require.Len(t, matches, 3)
	assert.Equal(t, 104, matches[0].ExamID)
	assert.Equal(t, 101, matches[1].ExamID)
	assert.Equal(t, 102, matches[2].ExamID)
}

func TestEvaluateNoMatchesReturnsEmptySlice(t *testing.T) {
	c := candidate()
	c.Age = 45

	matches := NewEngine().Evaluate(c, []model.ExamCriteria{exam(1), exam(2)})

	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	matches := NewEngine().Evaluate(candidate(), nil)
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestCgpaThresholdSeparatesCandidates(t *testing.T) {
	e := exam(1)
	e.MinUgCgpa = 7.5

	strong := candidate() // 8.2
	weak := candidate()
	weak.UgCgpa = 7.0

	assert.True(t, Eligible(strong, &e))
	assert.False(t, Eligible(weak, &e))
}

func TestZeroThresholdsMatchEveryone(t *testing.T) {
	// A normalized record with no requirements accepts any valid candidate,
	// including one with zero scores.
	e := model.ExamCriteria{ExamID: 7, MaxAge: model.NoUpperAgeBound}
	c := &model.Candidate{Age: 21}

	assert.True(t, Eligible(c, &e))
}

func TestOutcomesCoverWholeCatalog(t *testing.T) {
	catalog := []model.ExamCriteria{exam(101), exam(102), exam(103)}
	catalog[1].MaxAge = 20 // candidate is 21

	outcomes := NewEngine().Outcomes(candidate(), catalog)

	require.Len(t, outcomes, 3)
	assert.Equal(t, model.CheckOutcome{ExamID: 101, Eligible: true}, outcomes[0])
	assert.Equal(t, model.CheckOutcome{ExamID: 102, Eligible: false}, outcomes[1])
	assert.Equal(t, model.CheckOutcome{ExamID: 103, Eligible: true}, outcomes[2])
}
