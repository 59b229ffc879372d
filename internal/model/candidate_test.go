package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed evaluation date so age derivation is deterministic.
var evalDate = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func validInput() CandidateInput {
	return CandidateInput{
		FirstName: "Asha",
		DOB:       "2003-06-15",
		Email:     "a@b.com",
		Category:  "GEN",
		P10:       "92",
		P12:       "88",
		UgCgpa:    "8.2",
	}
}

func TestNewCandidateValid(t *testing.T) {
	c, vr := NewCandidate(validInput(), evalDate)
	require.True(t, vr.Valid)
	require.NotNil(t, c)

	assert.Equal(t, "Asha", c.FirstName)
	assert.Equal(t, "a@b.com", c.Email)
	assert.Equal(t, 92.0, c.P10)
	assert.Equal(t, 88.0, c.P12)
	assert.Equal(t, 8.2, c.UgCgpa)
	assert.Equal(t, 21, c.Age)
}

func TestNewCandidateNormalizesInput(t *testing.T) {
	in := validInput()
	in.FirstName = "  Asha  "
	in.Email = "  ASHA@Example.COM "

	c, vr := NewCandidate(in, evalDate)
	require.True(t, vr.Valid)
	assert.Equal(t, "Asha", c.FirstName)
	assert.Equal(t, "asha@example.com", c.Email)
}

func TestAgeDerivation(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		want int
	}{
		{"birthday already passed this year", "2003-06-15", 21},
		{"birthday today", "2003-06-20", 21},
		{"birthday later this month", "2003-06-25", 20},
		{"birthday in a later month", "2003-07-01", 20},
		{"birthday in an earlier month", "2003-05-01", 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.DOB = tt.dob
			c, vr := NewCandidate(in, evalDate)
			require.True(t, vr.Valid)
			assert.Equal(t, tt.want, c.Age)
		})
	}
}

func TestValidationCollectsAllViolations(t *testing.T) {
	in := validInput()
	in.FirstName = ""
	in.P10 = "120"

	c, vr := NewCandidate(in, evalDate)
	assert.Nil(t, c)
	require.False(t, vr.Valid)
	assert.Contains(t, vr.Errors, "First name must be at least 2 characters")
	assert.Contains(t, vr.Errors, "10th percentage must be between 0 and 100")
	assert.Len(t, vr.Errors, 2)
}

func TestValidationRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CandidateInput)
		message string
	}{
		{"short first name", func(in *CandidateInput) { in.FirstName = "A" }, "First name must be at least 2 characters"},
		{"whitespace first name", func(in *CandidateInput) { in.FirstName = "   " }, "First name must be at least 2 characters"},
		{"missing email", func(in *CandidateInput) { in.Email = "" }, "Invalid email format"},
		{"email without domain dot", func(in *CandidateInput) { in.Email = "a@b" }, "Invalid email format"},
		{"email with whitespace", func(in *CandidateInput) { in.Email = "a b@c.com" }, "Invalid email format"},
		{"missing category", func(in *CandidateInput) { in.Category = "" }, "Category is required"},
		{"p12 above range", func(in *CandidateInput) { in.P12 = "100.5" }, "12th percentage must be between 0 and 100"},
		{"cgpa above range", func(in *CandidateInput) { in.UgCgpa = "10.5" }, "UG CGPA must be between 0 and 10"},
		{"negative p10", func(in *CandidateInput) { in.P10 = "-1" }, "10th percentage must be between 0 and 100"},
		{"missing dob", func(in *CandidateInput) { in.DOB = "" }, "Date of birth is required"},
		{"garbled dob", func(in *CandidateInput) { in.DOB = "15/06/2003" }, "Date of birth must be a valid date (YYYY-MM-DD)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			c, vr := NewCandidate(in, evalDate)
			assert.Nil(t, c)
			require.False(t, vr.Valid)
			assert.Contains(t, vr.Errors, tt.message)
		})
	}
}

func TestStrictNumericParse(t *testing.T) {
	// An unreadable score is an input error, never a silent zero.
	in := validInput()
	in.P10 = "ninety"

	c, vr := NewCandidate(in, evalDate)
	assert.Nil(t, c)
	require.False(t, vr.Valid)
	assert.Contains(t, vr.Errors, "10th percentage must be a number")
}

func TestEmptyScoreIsExplicitZero(t *testing.T) {
	// No UG degree: an empty CGPA is a legitimate zero, not an error.
	in := validInput()
	in.UgCgpa = ""

	c, vr := NewCandidate(in, evalDate)
	require.True(t, vr.Valid)
	assert.Equal(t, 0.0, c.UgCgpa)
}

func TestPrecisionGuard(t *testing.T) {
	t.Run("more than 3 decimals rejected", func(t *testing.T) {
		in := validInput()
		in.P10 = "12.3456"
		c, vr := NewCandidate(in, evalDate)
		assert.Nil(t, c)
		require.False(t, vr.Valid)
		assert.Equal(t, []string{precisionErrorMessage}, vr.Errors)
	})

	t.Run("exactly 3 decimals accepted", func(t *testing.T) {
		in := validInput()
		in.P10 = "92.125"
		c, vr := NewCandidate(in, evalDate)
		require.True(t, vr.Valid)
		assert.Equal(t, 92.125, c.P10)
	})

	t.Run("guard takes precedence over every per-field rule", func(t *testing.T) {
		// firstName is also invalid here, but the guard reports alone.
		in := validInput()
		in.FirstName = ""
		in.UgCgpa = "8.1234"
		_, vr := NewCandidate(in, evalDate)
		require.False(t, vr.Valid)
		assert.Equal(t, []string{precisionErrorMessage}, vr.Errors)
	})
}

func TestRawNumberUnmarshal(t *testing.T) {
	var in CandidateInput
	payload := `{"firstName":"Asha","dob":"2003-06-15","email":"a@b.com","category":"GEN",` +
		`"p10":92,"p12":"88.5","ugCgpa":null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.Equal(t, RawNumber("92"), in.P10)
	assert.Equal(t, RawNumber("88.5"), in.P12)
	assert.Equal(t, RawNumber(""), in.UgCgpa)
}
