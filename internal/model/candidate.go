package model

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RawNumber is a numeric field captured as raw text. It binds from both JSON
// numbers and quoted strings, preserving the exact digits the client sent so
// the decimal precision guard can inspect them before any float conversion.
type RawNumber string

func (n *RawNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
		return nil
	}
	*n = RawNumber(data)
	return nil
}

func (n RawNumber) String() string {
	return string(n)
}

// CandidateInput is the raw, possibly string-typed payload of an eligibility
// check request. No binding constraints here: domain validation evaluates
// every rule and reports the full violation list instead of failing fast.
type CandidateInput struct {
	FirstName string    `json:"firstName"`
	DOB       string    `json:"dob"`
	Email     string    `json:"email"`
	Category  string    `json:"category"`
	P10       RawNumber `json:"p10"`
	P12       RawNumber `json:"p12"`
	UgCgpa    RawNumber `json:"ugCgpa"`
}

// Candidate is a validated applicant profile. Immutable after construction;
// Age is always derived from DOB, never supplied by the client.
type Candidate struct {
	FirstName string  `json:"firstName"`
	DOB       string  `json:"dob"`
	Email     string  `json:"email"`
	Category  string  `json:"category"`
	P10       float64 `json:"p10"`
	P12       float64 `json:"p12"`
	UgCgpa    float64 `json:"ugCgpa"`
	Age       int     `json:"age"`
}

// ValidationResult reports the outcome of candidate validation. Errors holds
// every violated rule message, in evaluation order.
type ValidationResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

const precisionErrorMessage = "Please enter values with at most 3 decimal places for percentages and CGPA."

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	decimalPattern = regexp.MustCompile(`^\d+(?:\.(\d+))?$`)
)

// NewCandidate normalizes and validates raw input into a Candidate, deriving
// age as of now. It never returns an error for malformed input: failures are
// encoded in the ValidationResult and the candidate is nil when invalid.
//
// The precision guard runs first, on the raw strings, and trips as a single
// combined message independent of the per-field rules.
func NewCandidate(in CandidateInput, now time.Time) (*Candidate, ValidationResult) {
	if hasTooManyDecimals(in.P10) || hasTooManyDecimals(in.P12) || hasTooManyDecimals(in.UgCgpa) {
		return nil, ValidationResult{Valid: false, Errors: []string{precisionErrorMessage}}
	}

	var errs []string

	firstName := strings.TrimSpace(in.FirstName)
	if len(firstName) < 2 {
		errs = append(errs, "First name must be at least 2 characters")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailPattern.MatchString(email) {
		errs = append(errs, "Invalid email format")
	}

	if in.Category == "" {
		errs = append(errs, "Category is required")
	}

	// Strict numeric parse: an unreadable value is an input error, not a
	// silent zero that would quietly disqualify the candidate.
	p10, errs := parseScore(in.P10, "10th percentage", errs)
	p12, errs := parseScore(in.P12, "12th percentage", errs)
	ugCgpa, errs := parseScore(in.UgCgpa, "UG CGPA", errs)

	if p10 < 0 || p10 > 100 {
		errs = append(errs, "10th percentage must be between 0 and 100")
	}
	if p12 < 0 || p12 > 100 {
		errs = append(errs, "12th percentage must be between 0 and 100")
	}
	if ugCgpa < 0 || ugCgpa > 10 {
		errs = append(errs, "UG CGPA must be between 0 and 10")
	}

	age := 0
	if in.DOB == "" {
		errs = append(errs, "Date of birth is required")
	} else {
		birth, err := time.Parse("2006-01-02", in.DOB)
		if err != nil {
			errs = append(errs, "Date of birth must be a valid date (YYYY-MM-DD)")
		} else {
			age = ageAt(birth, now)
		}
	}

	if len(errs) > 0 {
		return nil, ValidationResult{Valid: false, Errors: errs}
	}

	return &Candidate{
		FirstName: firstName,
		DOB:       in.DOB,
		Email:     email,
		Category:  in.Category,
		P10:       p10,
		P12:       p12,
		UgCgpa:    ugCgpa,
		Age:       age,
	}, ValidationResult{Valid: true}
}

// hasTooManyDecimals reports whether a raw numeric value carries more than
// 3 digits after the decimal point. Non-numeric text is left to the strict
// parse to reject.
func hasTooManyDecimals(raw RawNumber) bool {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return false
	}
	m := decimalPattern.FindStringSubmatch(s)
	return m != nil && len(m[1]) > 3
}

func parseScore(raw RawNumber, label string, errs []string) (float64, []string) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, errs
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, append(errs, label+" must be a number")
	}
	return v, errs
}

// ageAt derives age in whole years, subtracting one if the birthday has not
// yet been reached in the current year. Never negative.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
