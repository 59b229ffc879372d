package model

import "time"

// CheckOutcome is one exam's pass/fail verdict for a candidate.
type CheckOutcome struct {
	ExamID   int  `json:"exam_id"`
	Eligible bool `json:"eligible"`
}

// MatchResult is the eligibility check output: the eligible subset of the
// catalog in its original order, plus the candidate profile echoed back for
// diagnostic display when nothing matched.
type MatchResult struct {
	Candidate    *Candidate     `json:"candidate"`
	Matches      []ExamCriteria `json:"matches"`
	TotalMatches int            `json:"total_matches"`
}

// RecordChecksPayload is the queue message consumed by the check recorder
// worker. Outcomes covers the full catalog, not just matches.
type RecordChecksPayload struct {
	Candidate Candidate      `json:"candidate"`
	Outcomes  []CheckOutcome `json:"outcomes"`
	CheckedAt time.Time      `json:"checked_at"`
}
