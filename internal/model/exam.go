package model

// NoUpperAgeBound is the catalog convention for "no maximum age". Records
// arriving without a max_age are normalized to it before evaluation.
const NoUpperAgeBound = 99

// ExamCriteria is one exam record: display metadata carried through untouched,
// plus the thresholds the matching engine evaluates. All threshold bounds are
// inclusive.
type ExamCriteria struct {
	ExamID            int      `json:"exam_id"`
	ExamName          string   `json:"exam_name"`
	ConductingBody    string   `json:"conducting_body"`
	ExamLevel         string   `json:"exam_level"`
	ExamMode          string   `json:"exam_mode"`
	Website           string   `json:"website"`
	FeeGenEws         int      `json:"fee_gen_ews"`
	TotalDurationMins int      `json:"total_duration_mins"`
	MinAge            int      `json:"min_age"`
	MaxAge            int      `json:"max_age"`
	Min10Percent      float64  `json:"min_10_percent"`
	Min12Percent      float64  `json:"min_12_percent"`
	MinUgCgpa         float64  `json:"min_ug_cgpa"`
	Subjects          []string `json:"subjects"`
	Documents         []string `json:"documents"`
}

// Normalize fills in explicit defaults for absent thresholds so the engine
// never compares against missing values: no max_age means no upper bound,
// missing minimums mean no constraint (zero). The catalog provider applies
// this before publishing a snapshot.
func (e *ExamCriteria) Normalize() {
	if e.MaxAge <= 0 {
		e.MaxAge = NoUpperAgeBound
	}
	if e.MinAge < 0 {
		e.MinAge = 0
	}
	if e.Min10Percent < 0 {
		e.Min10Percent = 0
	}
	if e.Min12Percent < 0 {
		e.Min12Percent = 0
	}
	if e.MinUgCgpa < 0 {
		e.MinUgCgpa = 0
	}
	if e.Subjects == nil {
		e.Subjects = []string{}
	}
	if e.Documents == nil {
		e.Documents = []string{}
	}
}
