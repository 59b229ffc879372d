package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	e := ExamCriteria{ExamID: 1, ExamName: "Incomplete", MinAge: 17}
	e.Normalize()

	assert.Equal(t, NoUpperAgeBound, e.MaxAge)
	assert.Equal(t, 17, e.MinAge)
	assert.Equal(t, 0.0, e.Min10Percent)
	assert.Equal(t, 0.0, e.Min12Percent)
	assert.Equal(t, 0.0, e.MinUgCgpa)
	assert.NotNil(t, e.Subjects)
	assert.NotNil(t, e.Documents)
}

func TestNormalizeLeavesCompleteRecordsAlone(t *testing.T) {
	e := ExamCriteria{
		ExamID: 103, MinAge: 21, MaxAge: 32,
		Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 6.0,
		Subjects:  []string{"General Studies I"},
		Documents: []string{"UG Degree"},
	}
	e.Normalize()

	assert.Equal(t, 32, e.MaxAge)
	assert.Equal(t, 6.0, e.MinUgCgpa)
	assert.Equal(t, []string{"General Studies I"}, e.Subjects)
}

func TestNormalizeClampsNegativeThresholds(t *testing.T) {
	e := ExamCriteria{MinAge: -1, MaxAge: -5, Min10Percent: -10, Min12Percent: -1, MinUgCgpa: -0.5}
	e.Normalize()

	assert.Equal(t, 0, e.MinAge)
	assert.Equal(t, NoUpperAgeBound, e.MaxAge)
	assert.Equal(t, 0.0, e.Min10Percent)
	assert.Equal(t, 0.0, e.Min12Percent)
	assert.Equal(t, 0.0, e.MinUgCgpa)
}
