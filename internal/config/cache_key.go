package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CatalogSnapshotKey returns the cache key for the full exam catalog snapshot.
func (r *CacheKeyStruct) CatalogSnapshotKey() string {
	return "catalog:exams:snapshot"
}

// ExamKey returns the cache key for a single exam record.
func (r *CacheKeyStruct) ExamKey(examID int) string {
	return fmt.Sprintf("catalog:exam:%d", examID)
}

var CacheKey = NewCacheKeyStruct()
