package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/model"
	"github.com/eligify/eligify-backend/internal/repository"
)

// CatalogService is the exam catalog provider. It publishes immutable,
// normalized snapshots of the catalog: the matching engine borrows a snapshot
// for the duration of a scan and never sees a half-written record.
type CatalogService struct {
	examRepo *repository.ExamRepository
	rdb      *redis.Client
	cfg      *config.Config
	log      zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(examRepo *repository.ExamRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		examRepo: examRepo,
		rdb:      rdb,
		cfg:      cfg,
		log:      log.With().Str("component", "catalog_service").Logger(),
	}
}

// GetCatalog returns the full exam catalog in exam_id order, serving from the
// Redis snapshot when present and rebuilding from PostgreSQL otherwise.
func (s *CatalogService) GetCatalog(ctx context.Context) ([]model.ExamCriteria, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.CatalogSnapshotKey()).Result()
	if err == nil {
		var exams []model.ExamCriteria
		if err := json.Unmarshal([]byte(raw), &exams); err == nil {
			return exams, nil
		}
		// Corrupt snapshot: fall through and rebuild.
		s.log.Warn().Msg("Discarding unreadable catalog snapshot")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("Catalog cache read failed, falling back to database")
	}

	return s.rebuildSnapshot(ctx)
}

// GetExamByID returns a single normalized exam record.
func (s *CatalogService) GetExamByID(ctx context.Context, examID int) (*model.ExamCriteria, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	exam.Normalize()
	return exam, nil
}

// Prewarm loads the catalog snapshot into Redis before the server accepts
// traffic, so the first eligibility checks never race on a cold cache.
func (s *CatalogService) Prewarm(ctx context.Context) error {
	exams, err := s.rebuildSnapshot(ctx)
	if err != nil {
		return err
	}
	s.log.Info().Int("exams", len(exams)).Msg("Catalog snapshot prewarmed")
	return nil
}

// rebuildSnapshot loads the catalog from PostgreSQL, normalizes every record,
// and republishes the Redis snapshot. A cache write failure is non-fatal: the
// freshly loaded catalog is still returned.
func (s *CatalogService) rebuildSnapshot(ctx context.Context) ([]model.ExamCriteria, error) {
	exams, err := s.examRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exams {
		exams[i].Normalize()
	}

	payload, err := json.Marshal(exams)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, config.CacheKey.CatalogSnapshotKey(), payload, s.cfg.CatalogCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Catalog cache write failed")
	}
	return exams, nil
}
