package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/eligibility"
	"github.com/eligify/eligify-backend/internal/model"
)

// EligibilityService runs the full check flow: candidate construction and
// validation, the matching scan over the catalog snapshot, and async audit
// recording of every per-exam verdict.
type EligibilityService struct {
	catalog *CatalogService
	engine  *eligibility.Engine
	rdb     *redis.Client
	log     zerolog.Logger
	now     func() time.Time
}

// NewEligibilityService creates a new EligibilityService.
func NewEligibilityService(catalog *CatalogService, engine *eligibility.Engine, rdb *redis.Client, log zerolog.Logger) *EligibilityService {
	return &EligibilityService{
		catalog: catalog,
		engine:  engine,
		rdb:     rdb,
		log:     log.With().Str("component", "eligibility_service").Logger(),
		now:     time.Now,
	}
}

// Check validates the raw input and, if it forms a valid candidate, evaluates
// the candidate against the catalog. A failed validation is a normal outcome,
// not an error: the ValidationResult carries the full message list.
func (s *EligibilityService) Check(ctx context.Context, in model.CandidateInput) (*model.MatchResult, model.ValidationResult, error) {
	candidate, vr := model.NewCandidate(in, s.now())
	if !vr.Valid {
		return nil, vr, nil
	}

	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, vr, err
	}

	matches := s.engine.Evaluate(candidate, catalog)
	s.enqueueRecord(ctx, candidate, s.engine.Outcomes(candidate, catalog))

	s.log.Info().
		Int("catalog_size", len(catalog)).
		Int("matches", len(matches)).
		Int("age", candidate.Age).
		Msg("Eligibility check completed")

	return &model.MatchResult{
		Candidate:    candidate,
		Matches:      matches,
		TotalMatches: len(matches),
	}, vr, nil
}

// enqueueRecord hands the per-exam outcomes to the check recorder worker.
// Recording is best-effort: a queue failure must not fail the check itself.
func (s *EligibilityService) enqueueRecord(ctx context.Context, candidate *model.Candidate, outcomes []model.CheckOutcome) {
	payload, err := json.Marshal(model.RecordChecksPayload{
		Candidate: *candidate,
		Outcomes:  outcomes,
		CheckedAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Marshal check record failed")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.RecordChecksQueue, payload).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Enqueue check record failed")
	}
}
