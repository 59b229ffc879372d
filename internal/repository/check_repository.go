package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckRepository persists eligibility check audit rows.
type CheckRepository struct {
	pool *pgxpool.Pool
}

// NewCheckRepository creates a new CheckRepository.
func NewCheckRepository(pool *pgxpool.Pool) *CheckRepository {
	return &CheckRepository{pool: pool}
}

// InsertCheck records one candidate-vs-exam verdict with the candidate inputs
// snapshot that produced it.
func (r *CheckRepository) InsertCheck(ctx context.Context, examID int, eligible bool, snapshot []byte, runAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO eligibility_checks (exam_id, eligible, inputs_snapshot, run_at)
		 VALUES ($1, $2, $3, $4)`,
		examID, eligible, snapshot, runAt)
	return err
}
