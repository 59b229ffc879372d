package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eligify/eligify-backend/internal/model"
)

// ExamRepository handles exam catalog data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

const examColumns = `exam_id, exam_name, conducting_body, exam_level, exam_mode,
	        website, fee_gen_ews, total_duration_mins,
	        min_age, max_age, min_10_percent, min_12_percent, min_ug_cgpa`

// ListAll retrieves the full exam catalog in exam_id order, with subjects and
// documents attached.
func (r *ExamRepository) ListAll(ctx context.Context) ([]model.ExamCriteria, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+examColumns+` FROM exams ORDER BY exam_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.ExamCriteria
	index := map[int]int{}
	for rows.Next() {
		var e model.ExamCriteria
		if err := scanExam(rows, &e); err != nil {
			return nil, err
		}
		index[e.ExamID] = len(exams)
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSubjects(ctx, exams, index); err != nil {
		return nil, err
	}
	if err := r.attachDocuments(ctx, exams, index); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetByID retrieves a single exam with its subjects and documents.
func (r *ExamRepository) GetByID(ctx context.Context, examID int) (*model.ExamCriteria, error) {
	e := &model.ExamCriteria{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+examColumns+` FROM exams WHERE exam_id = $1`, examID)
	if err := scanExam(row, e); err != nil {
		return nil, err
	}

	exams := []model.ExamCriteria{*e}
	index := map[int]int{e.ExamID: 0}
	if err := r.attachSubjects(ctx, exams, index); err != nil {
		return nil, err
	}
	if err := r.attachDocuments(ctx, exams, index); err != nil {
		return nil, err
	}
	return &exams[0], nil
}

// Create inserts an exam with its subjects and documents in one transaction.
// Used by the catalog seeder.
func (r *ExamRepository) Create(ctx context.Context, e *model.ExamCriteria) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO exams (`+examColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (exam_id) DO UPDATE SET
		   exam_name = EXCLUDED.exam_name,
		   conducting_body = EXCLUDED.conducting_body,
		   exam_level = EXCLUDED.exam_level,
		   exam_mode = EXCLUDED.exam_mode,
		   website = EXCLUDED.website,
		   fee_gen_ews = EXCLUDED.fee_gen_ews,
		   total_duration_mins = EXCLUDED.total_duration_mins,
		   min_age = EXCLUDED.min_age,
		   max_age = EXCLUDED.max_age,
		   min_10_percent = EXCLUDED.min_10_percent,
		   min_12_percent = EXCLUDED.min_12_percent,
		   min_ug_cgpa = EXCLUDED.min_ug_cgpa`,
		e.ExamID, e.ExamName, e.ConductingBody, e.ExamLevel, e.ExamMode,
		e.Website, e.FeeGenEws, e.TotalDurationMins,
		e.MinAge, e.MaxAge, e.Min10Percent, e.Min12Percent, e.MinUgCgpa,
	)
	if err != nil {
		return err
	}

	// Re-seed associated collections from scratch.
	if _, err := tx.Exec(ctx, `DELETE FROM exam_subjects WHERE exam_id = $1`, e.ExamID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM exam_documents WHERE exam_id = $1`, e.ExamID); err != nil {
		return err
	}
	for _, s := range e.Subjects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO exam_subjects (exam_id, subject_name) VALUES ($1, $2)`, e.ExamID, s); err != nil {
			return err
		}
	}
	for _, d := range e.Documents {
		if _, err := tx.Exec(ctx,
			`INSERT INTO exam_documents (exam_id, document_name) VALUES ($1, $2)`, e.ExamID, d); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExam(row rowScanner, e *model.ExamCriteria) error {
	return row.Scan(&e.ExamID, &e.ExamName, &e.ConductingBody, &e.ExamLevel, &e.ExamMode,
		&e.Website, &e.FeeGenEws, &e.TotalDurationMins,
		&e.MinAge, &e.MaxAge, &e.Min10Percent, &e.Min12Percent, &e.MinUgCgpa)
}

func (r *ExamRepository) attachSubjects(ctx context.Context, exams []model.ExamCriteria, index map[int]int) error {
	rows, err := r.pool.Query(ctx,
		`SELECT exam_id, subject_name FROM exam_subjects ORDER BY exam_id, id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var examID int
		var name string
		if err := rows.Scan(&examID, &name); err != nil {
			return err
		}
		if i, ok := index[examID]; ok {
			exams[i].Subjects = append(exams[i].Subjects, name)
		}
	}
	return rows.Err()
}

func (r *ExamRepository) attachDocuments(ctx context.Context, exams []model.ExamCriteria, index map[int]int) error {
	rows, err := r.pool.Query(ctx,
		`SELECT exam_id, document_name FROM exam_documents ORDER BY exam_id, id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var examID int
		var name string
		if err := rows.Scan(&examID, &name); err != nil {
			return err
		}
		if i, ok := index[examID]; ok {
			exams[i].Documents = append(exams[i].Documents, name)
		}
	}
	return rows.Err()
}
