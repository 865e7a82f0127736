package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"billsync/internal/domain"
)

type SubjectStore struct {
	db *sqlx.DB
}

func NewSubjectStore(db *sqlx.DB) *SubjectStore {
	return &SubjectStore{db: db}
}

// UpsertBatch links subjects to a bill and returns how many were new.
func (s *SubjectStore) UpsertBatch(ctx context.Context, billID int64, subjects []domain.Subject) (int, error) {
	seen := make(map[string]struct{}, len(subjects))
	args := make([]interface{}, 0, len(subjects)*3)
	rows := 0

	for _, subject := range subjects {
		if _, ok := seen[subject.Name]; ok || subject.Name == "" {
			continue
		}
		seen[subject.Name] = struct{}{}
		args = append(args, billID, subject.Name, subject.PolicyArea)
		rows++
	}
	if rows == 0 {
		return 0, nil
	}

	query := insertSQL("bill_subjects", []string{"bill_id", "name", "policy_area"}, rows,
		"ON CONFLICT (bill_id, name) DO UPDATE SET policy_area = EXCLUDED.policy_area RETURNING (xmax = 0)")

	return countInserted(ctx, GetExecutor(ctx, s.db), query, args)
}

func (s *SubjectStore) ListByBill(ctx context.Context, billID int64) ([]domain.Subject, error) {
	query := `
		SELECT id, bill_id, name, policy_area, created_at
		FROM bill_subjects
		WHERE bill_id = $1
		ORDER BY name`

	subjects := []domain.Subject{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subjects, query, billID)
	return subjects, err
}
