package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"billsync/internal/domain"
)

type ActionStore struct {
	db *sqlx.DB
}

func NewActionStore(db *sqlx.DB) *ActionStore {
	return &ActionStore{db: db}
}

// InsertBatch stores actions not yet recorded for the bill, keyed by date and
// description, and returns how many were inserted.
func (s *ActionStore) InsertBatch(ctx context.Context, billID int64, actions []domain.Action) (int, error) {
	type actionKey struct {
		date        string
		description string
	}

	seen := make(map[actionKey]struct{}, len(actions))
	args := make([]interface{}, 0, len(actions)*5)
	rows := 0

	for _, action := range actions {
		k := actionKey{date: action.ActionDate.Format("2006-01-02"), description: action.Description}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		args = append(args, billID, action.ActionType, action.ActionDate, action.Description, action.Chamber)
		rows++
	}
	if rows == 0 {
		return 0, nil
	}

	query := insertSQL("bill_actions",
		[]string{"bill_id", "action_type", "action_date", "description", "chamber"}, rows,
		"ON CONFLICT (bill_id, action_date, description) DO NOTHING RETURNING true")

	return countInserted(ctx, GetExecutor(ctx, s.db), query, args)
}

func (s *ActionStore) ListByBill(ctx context.Context, billID int64) ([]domain.Action, error) {
	query := `
		SELECT id, bill_id, action_type, action_date, description, chamber, created_at
		FROM bill_actions
		WHERE bill_id = $1
		ORDER BY action_date DESC, id DESC`

	actions := []domain.Action{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &actions, query, billID)
	return actions, err
}
