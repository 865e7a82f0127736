package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"billsync/internal/domain"
)

type CosponsorStore struct {
	db *sqlx.DB
}

func NewCosponsorStore(db *sqlx.DB) *CosponsorStore {
	return &CosponsorStore{db: db}
}

// UpsertBatch inserts or refreshes cosponsors and returns how many were new.
// Withdrawal dates are refreshed on existing rows.
func (s *CosponsorStore) UpsertBatch(ctx context.Context, billID int64, cosponsors []domain.Cosponsor) (int, error) {
	seen := make(map[string]struct{}, len(cosponsors))
	args := make([]interface{}, 0, len(cosponsors)*7)
	rows := 0

	for _, c := range cosponsors {
		if _, ok := seen[c.BioguideID]; ok || c.BioguideID == "" {
			continue
		}
		seen[c.BioguideID] = struct{}{}
		args = append(args, billID, c.Name, c.Party, c.State, c.BioguideID, c.SponsoredDate, c.WithdrawnDate)
		rows++
	}
	if rows == 0 {
		return 0, nil
	}

	query := insertSQL("bill_cosponsors",
		[]string{"bill_id", "name", "party", "state", "bioguide_id", "sponsored_date", "withdrawn_date"}, rows,
		`ON CONFLICT (bill_id, bioguide_id) DO UPDATE SET
			name = EXCLUDED.name,
			party = EXCLUDED.party,
			state = EXCLUDED.state,
			sponsored_date = EXCLUDED.sponsored_date,
			withdrawn_date = EXCLUDED.withdrawn_date
		RETURNING (xmax = 0)`)

	return countInserted(ctx, GetExecutor(ctx, s.db), query, args)
}

func (s *CosponsorStore) ListByBill(ctx context.Context, billID int64) ([]domain.Cosponsor, error) {
	query := `
		SELECT id, bill_id, name, party, state, bioguide_id, sponsored_date, withdrawn_date, created_at
		FROM bill_cosponsors
		WHERE bill_id = $1
		ORDER BY name`

	cosponsors := []domain.Cosponsor{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &cosponsors, query, billID)
	return cosponsors, err
}
