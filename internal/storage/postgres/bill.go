package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"billsync/internal/domain"
)

const billColumns = `
	id, congress_number, bill_type, bill_number, chamber, title, short_title,
	summary, status, latest_action, latest_action_date, sponsor_name,
	sponsor_party, sponsor_state, sponsor_bioguide_id, congress_url,
	propublica_id, govtrack_id, introduced_date, house_passage_date,
	senate_passage_date, enacted_date, created_at, updated_at, last_synced`

type BillStore struct {
	db *sqlx.DB
}

func NewBillStore(db *sqlx.DB) *BillStore {
	return &BillStore{db: db}
}

// GetByKey returns nil, nil when no bill has the key.
func (s *BillStore) GetByKey(ctx context.Context, key domain.BillKey) (*domain.Bill, error) {
	query := `SELECT` + billColumns + `
		FROM bills
		WHERE congress_number = $1 AND bill_type = $2 AND bill_number = $3`

	var bill domain.Bill
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &bill, query,
		key.Congress, strings.ToLower(key.Type), key.Number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *BillStore) Create(ctx context.Context, bill *domain.Bill) error {
	query := `
		INSERT INTO bills (
			congress_number, bill_type, bill_number, chamber, title, short_title,
			summary, status, latest_action, latest_action_date, sponsor_name,
			sponsor_party, sponsor_state, sponsor_bioguide_id, congress_url,
			propublica_id, govtrack_id, introduced_date, house_passage_date,
			senate_passage_date, enacted_date, last_synced
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING id, created_at, updated_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		bill.Congress,
		bill.BillType,
		bill.BillNumber,
		bill.Chamber,
		bill.Title,
		bill.ShortTitle,
		bill.Summary,
		bill.Status,
		bill.LatestAction,
		bill.LatestActionDate,
		bill.SponsorName,
		bill.SponsorParty,
		bill.SponsorState,
		bill.SponsorBioguideID,
		bill.CongressURL,
		bill.PropublicaID,
		bill.GovtrackID,
		bill.IntroducedDate,
		bill.HousePassageDate,
		bill.SenatePassageDate,
		bill.EnactedDate,
		bill.LastSynced,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)
}

func (s *BillStore) Update(ctx context.Context, bill *domain.Bill) error {
	query := `
		UPDATE bills SET
			chamber = $2,
			title = $3,
			short_title = $4,
			summary = $5,
			status = $6,
			latest_action = $7,
			latest_action_date = $8,
			sponsor_name = $9,
			sponsor_party = $10,
			sponsor_state = $11,
			sponsor_bioguide_id = $12,
			congress_url = $13,
			propublica_id = $14,
			govtrack_id = $15,
			introduced_date = $16,
			house_passage_date = $17,
			senate_passage_date = $18,
			enacted_date = $19,
			last_synced = $20,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		bill.ID,
		bill.Chamber,
		bill.Title,
		bill.ShortTitle,
		bill.Summary,
		bill.Status,
		bill.LatestAction,
		bill.LatestActionDate,
		bill.SponsorName,
		bill.SponsorParty,
		bill.SponsorState,
		bill.SponsorBioguideID,
		bill.CongressURL,
		bill.PropublicaID,
		bill.GovtrackID,
		bill.IntroducedDate,
		bill.HousePassageDate,
		bill.SenatePassageDate,
		bill.EnactedDate,
		bill.LastSynced,
	).Scan(&bill.UpdatedAt)
}

// List returns bills ordered by most recent activity.
func (s *BillStore) List(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT`)
	sb.WriteString(billColumns)
	sb.WriteString(` FROM bills WHERE 1=1`)

	args := make([]interface{}, 0, 4)
	if filter.Congress != 0 {
		args = append(args, filter.Congress)
		sb.WriteString(" AND congress_number = $" + itoa(len(args)))
	}
	if filter.BillType != "" {
		args = append(args, strings.ToLower(filter.BillType))
		sb.WriteString(" AND bill_type = $" + itoa(len(args)))
	}

	sb.WriteString(" ORDER BY latest_action_date DESC NULLS LAST, introduced_date DESC NULLS LAST, id DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + itoa(len(args)))
	}

	bills := []domain.Bill{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &bills, sb.String(), args...); err != nil {
		return nil, err
	}
	return bills, nil
}
