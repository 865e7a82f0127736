package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"billsync/internal/config"
	"billsync/internal/domain"
	"billsync/internal/source/congress"
)

const actionDateLayout = "2006-01-02"

// MaxPageSize is the largest page the bills listing returns.
const MaxPageSize = 250

var ErrMissingField = errors.New("missing required field")

// Stores groups the persistence dependencies of the sync pipeline.
type Stores struct {
	Bills      BillStore
	Subjects   SubjectStore
	Actions    ActionStore
	Cosponsors CosponsorStore
	SyncState  SyncStateStore
	Tx         TransactionManager
}

type SyncService struct {
	source    BillSource
	stores    Stores
	publisher Publisher
	observer  OutcomeObserver
	logger    *slog.Logger
	config    config.SyncConfig
}

// NewSyncService builds a sync pipeline. publisher and observer may be nil.
func NewSyncService(
	source BillSource,
	stores Stores,
	publisher Publisher,
	observer OutcomeObserver,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		source:    source,
		stores:    stores,
		publisher: publisher,
		observer:  observer,
		logger:    logger.With("component", "sync"),
		config:    cfg,
	}
}

// SyncRecentBills pulls the most recently updated bills of a congress and
// reconciles each one into the store. Failures never escape: a failed page
// fetch and every failed item end up as lines in the outcome's error list.
//
// daysBack is accepted for compatibility with the operator interface but does
// not narrow the fetched page.
func (s *SyncService) SyncRecentBills(ctx context.Context, congressNum, daysBack int) *domain.SyncOutcome {
	startTime := time.Now()
	outcome := &domain.SyncOutcome{Congress: congressNum, Errors: []string{}}

	s.logger.Info("starting sync",
		"congress", congressNum,
		"days_back", daysBack,
		"limit", s.pageSize(),
		"fetch_details", s.config.FetchDetails,
	)

	records, err := s.source.FetchRecentBills(ctx, congressNum, s.pageSize(), 0)
	if err != nil {
		s.logger.Error("failed to fetch bills", "error", err)
		outcome.Fail("Error fetching bills from API: %v", err)
		s.finish(outcome, startTime)
		return outcome
	}

	outcome.Fetched = len(records)
	s.logger.Info("fetched bills from source", "count", len(records))

	for i := range records {
		if err := ctx.Err(); err != nil {
			outcome.Fail("Sync interrupted after %d of %d bills: %v", i, len(records), err)
			break
		}

		rec := &records[i]
		delta, bill, err := s.reconcile(ctx, rec, congressNum)
		if err != nil {
			s.logger.Error("failed to sync bill", "type", rec.Type, "number", rec.Number, "error", err)
			outcome.Fail("Error syncing bill %s %s: %v", orUnknown(rec.Type), orUnknown(string(rec.Number)), err)
			continue
		}

		outcome.Apply(delta)
		s.publish(ctx, bill, delta.BillCreated, outcome)
	}

	if err := s.updateSyncState(ctx, outcome); err != nil {
		s.logger.Error("failed to update sync state", "error", err)
		outcome.Fail("Error recording sync state: %v", err)
	}

	s.finish(outcome, startTime)
	return outcome
}

func (s *SyncService) pageSize() int {
	if s.config.PageSize <= 0 || s.config.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return s.config.PageSize
}

func (s *SyncService) finish(outcome *domain.SyncOutcome, startTime time.Time) {
	outcome.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"congress", outcome.Congress,
		"fetched", outcome.Fetched,
		"bills_created", outcome.BillsCreated,
		"bills_updated", outcome.BillsUpdated,
		"subjects_created", outcome.SubjectsCreated,
		"actions_created", outcome.ActionsCreated,
		"cosponsors_created", outcome.CosponsorsCreated,
		"errors", len(outcome.Errors),
		"duration", outcome.Duration,
	)

	if s.observer != nil {
		s.observer.ObserveOutcome(outcome)
	}
}

// reconcile maps one raw record to its contribution to the outcome.
func (s *SyncService) reconcile(ctx context.Context, rec *congress.BillRecord, defaultCongress int) (domain.ItemDelta, *domain.Bill, error) {
	key, err := recordKey(rec, defaultCongress)
	if err != nil {
		return domain.ItemDelta{}, nil, err
	}

	var details *billDetails
	if s.config.FetchDetails {
		details, err = s.fetchDetails(ctx, key)
		if err != nil {
			return domain.ItemDelta{}, nil, fmt.Errorf("fetch details: %w", err)
		}
	}

	var delta domain.ItemDelta
	var bill *domain.Bill

	err = s.stores.Tx.WithTransaction(ctx, func(txCtx context.Context) error {
		delta = domain.ItemDelta{}

		existing, err := s.stores.Bills.GetByKey(txCtx, key)
		if err != nil {
			return fmt.Errorf("get bill: %w", err)
		}

		bill = existing
		if bill == nil {
			bill = newBill(key, rec)
			delta.BillCreated = true
		}

		s.applyListing(bill, rec)
		if details != nil {
			details.applyTo(bill)
		}
		bill.LastSynced = time.Now().UTC()

		if delta.BillCreated {
			if err := s.stores.Bills.Create(txCtx, bill); err != nil {
				return fmt.Errorf("create bill: %w", err)
			}
		} else {
			if err := s.stores.Bills.Update(txCtx, bill); err != nil {
				return fmt.Errorf("update bill: %w", err)
			}
		}

		if details == nil {
			return nil
		}
		return s.saveDetails(txCtx, bill.ID, details, &delta)
	})
	if err != nil {
		return domain.ItemDelta{}, nil, err
	}

	return delta, bill, nil
}

func (s *SyncService) saveDetails(ctx context.Context, billID int64, details *billDetails, delta *domain.ItemDelta) error {
	var err error

	if len(details.subjects) > 0 {
		if delta.SubjectsCreated, err = s.stores.Subjects.UpsertBatch(ctx, billID, details.subjects); err != nil {
			return fmt.Errorf("upsert subjects: %w", err)
		}
	}
	if len(details.actions) > 0 {
		if delta.ActionsCreated, err = s.stores.Actions.InsertBatch(ctx, billID, details.actions); err != nil {
			return fmt.Errorf("insert actions: %w", err)
		}
	}
	if len(details.cosponsors) > 0 {
		if delta.CosponsorsCreated, err = s.stores.Cosponsors.UpsertBatch(ctx, billID, details.cosponsors); err != nil {
			return fmt.Errorf("upsert cosponsors: %w", err)
		}
	}

	return nil
}

// applyListing copies the listing payload onto the bill. Non-empty payload
// values win; an unparseable action date leaves the stored date untouched.
func (s *SyncService) applyListing(bill *domain.Bill, rec *congress.BillRecord) {
	if rec.Title != "" {
		bill.Title = rec.Title
	}
	if rec.URL != "" {
		bill.CongressURL = rec.URL
	}

	if rec.LatestAction == nil || (rec.LatestAction.Text == "" && rec.LatestAction.ActionDate == "") {
		return
	}

	bill.LatestAction = rec.LatestAction.Text
	if rec.LatestAction.ActionDate == "" {
		return
	}

	actionDate, err := parseDate(rec.LatestAction.ActionDate)
	if err != nil {
		s.logger.Warn("could not parse action date",
			"bill", bill.Key().String(),
			"action_date", rec.LatestAction.ActionDate,
		)
		return
	}
	bill.LatestActionDate = &actionDate
}

func (s *SyncService) publish(ctx context.Context, bill *domain.Bill, isNew bool, outcome *domain.SyncOutcome) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, bill, isNew); err != nil {
		s.logger.Error("failed to publish bill", "bill", bill.Key().String(), "error", err)
		outcome.Fail("Error publishing bill %s %s: %v", bill.BillType, bill.BillNumber, err)
	}
}

func (s *SyncService) updateSyncState(ctx context.Context, outcome *domain.SyncOutcome) error {
	sourceID := domain.SyncSourceID(outcome.Congress)

	state, err := s.stores.SyncState.Get(ctx, sourceID)
	if err != nil {
		return err
	}

	state.SourceID = sourceID
	state.LastSyncedAt = time.Now().UTC()
	state.TotalSynced += int64(outcome.Synced())
	state.LastRunErrors = len(outcome.Errors)

	return s.stores.SyncState.Update(ctx, state)
}

func recordKey(rec *congress.BillRecord, defaultCongress int) (domain.BillKey, error) {
	key := domain.BillKey{
		Congress: defaultCongress,
		Type:     strings.ToLower(strings.TrimSpace(rec.Type)),
		Number:   strings.TrimSpace(string(rec.Number)),
	}
	if rec.Congress != nil {
		key.Congress = *rec.Congress
	}

	if key.Type == "" {
		return key, fmt.Errorf("%w: type", ErrMissingField)
	}
	if key.Number == "" {
		return key, fmt.Errorf("%w: number", ErrMissingField)
	}
	return key, nil
}

func newBill(key domain.BillKey, rec *congress.BillRecord) *domain.Bill {
	bill := &domain.Bill{
		Congress:    key.Congress,
		BillType:    key.Type,
		BillNumber:  key.Number,
		Chamber:     chamberForType(key.Type),
		Title:       rec.Title,
		CongressURL: rec.URL,
		Status:      domain.StatusIntroduced,
	}
	if rec.LatestAction != nil {
		bill.LatestAction = rec.LatestAction.Text
	}
	return bill
}

func chamberForType(billType string) string {
	switch {
	case strings.HasPrefix(billType, "h"):
		return domain.ChamberHouse
	case strings.HasPrefix(billType, "s"):
		return domain.ChamberSenate
	default:
		return ""
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(actionDateLayout, value)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
