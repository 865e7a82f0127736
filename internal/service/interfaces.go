package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"billsync/internal/domain"
	"billsync/internal/source/congress"
)

type BillStore interface {
	GetByKey(ctx context.Context, key domain.BillKey) (*domain.Bill, error)
	Create(ctx context.Context, bill *domain.Bill) error
	Update(ctx context.Context, bill *domain.Bill) error
}

type SubjectStore interface {
	UpsertBatch(ctx context.Context, billID int64, subjects []domain.Subject) (int, error)
}

type ActionStore interface {
	InsertBatch(ctx context.Context, billID int64, actions []domain.Action) (int, error)
}

type CosponsorStore interface {
	UpsertBatch(ctx context.Context, billID int64, cosponsors []domain.Cosponsor) (int, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type BillSource interface {
	FetchRecentBills(ctx context.Context, congress, limit, offset int) ([]congress.BillRecord, error)
	FetchBillDetail(ctx context.Context, congress int, billType, number string) (*congress.BillDetail, error)
	FetchBillActions(ctx context.Context, congress int, billType, number string) ([]congress.ActionRecord, error)
	FetchBillCosponsors(ctx context.Context, congress int, billType, number string) ([]congress.CosponsorRecord, error)
	FetchBillSubjects(ctx context.Context, congress int, billType, number string) (*congress.SubjectsRecord, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, bill *domain.Bill, isNew bool) error
	Close() error
}

// OutcomeObserver is notified once per completed run.
type OutcomeObserver interface {
	ObserveOutcome(outcome *domain.SyncOutcome)
}
