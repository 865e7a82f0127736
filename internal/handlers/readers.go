package handlers

import (
	"context"
	"time"

	"billsync/internal/domain"
)

type BillReader interface {
	List(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error)
	GetByKey(ctx context.Context, key domain.BillKey) (*domain.Bill, error)
}

type SubjectReader interface {
	ListByBill(ctx context.Context, billID int64) ([]domain.Subject, error)
}

type ActionReader interface {
	ListByBill(ctx context.Context, billID int64) ([]domain.Action, error)
}

type CosponsorReader interface {
	ListByBill(ctx context.Context, billID int64) ([]domain.Cosponsor, error)
}

type SyncStateReader interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
}

type APILogReader interface {
	Recent(ctx context.Context, service string, limit int) ([]domain.APICall, error)
}

// RequestObserver is told about every served request.
type RequestObserver interface {
	ObserveRequest(method, route string, code int, elapsed time.Duration)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
