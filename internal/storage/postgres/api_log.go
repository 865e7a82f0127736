package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"billsync/internal/domain"
)

// APILogStore persists upstream calls to api_logs.
type APILogStore struct {
	db *sqlx.DB
}

func NewAPILogStore(db *sqlx.DB) *APILogStore {
	return &APILogStore{db: db}
}

func (s *APILogStore) RecordCall(ctx context.Context, call *domain.APICall) error {
	params := string(call.RequestParams)
	if params == "" {
		params = "{}"
	}

	query := `
		INSERT INTO api_logs (
			service, endpoint, method, status_code, response_time,
			request_params, user_agent, response_size, error_message, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10)
		RETURNING id`

	return s.db.QueryRowxContext(ctx, query,
		call.Service,
		call.Endpoint,
		call.Method,
		call.StatusCode,
		call.ResponseTime,
		params,
		call.UserAgent,
		call.ResponseSize,
		call.ErrorMessage,
		call.Timestamp,
	).Scan(&call.ID)
}

// Recent returns the latest calls for a service, newest first.
func (s *APILogStore) Recent(ctx context.Context, service string, limit int) ([]domain.APICall, error) {
	query := `
		SELECT id, service, endpoint, method, status_code, response_time,
			request_params, user_agent, response_size, error_message, timestamp
		FROM api_logs
		WHERE service = $1
		ORDER BY timestamp DESC, id DESC
		LIMIT $2`

	calls := []domain.APICall{}
	err := s.db.SelectContext(ctx, &calls, query, service, limit)
	return calls, err
}
