package congress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"billsync/internal/domain"
)

const (
	ServiceName      = "congress_gov"
	DefaultBaseURL   = "https://api.congress.gov/v3"
	DefaultUserAgent = "PolicyLogs/1.0"
	DefaultTimeout   = 30 * time.Second

	subResourceLimit = 250
)

// Config holds Congress.gov client configuration.
type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// CallRecorder receives one entry per upstream request.
type CallRecorder interface {
	RecordCall(ctx context.Context, call *domain.APICall) error
}

// Recorders fans a call out to several recorders.
type Recorders []CallRecorder

func (rs Recorders) RecordCall(ctx context.Context, call *domain.APICall) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.RecordCall(ctx, call); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Client talks to the Congress.gov v3 API. It never retries; a failed call is
// returned to the caller as an *UpstreamError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	recorder   CallRecorder
	logger     *slog.Logger
}

// New creates a new Congress.gov client. recorder may be nil.
func New(cfg Config, recorder CallRecorder, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		recorder:  recorder,
		logger:    logger.With("source", ServiceName),
	}
}

// FetchRecentBills returns bills of a congress ordered by most recent update.
func (c *Client) FetchRecentBills(ctx context.Context, congress, limit, offset int) ([]BillRecord, error) {
	endpoint := fmt.Sprintf("bill/%d", congress)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("sort", "updateDate desc")

	var resp billsResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Bills == nil {
		return nil, malformed(endpoint, errors.New(`missing "bills"`))
	}

	c.logger.Debug("fetched bills",
		"congress", congress,
		"limit", limit,
		"offset", offset,
		"count", len(*resp.Bills),
	)

	return *resp.Bills, nil
}

// FetchBillDetail returns the full record of one bill.
func (c *Client) FetchBillDetail(ctx context.Context, congress int, billType, number string) (*BillDetail, error) {
	endpoint := billPath(congress, billType, number)

	var resp billDetailResponse
	if err := c.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Bill == nil {
		return nil, malformed(endpoint, errors.New(`missing "bill"`))
	}
	return resp.Bill, nil
}

// FetchBillActions returns the actions recorded for one bill.
func (c *Client) FetchBillActions(ctx context.Context, congress int, billType, number string) ([]ActionRecord, error) {
	endpoint := billPath(congress, billType, number) + "/actions"

	var resp actionsResponse
	if err := c.get(ctx, endpoint, limitParams(), &resp); err != nil {
		return nil, err
	}
	if resp.Actions == nil {
		return nil, malformed(endpoint, errors.New(`missing "actions"`))
	}
	return *resp.Actions, nil
}

// FetchBillCosponsors returns the cosponsors of one bill.
func (c *Client) FetchBillCosponsors(ctx context.Context, congress int, billType, number string) ([]CosponsorRecord, error) {
	endpoint := billPath(congress, billType, number) + "/cosponsors"

	var resp cosponsorsResponse
	if err := c.get(ctx, endpoint, limitParams(), &resp); err != nil {
		return nil, err
	}
	if resp.Cosponsors == nil {
		return nil, malformed(endpoint, errors.New(`missing "cosponsors"`))
	}
	return *resp.Cosponsors, nil
}

// FetchBillSubjects returns the legislative subjects and policy area of one bill.
func (c *Client) FetchBillSubjects(ctx context.Context, congress int, billType, number string) (*SubjectsRecord, error) {
	endpoint := billPath(congress, billType, number) + "/subjects"

	var resp subjectsResponse
	if err := c.get(ctx, endpoint, limitParams(), &resp); err != nil {
		return nil, err
	}
	if resp.Subjects == nil {
		return nil, malformed(endpoint, errors.New(`missing "subjects"`))
	}
	return resp.Subjects, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	logged, _ := json.Marshal(params)

	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &UpstreamError{Kind: KindNetwork, Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	call := &domain.APICall{
		Service:       ServiceName,
		Endpoint:      endpoint,
		Method:        http.MethodGet,
		UserAgent:     c.userAgent,
		RequestParams: logged,
		Timestamp:     time.Now().UTC(),
	}

	start := time.Now()
	err = c.do(req, endpoint, call, out)
	call.ResponseTime = time.Since(start).Seconds()
	if err != nil {
		call.ErrorMessage = err.Error()
		c.logger.Error("congress api request failed", "endpoint", endpoint, "error", err)
	}

	c.record(ctx, call)
	return err
}

func (c *Client) do(req *http.Request, endpoint string, call *domain.APICall, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request URL carries the api key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.baseURL + "/" + endpoint
		}
		return transportError(endpoint, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	call.StatusCode = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(endpoint, fmt.Errorf("read body: %w", err))
	}
	size := int64(len(body))
	call.ResponseSize = &size

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			Kind:       KindStatus,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return malformed(endpoint, err)
	}

	return nil
}

func (c *Client) record(ctx context.Context, call *domain.APICall) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordCall(context.WithoutCancel(ctx), call); err != nil {
		c.logger.Warn("failed to record api call", "endpoint", call.Endpoint, "error", err)
	}
}

func transportError(endpoint string, err error) *UpstreamError {
	kind := KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &UpstreamError{Kind: kind, Endpoint: endpoint, Err: err}
}

func billPath(congress int, billType, number string) string {
	return fmt.Sprintf("bill/%d/%s/%s", congress, strings.ToLower(billType), url.PathEscape(number))
}

func limitParams() url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(subResourceLimit))
	return params
}
