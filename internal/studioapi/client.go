// Package studioapi is the client of the remote studio REST API, the owner
// of class sessions, members and bookings.
package studioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/auth"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/reqctx"
	"github.com/wb-go/wbf/retry"
)

const (
	defaultTimeout  = 10 * time.Second
	maxRetryDelay   = 5 * time.Second
	maxErrorBodyLen = 8 << 10
)

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     auth.TokenProvider
	// Retry applies to reads only.
	Retry retry.Strategy
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     auth.TokenProvider
	strategy   retry.Strategy
	newKey     func() string
}

func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("studio api base url is required")
	}
	if _, err := url.ParseRequestURI(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if opts.Tokens == nil {
		return nil, errors.New("token provider is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	strategy := opts.Retry
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		tokens:     opts.Tokens,
		strategy:   strategy,
		newKey:     func() string { return uuid.New().String() },
	}, nil
}

func (c *Client) GetClass(ctx context.Context, id, memberID string) (*domain.ClassSession, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: class id is required", domain.ErrValidation)
	}

	q := url.Values{}
	if memberID != "" {
		q.Set("memberId", memberID)
	}

	var p classPayload
	if err := c.read(ctx, "/classes/"+url.PathEscape(id), q, domain.ErrClassNotFound, &p); err != nil {
		return nil, err
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(), nil
}

func (c *Client) ListClasses(ctx context.Context, params domain.ListClassesParams) (*domain.ClassPage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if params.MemberID != "" {
		q.Set("memberId", params.MemberID)
	}

	var p classPagePayload
	if err := c.read(ctx, "/classes", q, nil, &p); err != nil {
		return nil, err
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}

	page := &domain.ClassPage{
		Items:    make([]*domain.ClassSession, 0, len(p.Items)),
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
	}
	for i := range p.Items {
		page.Items = append(page.Items, p.Items[i].toDomain())
	}
	return page, nil
}

func (c *Client) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", domain.ErrValidation)
	}

	var p memberPayload
	if err := c.read(ctx, "/members/"+url.PathEscape(id), nil, domain.ErrMemberNotFound, &p); err != nil {
		return nil, err
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(), nil
}

// SubmitIntent posts a booking intent. It is sent exactly once.
func (c *Client) SubmitIntent(ctx context.Context, intent domain.BookingIntent) (*domain.Booking, error) {
	body, err := json.Marshal(intent)
	if err != nil {
		return nil, fmt.Errorf("marshal intent: %w", err)
	}

	var p bookingPayload
	if err = c.write(ctx, http.MethodPost, "/bookings", body, domain.ErrClassNotFound, &p); err != nil {
		return nil, err
	}
	if err = checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(intent.ClassID), nil
}

// CancelBooking cancels a booking and returns its canonical state.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}

	var p bookingPayload
	if err := c.write(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(bookingID), nil, domain.ErrBookingNotFound, &p); err != nil {
		return nil, err
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(""), nil
}

func (c *Client) read(ctx context.Context, path string, q url.Values, notFound error, out any) error {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	for attempt := 1; ; attempt++ {
		err := c.do(ctx, http.MethodGet, endpoint, nil, notFound, out)
		if err == nil {
			return nil
		}
		if attempt >= c.strategy.Attempts || !retryable(err) {
			return err
		}
		if waitErr := c.wait(ctx, attempt); waitErr != nil {
			return waitErr
		}
	}
}

func (c *Client) write(ctx context.Context, method, path string, body []byte, notFound error, out any) error {
	return c.do(ctx, method, c.baseURL+path, body, notFound, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, notFound error, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("get api token: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", c.newKey())
	}
	if id := reqctx.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyLen))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response from %s: %v", domain.ErrInvalidInput, endpoint, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrClassNotFound) ||
		errors.Is(err, domain.ErrMemberNotFound) ||
		errors.Is(err, domain.ErrBookingNotFound) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	// network error
	return true
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	delay := c.strategy.Delay
	for i := 1; i < attempt; i++ {
		delay = time.Duration(float64(delay) * c.strategy.Backoff)
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
