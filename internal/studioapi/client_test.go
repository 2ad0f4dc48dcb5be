package studioapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/auth"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/reqctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Tokens:     auth.StaticToken("test-key"),
		Retry: retry.Strategy{
			Attempts: 3,
			Delay:    time.Millisecond,
			Backoff:  2,
		},
	})
	require.NoError(t, err)
	return client, server
}

const classJSON = `{
	"id": "c1",
	"title": "Power Yoga",
	"capacity": 10,
	"confirmedInPersonCount": 4,
	"zoomEnabled": true,
	"price": 20,
	"memberPrice": "15.50",
	"allowCredits": true,
	"includedPlanIds": ["gold"],
	"status": "active",
	"myBooking": {"id": "b1", "status": "waitlisted"}
}`

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{Tokens: auth.StaticToken("k")})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "http://api.local"})
	assert.Error(t, err)
}

func TestGetClass_OK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classes/c1", r.URL.Path)
		assert.Equal(t, "m1", r.URL.Query().Get("memberId"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Idempotency-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(classJSON))
	})

	ctx := reqctx.WithRequestID(context.Background(), "req-1")
	class, err := client.GetClass(ctx, "c1", "m1")

	require.NoError(t, err)
	assert.Equal(t, "Power Yoga", class.Title)
	require.NotNil(t, class.Capacity)
	assert.Equal(t, 10, *class.Capacity)
	assert.True(t, class.Price.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, class.MemberPrice)
	assert.Equal(t, "15.5", class.MemberPrice.String())
	assert.Equal(t, domain.ClassStatusActive, class.Status)
	require.NotNil(t, class.MyBooking)
	assert.Equal(t, "c1", class.MyBooking.ClassID)
	assert.Equal(t, domain.BookingStatusWaitlisted, class.MyBooking.Status)
	assert.Equal(t, domain.AttendanceInPerson, class.MyBooking.AttendanceType)
}

func TestGetClass_MissingPriceIsZero(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"c1","status":"active"}`))
	})

	class, err := client.GetClass(context.Background(), "c1", "")

	require.NoError(t, err)
	assert.True(t, class.Price.IsZero())
	assert.Nil(t, class.Capacity)
}

func TestGetClass_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetClass(context.Background(), "missing", "")

	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestGetClass_InvalidPayload(t *testing.T) {
	payloads := []string{
		`{"id":"c1","status":"draft"}`,
		`{"status":"active"}`,
		`{"id":"c1","status":"active","capacity":0}`,
		`{"id":"c1","status":"active","confirmedInPersonCount":-2}`,
		`not json`,
	}

	for _, payload := range payloads {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		})

		_, err := client.GetClass(context.Background(), "c1", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, payload)
	}
}

func TestRead_RetriesTransientErrors(t *testing.T) {
	var attempts int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		_, _ = w.Write([]byte(`{"id":"m1","name":"Ann"}`))
	})

	member, err := client.GetMember(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "Ann", member.Name)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestRetryDelay_FractionalBackoff(t *testing.T) {
	tests := []struct {
		name    string
		backoff float64
		attempt int
		want    time.Duration
	}{
		{name: "first wait", backoff: 1.5, attempt: 1, want: 100 * time.Millisecond},
		{name: "grows", backoff: 1.5, attempt: 2, want: 150 * time.Millisecond},
		{name: "grows twice", backoff: 1.5, attempt: 3, want: 225 * time.Millisecond},
		{name: "shrinks", backoff: 0.5, attempt: 2, want: 50 * time.Millisecond},
		{name: "capped", backoff: 10, attempt: 4, want: maxRetryDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{strategy: retry.Strategy{
				Attempts: 5,
				Delay:    100 * time.Millisecond,
				Backoff:  tt.backoff,
			}}

			assert.Equal(t, tt.want, client.retryDelay(tt.attempt))
		})
	}
}

func TestRead_DoesNotRetryClientErrors(t *testing.T) {
	var attempts int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	})

	_, err := client.ListClasses(context.Background(), domain.ListClassesParams{Page: 1})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad request", apiErr.Body)
	assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
}

func TestListClasses_OK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classes", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`{"items":[` + classJSON + `],"page":2,"pageSize":1,"total":3}`))
	})

	page, err := client.ListClasses(context.Background(), domain.ListClassesParams{Page: 2, PageSize: 1})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c1", page.Items[0].ID)
	assert.True(t, page.HasNext())
}

func TestSubmitIntent_SentOnce(t *testing.T) {
	var attempts int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.SubmitIntent(context.Background(), domain.BookingIntent{
		ClassID:        "c1",
		AttendanceType: domain.AttendanceInPerson,
		Intent:         domain.IntentBook,
	})

	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
}

func TestSubmitIntent_OK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, map[string]string{
			"classId":        "c1",
			"memberId":       "kid",
			"attendanceType": "zoom",
			"intent":         "waitlist",
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b9","memberId":"kid","status":"waitlisted","attendanceType":"zoom"}`))
	})

	booking, err := client.SubmitIntent(context.Background(), domain.BookingIntent{
		ClassID:        "c1",
		MemberID:       "kid",
		AttendanceType: domain.AttendanceZoom,
		Intent:         domain.IntentWaitlist,
	})

	require.NoError(t, err)
	assert.Equal(t, "b9", booking.ID)
	assert.Equal(t, "c1", booking.ClassID)
	assert.Equal(t, domain.BookingStatusWaitlisted, booking.Status)
}

func TestSubmitIntent_Conflict(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("class is full"))
	})

	_, err := client.SubmitIntent(context.Background(), domain.BookingIntent{ClassID: "c1", Intent: domain.IntentBook})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.True(t, strings.Contains(err.Error(), "class is full"))
}

func TestCancelBooking_OK(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/b1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"b1","classId":"c1","memberId":"m1","status":"cancelled"}`))
	})

	booking, err := client.CancelBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	assert.Equal(t, "c1", booking.ClassID)
}

func TestCancelBooking_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.CancelBooking(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestDecodeMember(t *testing.T) {
	member, err := DecodeMember(strings.NewReader(`{
		"id": "m1",
		"memberships": [{"planId": "gold", "status": "active"}],
		"purchasedPacks": [{"remainingCredits": 3}]
	}`))

	require.NoError(t, err)
	require.Len(t, member.Memberships, 1)
	assert.Equal(t, domain.MembershipStatusActive, member.Memberships[0].Status)
	assert.True(t, member.HasCredits())

	_, err = DecodeMember(strings.NewReader(`{"id":"m1","purchasedPacks":[{"remainingCredits":-1}]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
