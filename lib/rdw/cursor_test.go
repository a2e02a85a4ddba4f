package rdw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/mertowave/nld-vehicle-data-portal/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// pagedServer serves fixed-size pages of synthetic rows and records every
// request it sees.
type pagedServer struct {
	totalRows int
	requests  []string
	lastQuery map[string][]string
}

func (s *pagedServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.requests = append(s.requests, r.URL.RawQuery)
		s.lastQuery = q

		limit, _ := strconv.Atoi(q.Get("$limit"))
		offset, _ := strconv.Atoi(q.Get("$offset"))

		var rows []map[string]any
		for i := offset; i < offset+limit && i < s.totalRows; i++ {
			rows = append(rows, map[string]any{
				"kenteken": fmt.Sprintf("PLATE%03d", i),
			})
		}
		if rows == nil {
			rows = []map[string]any{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}

func newTestClient(t *testing.T, s *pagedServer) (*Client, func()) {
	cleanup := telemetry.SetupForTesting(t, "test:rdw")
	server := httptest.NewServer(s.handler())
	client := NewClient(ClientOptions{BaseURL: server.URL})
	return client, func() {
		server.Close()
		cleanup()
	}
}

func collect(t *testing.T, cur *Cursor) []RawRecord {
	var out []RawRecord
	err := cur.Each(context.Background(), func(r RawRecord) bool {
		out = append(out, r)
		return true
	})
	require.NoError(t, err)
	return out
}

func TestCursorExhaustsShortFinalPage(t *testing.T) {
	// pages of sizes [2,2,1]: five records, and no fourth request
	server := &pagedServer{totalRows: 5}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	records := collect(t, client.Vehicles(FetchOptions{PageSize: 2, Limit: -1}))

	require.Len(t, records, 5)
	require.Len(t, server.requests, 3)
	for i, record := range records {
		require.Equal(t, fmt.Sprintf("PLATE%03d", i), record["kenteken"])
	}
}

func TestCursorStopsAtLimitMidPage(t *testing.T) {
	server := &pagedServer{totalRows: 100}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	records := collect(t, client.Vehicles(FetchOptions{PageSize: 2, Limit: 3}))

	require.Len(t, records, 3)
	require.Len(t, server.requests, 2)
}

func TestCursorFullPageThenEmptyPage(t *testing.T) {
	// exactly one full page: exhaustion needs a second, empty response
	server := &pagedServer{totalRows: 2}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	records := collect(t, client.Vehicles(FetchOptions{PageSize: 2, Limit: -1}))

	require.Len(t, records, 2)
	require.Len(t, server.requests, 2)
}

func TestCursorLimitZeroIssuesNoRequests(t *testing.T) {
	server := &pagedServer{totalRows: 100}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	records := collect(t, client.Vehicles(FetchOptions{PageSize: 2, Limit: 0}))

	require.Empty(t, records)
	require.Empty(t, server.requests)
}

func TestCursorMergesFiltersIntoQuery(t *testing.T) {
	server := &pagedServer{totalRows: 1}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	filters := Filters{
		LicensePlate:  "ab-12-cd",
		OrderByRecent: true,
	}.Build()
	collect(t, client.Vehicles(FetchOptions{Filters: filters, PageSize: 10, Limit: -1}))

	require.Equal(t, "AB12CD", server.lastQuery["kenteken"][0])
	require.Equal(t, "datum_tenaamstelling IS NOT NULL", server.lastQuery["$where"][0])
	require.Equal(t, "datum_tenaamstelling DESC", server.lastQuery["$order"][0])
	require.Equal(t, "10", server.lastQuery["$limit"][0])
	require.Equal(t, "0", server.lastQuery["$offset"][0])
}

func TestCursorForbiddenIsUnauthorizedStatusError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:rdw")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing app token", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	cur := client.Vehicles(FetchOptions{PageSize: 2, Limit: -1})

	_, err := cur.NextPage(context.Background())
	require.Error(t, err)

	var status *StatusError
	require.ErrorAs(t, err, &status)
	require.True(t, status.Unauthorized())

	// a failed cursor stays exhausted
	rows, err := cur.NextPage(context.Background())
	require.NoError(t, err)
	require.Nil(t, rows)
}

func TestCursorServerErrorIsNotUnauthorized(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:rdw")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	_, err := client.Vehicles(FetchOptions{PageSize: 2, Limit: -1}).NextPage(context.Background())

	var status *StatusError
	require.ErrorAs(t, err, &status)
	require.False(t, status.Unauthorized())
}

func TestClientSendsAppTokenHeader(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:rdw")
	defer cleanup()

	var gotToken, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, "[]")
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL, AppToken: "sekrit"})
	collect(t, client.Vehicles(FetchOptions{PageSize: 2, Limit: -1}))

	require.Equal(t, "sekrit", gotToken)
	require.Equal(t, "application/json", gotAccept)
}

func TestCursorEachEarlyStop(t *testing.T) {
	server := &pagedServer{totalRows: 100}
	client, cleanup := newTestClient(t, server)
	defer cleanup()

	seen := 0
	err := client.Vehicles(FetchOptions{PageSize: 10, Limit: -1}).
		Each(context.Background(), func(RawRecord) bool {
			seen++
			return seen < 5
		})
	require.NoError(t, err)
	require.Equal(t, 5, seen)
	require.Len(t, server.requests, 1)
}
