package portal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"
	"github.com/mertowave/nld-vehicle-data-portal/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	mux      *http.ServeMux
	upstream *upstreamStub
}

// upstreamStub mimics the open-data endpoint with a small fixed dataset.
type upstreamStub struct {
	rows      []map[string]any
	lastQuery url.Values
	status    int
}

func (u *upstreamStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u.lastQuery = r.URL.Query()
		if u.status != 0 {
			http.Error(w, "nope", u.status)
			return
		}

		// catalog queries carry no paging parameters, serve everything
		if u.lastQuery.Get("$offset") == "" {
			json.NewEncoder(w).Encode(u.rows)
			return
		}

		limit, _ := strconv.Atoi(u.lastQuery.Get("$limit"))
		offset, _ := strconv.Atoi(u.lastQuery.Get("$offset"))
		rows := []map[string]any{}
		for i := offset; i < offset+limit && i < len(u.rows); i++ {
			rows = append(rows, u.rows[i])
		}
		json.NewEncoder(w).Encode(rows)
	}
}

func setup(t *testing.T, upstream *upstreamStub) fixture {
	cleanup := telemetry.SetupForTesting(t, "test:portal")
	t.Cleanup(cleanup)

	server := httptest.NewServer(upstream.handler())
	t.Cleanup(server.Close)

	client := rdw.NewClient(rdw.ClientOptions{BaseURL: server.URL})
	mux := http.NewServeMux()
	NewService(client, 1000).Register(mux)

	return fixture{mux: mux, upstream: upstream}
}

func (f fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func someVehicles(n int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{
			"kenteken":             fmt.Sprintf("PLATE%03d", i),
			"voertuigsoort":        "Personenauto",
			"datum_tenaamstelling": "20230415",
		}
	}
	return rows
}

func TestVehiclesDefaultListingIsRecent(t *testing.T) {
	f := setup(t, &upstreamStub{rows: someVehicles(50)})

	rec := f.get(t, "/api/vehicles")
	require.Equal(t, http.StatusOK, rec.Code)

	var body listingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, recentListingSize, body.Total)
	require.Len(t, body.Records, recentListingSize)

	// translated keys and values
	require.Equal(t, "PLATE000", body.Records[0]["license_plate"])
	require.Equal(t, "Passenger car", body.Records[0]["vehicle_type"])
	require.Equal(t, "2023-04-15", body.Records[0]["registration_date"])

	// the default listing pins down pagination order
	require.Equal(t, "datum_tenaamstelling DESC", f.upstream.lastQuery.Get("$order"))
	require.Equal(t, "datum_tenaamstelling IS NOT NULL", f.upstream.lastQuery.Get("$where"))
}

func TestVehiclesSearchMapsEnglishCategoryBack(t *testing.T) {
	f := setup(t, &upstreamStub{rows: someVehicles(3)})

	rec := f.get(t, "/api/vehicles?submitted=1&category=Passenger+car&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, "Personenauto", f.upstream.lastQuery.Get("voertuigsoort"))

	var body listingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Total)
}

func TestVehiclesEmptyResultIsEmptyArray(t *testing.T) {
	f := setup(t, &upstreamStub{rows: nil})

	rec := f.get(t, "/api/vehicles?submitted=1&license_plate=ZZ-99-ZZ")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"records":[]`)
}

func TestVehiclesUpstreamForbiddenSuggestsToken(t *testing.T) {
	f := setup(t, &upstreamStub{status: http.StatusForbidden})

	rec := f.get(t, "/api/vehicles?submitted=1")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "RDW_APP_TOKEN")
}

func TestParseLimitClamps(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", defaultListingLimit},
		{"junk", defaultListingLimit},
		{"0", 1},
		{"-5", 1},
		{"25", 25},
		{"99999999", MaxListingLimit},
	}
	for _, test := range cases {
		require.Equal(t, test.want, parseLimit(test.raw), "raw=%q", test.raw)
	}
}

func TestDownloadCSVStreamsRecords(t *testing.T) {
	f := setup(t, &upstreamStub{rows: someVehicles(3)})

	rec := f.get(t, "/download.csv?submitted=1&category=Passenger+car&limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(
		t,
		"attachment; filename=rdw_data-personenauto.csv",
		rec.Header().Get("Content-Disposition"),
	)

	lines, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 4)
	require.Equal(t, rdw.CSVFieldNames, lines[0])
}

func TestDownloadCSVUpstreamFailureIsCleanError(t *testing.T) {
	f := setup(t, &upstreamStub{status: http.StatusInternalServerError})

	rec := f.get(t, "/download.csv?submitted=1")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotContains(t, rec.Header().Get("Content-Type"), "text/csv")
}

func TestCategoriesEndpointTranslates(t *testing.T) {
	f := setup(t, &upstreamStub{rows: []map[string]any{
		{"voertuigsoort": "Bus"},
		{"voertuigsoort": "Personenauto"},
	}})

	rec := f.get(t, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Passenger car")
}

func TestTotalCountEndpoint(t *testing.T) {
	f := setup(t, &upstreamStub{rows: []map[string]any{{"count": "12345"}}})

	rec := f.get(t, "/api/total-count")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total_plates":12345`)
}

func TestModelsRequiresBrand(t *testing.T) {
	f := setup(t, &upstreamStub{})

	rec := f.get(t, "/api/models")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadFilename(t *testing.T) {
	require.Equal(t, "rdw_data.csv", downloadFilename(rdw.Filters{}))
	require.Equal(
		t,
		"rdw_data-personenauto-AB12CD.csv",
		downloadFilename(rdw.Filters{Category: "Personenauto", LicensePlate: "ab-12-cd"}),
	)
}
