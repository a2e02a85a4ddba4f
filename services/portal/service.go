package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mertowave/nld-vehicle-data-portal/lib/export"
	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/portal")

// MaxListingLimit caps how many rows a single browse request may pull.
const MaxListingLimit = 10000

const defaultListingLimit = 50

// how many rows the landing listing shows when no search was submitted
const recentListingSize = 20

// Service exposes the vehicle browse and export endpoints.
type Service struct {
	client   *rdw.Client
	pageSize int
}

func NewService(client *rdw.Client, pageSize int) Service {
	if pageSize <= 0 {
		pageSize = rdw.DefaultPageSize
	}
	return Service{client: client, pageSize: pageSize}
}

// Register attaches all portal routes to mux.
func (s Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/vehicles", s.handleVehicles)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/brands", s.handleBrands)
	mux.HandleFunc("GET /api/models", s.handleModels)
	mux.HandleFunc("GET /api/total-count", s.handleTotalCount)
	mux.HandleFunc("GET /download.csv", s.handleDownloadCSV)
}

// parseLimit clamps the requested row count to 1..MaxListingLimit,
// defaulting when absent or unparseable.
func parseLimit(raw string) int {
	if raw == "" {
		return defaultListingLimit
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultListingLimit
	}
	return max(1, min(MaxListingLimit, value))
}

// filtersFromQuery maps request parameters onto the fetch filter surface.
// The category parameter carries the English display name and is mapped
// back to the Dutch name the dataset filters on.
func filtersFromQuery(q url.Values) rdw.Filters {
	category := q.Get("category")
	if category != "" {
		category = rdw.CategoryToDutch(category)
	}
	return rdw.Filters{
		Category:      category,
		LicensePlate:  q.Get("license_plate"),
		Brand:         q.Get("brand"),
		Model:         q.Get("model"),
		DateFrom:      q.Get("date_from"),
		DateTo:        q.Get("date_to"),
		OrderByRecent: q.Get("order_by_recent") == "true",
	}
}

type listingResponse struct {
	Records []rdw.Record `json:"records"`
	Total   int          `json:"total"`
}

func (s Service) queryRecords(ctx context.Context, filters rdw.Filters, limit int) ([]rdw.Record, error) {
	cursor := s.client.Vehicles(rdw.FetchOptions{
		Filters:  filters.Build(),
		PageSize: s.pageSize,
		Limit:    limit,
	})

	var records []rdw.Record
	err := cursor.Each(ctx, func(raw rdw.RawRecord) bool {
		records = append(records, rdw.TranslateRecord(raw))
		return true
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s Service) handleVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleVehicles")
	defer span.End()

	q := r.URL.Query()
	filters := filtersFromQuery(q)
	limit := parseLimit(q.Get("limit"))

	// without a submitted search, show the most recent registrations
	if !q.Has("submitted") {
		filters = rdw.Filters{OrderByRecent: true}
		limit = recentListingSize
	}

	records, err := s.queryRecords(ctx, filters, limit)
	if err != nil {
		upstreamError(w, err)
		return
	}
	if records == nil {
		records = []rdw.Record{}
	}

	writeJSON(w, listingResponse{Records: records, Total: len(records)})
}

func (s Service) handleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleCategories")
	defer span.End()

	dutch, err := s.client.Categories(ctx)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, map[string]any{"categories": rdw.TranslateCategories(dutch)})
}

func (s Service) handleBrands(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleBrands")
	defer span.End()

	brands, err := s.client.Brands(ctx)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, map[string]any{"brands": brands})
}

func (s Service) handleModels(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleModels")
	defer span.End()

	brand := r.URL.Query().Get("brand")
	if brand == "" {
		http.Error(w, "missing brand parameter", http.StatusBadRequest)
		return
	}
	models, err := s.client.ModelsForBrand(ctx, brand)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, map[string]any{"models": models})
}

func (s Service) handleTotalCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleTotalCount")
	defer span.End()

	total, err := s.client.TotalCount(ctx)
	if err != nil {
		upstreamError(w, err)
		return
	}
	writeJSON(w, map[string]any{"total_plates": total})
}

func (s Service) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleDownloadCSV")
	defer span.End()

	q := r.URL.Query()
	filters := filtersFromQuery(q)
	limit := parseLimit(q.Get("limit"))

	cursor := s.client.Vehicles(rdw.FetchOptions{
		Filters:  filters.Build(),
		PageSize: s.pageSize,
		Limit:    limit,
	})

	// the first page is fetched before any response bytes go out, so
	// upstream failures still map to a clean 502 instead of a broken file
	firstPage, err := cursor.NextPage(ctx)
	if err != nil {
		upstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", downloadFilename(filters)),
	)

	csvw, err := export.NewCSVWriter(w)
	if err != nil {
		slog.Warn("csv download aborted", "err", err)
		return
	}

	writeRow := func(raw rdw.RawRecord) bool {
		if err := csvw.Write(rdw.TranslateRecord(raw)); err != nil {
			slog.Warn("csv download aborted mid-stream", "err", err)
			return false
		}
		// flush per row so the download interleaves with the fetch
		return csvw.Flush() == nil
	}

	for _, raw := range firstPage {
		if !writeRow(raw) {
			return
		}
	}
	if err := cursor.Each(ctx, writeRow); err != nil {
		// headers are gone already, all we can do is stop
		slog.Warn("csv download failed mid-stream", "err", err)
		return
	}
	if err := csvw.Flush(); err != nil {
		slog.Warn("csv download flush failed", "err", err)
	}
}

// downloadFilename derives a filename from the active filters, matching
// what a user would expect the export to be called.
func downloadFilename(filters rdw.Filters) string {
	parts := []string{"rdw_data"}
	if filters.Category != "" {
		parts = append(parts, strings.ReplaceAll(strings.ToLower(filters.Category), " ", "_"))
	}
	if filters.LicensePlate != "" {
		parts = append(parts, rdw.NormalizePlate(filters.LicensePlate))
	}
	return strings.Join(parts, "-") + ".csv"
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(payload); err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

// upstreamError reports a fetch failure as 502, with the app token hint
// when the dataset rejected us for rate limiting.
func upstreamError(w http.ResponseWriter, err error) {
	message := "RDW API request failed."
	var status *rdw.StatusError
	if errors.As(err, &status) {
		message = "RDW API access error."
		if status.Unauthorized() {
			message += " Please use a Socrata app token. Set it like this: export RDW_APP_TOKEN='your_token_here'"
		}
	}
	slog.Error("upstream request failed", "err", err)
	http.Error(w, message, http.StatusBadGateway)
}
