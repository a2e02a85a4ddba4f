package rdw

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchOptions configures one paginated fetch.
type FetchOptions struct {
	Filters FilterSet
	// PageSize is rows per request. Zero or negative means DefaultPageSize.
	PageSize int
	// Limit caps the total rows yielded. Negative means unbounded.
	// Zero means fetch nothing: the cursor is exhausted from the start
	// and never issues a request.
	Limit int
}

// Cursor pages through the dataset one request at a time. It holds at most
// one page in memory and is not restartable; each call to Vehicles opens a
// fresh cursor at offset zero. A Cursor must not be shared across
// goroutines, but independent cursors are safe to run in parallel.
type Cursor struct {
	client   *Client
	filters  FilterSet
	pageSize int
	limit    int
	offset   int
	fetched  int
	done     bool
}

// Vehicles opens a cursor over the rows matching filters.
func (c *Client) Vehicles(opts FetchOptions) *Cursor {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cur := &Cursor{
		client:   c,
		filters:  opts.Filters,
		pageSize: pageSize,
		limit:    opts.Limit,
	}
	if opts.Limit == 0 {
		cur.done = true
	}
	return cur
}

// NextPage fetches and returns the next page of raw rows, or nil when the
// cursor is exhausted. A transport error also exhausts the cursor.
func (cur *Cursor) NextPage(ctx context.Context) ([]RawRecord, error) {
	if cur.done {
		return nil, nil
	}

	ctx, span := tracer.Start(ctx, "cursor:NextPage")
	defer span.End()
	span.SetAttributes(
		attribute.Int("offset", cur.offset),
		attribute.Int("page_size", cur.pageSize),
	)

	params := map[string]string{
		"$limit":  strconv.Itoa(cur.pageSize),
		"$offset": strconv.Itoa(cur.offset),
	}
	for key, value := range cur.filters {
		params[key] = value
	}

	rows, err := cur.client.getRows(ctx, params)
	if err != nil {
		cur.done = true
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, err
	}
	if len(rows) == 0 {
		cur.done = true
		return nil, nil
	}

	// a short page is the last one, no point asking for another
	if len(rows) < cur.pageSize {
		cur.done = true
	}
	if cur.limit > 0 && cur.fetched+len(rows) >= cur.limit {
		rows = rows[:cur.limit-cur.fetched]
		cur.done = true
	}

	cur.fetched += len(rows)
	cur.offset += cur.pageSize
	return rows, nil
}

// Each yields rows one at a time until exhaustion, an error, or fn
// returning false to stop early.
func (cur *Cursor) Each(ctx context.Context, fn func(RawRecord) bool) error {
	for {
		rows, err := cur.NextPage(ctx)
		if err != nil {
			return err
		}
		if rows == nil {
			return nil
		}
		for _, row := range rows {
			if !fn(row) {
				return nil
			}
		}
	}
}

// Fetched reports how many rows the cursor has yielded so far.
func (cur *Cursor) Fetched() int {
	return cur.fetched
}
