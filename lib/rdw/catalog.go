package rdw

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Catalog queries: small aggregate lookups the portal uses to populate its
// search form. These hit the same resource with $select/$group parameters.

// Categories returns the distinct Dutch vehicle categories in the dataset.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:Categories")
	defer span.End()

	rows, err := c.getRows(ctx, map[string]string{
		"$select": "distinct voertuigsoort",
		"$order":  "voertuigsoort",
	})
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, row := range rows {
		if v, ok := row["voertuigsoort"].(string); ok && v != "" {
			categories = append(categories, v)
		}
	}
	return categories, nil
}

// TranslateCategories maps Dutch category names to English, passing
// unknown names through.
func TranslateCategories(categories []string) []string {
	out := make([]string, len(categories))
	for i, cat := range categories {
		if english, ok := CategoryTranslations[cat]; ok {
			out[i] = english
		} else {
			out[i] = cat
		}
	}
	return out
}

// Brands returns every make present in the dataset, sorted.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:Brands")
	defer span.End()

	rows, err := c.getRows(ctx, map[string]string{
		"$select": "merk",
		"$group":  "merk",
		"$order":  "merk",
		"$limit":  "50000",
	})
	if err != nil {
		return nil, err
	}

	var brands []string
	for _, row := range rows {
		if v, ok := row["merk"].(string); ok && strings.TrimSpace(v) != "" {
			brands = append(brands, strings.TrimSpace(v))
		}
	}
	sort.Strings(brands)
	return brands, nil
}

// ModelsForBrand returns the commercial names registered under a make.
func (c *Client) ModelsForBrand(ctx context.Context, brand string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ModelsForBrand")
	defer span.End()

	rows, err := c.getRows(ctx, map[string]string{
		"$select": "handelsbenaming",
		"$where":  fmt.Sprintf("merk = '%s'", strings.ToUpper(brand)),
		"$group":  "handelsbenaming",
		"$order":  "handelsbenaming",
		"$limit":  "1000",
	})
	if err != nil {
		return nil, err
	}

	var models []string
	for _, row := range rows {
		if v, ok := row["handelsbenaming"].(string); ok && v != "" {
			models = append(models, v)
		}
	}
	sort.Strings(models)
	return models, nil
}

// TotalCount returns the number of rows in the whole dataset.
func (c *Client) TotalCount(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "client:TotalCount")
	defer span.End()

	rows, err := c.getRows(ctx, map[string]string{
		"$select": "count(*)",
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("rdw: empty count response")
	}

	count, ok := rows[0]["count"]
	if !ok {
		return 0, fmt.Errorf("rdw: count field missing from response")
	}
	n, err := strconv.Atoi(strings.TrimSpace(stringify(count)))
	if err != nil {
		return 0, fmt.Errorf("rdw: parse count: %w", err)
	}
	return n, nil
}
