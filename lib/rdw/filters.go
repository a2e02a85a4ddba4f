package rdw

import "strings"

// FilterSet is the query-parameter form of a search, ready to merge into a
// page request. `$where` and `$order` are synthesized; every other entry is
// a plain field equality filter.
type FilterSet map[string]string

// Filters is the structured search intent accepted from callers.
type Filters struct {
	// Dutch vehicle category (voertuigsoort), exact match.
	Category string
	// License plate in any common writing, normalized before filtering.
	LicensePlate string
	Brand        string
	Model        string
	// Registration date bounds, each YYYY-MM-DD or empty.
	DateFrom string
	DateTo   string
	// Restricts results to rows with a registration date and orders them
	// newest first, which makes paging order well defined.
	OrderByRecent bool
}

// NormalizePlate strips hyphens and spaces and uppercases, producing the
// exact stored form of a Dutch plate. Anything else matches zero rows.
func NormalizePlate(plate string) string {
	plate = strings.ReplaceAll(plate, "-", "")
	plate = strings.ReplaceAll(plate, " ", "")
	return strings.ToUpper(plate)
}

// Build assembles the query parameters for this search. Empty fields emit
// nothing; an all-empty Filters builds an empty, valid FilterSet.
func (f Filters) Build() FilterSet {
	filters := FilterSet{}
	if f.Category != "" {
		filters["voertuigsoort"] = f.Category
	}
	if f.LicensePlate != "" {
		filters["kenteken"] = NormalizePlate(f.LicensePlate)
	}
	if f.Brand != "" {
		// the dataset stores makes uppercased
		filters["merk"] = strings.ToUpper(f.Brand)
	}
	if f.Model != "" {
		filters["handelsbenaming"] = strings.ToUpper(f.Model)
	}

	var conditions []string
	if f.DateFrom != "" {
		conditions = append(conditions, "datum_tenaamstelling >= '"+compactDate(f.DateFrom)+"'")
	}
	if f.DateTo != "" {
		conditions = append(conditions, "datum_tenaamstelling <= '"+compactDate(f.DateTo)+"'")
	}
	if len(conditions) > 0 {
		filters["$where"] = strings.Join(conditions, " AND ")
	}

	if f.OrderByRecent {
		if where, ok := filters["$where"]; ok {
			filters["$where"] = where + " AND datum_tenaamstelling IS NOT NULL"
		} else {
			filters["$where"] = "datum_tenaamstelling IS NOT NULL"
		}
		filters["$order"] = "datum_tenaamstelling DESC"
	}

	return filters
}

// compactDate converts YYYY-MM-DD to the YYYYMMDD form the dataset stores.
func compactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
