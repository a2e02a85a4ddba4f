package rdw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ab-12-cd", "AB12CD"},
		{"AB 12 CD", "AB12CD"},
		{"ab12cd", "AB12CD"},
		{"", ""},
	}
	for _, test := range cases {
		require.Equal(t, test.want, NormalizePlate(test.in))
	}
}

func TestBuildFilters(t *testing.T) {
	t.Run("empty intent builds empty set", func(t *testing.T) {
		require.Empty(t, Filters{}.Build())
	})

	t.Run("equality filters are normalized", func(t *testing.T) {
		filters := Filters{
			Category:     "Personenauto",
			LicensePlate: "ab-12-cd",
			Brand:        "volvo",
			Model:        "v60",
		}.Build()

		require.Equal(t, FilterSet{
			"voertuigsoort":   "Personenauto",
			"kenteken":        "AB12CD",
			"merk":            "VOLVO",
			"handelsbenaming": "V60",
		}, filters)
	})

	t.Run("date from only", func(t *testing.T) {
		filters := Filters{DateFrom: "2020-01-01"}.Build()
		require.Equal(t, "datum_tenaamstelling >= '20200101'", filters["$where"])
		require.NotContains(t, filters["$where"], "<=")
		require.NotContains(t, filters, "$order")
	})

	t.Run("date to only", func(t *testing.T) {
		filters := Filters{DateTo: "2021-12-31"}.Build()
		require.Equal(t, "datum_tenaamstelling <= '20211231'", filters["$where"])
	})

	t.Run("date range joins with AND", func(t *testing.T) {
		filters := Filters{DateFrom: "2020-01-01", DateTo: "2021-12-31"}.Build()
		require.Equal(
			t,
			"datum_tenaamstelling >= '20200101' AND datum_tenaamstelling <= '20211231'",
			filters["$where"],
		)
	})

	t.Run("recency ordering without predicate", func(t *testing.T) {
		filters := Filters{OrderByRecent: true}.Build()
		require.Equal(t, "datum_tenaamstelling IS NOT NULL", filters["$where"])
		require.Equal(t, "datum_tenaamstelling DESC", filters["$order"])
	})

	t.Run("recency ordering appends to existing predicate", func(t *testing.T) {
		filters := Filters{DateFrom: "2020-01-01", OrderByRecent: true}.Build()
		require.Equal(
			t,
			"datum_tenaamstelling >= '20200101' AND datum_tenaamstelling IS NOT NULL",
			filters["$where"],
		)
		require.Equal(t, "datum_tenaamstelling DESC", filters["$order"])
	})
}
