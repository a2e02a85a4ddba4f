package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"github.com/stretchr/testify/require"
)

func TestCSVEmptySequenceWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, cw.Flush())

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, rdw.CSVFieldNames, lines[0])
}

func TestCSVAbsentFieldsRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, cw.Write(rdw.Record{
		"license_plate": "AB12CD",
		"make":          "VOLVO",
		"door_count":    json.Number("4"),
	}))
	require.NoError(t, cw.Flush())

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	row := map[string]string{}
	for i, field := range lines[0] {
		row[field] = lines[1][i]
	}
	require.Equal(t, "AB12CD", row["license_plate"])
	require.Equal(t, "VOLVO", row["make"])
	require.Equal(t, "4", row["door_count"])
	require.Equal(t, "", row["vehicle_type"])
	require.Equal(t, "", row["registration_date"])
}

func TestCSVQuotesCommasAndQuotes(t *testing.T) {
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, cw.Write(rdw.Record{
		"commercial_name": `GOLF "GTI", SPECIAL`,
	}))
	require.NoError(t, cw.Flush())

	lines, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	row := map[string]string{}
	for i, field := range lines[0] {
		row[field] = lines[1][i]
	}
	require.Equal(t, `GOLF "GTI", SPECIAL`, row["commercial_name"])
}

func TestCSVUnknownFieldsAreNotColumns(t *testing.T) {
	// the column set is the canonical vocabulary, not whatever fields a
	// record happens to carry
	var buf bytes.Buffer
	cw, err := NewCSVWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, cw.Write(rdw.Record{"mystery_field": "x"}))
	require.NoError(t, cw.Flush())

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.NotContains(t, lines[0], "mystery_field")
	require.Len(t, lines[1], len(rdw.CSVFieldNames))
}
