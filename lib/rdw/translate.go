package rdw

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RawRecord is one row exactly as decoded from the open-data API: Dutch
// field names, values as strings, json.Number or nil.
type RawRecord map[string]any

// Record is a RawRecord after translation: canonical English field names,
// Dutch literals replaced where known.
type Record map[string]any

// TranslateRecord renames every known field to its canonical English name
// and translates values. Unknown fields and values pass through verbatim.
// The input map is never modified.
func TranslateRecord(raw RawRecord) Record {
	translated := make(Record, len(raw))
	for key, value := range raw {
		english, ok := columnTranslations[key]
		if !ok {
			english = key
		}
		translated[english] = TranslateValue(value)
	}
	return translated
}

// TranslateValue rewrites a single field value. Compact dates (exactly 8
// digits) become YYYY-MM-DD before any dictionary lookup; known Dutch
// literals map to English; everything else is returned unchanged with its
// original type intact.
func TranslateValue(value any) any {
	if value == nil {
		return nil
	}

	str := strings.TrimSpace(stringify(value))
	if isCompactDate(str) {
		return str[0:4] + "-" + str[4:6] + "-" + str[6:8]
	}
	if english, ok := valueTranslations[str]; ok {
		return english
	}
	return value
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func isCompactDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
