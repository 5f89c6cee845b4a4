package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestPriceBarKeyIsUnique(t *testing.T) {
	typ := reflect.TypeOf(Price{})

	// Re-fetching a lookback window must not duplicate bars, so the
	// bar key fields share one composite unique index.
	for _, name := range []string{"Symbol", "TimeFrame", "OpenTime"} {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		if tag := field.Tag.Get("gorm"); !strings.Contains(tag, "uniqueIndex:idx_prices_bar") {
			t.Errorf("%s tag %q lacks the bar unique index", name, tag)
		}
	}
}
