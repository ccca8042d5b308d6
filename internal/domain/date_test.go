package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshal_WireFormat(t *testing.T) {
	raw, err := json.Marshal(NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("marshal date: %v", err)
	}
	if string(raw) != `"2024/03/05"` {
		t.Fatalf("unexpected wire format: %s", raw)
	}
}

func TestDateMarshal_ZeroIsNull(t *testing.T) {
	raw, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero date: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("zero date must marshal to null, got %s", raw)
	}
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2019/11/30"`), &d); err != nil {
		t.Fatalf("unmarshal date: %v", err)
	}
	if d.Year() != 2019 || d.Month() != time.November || d.Day() != 30 {
		t.Fatalf("parsed wrong date: %v", d)
	}

	for _, raw := range []string{"null", `""`} {
		var z Date
		if err := json.Unmarshal([]byte(raw), &z); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !z.IsZero() {
			t.Fatalf("%s must produce the zero date, got %v", raw, z)
		}
	}

	var bad Date
	if err := json.Unmarshal([]byte(`"30-11-2019"`), &bad); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, time.March, 5).String(); got != "2024/03/05" {
		t.Fatalf("String: %q", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Fatalf("zero String must be empty, got %q", got)
	}
}
