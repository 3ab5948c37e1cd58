package collector

import (
	"strings"
	"testing"
	"time"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

func TestParseChart_ValidPayload(t *testing.T) {
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1756350900,1756351800,1756352700],
		"indicators":{"quote":[{
			"open":[99.0,null,100.0],
			"high":[100.0,null,101.0],
			"low":[98.0,null,99.5],
			"close":[99.5,null,100.5],
			"volume":[1000,null,2000]
		}]}
	}],"error":null}}`)

	bars, err := parseChart(body, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Middle bar is all null and must be skipped.
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 99.5 || bars[1].Close != 100.5 {
		t.Errorf("expected closes 99.5,100.5, got %v,%v", bars[0].Close, bars[1].Close)
	}
	if bars[0].Time.Location() != testLoc {
		t.Errorf("expected market timezone on bar times, got %v", bars[0].Time.Location())
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("expected chronological order")
	}
}

func TestParseChart_RaggedQuoteSeries(t *testing.T) {
	// Fewer quote values than timestamps must be an error, not a panic.
	body := []byte(`{"chart":{"result":[{
		"timestamp":[1756350900,1756351800],
		"indicators":{"quote":[{
			"open":[99.0],
			"high":[100.0],
			"low":[98.0],
			"close":[99.5],
			"volume":[1000]
		}]}
	}],"error":null}}`)

	if _, err := parseChart(body, testLoc); err == nil {
		t.Fatal("expected error for ragged quote series")
	} else if !strings.Contains(err.Error(), "quote series shorter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseChart_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"api error", `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`},
		{"empty result", `{"chart":{"result":[],"error":null}}`},
		{"no timestamps", `{"chart":{"result":[{"timestamp":[]}],"error":null}}`},
		{"no quote block", `{"chart":{"result":[{"timestamp":[1756350900],"indicators":{"quote":[]}}],"error":null}}`},
		{"bad json", `{"chart":`},
	}
	for _, tt := range tests {
		if _, err := parseChart([]byte(tt.body), testLoc); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
