package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dshills/seedscout/pkg/export"
	"github.com/dshills/seedscout/pkg/score"
)

func TestExportResultJSONRoundTrips(t *testing.T) {
	result := score.Result{Seed: "AAAAAAAA", TotalScore: 15, Tallies: []int{5, 10}}
	data, err := export.ExportResultJSON(result)
	if err != nil {
		t.Fatal(err)
	}
	var got score.Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, result) {
		t.Fatalf("got %+v, want %+v", got, result)
	}
}

func TestSaveResultsJSONToFile(t *testing.T) {
	results := []score.Result{
		{Seed: "AAAAAAAA", TotalScore: 15, Tallies: []int{15}},
		{Seed: "BBBBBBBB", TotalScore: 20, Tallies: []int{20}},
	}
	path := filepath.Join(t.TempDir(), "results.json")
	if err := export.SaveResultsJSONToFile(results, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []score.Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Seed != "BBBBBBBB" {
		t.Fatalf("unexpected contents: %+v", got)
	}
}

func TestExportTimelineSVGProducesValidMarkup(t *testing.T) {
	summaries := []export.AnteSummary{
		{Ante: 1, Voucher: "Overstock", Boss: "The Hook", Tags: []string{"NegativeTag"}},
		{Ante: 2, Voucher: "Clearance Sale", Boss: "The Wall"},
	}
	data, err := export.ExportTimelineSVG("AAAAAAAA", summaries, export.DefaultTimelineOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatal("expected SVG output to contain an <svg> tag")
	}
	if !bytes.Contains(data, []byte("Overstock")) {
		t.Fatal("expected voucher label to appear in the SVG")
	}
	if !bytes.Contains(data, []byte("NegativeTag")) {
		t.Fatal("expected tag label to appear in the SVG")
	}
}

func TestExportTimelineSVGRejectsEmptySummaries(t *testing.T) {
	if _, err := export.ExportTimelineSVG("AAAAAAAA", nil, export.DefaultTimelineOptions()); err == nil {
		t.Fatal("expected an error for an empty summary list")
	}
}

func TestSaveTimelineSVGToFile(t *testing.T) {
	summaries := []export.AnteSummary{{Ante: 1, Voucher: "Overstock", Boss: "The Hook"}}
	path := filepath.Join(t.TempDir(), "timeline.svg")
	if err := export.SaveTimelineSVGToFile("AAAAAAAA", summaries, export.DefaultTimelineOptions(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatal("expected a saved SVG file")
	}
}
