package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"
)

// AnteSummary is one ante's worth of human-readable draws for the
// timeline: the first voucher taken, the boss blind, and the tags drawn.
// A caller builds these from the same predicates pkg/filter/pkg/verify
// use, so the timeline always reflects the exact draw pkg/score scored.
type AnteSummary struct {
	Ante    int
	Voucher string
	Boss    string
	Tags    []string
}

// TimelineOptions configures the ante timeline SVG, mirroring the
// same SVGOptions shape (zero-value fields get sane defaults).
type TimelineOptions struct {
	Width     int
	RowHeight int
	Margin    int
	Title     string
}

// DefaultTimelineOptions returns sensible default timeline export options.
func DefaultTimelineOptions() TimelineOptions {
	return TimelineOptions{
		Width:     900,
		RowHeight: 60,
		Margin:    40,
		Title:     "Seed timeline",
	}
}

// ExportTimelineSVG renders seed's ante summaries as one row per ante:
// voucher and boss as labeled boxes, tags as a comma list. Returns an
// error if summaries is empty, since an empty timeline has nothing to
// draw and likely indicates a caller bug rather than an empty seed.
func ExportTimelineSVG(seed string, summaries []AnteSummary, opts TimelineOptions) ([]byte, error) {
	if len(summaries) == 0 {
		return nil, fmt.Errorf("export: no ante summaries for seed %s", seed)
	}
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = 60
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	headerHeight := 50
	height := headerHeight + opts.Margin*2 + len(summaries)*opts.RowHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, height)
	canvas.Rect(0, 0, opts.Width, height, "fill:#1a1a2e")

	title := opts.Title
	if title == "" {
		title = "Seed timeline"
	}
	canvas.Text(opts.Width/2, 28, fmt.Sprintf("%s — %s", title, seed),
		"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")

	y := headerHeight + opts.Margin
	for _, s := range summaries {
		drawAnteRow(canvas, s, opts, y)
		y += opts.RowHeight
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawAnteRow(canvas *svg.SVG, s AnteSummary, opts TimelineOptions, y int) {
	rowMid := y + opts.RowHeight/2

	canvas.Text(opts.Margin, rowMid+4, fmt.Sprintf("Ante %d", s.Ante),
		"font-size:13px;font-weight:bold;fill:#a0aec0;font-family:monospace")

	labelX := opts.Margin + 110

	canvas.Rect(labelX, rowMid-14, 220, 28, "fill:#4299e1;opacity:0.85;rx:4")
	canvas.Text(labelX+110, rowMid+4, voucherLabel(s.Voucher),
		"text-anchor:middle;font-size:12px;fill:#fff;font-family:sans-serif")

	bossX := labelX + 240
	canvas.Rect(bossX, rowMid-14, 220, 28, "fill:#f56565;opacity:0.85;rx:4")
	canvas.Text(bossX+110, rowMid+4, bossLabel(s.Boss),
		"text-anchor:middle;font-size:12px;fill:#fff;font-family:sans-serif")

	if len(s.Tags) > 0 {
		tagsX := bossX + 240
		canvas.Text(tagsX, rowMid+4, tagsLabel(s.Tags),
			"font-size:11px;fill:#cbd5e0;font-family:monospace")
	}
}

func voucherLabel(v string) string {
	if v == "" {
		return "(no voucher)"
	}
	return v
}

func bossLabel(b string) string {
	if b == "" {
		return "(no boss)"
	}
	return b
}

func tagsLabel(tags []string) string {
	out := tags[0]
	for _, t := range tags[1:] {
		out += ", " + t
	}
	return out
}

// SaveTimelineSVGToFile renders and writes the timeline SVG to filepath,
// 0644 permissions, matching dungo's SaveSVGToFile.
func SaveTimelineSVGToFile(seed string, summaries []AnteSummary, opts TimelineOptions, filepath string) error {
	data, err := ExportTimelineSVG(seed, summaries, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", filepath, err)
	}
	return nil
}
