// Package export renders a matched seed's ante-by-ante timeline as SVG
// and writes result records as JSON, the two export formats the original
// distillation's "persistent output formatting" concern covers (spec §1).
// Follows dungo's pkg/export: same SVGOptions-style option
// struct and svgo canvas usage, same MarshalIndent/WriteFile JSON helpers.
package export
