// Package statusapi is the supplemented operational status endpoint (spec
// §5.1): a minimal gin server exposing a read-only JSON snapshot of a
// running search's atomic counters. It never touches cutoff/sink/search
// state beyond reading it, matching the "live dashboards" non-goal by
// staying a thin reporter rather than a control surface.
package statusapi
