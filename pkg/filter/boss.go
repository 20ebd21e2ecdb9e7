package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/mask"
)

// Boss evaluates a boss clause against a batch (spec §4.3.3). For each
// clause ante, draws the boss from the batch's shared BossStream — which
// must never be restarted per ante, only ever advanced forward — and
// accumulates an OR across antes.
func Boss(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8
	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) == 0 {
			continue
		}
		for lane := 0; lane < mask.Width; lane++ {
			if !live.Get(lane) {
				continue
			}
			boss := b.bossFor(lane, ante)
			if bossMatches(pc, boss) {
				result = result.Set(lane, true)
			}
		}
	}
	return result.And(live)
}

func bossMatches(pc *clause.PreparedClause, boss string) bool {
	for _, v := range pc.Values {
		if v == boss {
			return true
		}
	}
	return false
}
