package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/mask"
)

// Evaluate dispatches a single prepared clause to its category predicate
// (spec §4.3). It is the general entry point used by And/Or composition and
// by callers that only have one clause in hand. Voucher clauses evaluated
// this way get their own independent VoucherPass walk — correct in
// isolation, but callers holding more than one voucher clause against the
// same Batch (must+should+mustNot, or a clause nested under And/Or) should
// prefer EvaluateAll/VoucherPass directly so every voucher clause shares
// one walk instead of each call re-advancing the same cached streams.
func Evaluate(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	switch pc.Kind {
	case clause.KindVoucher:
		masks, _ := VoucherPass(b, []*clause.PreparedClause{pc}, live)
		return masks[0]
	case clause.KindTag:
		return Tag(b, pc, live)
	case clause.KindBoss:
		return Boss(b, pc, live)
	case clause.KindTarotCard, clause.KindPlanetCard, clause.KindSpectralCard:
		return Consumable(b, pc, live)
	case clause.KindJoker:
		return Joker(b, pc, live)
	case clause.KindSoulJoker:
		return SoulJoker(b, pc, live)
	case clause.KindPlayingCard:
		return PlayingCard(b, pc, live)
	case clause.KindAnd:
		return And(b, pc, live)
	case clause.KindOr:
		return Or(b, pc, live)
	default:
		return mask.AllZero
	}
}

// And evaluates an And compound clause (spec §4.3.8): every child clause
// must match the same lane. An empty child list is unsatisfiable.
func And(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	if len(pc.Children) == 0 {
		return mask.AllZero
	}
	result := live
	for _, child := range pc.Children {
		result = result.And(Evaluate(b, child, live))
		if result.AllZero() {
			break
		}
	}
	return result
}

// Or evaluates an Or compound clause (spec §4.3.8): any child clause
// matching the lane is enough. An empty child list is unsatisfiable.
func Or(b *Batch, pc *clause.PreparedClause, live mask.Mask8) mask.Mask8 {
	var result mask.Mask8
	for _, child := range pc.Children {
		result = result.Or(Evaluate(b, child, live))
	}
	return result.And(live)
}

// EvaluateAll evaluates a Filter's must/should/mustNot clause lists. Every
// voucher clause across all three lists shares one VoucherPass walk (spec
// §9's "create once per (batch, ante)" caching rule extends across list
// boundaries: two voucher clauses in the same Batch, whichever list they
// belong to, must never drive two independent walks of the same antes).
// Every other clause is evaluated individually via Evaluate. Results are
// returned in the same order as each input slice.
func EvaluateAll(b *Batch, must, should, mustNot []*clause.PreparedClause, live mask.Mask8) (mustMasks, shouldMasks, mustNotMasks []mask.Mask8) {
	mustMasks = make([]mask.Mask8, len(must))
	shouldMasks = make([]mask.Mask8, len(should))
	mustNotMasks = make([]mask.Mask8, len(mustNot))

	type dest struct {
		slice []mask.Mask8
		idx   int
	}
	var voucherClauses []*clause.PreparedClause
	var voucherDests []dest
	collect := func(clauses []*clause.PreparedClause, slice []mask.Mask8) {
		for i, pc := range clauses {
			if pc.Kind == clause.KindVoucher {
				voucherClauses = append(voucherClauses, pc)
				voucherDests = append(voucherDests, dest{slice, i})
			}
		}
	}
	collect(must, mustMasks)
	collect(should, shouldMasks)
	collect(mustNot, mustNotMasks)

	if len(voucherClauses) > 0 {
		results, _ := VoucherPass(b, voucherClauses, live)
		for j, d := range voucherDests {
			d.slice[d.idx] = results[j]
		}
	}

	fill := func(clauses []*clause.PreparedClause, slice []mask.Mask8) {
		for i, pc := range clauses {
			if pc.Kind == clause.KindVoucher {
				continue
			}
			slice[i] = Evaluate(b, pc, live)
		}
	}
	fill(must, mustMasks)
	fill(should, shouldMasks)
	fill(mustNot, mustNotMasks)
	return
}
