package filter

import (
	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/mask"
)

// CountOccurrences implements the scoring provider's uniform
// count_occurrences protocol (spec §4.5) for one lane of a batch. It is the
// scalar sibling of Evaluate: where Evaluate answers "does this clause
// match", CountOccurrences answers "how many times". Both walk the same
// cached streams, so a should clause counted here sees exactly the same
// draws a must/mustNot clause sharing the same batch would have matched
// against.
//
// Voucher clauses are the one category CountOccurrences cannot answer in
// isolation — counting requires the same shared, sequential walk
// VoucherPass performs, so a caller holding more than one voucher clause
// (e.g. scoring should-clauses alongside must-clauses already
// re-verified on the same Batch) must use VoucherPass directly and take
// counts from its second return value instead of calling CountOccurrences
// per voucher clause.
func CountOccurrences(b *Batch, pc *clause.PreparedClause, lane int) int {
	switch pc.Kind {
	case clause.KindVoucher:
		masks, counts := VoucherPass(b, []*clause.PreparedClause{pc}, mask.Lane(lane))
		_ = masks
		return counts[0][lane]
	case clause.KindTag:
		return countTag(b, pc, lane)
	case clause.KindBoss:
		return countBoss(b, pc, lane)
	case clause.KindTarotCard, clause.KindPlanetCard, clause.KindSpectralCard:
		return countConsumable(b, pc, lane)
	case clause.KindJoker:
		return countJoker(b, pc, lane)
	case clause.KindSoulJoker:
		return countSoulJoker(b, pc, lane)
	case clause.KindPlayingCard:
		return countPlayingCard(b, pc, lane)
	case clause.KindAnd:
		return countAnd(b, pc, lane)
	case clause.KindOr:
		return countOr(b, pc, lane)
	default:
		return 0
	}
}

func forEachAnte(pc *clause.PreparedClause, fn func(ante int)) {
	for ante := 1; ante <= 63; ante++ {
		if pc.AntesMask&(1<<uint(ante)) != 0 {
			fn(ante)
		}
	}
}

func countTag(b *Batch, pc *clause.PreparedClause, lane int) int {
	n := 0
	forEachAnte(pc, func(ante int) {
		small, big := b.tagsFor(lane, ante)
		n += TagOccurrences(pc, small, big)
	})
	return n
}

func countBoss(b *Batch, pc *clause.PreparedClause, lane int) int {
	n := 0
	forEachAnte(pc, func(ante int) {
		if bossMatches(pc, b.bossFor(lane, ante)) {
			n++
		}
	})
	return n
}

func countConsumable(b *Batch, pc *clause.PreparedClause, lane int) int {
	cat := kindCategory(pc.Kind)
	n := 0
	forEachAnte(pc, func(ante int) {
		if pc.SourceShop {
			n += shopSlotOccurrences(b, pc, lane, ante, cat)
		}
		if pc.SourcePacks {
			n += packSlotOccurrences(b, pc, lane, ante, cat)
		}
	})
	return n
}

func shopSlotOccurrences(b *Batch, pc *clause.PreparedClause, lane, ante int, cat item.Category) int {
	highest := highestSlot(pc.ShopSlotsMask)
	if highest < 0 {
		return 0
	}
	n := 0
	for slot := 0; slot <= highest; slot++ {
		if pc.ShopSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		it := b.shopSlot(lane, ante, slot)
		if it.Category != cat {
			continue
		}
		if consumableMatches(pc, it) {
			n++
		}
	}
	return n
}

func packSlotOccurrences(b *Batch, pc *clause.PreparedClause, lane, ante int, cat item.Category) int {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return 0
	}
	wantType := categoryPackType(cat)
	n := 0
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != wantType {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		count := draw.size.Count()
		for i := 0; i < count; i++ {
			it := b.contentCard(lane, cat, ante, slot, i)
			if consumableMatches(pc, it) {
				n++
			}
		}
	}
	return n
}

func countJoker(b *Batch, pc *clause.PreparedClause, lane int) int {
	n := 0
	forEachAnte(pc, func(ante int) {
		if pc.SourceShop {
			n += shopJokerSlotOccurrences(b, pc, lane, ante)
		}
		if pc.SourcePacks {
			n += buffoonPackSlotOccurrences(b, pc, lane, ante)
		}
	})
	return n
}

func shopJokerSlotOccurrences(b *Batch, pc *clause.PreparedClause, lane, ante int) int {
	highest := highestSlot(pc.ShopSlotsMask)
	if highest < 0 {
		return 0
	}
	n := 0
	for slot := 0; slot <= highest; slot++ {
		if pc.ShopSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		it := b.shopJokerSlot(lane, ante, slot)
		if jokerMatches(b, lane, pc, it) {
			n++
		}
	}
	return n
}

func buffoonPackSlotOccurrences(b *Batch, pc *clause.PreparedClause, lane, ante int) int {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return 0
	}
	n := 0
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != item.PackBuffoon {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		count := draw.size.Count()
		for i := 0; i < count; i++ {
			it := b.contentCard(lane, item.CategoryJoker, ante, slot, i)
			if jokerMatches(b, lane, pc, it) {
				n++
			}
		}
	}
	return n
}

// countSoulJoker sums across all of the clause's antes: the global legendary
// draw is checked once (spec §4.5: "stream walked globally in ante order,
// advancing once per discovered Soul card" — one lane has exactly one
// legendary draw), and every ante whose packs actually contain the Soul
// card counts that same draw again, matching the joint predicate in
// souljoker.go.
func countSoulJoker(b *Batch, pc *clause.PreparedClause, lane int) int {
	if !soulJokerValueMatches(pc, b.soulJoker(lane)) {
		return 0
	}
	n := 0
	forEachAnte(pc, func(ante int) {
		if pc.SourcePacks && soulPresentInPacks(b, pc, lane, ante) {
			n++
		}
	})
	return n
}

func countPlayingCard(b *Batch, pc *clause.PreparedClause, lane int) int {
	n := 0
	forEachAnte(pc, func(ante int) {
		if pc.SourcePacks {
			n += standardPackSlotOccurrences(b, pc, lane, ante)
		}
	})
	return n
}

func standardPackSlotOccurrences(b *Batch, pc *clause.PreparedClause, lane, ante int) int {
	highest := highestPackSlot(pc.PackSlotsMask)
	if highest < 0 {
		return 0
	}
	n := 0
	for slot := 0; slot <= highest; slot++ {
		if pc.PackSlotsMask&(1<<uint(slot)) == 0 {
			continue
		}
		draw := b.packSlot(lane, ante, slot)
		if draw.typ != item.PackStandard {
			continue
		}
		if pc.SourceRequireMega && draw.size != item.PackMega {
			continue
		}
		count := draw.size.Count()
		for i := 0; i < count; i++ {
			it := b.contentCard(lane, item.CategoryPlayingCard, ante, slot, i)
			if playingCardMatches(pc, it) {
				n++
			}
		}
	}
	return n
}

// matchesAtAnte and countAtAnte answer a leaf clause's match/count at one
// specific ante, bypassing that clause's own AntesMask iteration. And's
// per-ante gating (spec §4.3.8) needs this: it must test each child at
// exactly the ante being gated, not OR/sum across the child's whole antes
// list. Voucher (and nested And/Or) fall back to the child's own full
// evaluation, since voucher matching is inherently a sequential walk across
// its own antes and cannot be answered for one ante in isolation without
// either re-deriving run-state history or sharing a walk this function has
// no batch-wide view to set up; nested compounds recurse through their own
// full antes for the same reason. This is a documented approximation for
// the narrow case of a voucher (or nested And/Or containing one) used as an
// And child — the common cases (tag/boss/joker/consumable/souljoker/
// playingcard siblings inside And) are evaluated exactly.
func matchesAtAnte(b *Batch, pc *clause.PreparedClause, lane, ante int) bool {
	switch pc.Kind {
	case clause.KindTag:
		small, big := b.tagsFor(lane, ante)
		return tagMatches(pc, small, big)
	case clause.KindBoss:
		return bossMatches(pc, b.bossFor(lane, ante))
	case clause.KindTarotCard, clause.KindPlanetCard, clause.KindSpectralCard:
		cat := kindCategory(pc.Kind)
		if pc.SourceShop && shopSlotsMatch(b, pc, lane, ante, cat) {
			return true
		}
		return pc.SourcePacks && packSlotsMatch(b, pc, lane, ante, cat)
	case clause.KindJoker:
		if pc.SourceShop && shopJokerSlotsMatch(b, pc, lane, ante) {
			return true
		}
		return pc.SourcePacks && buffoonPackSlotsMatch(b, pc, lane, ante)
	case clause.KindSoulJoker:
		if !soulJokerValueMatches(pc, b.soulJoker(lane)) {
			return false
		}
		return pc.SourcePacks && soulPresentInPacks(b, pc, lane, ante)
	case clause.KindPlayingCard:
		return pc.SourcePacks && standardPackSlotsMatch(b, pc, lane, ante)
	default:
		return Evaluate(b, pc, mask.Lane(lane)).Get(lane)
	}
}

func countAtAnte(b *Batch, pc *clause.PreparedClause, lane, ante int) int {
	switch pc.Kind {
	case clause.KindTag:
		small, big := b.tagsFor(lane, ante)
		return TagOccurrences(pc, small, big)
	case clause.KindBoss:
		if bossMatches(pc, b.bossFor(lane, ante)) {
			return 1
		}
		return 0
	case clause.KindTarotCard, clause.KindPlanetCard, clause.KindSpectralCard:
		cat := kindCategory(pc.Kind)
		n := 0
		if pc.SourceShop {
			n += shopSlotOccurrences(b, pc, lane, ante, cat)
		}
		if pc.SourcePacks {
			n += packSlotOccurrences(b, pc, lane, ante, cat)
		}
		return n
	case clause.KindJoker:
		n := 0
		if pc.SourceShop {
			n += shopJokerSlotOccurrences(b, pc, lane, ante)
		}
		if pc.SourcePacks {
			n += buffoonPackSlotOccurrences(b, pc, lane, ante)
		}
		return n
	case clause.KindSoulJoker:
		if !soulJokerValueMatches(pc, b.soulJoker(lane)) {
			return 0
		}
		if pc.SourcePacks && soulPresentInPacks(b, pc, lane, ante) {
			return 1
		}
		return 0
	case clause.KindPlayingCard:
		if pc.SourcePacks {
			return standardPackSlotOccurrences(b, pc, lane, ante)
		}
		return 0
	default:
		return CountOccurrences(b, pc, lane)
	}
}

// countAnd implements spec §4.3.8's And scoring rule: for each ante in the
// union of children's antes, every child must match that exact ante; when
// the gate passes, the ante contributes the max count among children whose
// score weight is non-zero (pure gate children with score 0 never tally).
func countAnd(b *Batch, pc *clause.PreparedClause, lane int) int {
	if len(pc.Children) == 0 {
		return 0
	}
	var unionAntes uint64
	for _, c := range pc.Children {
		unionAntes |= c.AntesMask
	}

	total := 0
	for ante := 1; ante <= 63; ante++ {
		if unionAntes&(1<<uint(ante)) == 0 {
			continue
		}
		allMatch := true
		best := 0
		for _, child := range pc.Children {
			if !matchesAtAnte(b, child, lane, ante) {
				allMatch = false
				break
			}
			if child.Score != 0 {
				if c := countAtAnte(b, child, lane, ante); c > best {
					best = c
				}
			}
		}
		if allMatch {
			total += best
		}
	}
	return total
}

func countOr(b *Batch, pc *clause.PreparedClause, lane int) int {
	best := 0
	for _, child := range pc.Children {
		if c := CountOccurrences(b, child, lane); c > best {
			best = c
		}
	}
	return best
}
