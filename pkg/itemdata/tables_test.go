package itemdata_test

import (
	"testing"

	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/itemdata"
)

func TestDefaultLoadsWithoutError(t *testing.T) {
	tbl := itemdata.Default()
	if len(tbl.Bosses()) == 0 {
		t.Fatal("expected at least one boss in the default table")
	}
	if len(tbl.Legendaries()) == 0 {
		t.Fatal("expected at least one legendary joker")
	}
}

func TestPerkeoIsLegendary(t *testing.T) {
	tbl := itemdata.Default()
	if !tbl.IsLegendary("Perkeo") {
		t.Fatal("expected Perkeo to be legendary")
	}
	r, ok := tbl.Rarity("Perkeo")
	if !ok || r != item.RarityLegendary {
		t.Fatalf("Rarity(Perkeo) = %v, %v; want RarityLegendary, true", r, ok)
	}
}

func TestHieroglyphIsBonusVoucher(t *testing.T) {
	tbl := itemdata.Default()
	if !tbl.IsBonusVoucher("Hieroglyph") {
		t.Fatal("expected Hieroglyph to be a bonus voucher")
	}
	if !tbl.IsBonusVoucher("Petroglyph") {
		t.Fatal("expected Petroglyph to be a bonus voucher")
	}
	if tbl.IsBonusVoucher("Telescope") {
		t.Fatal("Telescope should not be a bonus voucher")
	}
}

func TestSoulCardsNeverInShop(t *testing.T) {
	tbl := itemdata.Default()
	for _, name := range []string{"Soul", "Black Hole"} {
		if !tbl.IsSoulCard(name) {
			t.Fatalf("expected %q to be a soul card", name)
		}
		if !tbl.NeverInShop(name) {
			t.Fatalf("expected %q to never appear in shop", name)
		}
	}
}

func TestJokersOfRarityPartitionsTable(t *testing.T) {
	tbl := itemdata.Default()
	total := 0
	for _, r := range []item.Rarity{item.RarityCommon, item.RarityUncommon, item.RarityRare, item.RarityLegendary} {
		total += len(tbl.JokersOfRarity(r))
	}
	if total == 0 {
		t.Fatal("expected jokers in at least one rarity tier")
	}
}
