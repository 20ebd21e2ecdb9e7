package itemdata

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dshills/seedscout/pkg/item"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// Table holds every enumeration and rate table the streams and filter
// evaluator need, loaded once from the embedded fixtures.
type Table struct {
	jokerRarity   map[string]item.Rarity
	jokersByRank  [4][]string // indexed by item.Rarity
	legendaries   []string
	vouchers      []voucherDef
	voucherUpgr   map[string]string
	bonusVouchers map[string]bool
	tags          []string
	bosses        []string
	tarots        []string
	planets       []string
	spectrals     []string
	soulCards     map[string]bool
	neverInShop   map[string]bool
	soulChance    float64
}

type voucherDef struct {
	Name    string `yaml:"name"`
	Upgrade string `yaml:"upgrade"`
	Bonus   bool   `yaml:"bonus"`
}

type jokersFile struct {
	Jokers []struct {
		Name   string `yaml:"name"`
		Rarity string `yaml:"rarity"`
	} `yaml:"jokers"`
}

type vouchersFile struct {
	Vouchers      []voucherDef `yaml:"vouchers"`
	BonusVouchers []string     `yaml:"bonusVouchers"`
}

type tagsFile struct {
	Tags []string `yaml:"tags"`
}

type bossesFile struct {
	Bosses []string `yaml:"bosses"`
}

type tarotsFile struct {
	Tarots     []string `yaml:"tarots"`
	SoulChance float64  `yaml:"soulChance"`
}

type planetsFile struct {
	Planets []string `yaml:"planets"`
}

type spectralsFile struct {
	Spectrals   []string `yaml:"spectrals"`
	SoulCards   []string `yaml:"soulCards"`
	NeverInShop []string `yaml:"neverInShop"`
}

func parseRarity(s string) (item.Rarity, error) {
	switch s {
	case "common":
		return item.RarityCommon, nil
	case "uncommon":
		return item.RarityUncommon, nil
	case "rare":
		return item.RarityRare, nil
	case "legendary":
		return item.RarityLegendary, nil
	default:
		return 0, fmt.Errorf("itemdata: unknown rarity %q", s)
	}
}

// Load parses every embedded fixture into a Table. It only fails if the
// embedded data itself is malformed, which would be a build-time defect.
func Load() (*Table, error) {
	t := &Table{
		jokerRarity:   make(map[string]item.Rarity),
		voucherUpgr:   make(map[string]string),
		bonusVouchers: make(map[string]bool),
		soulCards:     make(map[string]bool),
		neverInShop:   make(map[string]bool),
	}

	var jf jokersFile
	if err := readYAML("data/jokers.yaml", &jf); err != nil {
		return nil, err
	}
	for _, j := range jf.Jokers {
		r, err := parseRarity(j.Rarity)
		if err != nil {
			return nil, fmt.Errorf("itemdata: joker %q: %w", j.Name, err)
		}
		t.jokerRarity[j.Name] = r
		t.jokersByRank[r] = append(t.jokersByRank[r], j.Name)
		if r == item.RarityLegendary {
			t.legendaries = append(t.legendaries, j.Name)
		}
	}

	var vf vouchersFile
	if err := readYAML("data/vouchers.yaml", &vf); err != nil {
		return nil, err
	}
	t.vouchers = vf.Vouchers
	for _, v := range vf.Vouchers {
		t.voucherUpgr[v.Name] = v.Upgrade
	}
	for _, v := range vf.BonusVouchers {
		t.bonusVouchers[v] = true
	}

	var tf tagsFile
	if err := readYAML("data/tags.yaml", &tf); err != nil {
		return nil, err
	}
	t.tags = tf.Tags

	var bf bossesFile
	if err := readYAML("data/bosses.yaml", &bf); err != nil {
		return nil, err
	}
	t.bosses = bf.Bosses

	var taf tarotsFile
	if err := readYAML("data/tarots.yaml", &taf); err != nil {
		return nil, err
	}
	t.tarots = taf.Tarots
	t.soulChance = taf.SoulChance

	var pf planetsFile
	if err := readYAML("data/planets.yaml", &pf); err != nil {
		return nil, err
	}
	t.planets = pf.Planets

	var sf spectralsFile
	if err := readYAML("data/spectrals.yaml", &sf); err != nil {
		return nil, err
	}
	t.spectrals = sf.Spectrals
	for _, s := range sf.SoulCards {
		t.soulCards[s] = true
	}
	for _, s := range sf.NeverInShop {
		t.neverInShop[s] = true
	}

	return t, nil
}

func readYAML(path string, v any) error {
	data, err := embeddedData.ReadFile(path)
	if err != nil {
		return fmt.Errorf("itemdata: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("itemdata: parsing %s: %w", path, err)
	}
	return nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the process-wide Table loaded from the embedded fixtures.
// Loaded lazily and cached: every caller shares the same immutable tables,
// the way enumeration tables are meant to be used (read-only, never
// mutated after a search begins).
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load()
	})
	if defaultErr != nil {
		panic(defaultErr) // embedded data is a build-time invariant, not a runtime error
	}
	return defaultTable
}

// Rarity returns the rarity of a named joker and whether it was found.
func (t *Table) Rarity(name string) (item.Rarity, bool) {
	r, ok := t.jokerRarity[name]
	return r, ok
}

// IsLegendary reports whether name is a legendary (soul) joker.
func (t *Table) IsLegendary(name string) bool {
	r, ok := t.jokerRarity[name]
	return ok && r == item.RarityLegendary
}

// JokersOfRarity returns every joker name at the given rarity tier.
func (t *Table) JokersOfRarity(r item.Rarity) []string {
	return t.jokersByRank[r]
}

// Legendaries returns every legendary (soul-eligible) joker name, in table order.
func (t *Table) Legendaries() []string {
	return t.legendaries
}

// Vouchers returns every voucher definition in table order.
func (t *Table) Vouchers() []voucherDef {
	return t.vouchers
}

// VoucherNames returns every base voucher name, in table order.
func (t *Table) VoucherNames() []string {
	names := make([]string, len(t.vouchers))
	for i, v := range t.vouchers {
		names[i] = v.Name
	}
	return names
}

// IsBonusVoucher reports whether name is Hieroglyph/Petroglyph (or any other
// voucher the table marks as granting a bonus draw when it is the first
// voucher of an ante).
func (t *Table) IsBonusVoucher(name string) bool {
	return t.bonusVouchers[name]
}

// Tags returns every tag name, in table order.
func (t *Table) Tags() []string { return t.tags }

// Bosses returns every boss name, in table order.
func (t *Table) Bosses() []string { return t.bosses }

// Tarots returns every tarot card name, in table order. "Soul" is not among
// them; Arcana packs yield it through SoulChance.
func (t *Table) Tarots() []string { return t.tarots }

// Planets returns every planet card name, in table order.
func (t *Table) Planets() []string { return t.planets }

// Spectrals returns every spectral card name (including "Soul" and
// "Black Hole"), in table order.
func (t *Table) Spectrals() []string { return t.spectrals }

// IsSoulCard reports whether name is one of the cards that grants a
// legendary joker when found in a pack.
func (t *Table) IsSoulCard(name string) bool { return t.soulCards[name] }

// NeverInShop reports whether name may never appear in a shop slot
// (spec §4.3.4: "Soul and Black Hole never appear in shop slots").
func (t *Table) NeverInShop(name string) bool { return t.neverInShop[name] }

// SoulChance returns the per-card probability that a tarot/spectral pack
// slot yields a soul card instead of an ordinary card.
func (t *Table) SoulChance() float64 { return t.soulChance }
