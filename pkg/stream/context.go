package stream

import (
	"github.com/dshills/seedscout/pkg/item"
	"github.com/dshills/seedscout/pkg/itemdata"
)

// Context bundles the per-search inputs every stream constructor needs: the
// seed bytes fed to pkg/rng, the enumeration tables, and the deck and
// stake. Deck gates the Ghost deck's spectral shop slots; Stake is carried
// but no stream reads it.
type Context struct {
	SeedBytes []byte
	Table     *itemdata.Table
	Deck      item.Deck
	Stake     item.Stake
}

// NewContext builds a stream Context. table may be nil, in which case
// itemdata.Default() is used.
func NewContext(seedBytes []byte, table *itemdata.Table, deck item.Deck, stake item.Stake) *Context {
	if table == nil {
		table = itemdata.Default()
	}
	return &Context{SeedBytes: seedBytes, Table: table, Deck: deck, Stake: stake}
}
