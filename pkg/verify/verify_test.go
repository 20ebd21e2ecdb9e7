package verify_test

import (
	"testing"

	"github.com/dshills/seedscout/pkg/clause"
	"github.com/dshills/seedscout/pkg/itemdata"
	"github.com/dshills/seedscout/pkg/stream"
	"github.com/dshills/seedscout/pkg/verify"
)

func seedBytes(n uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(n >> (8 * i))
	}
	return b
}

func TestVerifyMatchesFirstVoucherOfAnte(t *testing.T) {
	sb := seedBytes(123)
	ctx := stream.NewContext(sb, nil, 0, 0)
	vs := stream.NewVoucherStream(ctx, 1)
	wanted := vs.Peek(func(string) bool { return false })

	cfg := &clause.RawConfig{
		Must: []clause.RawClause{{Type: "voucher", Value: wanted, Antes: []int{1}}},
	}
	f, err := clause.Prepare(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !verify.Verify(f, sb, itemdata.Default(), false) {
		t.Fatalf("expected seed to verify for its own ante-1 first voucher %q", wanted)
	}
}

func TestVerifyRejectsMustNotViolation(t *testing.T) {
	sb := seedBytes(456)
	ctx := stream.NewContext(sb, nil, 0, 0)
	vs := stream.NewVoucherStream(ctx, 1)
	wanted := vs.Peek(func(string) bool { return false })

	cfg := &clause.RawConfig{
		MustNot: []clause.RawClause{{Type: "voucher", Value: wanted, Antes: []int{1}}},
	}
	f, err := clause.Prepare(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if verify.Verify(f, sb, itemdata.Default(), false) {
		t.Fatal("expected verify to reject a seed that violates mustNot")
	}
}

func TestVerifyRejectsUnmatchedMust(t *testing.T) {
	sb := seedBytes(789)
	cfg := &clause.RawConfig{
		Must: []clause.RawClause{{Type: "voucher", Value: "Nonexistent Voucher Name", Antes: []int{1}}},
	}
	f, err := clause.Prepare(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if verify.Verify(f, sb, itemdata.Default(), false) {
		t.Fatal("expected verify to reject when must clause can never match")
	}
}
