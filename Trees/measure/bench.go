package main

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/petar/GoLLRB/llrb"
	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/g-m-twostay/go-rbtree/Trees/arrTree"
)

// contender inserts every key and then looks each one up once.
type contender struct {
	name string
	run  func(keys []int) bool
}

func contenders(n int) []contender {
	ours := func(mk func() Trees.Tree[int]) func([]int) bool {
		return func(keys []int) bool {
			t := mk()
			for _, k := range keys {
				t.Insert(k)
			}
			ok := true
			for _, k := range keys {
				ok = t.Has(k) && ok
			}
			return ok
		}
	}
	return []contender{
		{"pointer", ours(func() Trees.Tree[int] { return Trees.New[int]() })},
		{"arena", ours(func() Trees.Tree[int] { return arrTree.New[int, uint32](uint32(n)) })},
		{"gods/redblacktree", func(keys []int) bool {
			t := redblacktree.NewWithIntComparator()
			for _, k := range keys {
				t.Put(k, nil)
			}
			ok := true
			for _, k := range keys {
				_, found := t.Get(k)
				ok = found && ok
			}
			return ok
		}},
		{"google/btree", func(keys []int) bool {
			t := btree.NewOrderedG[int](32)
			for _, k := range keys {
				t.ReplaceOrInsert(k)
			}
			ok := true
			for _, k := range keys {
				ok = t.Has(k) && ok
			}
			return ok
		}},
		{"petar/GoLLRB", func(keys []int) bool {
			t := llrb.New()
			for _, k := range keys {
				t.InsertNoReplace(llrb.Int(k))
			}
			ok := true
			for _, k := range keys {
				ok = t.Has(llrb.Int(k)) && ok
			}
			return ok
		}},
	}
}

type benchRow struct {
	name   string
	result testing.BenchmarkResult
	ok     bool
}

// runBench measures every contender with testing.Benchmark on the same keys.
func runBench(keys []int) []benchRow {
	rows := make([]benchRow, 0, 5)
	for _, c := range contenders(len(keys)) {
		ok := true
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				ok = c.run(keys) && ok
			}
		})
		log.WithField("impl", c.name).Debugf("%d rounds in %s", r.N, r.T)
		rows = append(rows, benchRow{c.name, r, ok})
	}
	return rows
}

func renderBench(w io.Writer, order string, n int, rows []benchRow) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("%s inserts + lookups, order=%s", humanize.Comma(int64(n)), order))
	tw.AppendHeader(table.Row{"impl", "rounds", "per round", "per key", "allocs/round", "bytes/round", "lookups ok"})
	for _, r := range rows {
		perRound := time.Duration(r.result.NsPerOp())
		perKey := time.Duration(0)
		if n > 0 {
			perKey = perRound / time.Duration(n)
		}
		tw.AppendRow(table.Row{
			r.name,
			humanize.Comma(int64(r.result.N)),
			perRound,
			perKey,
			humanize.Comma(r.result.AllocsPerOp()),
			humanize.Bytes(uint64(r.result.AllocedBytesPerOp())),
			r.ok,
		})
	}
	tw.Render()
}
