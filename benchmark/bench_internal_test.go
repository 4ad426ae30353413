package benchmark_test

import (
	"strconv"
	"testing"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/hashidx"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// Category: fuzzy

func BenchmarkFuzzyFindBestOption(b *testing.B) {
	names := []string{"-h", "--help", "-n", "--numbers", "-a", "--average", "-r", "--round", "--verbose", "--version"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s := fuzzy.FindBestOption("--averge", names, 2); s != "--average" {
			b.Fatalf("unexpected suggestion %q", s)
		}
	}
}

// Category: hash index

func BenchmarkHashIndexLookup(b *testing.B) {
	t := hashidx.New()
	keys := make([]string, 256)
	for i := range keys {
		keys[i] = "--option-" + strconv.Itoa(i)
		if err := t.Insert(keys[i], i); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := t.Lookup(keys[i&255]); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkHashSum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = hashidx.Sum("--numbers", 0x9e3779b9)
	}
}

// Category: pool

func BenchmarkPoolFields(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := pool.GetFields()
		*f = append(*f, "1", "2", "3")
		pool.PutFields(f)
	}
}

func BenchmarkPoolBuffer(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := pool.GetBuffer()
		buf.WriteString("Usage: prog [OPTIONS]\n")
		pool.PutBuffer(buf)
	}
}
