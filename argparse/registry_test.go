//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	apio "github.com/dzonerzy/go-argparse/io"
)

// registerN adds n boolean options named -o<i> / --opt-<i>.
func registerN(t *testing.T, p *Parser, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		mustAdd(t, p.Add(fmt.Sprintf("-o%d", i), fmt.Sprintf("--opt-%d", i), Bool, "", false, nil))
	}
}

func assertIndexAgrees(t *testing.T, p *Parser) {
	t.Helper()
	for _, name := range p.reg.names() {
		viaLookup, ok1 := p.reg.lookup(name)
		viaScan, ok2 := p.reg.scan(name)
		if !ok1 || !ok2 || viaLookup != viaScan {
			t.Fatalf("lookup and scan disagree for %s", name)
		}
	}
	for _, missing := range []string{"--nope", "-z", ""} {
		if _, ok := p.reg.lookup(missing); ok {
			t.Fatalf("unexpected match for %q", missing)
		}
	}
}

func TestRegistry_LinearBelowThreshold(t *testing.T) {
	p, _ := newTestParser(t, "")
	registerN(t, p, DefaultHashThreshold-2) // plus the help option: one short

	if p.reg.index != nil {
		t.Fatalf("index built below the threshold with %d options", len(p.reg.args))
	}
	assertIndexAgrees(t, p)
}

func TestRegistry_IndexAboveThreshold(t *testing.T) {
	var out bytes.Buffer
	logger := apio.NewLogger(apio.New().WithOut(&out).NoColor()).WithLevel(apio.LevelDebug)
	p, _ := newTestParser(t, "")
	p.Logger(logger)

	registerN(t, p, DefaultHashThreshold-1)
	if p.reg.index == nil {
		t.Fatalf("index not built at %d options", len(p.reg.args))
	}
	assertIndexAgrees(t, p)

	// 120 more options push the index past 192 names and force a resize
	for i := DefaultHashThreshold - 1; i < 120; i++ {
		mustAdd(t, p.Add(fmt.Sprintf("-o%d", i), fmt.Sprintf("--opt-%d", i), Bool, "", false, nil))
	}
	assertIndexAgrees(t, p)
	if got, want := p.reg.index.Len(), len(p.reg.names()); got != want {
		t.Errorf("index holds %d names, registry %d", got, want)
	}

	logs := out.String()
	if !strings.Contains(logs, "hash index built") || !strings.Contains(logs, "resized from 256 to 512") {
		t.Errorf("missing index debug logs:\n%s", logs)
	}

	if err := p.Parse([]string{"prog", "--opt-77", "-o3"}); err != nil {
		t.Fatalf("Parse through the index failed: %v", err)
	}
	if !p.IsSet("-o77") || !p.IsSet("--opt-3") {
		t.Errorf("values not stored through the index")
	}
}

func TestRegistry_HashThresholdOption(t *testing.T) {
	p, _ := newTestParser(t, "")
	p.HashThreshold(0)
	if p.reg.index == nil {
		t.Fatal("threshold 0 should index immediately")
	}
	registerN(t, p, 3)
	assertIndexAgrees(t, p)

	q, _ := newTestParser(t, "")
	q.HashThreshold(1000)
	registerN(t, q, 40)
	if q.reg.index != nil {
		t.Fatal("index built below a raised threshold")
	}
	assertIndexAgrees(t, q)
}

func TestRegistry_SizeCountsOnlyAcceptedRegistrations(t *testing.T) {
	p, _ := newTestParser(t, "")

	attempts := []Spec{
		{Short: "-a", Long: "--alpha", Type: Int},
		{Short: "-b", Type: String},
		{Long: "--help", Type: Bool},                // built-in help alias
		{Short: "-H", Type: Bool},                   // help alias
		{Short: "-a", Long: "--again", Type: Bool},  // duplicate short
		{Short: "-c", Long: "--alpha", Type: Bool},  // duplicate long
		{Type: Bool},                                // no names
		{Short: "-d", Type: ArgType(42)},            // unknown type
		{Short: "-e", Type: Int, Default: "seven"},  // wrong default
		{Short: "-f", Type: Bool, Delimiter: ','},   // delimiter on a scalar
		{Short: "-g", Long: "-g", Type: Bool},       // same name twice
		{Long: "--gamma", Type: DoubleList},
	}
	accepted := 0
	for _, s := range attempts {
		if err := p.Register(s); err == nil {
			accepted++
		}
	}

	if accepted != 3 {
		t.Errorf("expected 3 accepted registrations, got %d", accepted)
	}
	if got := len(p.Arguments()); got != accepted+1 {
		t.Errorf("expected %d options including help, got %d", accepted+1, got)
	}
}

func TestRegistry_FailureLeavesRegistryUntouched(t *testing.T) {
	p, _ := newTestParser(t, "")
	mustAdd(t, p.Add("-a", "--alpha", Int, "Alpha", false, 1))
	before := p.Arguments()

	tests := []struct {
		name string
		err  error
		cat  Category
	}{
		{"duplicate", p.Add("-x", "--alpha", Int, "", false, nil), Duplicate},
		{"help alias", p.Add("-q", "/help", Bool, "", false, nil), Duplicate},
		{"bad default", p.Add("-y", "", Int, "", false, 1<<40), Internal},
		{"list default", p.Add("-z", "", IntList, "", false, 3), Internal},
		{"list type", p.AddList("-l", "", Int, "", false, ','), Internal},
	}
	for _, tt := range tests {
		if CategoryOf(tt.err) != tt.cat {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.cat, tt.err)
		}
	}

	if diff := cmp.Diff(before, p.Arguments()); diff != "" {
		t.Errorf("registry changed (-want +got):\n%s", diff)
	}
}

func TestRegistry_Defaults(t *testing.T) {
	p, _ := newTestParser(t, "")
	mustAdd(t, p.Add("-i", "", Int, "", false, int64(-7)))
	mustAdd(t, p.Add("-u", "", Int, "", false, uint8(200)))
	mustAdd(t, p.Add("-d", "", Double, "", false, 3))
	mustAdd(t, p.Add("-f", "", Double, "", false, float32(0.5)))
	mustAdd(t, p.Add("-l", "", IntList, "", false, []int{1, 2}))
	mustAdd(t, p.Add("-s", "", StringList, "", false, []string{"x"}))

	if v, _ := p.GetInt("-i"); v != -7 {
		t.Errorf("expected -7, got %d", v)
	}
	if v, _ := p.GetInt("-u"); v != 200 {
		t.Errorf("expected 200, got %d", v)
	}
	if v, _ := p.GetDouble("-d"); v != 3 {
		t.Errorf("expected 3, got %v", v)
	}
	if v, _ := p.GetDouble("-f"); v != 0.5 {
		t.Errorf("expected 0.5, got %v", v)
	}
	if diff := cmp.Diff([]int{1, 2}, p.GetIntList("-l")); diff != "" {
		t.Errorf("list default mismatch (-want +got):\n%s", diff)
	}
	if p.IsSet("-l") {
		t.Errorf("defaults must not mark an option as set")
	}

	// the list default was copied at registration
	got := p.GetStringList("-s")
	got[0] = "mutated"
	if diff := cmp.Diff([]string{"x"}, p.GetStringList("-s")); diff != "" {
		t.Errorf("getter must return a copy (-want +got):\n%s", diff)
	}
}

func TestRegistry_DisableHelpRebuildsIndex(t *testing.T) {
	p, _ := newTestParser(t, "")
	registerN(t, p, 20)
	if p.reg.index == nil {
		t.Fatal("expected an index")
	}

	p.DisableHelp()
	if p.reg.has("-h") || p.reg.has("--help") {
		t.Fatal("help option still registered")
	}
	assertIndexAgrees(t, p)
	mustAdd(t, p.Add("-h", "--host", String, "", false, nil))
	assertIndexAgrees(t, p)
}
