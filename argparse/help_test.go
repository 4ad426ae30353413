//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	apio "github.com/dzonerzy/go-argparse/io"
)

func helpParser(t *testing.T) (*Parser, *bytes.Buffer) {
	t.Helper()
	p, out := newTestParser(t, "Compute statistics")
	mustAdd(t, p.AddList("-n", "--numbers", DoubleList, "Numbers to process", true, ','))
	mustAdd(t, p.Add("-a", "--average", Bool, "Print the average", false, nil))
	mustAdd(t, p.Add("", "--label", String, "Output label", false, nil))
	mustAdd(t, p.AddWithSuffix("-r", "", Int, "Decimal places", false, 2, '='))
	return p, out
}

func TestHelp_Text(t *testing.T) {
	p, out := helpParser(t)

	if err := p.Parse([]string{"stats", "--help"}); !IsHelp(err) {
		t.Fatalf("expected a help outcome, got %v", err)
	}

	want := strings.Join([]string{
		"Usage: stats [OPTIONS]",
		"",
		"Compute statistics",
		"",
		"  -h, --help",
		"    Show this help message and exit",
		"  -n, --numbers VALUE1 VALUE2 ...",
		"    Numbers to process [required]",
		"  -a, --average",
		"    Print the average",
		"  --label VALUE",
		"    Output label",
		"  -r VALUE",
		"    Decimal places",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestHelp_NoDescription(t *testing.T) {
	var buf bytes.Buffer
	p, _ := newTestParser(t, "")
	if err := p.WriteHelp(&buf); err != nil {
		t.Fatalf("WriteHelp failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Usage:  [OPTIONS]\n\n  -h, --help\n") {
		t.Errorf("unexpected help %q", buf.String())
	}
}

func TestHelp_Colored(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var out bytes.Buffer
	p := New("").IO(apio.New().WithOut(&out).ForceColor().ForceColorLevel(1))
	mustAdd(t, p.Add("-x", "", Int, "X", true, nil))
	p.PrintHelp()

	s := out.String()
	if !strings.Contains(s, "\x1b[1mUsage:\x1b[0m") || !strings.Contains(s, "\x1b[94m-x\x1b[0m") {
		t.Errorf("expected styled help, got %q", s)
	}
}

func TestManifest(t *testing.T) {
	p, _ := helpParser(t)
	_ = p.Parse([]string{"stats", "-n", "1"})

	var buf bytes.Buffer
	if err := p.WriteManifest(&buf); err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}
	if !strings.Contains(buf.String(), "type: DOUBLE_LIST") {
		t.Errorf("expected type names in manifest:\n%s", buf.String())
	}

	var got manifest
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("manifest is not valid YAML: %v", err)
	}
	want := manifest{
		Program:     "stats",
		Description: "Compute statistics",
		Arguments: []manifestOption{
			{Short: "-h", Long: "--help", Type: "BOOL", Help: "Show this help message and exit"},
			{Short: "-n", Long: "--numbers", Type: "DOUBLE_LIST", Help: "Numbers to process", Required: true, Delimiter: ","},
			{Short: "-a", Long: "--average", Type: "BOOL", Help: "Print the average"},
			{Long: "--label", Type: "STRING", Help: "Output label"},
			{Short: "-r", Type: "INT", Help: "Decimal places", Suffix: "="},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}
