package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-cliargs/internal/console"
)

func quietLogger() *console.Logger {
	return console.New().WithWriters(io.Discard, io.Discard).WithColor(false)
}

func runArgdump(t *testing.T, argv ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	code := run(argv, &out, quietLogger())
	return out.String(), code
}

// TestRunJSON tests JSON output
func TestRunJSON(t *testing.T) {
	out, code := runArgdump(t, "-f", "json", "--", "-a=1", "-a:2", "file")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}

	var r report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	want := report{Parameters: []parameter{
		{Name: "a", Values: []string{"1", "2"}},
		{Name: "positional", Positional: true, Values: []string{"file"}},
	}}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

// TestRunFormatsAgree tests that every output format carries the same result
func TestRunFormatsAgree(t *testing.T) {
	line := `build --tags "a b" -v ./...`
	want := newReportForLine(t, line)

	yamlOut, code := runArgdump(t, "--format=yaml", "--line", line)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	var fromYAML report
	if err := yaml.Unmarshal([]byte(yamlOut), &fromYAML); err != nil {
		t.Fatalf("Output is not YAML: %v", err)
	}
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}

	tomlOut, _ := runArgdump(t, "--format=toml", "--line", line)
	var fromTOML report
	if _, err := toml.Decode(tomlOut, &fromTOML); err != nil {
		t.Fatalf("Output is not TOML: %v\n%s", err, tomlOut)
	}
	if diff := cmp.Diff(want, fromTOML); diff != "" {
		t.Errorf("toml mismatch (-want +got):\n%s", diff)
	}
}

func newReportForLine(t *testing.T, line string) report {
	t.Helper()
	out, _ := runArgdump(t, "-f", "json", "-l", line)
	var r report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	return r
}

// TestRunText tests text output
func TestRunText(t *testing.T) {
	out, code := runArgdump(t, "-d", "windows", "--", "/OUT:x.txt", "/v")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	for _, want := range []string{"OUT", "x.txt", "v", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

// TestRunErrors tests exit codes on bad input
func TestRunErrors(t *testing.T) {
	if _, code := runArgdump(t, "--bogus"); code != 2 {
		t.Errorf("Expected misusage exit code 2, got %d", code)
	}
	if _, code := runArgdump(t, "-d", "vms"); code != 2 {
		t.Errorf("Expected exit code 2 for an unknown dialect, got %d", code)
	}
	if _, code := runArgdump(t, "-f", "xml", "--", "x"); code != 1 {
		t.Errorf("Expected exit code 1 for an unknown format, got %d", code)
	}
	if _, code := runArgdump(t, "-l", `"open`); code != 2 {
		t.Errorf("Expected exit code 2 for bad quoting, got %d", code)
	}
	// diagnostics of the dumped line decide the exit code
	if _, code := runArgdump(t, "--", "-"); code != 2 {
		t.Errorf("Expected exit code 2 for an invalid token, got %d", code)
	}
}

// TestRunHelp tests the help output
func TestRunHelp(t *testing.T) {
	out, code := runArgdump(t, "-h")
	if code != 0 || !strings.Contains(out, "--format") {
		t.Errorf("Expected usage on help, got code %d:\n%s", code, out)
	}
}
