package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// testConfig writes a full config pointing at temp fixtures and returns its
// path plus the configured report location.
func testConfig(t *testing.T, stagingContent, productionContent string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	staging := writeFile(t, dir, "staging.csv", stagingContent)
	production := writeFile(t, dir, "production.csv", productionContent)
	reportPath := filepath.Join(dir, "output", "diff_report.csv")
	historyPath := filepath.Join(dir, "history.db")

	content := strings.Join([]string{
		"[inputs]",
		`staging_file = ` + tomlString(staging),
		`production_file = ` + tomlString(production),
		"",
		"[report]",
		`output_file = ` + tomlString(reportPath),
		"",
		"[history]",
		"enabled = true",
		`path = ` + tomlString(historyPath),
	}, "\n")
	return writeFile(t, dir, "config.toml", content), reportPath
}

func tomlString(value string) string {
	return `"` + strings.ReplaceAll(value, `\`, `\\`) + `"`
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("help returned error: %v", err)
	}
	for _, want := range []string{"compare", "history", "config"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q: %s", want, out)
		}
	}
}

func TestCompareCommandWritesReport(t *testing.T) {
	configPath, reportPath := testConfig(t,
		"sku,name,product_websites\nA1,Widget,base\nB2,Gadget,base\n",
		"sku,name,product_websites\nA1,Widget renamed,base\n",
	)

	out, err := runCommand(t, "--config", configPath, "compare")
	if err != nil {
		t.Fatalf("compare returned error: %v (output %q)", err, out)
	}
	if !strings.Contains(out, "Report generated: "+reportPath) {
		t.Errorf("output missing report path: %q", out)
	}
	if !strings.Contains(out, "Total differences found: 2") {
		t.Errorf("output missing total: %q", out)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "name [Widget → Widget renamed]") {
		t.Errorf("report missing field diff: %q", report)
	}
	if !strings.Contains(report, "missing_in_production") {
		t.Errorf("report missing record diff: %q", report)
	}
}

func TestCompareCommandNoDifferences(t *testing.T) {
	content := "sku,name\nA1,Widget\n"
	configPath, reportPath := testConfig(t, content, content)

	out, err := runCommand(t, "--config", configPath, "compare")
	if err != nil {
		t.Fatalf("compare returned error: %v", err)
	}
	if !strings.Contains(out, "No differences found") {
		t.Errorf("output missing notice: %q", out)
	}
	if _, err := os.Stat(reportPath); !os.IsNotExist(err) {
		t.Errorf("report should not be written, stat err = %v", err)
	}
}

func TestCompareCommandPositionalOverrides(t *testing.T) {
	configPath, reportPath := testConfig(t,
		"sku,name\nA1,Widget\n",
		"sku,name\nA1,Widget\n",
	)
	dir := t.TempDir()
	staging := writeFile(t, dir, "stg.csv", "sku,name\nA1,One\n")
	production := writeFile(t, dir, "prod.csv", "sku,name\nA1,Two\n")

	out, err := runCommand(t, "--config", configPath, "compare", staging, production)
	if err != nil {
		t.Fatalf("compare returned error: %v (output %q)", err, out)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "name [One → Two]") {
		t.Errorf("report should reflect overridden inputs: %q", string(data))
	}
}

func TestCompareCommandMissingInputs(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.toml", "[history]\nenabled = false\n")

	if _, err := runCommand(t, "--config", configPath, "compare"); err == nil {
		t.Fatal("expected error when no input files are configured")
	}
}

func TestHistoryAfterCompare(t *testing.T) {
	configPath, _ := testConfig(t,
		"sku,name\nA1,Widget\n",
		"sku,name\nA1,Changed\n",
	)

	if _, err := runCommand(t, "--config", configPath, "compare"); err != nil {
		t.Fatalf("compare returned error: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(out, "Started") || !strings.Contains(out, "1") {
		t.Errorf("history output missing run row: %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "history", "clear")
	if err != nil {
		t.Fatalf("history clear returned error: %v", err)
	}
	if !strings.Contains(out, "History cleared.") {
		t.Errorf("clear output: %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "history")
	if err != nil {
		t.Fatalf("history after clear returned error: %v", err)
	}
	if !strings.Contains(out, "No comparison runs recorded.") {
		t.Errorf("expected empty history, got %q", out)
	}
}
