package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	specialField = "additional_attributes"
	keyField     = "sku"
)

func TestLoadBasic(t *testing.T) {
	content := "sku,name,price\nA1,Widget,9.99\nB2,Gadget,19.99\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", cat.Len())
	}
	record, ok := cat.Get("A1")
	if !ok {
		t.Fatal("expected record A1")
	}
	if record["name"] != "Widget" || record["price"] != "9.99" {
		t.Errorf("unexpected record: %v", record)
	}
	wantCols := []string{"sku", "name", "price"}
	for i, col := range cat.Columns() {
		if col != wantCols[i] {
			t.Errorf("column %d = %q, want %q", i, col, wantCols[i])
		}
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	cat, err := Load("", ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d records", cat.Len())
	}
}

func TestLoadDropsEmptyKeys(t *testing.T) {
	content := "sku,name\nA1,Widget\n,Orphan\n  ,Padded\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 record, got %d (keys %v)", cat.Len(), cat.Keys())
	}
	if !cat.Has("A1") {
		t.Error("expected A1 to survive")
	}
}

func TestLoadTrimsKeysAndLastDuplicateWins(t *testing.T) {
	content := "sku,name\n A1 ,First\nA1,Second\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", cat.Len())
	}
	record, _ := cat.Get("A1")
	if record["name"] != "Second" {
		t.Errorf("expected last duplicate to win, got %q", record["name"])
	}
}

func TestLoadProtectsSpecialField(t *testing.T) {
	content := "sku,name,additional_attributes\n" +
		`A1,Widget,"color=red, matte` + "§" + `size=M"` + "\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	record, ok := cat.Get("A1")
	if !ok {
		t.Fatal("expected record A1")
	}
	want := "color=red, matte§size=M"
	if record[specialField] != want {
		t.Errorf("special field = %q, want %q", record[specialField], want)
	}
	if record["name"] != "Widget" {
		t.Errorf("name = %q, want Widget", record["name"])
	}
}

func TestLoadSpecialFieldWithQuotesInside(t *testing.T) {
	content := "sku,additional_attributes\n" +
		`A1,"note=said ""hi""` + "§" + `flag"` + "\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	record, _ := cat.Get("A1")
	got := record[specialField]
	if got == "" {
		t.Fatal("expected special field value")
	}
	if want := "§flag"; len(got) < len(want) || got[len(got)-len(want):] != want {
		t.Errorf("special field = %q, expected it to end with %q", got, want)
	}
}

func TestLoadWithoutSpecialColumnInHeader(t *testing.T) {
	content := "sku,name,description\n" +
		`A1,"Widget, large",plain` + "\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	record, ok := cat.Get("A1")
	if !ok {
		t.Fatal("expected record A1")
	}
	if record["name"] != "Widget, large" {
		t.Errorf("quoted field = %q, want %q", record["name"], "Widget, large")
	}
}

func TestLoadShortRowYieldsEmptyValues(t *testing.T) {
	content := "sku,name,price\nA1,Widget\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	record, _ := cat.Get("A1")
	if record["price"] != "" {
		t.Errorf("missing column should map to empty string, got %q", record["price"])
	}
}

func TestLoadFileStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "staging.csv")
	content := "\xef\xbb\xbfsku,name\nA1,Widget\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := LoadFile(path, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !cat.Has("A1") {
		t.Fatalf("expected A1 after BOM strip, keys: %v", cat.Keys())
	}
	if cat.Columns()[0] != "sku" {
		t.Errorf("first column = %q, want sku", cat.Columns()[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"), ',', specialField, keyField); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadKeyOrderIsInputOrder(t *testing.T) {
	content := "sku,name\nC3,Three\nA1,One\nB2,Two\n"

	cat, err := Load(content, ',', specialField, keyField)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"C3", "A1", "B2"}
	keys := cat.Keys()
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}
