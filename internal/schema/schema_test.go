package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"costd/pkg/types"
)

var trainingColumns = []string{"age", "sex", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest"}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestNewKeepsOrder(t *testing.T) {
	c, err := New(trainingColumns)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !reflect.DeepEqual(c.Names(), trainingColumns) {
		t.Fatalf("names=%v", c.Names())
	}
	if c.Index("bmi") != 2 || c.Index("nope") != -1 {
		t.Fatalf("index lookups wrong")
	}
	names := c.Names()
	names[0] = "mutated"
	if c.Names()[0] != "age" {
		t.Fatalf("Names must return a copy")
	}
}

func TestNewRejectsBadSchemas(t *testing.T) {
	cases := map[string][]string{
		"empty":     nil,
		"blank":     {"age", " "},
		"duplicate": {"age", "sex", "age"},
		"padded":    {" age", "sex"},
		"trailing":  {"age", "smoker\t"},
	}
	for name, cols := range cases {
		if _, err := New(cols); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestReferenceRegion(t *testing.T) {
	c, _ := New(trainingColumns)
	ref, ok := c.ReferenceRegion()
	if !ok || ref != types.RegionNortheast {
		t.Fatalf("ref=%q ok=%v", ref, ok)
	}

	c, _ = New([]string{"age", "region_northeast", "region_northwest", "region_southeast"})
	if ref, ok := c.ReferenceRegion(); !ok || ref != types.RegionSouthwest {
		t.Fatalf("ref=%q ok=%v", ref, ok)
	}

	c, _ = New([]string{"age", "smoker"})
	if _, ok := c.ReferenceRegion(); ok {
		t.Fatalf("no region columns should not yield a single reference")
	}
}

func TestRegionColumnsAndUnreachable(t *testing.T) {
	c, _ := New(append(append([]string(nil), trainingColumns...), "bmi_category_obesidad", "region_central"))
	if got := c.RegionColumns(); len(got) != 4 || got[3] != "region_central" {
		t.Fatalf("region columns=%v", got)
	}
	want := []string{"bmi_category_obesidad", "region_central"}
	if got := c.Unreachable(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unreachable=%v want %v", got, want)
	}
}

func TestLoadFormats(t *testing.T) {
	d := t.TempDir()
	files := map[string]string{
		"cols.json": `["age","sex","bmi"]`,
		"cols.yaml": "- age\n- sex\n- bmi\n",
		"cols.txt":  "# exported columns\r\nage\r\n\r\nsex\r\nbmi\n",
	}
	for name, content := range files {
		c, err := Load(writeTempFile(t, d, name, content))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(c.Names(), []string{"age", "sex", "bmi"}) {
			t.Fatalf("%s: names=%v", name, c.Names())
		}
	}
}

func TestLoadErrors(t *testing.T) {
	d := t.TempDir()
	if _, err := Load(filepath.Join(d, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeTempFile(t, d, "cols.pkl", "x")); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := Load(writeTempFile(t, d, "bad.json", `{"age":1}`)); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := Load(writeTempFile(t, d, "padded.json", `["age"," sex"]`)); err == nil {
		t.Fatalf("expected error for padded column name")
	}
	if _, err := Load(writeTempFile(t, d, "padded.txt", "age\n sex\n")); err == nil {
		t.Fatalf("expected error for padded column name in txt")
	}
	if _, err := Load(writeTempFile(t, d, "empty.json", `[]`)); err == nil {
		t.Fatalf("expected empty schema error")
	}
}
