// Package artifactstest writes small, hand-checkable artifact sets for tests.
package artifactstest

import (
	"os"
	"path/filepath"
	"testing"
)

// Columns is the training schema of the fixture: pandas get_dummies with
// drop_first=True, so northeast is the reference region.
const Columns = `["age", "sex", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest"]`

// Forest is a two-tree regression forest fit on log1p(charges).
//
// Tree 0 splits on smoker, then age (non-smokers) or bmi (smokers).
// Tree 1 splits on age, then children (age <= 35.5) or region_southeast.
const Forest = `{
  "kind": "random_forest",
  "name": "Random Forest Regressor (Log-Transform)",
  "n_features": 8,
  "target_transform": "log1p",
  "feature_names": ["age", "sex", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest"],
  "trees": [
    {
      "children_left":  [1, 2, -1, -1, 5, -1, -1],
      "children_right": [4, 3, -1, -1, 6, -1, -1],
      "feature":        [4, 0, -2, -2, 2, -2, -2],
      "threshold":      [0.5, 40.5, -2, -2, 30.0, -2, -2],
      "value":          [9.2, 8.9, 8.6, 9.3, 10.2, 9.9, 10.6]
    },
    {
      "children_left":  [1, 2, -1, -1, 5, -1, -1],
      "children_right": [4, 3, -1, -1, 6, -1, -1],
      "feature":        [0, 3, -2, -2, 6, -2, -2],
      "threshold":      [35.5, 1.5, -2, -2, 0.5, -2, -2],
      "value":          [9.0, 8.6, 8.5, 8.8, 9.5, 9.4, 9.6]
    }
  ]
}`

// Leaf values the fixture forest reaches for the records used in tests.
const (
	Tree0NonSmokerYoung = 8.6
	Tree0NonSmokerOld   = 9.3
	Tree0SmokerLean     = 9.9
	Tree0SmokerObese    = 10.6
	Tree1YoungFewKids   = 8.5
	Tree1YoungManyKids  = 8.8
	Tree1OldOther       = 9.4
	Tree1OldSoutheast   = 9.6
)

// File names used by Write; they match the service defaults.
const (
	ModelFile   = "modelo_rf_log.json"
	ColumnsFile = "columnas_modelo.json"
)

// Write stores the fixture artifacts in a new temp dir and returns it.
func Write(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, ColumnsFile, Columns)
	WriteFile(t, dir, ModelFile, Forest)
	return dir
}

// WriteFile writes content to dir/name.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}
