// Package artifacts loads the model and column schema a prediction service
// runs on. A Bundle is built once at startup and never mutated.
package artifacts

import (
	"fmt"
	"time"

	"costd/internal/common/fsutil"
	"costd/internal/model"
	"costd/internal/schema"
	"costd/pkg/types"
)

// Default file names inside the artifacts directory.
const (
	DefaultDir         = "model_artifacts/"
	DefaultModelFile   = "modelo_rf_log.json"
	DefaultColumnsFile = "columnas_modelo.json"
	DefaultModelName   = "Random Forest Regressor (Log-Transform)"
)

// Options locate the artifacts.
type Options struct {
	Dir         string
	ModelFile   string
	ColumnsFile string
	// ModelName overrides the name stored in the model artifact.
	ModelName string
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.ModelFile == "" {
		o.ModelFile = DefaultModelFile
	}
	if o.ColumnsFile == "" {
		o.ColumnsFile = DefaultColumnsFile
	}
	return o
}

// Bundle is an immutable, cross-validated model + schema pair.
type Bundle struct {
	Schema    *schema.Columns
	Regressor model.Regressor
	ModelName string
	Transform model.Transform
	Dir       string
	LoadedAt  time.Time
}

// ReferenceRegion is the region implied by all-zero indicators, if the schema encodes one.
func (b *Bundle) ReferenceRegion() (types.Region, bool) { return b.Schema.ReferenceRegion() }

// Load reads both artifacts from opts.Dir and checks they agree.
func Load(opts Options) (*Bundle, error) {
	opts = opts.withDefaults()
	dir, err := fsutil.AbsDir(opts.Dir)
	if err != nil {
		return nil, loadError{what: "artifacts dir", err: err}
	}
	colsPath, err := fsutil.FileIn(dir, opts.ColumnsFile)
	if err != nil {
		return nil, loadError{what: "column schema", err: err}
	}
	cols, err := schema.Load(colsPath)
	if err != nil {
		return nil, loadError{what: "column schema", err: err}
	}
	modelPath, err := fsutil.FileIn(dir, opts.ModelFile)
	if err != nil {
		return nil, loadError{what: "model", err: err}
	}
	m, err := model.LoadFile(modelPath)
	if err != nil {
		return nil, loadError{what: "model", err: err}
	}
	if err := crossCheck(cols, m); err != nil {
		return nil, loadError{what: "artifacts", err: err}
	}
	name := opts.ModelName
	if name == "" {
		name = m.Name
	}
	if name == "" {
		name = DefaultModelName
	}
	return &Bundle{
		Schema:    cols,
		Regressor: m.Regressor,
		ModelName: name,
		Transform: m.Transform,
		Dir:       dir,
		LoadedAt:  time.Now(),
	}, nil
}

// crossCheck verifies the model was fit on exactly the schema's columns.
func crossCheck(cols *schema.Columns, m model.Loaded) error {
	if n := m.Regressor.NumFeatures(); n != cols.Len() {
		return fmt.Errorf("model expects %d features but schema has %d columns", n, cols.Len())
	}
	if len(m.FeatureNames) == 0 {
		return nil
	}
	names := cols.Names()
	for i, fn := range m.FeatureNames {
		if fn != names[i] {
			return fmt.Errorf("column %d: model feature %q does not match schema column %q", i, fn, names[i])
		}
	}
	return nil
}

type loadError struct {
	what string
	err  error
}

func (e loadError) Error() string { return fmt.Sprintf("load %s: %v", e.what, e.err) }
func (e loadError) Unwrap() error { return e.err }

// IsMissing reports whether a load failed because a file or directory does not exist.
func IsMissing(err error) bool { return fsutil.IsNotExist(err) }

// ColumnsPath resolves the column schema file for opts.
func ColumnsPath(opts Options) (string, error) {
	opts = opts.withDefaults()
	dir, err := fsutil.AbsDir(opts.Dir)
	if err != nil {
		return "", err
	}
	return fsutil.FileIn(dir, opts.ColumnsFile)
}

// LoadSchema loads only the column schema; used by the features CLI.
func LoadSchema(opts Options) (*schema.Columns, error) {
	p, err := ColumnsPath(opts)
	if err != nil {
		return nil, loadError{what: "column schema", err: err}
	}
	cols, err := schema.Load(p)
	if err != nil {
		return nil, loadError{what: "column schema", err: err}
	}
	return cols, nil
}
