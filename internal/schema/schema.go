// Package schema holds the ordered list of feature columns a model was
// trained on. A Columns value is immutable once built.
package schema

import (
	"fmt"
	"strings"

	"costd/pkg/types"
)

// RegionPrefix is the prefix of one-hot region indicator columns.
const RegionPrefix = "region_"

// Columns is the ordered column set fixed at training time.
type Columns struct {
	names []string
	index map[string]int
}

// New validates names and builds a Columns. Names are kept exactly as given and
// must be non-empty, unique and free of surrounding whitespace.
func New(names []string) (*Columns, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("schema has no columns")
	}
	c := &Columns{names: make([]string, len(names)), index: make(map[string]int, len(names))}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if n != strings.TrimSpace(n) {
			return nil, fmt.Errorf("column %d name %q has surrounding whitespace", i, n)
		}
		if j, dup := c.index[n]; dup {
			return nil, fmt.Errorf("duplicate column %q at positions %d and %d", n, j, i)
		}
		c.names[i] = n
		c.index[n] = i
	}
	return c, nil
}

// Names returns a copy of the column names in order.
func (c *Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// Len is the number of columns.
func (c *Columns) Len() int { return len(c.names) }

// Index returns the position of name, or -1.
func (c *Columns) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// RegionColumns returns the region indicator columns present in the schema, in schema order.
func (c *Columns) RegionColumns() []string {
	var out []string
	for _, n := range c.names {
		if strings.HasPrefix(n, RegionPrefix) {
			out = append(out, n)
		}
	}
	return out
}

// ReferenceRegion returns the region dropped at training time: the single known
// region without an indicator column. ok is false when zero or several regions
// lack a column, i.e. the schema does not encode a single reference level.
func (c *Columns) ReferenceRegion() (types.Region, bool) {
	var missing []types.Region
	for _, r := range types.Regions {
		if c.Index(RegionPrefix+string(r)) < 0 {
			missing = append(missing, r)
		}
	}
	if len(missing) != 1 {
		return "", false
	}
	return missing[0], true
}

// Unreachable returns schema columns that no PatientRecord can populate. They are
// always filled with 0.
func (c *Columns) Unreachable() []string {
	var out []string
	for _, n := range c.names {
		if !Producible(n) {
			out = append(out, n)
		}
	}
	return out
}

// Producible reports whether the feature aligner can emit a column named name.
func Producible(name string) bool {
	switch name {
	case "age", "sex", "bmi", "children", "smoker":
		return true
	}
	if strings.HasPrefix(name, RegionPrefix) {
		return types.Region(strings.TrimPrefix(name, RegionPrefix)).Valid()
	}
	return false
}
