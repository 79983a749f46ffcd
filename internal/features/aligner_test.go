package features

import (
	"errors"
	"reflect"
	"testing"

	"costd/internal/schema"
	"costd/pkg/types"
)

func mustSchema(t *testing.T, names ...string) *schema.Columns {
	t.Helper()
	c, err := schema.New(names)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	return c
}

// dropFirst is the pandas get_dummies(drop_first=True) schema: northeast is the reference.
func dropFirst(t *testing.T) *schema.Columns {
	return mustSchema(t, "age", "sex", "bmi", "children", "smoker", "region_northwest", "region_southeast", "region_southwest")
}

// dropSouthwest drops southwest instead.
func dropSouthwest(t *testing.T) *schema.Columns {
	return mustSchema(t, "age", "sex", "bmi", "children", "smoker", "region_northeast", "region_northwest", "region_southeast")
}

var example = types.PatientRecord{Age: 30, Sex: types.SexMale, BMI: 25.0, Children: 0, Smoker: types.SmokerNo, Region: types.RegionSouthwest}

func TestAlignColumnsMatchSchema(t *testing.T) {
	for _, cols := range []*schema.Columns{dropFirst(t), dropSouthwest(t), mustSchema(t, "smoker", "age")} {
		for _, r := range types.Regions {
			rec := example
			rec.Region = r
			v, err := Align(rec, cols)
			if err != nil {
				t.Fatalf("align: %v", err)
			}
			if !reflect.DeepEqual(v.Columns(), cols.Names()) || v.Len() != cols.Len() {
				t.Fatalf("columns=%v want %v", v.Columns(), cols.Names())
			}
		}
	}
}

func TestAlignExampleRecord(t *testing.T) {
	v, err := Align(example, dropSouthwest(t))
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	want := []float64{30, 0, 25, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(v.Values(), want) {
		t.Fatalf("values=%v want %v", v.Values(), want)
	}
}

func TestAlignBinaryEncodings(t *testing.T) {
	rec := example
	rec.Sex = types.SexFemale
	rec.Smoker = types.SmokerYes
	v, err := Align(rec, dropFirst(t))
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if s, _ := v.Get("sex"); s != 1 {
		t.Fatalf("sex=%v", s)
	}
	if s, _ := v.Get("smoker"); s != 1 {
		t.Fatalf("smoker=%v", s)
	}
}

func TestAlignRegionOneHot(t *testing.T) {
	cols := dropFirst(t)
	regionCols := cols.RegionColumns()
	for _, r := range types.Regions {
		rec := example
		rec.Region = r
		v, err := Align(rec, cols)
		if err != nil {
			t.Fatalf("align: %v", err)
		}
		ones := 0
		for _, c := range regionCols {
			x, _ := v.Get(c)
			switch x {
			case 1:
				ones++
				if c != schema.RegionPrefix+string(r) {
					t.Fatalf("region %s set %s", r, c)
				}
			case 0:
			default:
				t.Fatalf("indicator %s=%v", c, x)
			}
		}
		want := 1
		if r == types.RegionNortheast {
			want = 0
		}
		if ones != want {
			t.Fatalf("region %s: %d indicators set, want %d", r, ones, want)
		}
	}
}

func TestAlignZeroFillsUnknownColumns(t *testing.T) {
	cols := mustSchema(t, "age", "bmi_category_obesidad", "region_central", "bmi")
	rec := example
	rec.BMI = 33.1
	v, err := Align(rec, cols)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	want := []float64{30, 0, 0, 33.1}
	if !reflect.DeepEqual(v.Values(), want) {
		t.Fatalf("values=%v want %v", v.Values(), want)
	}
}

func TestAlignIsDeterministic(t *testing.T) {
	cols := dropFirst(t)
	a, _ := Align(example, cols)
	b, _ := Align(example, cols)
	if !reflect.DeepEqual(a.Values(), b.Values()) {
		t.Fatalf("same input gave %v and %v", a.Values(), b.Values())
	}
	vals := a.Values()
	vals[0] = 99
	if x, _ := a.Get("age"); x != 30 {
		t.Fatalf("Values must return a copy")
	}
}

func TestAlignWithoutSchema(t *testing.T) {
	if _, err := Align(example, nil); !errors.Is(err, ErrNoSchema) {
		t.Fatalf("expected ErrNoSchema, got %v", err)
	}
}

func TestAlignRejectsUnknownEnums(t *testing.T) {
	cols := dropFirst(t)
	bad := []types.PatientRecord{example, example, example}
	bad[0].Sex = "unknown"
	bad[1].Smoker = "sometimes"
	bad[2].Region = "central"
	for _, rec := range bad {
		_, err := Align(rec, cols)
		if err == nil || !IsInvalidValue(err) {
			t.Fatalf("record %+v: expected invalid value error, got %v", rec, err)
		}
	}
}

func TestVectorMap(t *testing.T) {
	v, _ := Align(example, dropFirst(t))
	m := v.Map()
	if len(m) != 8 || m["age"] != 30 || m["region_southwest"] != 1 {
		t.Fatalf("map=%v", m)
	}
}
