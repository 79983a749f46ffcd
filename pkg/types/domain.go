package types

// Sex is the biological sex reported for the insured person.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the known values.
func (s Sex) Valid() bool { return s == SexMale || s == SexFemale }

// Smoker records whether the insured person smokes.
type Smoker string

const (
	SmokerYes Smoker = "yes"
	SmokerNo  Smoker = "no"
)

func (s Smoker) Valid() bool { return s == SmokerYes || s == SmokerNo }

// Region is the US residential area of the beneficiary.
type Region string

const (
	RegionNortheast Region = "northeast"
	RegionNorthwest Region = "northwest"
	RegionSoutheast Region = "southeast"
	RegionSouthwest Region = "southwest"
)

// Regions lists every known region in alphabetical order.
var Regions = []Region{RegionNortheast, RegionNorthwest, RegionSoutheast, RegionSouthwest}

func (r Region) Valid() bool {
	for _, v := range Regions {
		if r == v {
			return true
		}
	}
	return false
}

// PatientRecord holds the raw attributes of one insured person.
type PatientRecord struct {
	// Age in years.
	// example: 30
	Age int `json:"age" example:"30"`
	// example: male
	Sex Sex `json:"sex" example:"male" enums:"male,female"`
	// Body-mass index.
	// example: 25.0
	BMI float64 `json:"bmi" example:"25.0"`
	// Number of children covered by the policy.
	// example: 0
	Children int `json:"children" example:"0"`
	// example: no
	Smoker Smoker `json:"smoker" example:"no" enums:"yes,no"`
	// example: southwest
	Region Region `json:"region" example:"southwest" enums:"southwest,southeast,northwest,northeast"`
}
