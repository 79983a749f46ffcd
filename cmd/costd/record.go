package main

import (
	"github.com/spf13/cobra"

	"costd/pkg/types"
)

// recordFlags holds PatientRecord fields read from the command line. Defaults
// match a 30 year old non-smoking male in the southwest.
type recordFlags struct {
	age      int
	sex      string
	bmi      float64
	children int
	smoker   string
	region   string
}

func (rf *recordFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&rf.age, "age", 30, "Age in years")
	f.StringVar(&rf.sex, "sex", string(types.SexMale), "male|female")
	f.Float64Var(&rf.bmi, "bmi", 25.0, "Body-mass index")
	f.IntVar(&rf.children, "children", 0, "Number of children covered")
	f.StringVar(&rf.smoker, "smoker", string(types.SmokerNo), "yes|no")
	f.StringVar(&rf.region, "region", string(types.RegionSouthwest), "southwest|southeast|northwest|northeast")
}

// record validates the flags the same way the server validates a request body.
func (rf *recordFlags) record() (types.PatientRecord, error) {
	return types.PredictRequest{
		Age:      &rf.age,
		Sex:      &rf.sex,
		BMI:      &rf.bmi,
		Children: &rf.children,
		Smoker:   &rf.smoker,
		Region:   &rf.region,
	}.Record()
}
