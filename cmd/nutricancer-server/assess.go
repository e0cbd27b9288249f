package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nutricancer/nutricancer/internal/domain/assessment"
	"github.com/nutricancer/nutricancer/internal/domain/catalog"
	"github.com/nutricancer/nutricancer/internal/domain/recommendation"
)

type assessOutput struct {
	Profile assessment.PatientProfile `json:"profile"`
	assessment.Metrics
	recommendation.Recommendations
}

type assessFlags struct {
	gender, cancerType, activity string
	height, weight               float64
	anorexia                     bool
	symptoms                     []string
	catalogFile                  string
}

func (f assessFlags) profile() (assessment.PatientProfile, error) {
	symptoms := make([]assessment.Symptom, 0, len(f.symptoms))
	for _, s := range f.symptoms {
		sym, err := assessment.ParseSymptom(s)
		if err != nil {
			return assessment.PatientProfile{}, err
		}
		symptoms = append(symptoms, sym)
	}
	return assessment.PatientProfile{
		Gender:            assessment.Gender(f.gender),
		CancerType:        assessment.CancerType(f.cancerType),
		HeightCm:          f.height,
		WeightKg:          f.weight,
		PhysicalActivity:  assessment.Activity(f.activity),
		HasAnorexia:       f.anorexia,
		DigestiveSymptoms: assessment.NewSymptomSet(symptoms...),
	}, nil
}

// runAssess evaluates a profile without storing it.
func runAssess(w io.Writer, f assessFlags) error {
	p, err := f.profile()
	if err != nil {
		return err
	}
	metrics, err := assessment.Derive(p)
	if err != nil {
		return err
	}

	var src catalog.Source = catalog.Builtin()
	if f.catalogFile != "" {
		c, err := catalog.LoadFile(f.catalogFile)
		if err != nil {
			return err
		}
		src = c
	}

	out := assessOutput{
		Profile:         p,
		Metrics:         metrics,
		Recommendations: recommendation.NewService(nil, src).For(p),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func assessCmd() *cobra.Command {
	var f assessFlags
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Compute BMI, calorie needs and recommendations for a profile",
		Example: "  nutricancer-server assess --gender male --cancer-type colorectal --height 175 --weight 70 \\\n" +
			"    --activity sedentary --symptom diarrhea --symptom abdominal_pain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&f.cancerType, "cancer-type", "", "colorectal, pancreas, gastric, rectum or stomach")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height in cm (100-250)")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "Weight in kg (30-300)")
	cmd.Flags().StringVar(&f.activity, "activity", string(assessment.ActivitySedentary), "sedentary, light, moderate, intense or very_intense")
	cmd.Flags().BoolVar(&f.anorexia, "anorexia", false, "Patient reports anorexia")
	cmd.Flags().StringSliceVar(&f.symptoms, "symptom", nil, "Digestive symptom (repeatable)")
	cmd.Flags().StringVar(&f.catalogFile, "catalog", "", "Recipe catalog JSON file (default: built-in)")
	for _, name := range []string{"gender", "cancer-type", "height", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
