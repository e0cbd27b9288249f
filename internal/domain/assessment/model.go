package assessment

// ---- Closed vocabularies ----

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func AllGenders() []Gender { return []Gender{GenderMale, GenderFemale} }

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Homme"
	case GenderFemale:
		return "Femme"
	}
	return string(g)
}

func ParseGender(s string) (Gender, error) {
	g := Gender(s)
	if !g.Valid() {
		return "", invalid("gender", s, "must be one of male, female")
	}
	return g, nil
}

type CancerType string

const (
	CancerColorectal CancerType = "colorectal"
	CancerPancreas   CancerType = "pancreas"
	CancerGastric    CancerType = "gastric"
	CancerRectum     CancerType = "rectum"
	CancerStomach    CancerType = "stomach"
)

func AllCancerTypes() []CancerType {
	return []CancerType{CancerColorectal, CancerPancreas, CancerGastric, CancerRectum, CancerStomach}
}

func (c CancerType) Valid() bool {
	switch c {
	case CancerColorectal, CancerPancreas, CancerGastric, CancerRectum, CancerStomach:
		return true
	}
	return false
}

func (c CancerType) Label() string {
	switch c {
	case CancerColorectal:
		return "Colorectal"
	case CancerPancreas:
		return "Pancréas"
	case CancerGastric:
		return "Gastrique"
	case CancerRectum:
		return "Rectum"
	case CancerStomach:
		return "Estomac"
	}
	return string(c)
}

func ParseCancerType(s string) (CancerType, error) {
	c := CancerType(s)
	if !c.Valid() {
		return "", invalid("cancer_type", s, "must be one of colorectal, pancreas, gastric, rectum, stomach")
	}
	return c, nil
}

type Activity string

const (
	ActivitySedentary   Activity = "sedentary"
	ActivityLight       Activity = "light"
	ActivityModerate    Activity = "moderate"
	ActivityIntense     Activity = "intense"
	ActivityVeryIntense Activity = "very_intense"
)

func AllActivities() []Activity {
	return []Activity{ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense, ActivityVeryIntense}
}

func (a Activity) Valid() bool {
	_, err := activityFactor(a)
	return err == nil
}

func (a Activity) Label() string {
	switch a {
	case ActivitySedentary:
		return "Sédentaire"
	case ActivityLight:
		return "Légère"
	case ActivityModerate:
		return "Modérée"
	case ActivityIntense:
		return "Intense"
	case ActivityVeryIntense:
		return "Très intense"
	}
	return string(a)
}

func ParseActivity(s string) (Activity, error) {
	a := Activity(s)
	if !a.Valid() {
		return "", invalid("physical_activity", s, "must be one of sedentary, light, moderate, intense, very_intense")
	}
	return a, nil
}

type Symptom string

const (
	SymptomDiarrhea       Symptom = "diarrhea"
	SymptomAbdominalPain  Symptom = "abdominal_pain"
	SymptomDryMouth       Symptom = "dry_mouth"
	SymptomNauseaVomiting Symptom = "nausea_vomiting"
	SymptomConstipation   Symptom = "constipation"
)

func AllSymptoms() []Symptom {
	return []Symptom{SymptomDiarrhea, SymptomAbdominalPain, SymptomDryMouth, SymptomNauseaVomiting, SymptomConstipation}
}

func (s Symptom) Valid() bool {
	switch s {
	case SymptomDiarrhea, SymptomAbdominalPain, SymptomDryMouth, SymptomNauseaVomiting, SymptomConstipation:
		return true
	}
	return false
}

func (s Symptom) Label() string {
	switch s {
	case SymptomDiarrhea:
		return "Diarrhée"
	case SymptomAbdominalPain:
		return "Douleurs abdominales"
	case SymptomDryMouth:
		return "Sécheresse buccale"
	case SymptomNauseaVomiting:
		return "Nausées et vomissements"
	case SymptomConstipation:
		return "Constipation"
	}
	return string(s)
}

func ParseSymptom(s string) (Symptom, error) {
	sym := Symptom(s)
	if !sym.Valid() {
		return "", invalid("digestive_symptoms", s, "unknown symptom")
	}
	return sym, nil
}

// SymptomSet is a set of symptoms encoded as a JSON array. Order carries no
// meaning; NewSymptomSet returns members in declaration order.
type SymptomSet []Symptom

func NewSymptomSet(symptoms ...Symptom) SymptomSet {
	seen := make(map[Symptom]bool, len(symptoms))
	for _, s := range symptoms {
		seen[s] = true
	}
	out := make(SymptomSet, 0, len(seen))
	for _, s := range AllSymptoms() {
		if seen[s] {
			out = append(out, s)
			delete(seen, s)
		}
	}
	// unknown values are kept so Validate can report them
	for _, s := range symptoms {
		if seen[s] {
			out = append(out, s)
			delete(seen, s)
		}
	}
	return out
}

func (s SymptomSet) Len() int { return len(s) }

func (s SymptomSet) Contains(sym Symptom) bool {
	for _, v := range s {
		if v == sym {
			return true
		}
	}
	return false
}

// Intersect counts the distinct members of other that are also in s.
func (s SymptomSet) Intersect(other []Symptom) int {
	n := 0
	seen := make(map[Symptom]bool, len(other))
	for _, o := range other {
		if seen[o] {
			continue
		}
		seen[o] = true
		if s.Contains(o) {
			n++
		}
	}
	return n
}

// ---- Patient profile ----

const (
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300
)

type PatientProfile struct {
	Gender            Gender     `json:"gender"`
	CancerType        CancerType `json:"cancer_type"`
	HeightCm          float64    `json:"height_cm"`
	WeightKg          float64    `json:"weight_kg"`
	PhysicalActivity  Activity   `json:"physical_activity"`
	HasAnorexia       bool       `json:"has_anorexia"`
	DigestiveSymptoms SymptomSet `json:"digestive_symptoms"`
}

// Validate reports the first field that falls outside its vocabulary or range.
func (p *PatientProfile) Validate() error {
	if !p.Gender.Valid() {
		return invalid("gender", string(p.Gender), "must be one of male, female")
	}
	if !p.CancerType.Valid() {
		return invalid("cancer_type", string(p.CancerType), "must be one of colorectal, pancreas, gastric, rectum, stomach")
	}
	if !finite(p.HeightCm) || p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		return invalid("height_cm", p.HeightCm, "must be between 100 and 250")
	}
	if !finite(p.WeightKg) || p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		return invalid("weight_kg", p.WeightKg, "must be between 30 and 300")
	}
	if !p.PhysicalActivity.Valid() {
		return invalid("physical_activity", string(p.PhysicalActivity), "must be one of sedentary, light, moderate, intense, very_intense")
	}
	for _, s := range p.DigestiveSymptoms {
		if !s.Valid() {
			return invalid("digestive_symptoms", string(s), "unknown symptom")
		}
	}
	return nil
}

// ---- Derived metrics ----

type BMICategory struct {
	Range          string `json:"range"`
	Classification string `json:"classification"`
	Risk           string `json:"risk"`
}

type BMIResult struct {
	BMI      float64     `json:"bmi"`
	Category BMICategory `json:"category"`
}

type CalorieEstimate struct {
	RecommendedCalories int `json:"recommended_calories"`
}

type Metrics struct {
	BMI      BMIResult       `json:"bmi"`
	Calories CalorieEstimate `json:"calories"`
}

// Snapshot is a stored profile together with metrics recomputed from it.
type Snapshot struct {
	Profile PatientProfile `json:"profile"`
	Metrics
}
