package entity

type FlowDirection string

const (
	FlowInbound  FlowDirection = "entrada"
	FlowOutbound FlowDirection = "saida"
)

type Material string

const (
	MaterialPlastic Material = "plastico"
	MaterialGlass   Material = "vidro"
	MaterialPaper   Material = "papel/papelao"
	MaterialMetal   Material = "metal"
	MaterialRubber  Material = "borracha"
	MaterialWood    Material = "madeira"
)

type Eligibility string

const (
	Eligible    Eligibility = "sim"
	NotEligible Eligibility = "nao"
)

// ClassifiedRecord is an ExtractedRecord plus the rule engine verdicts.
// A nil verdict means the rules could not decide, which is not the same
// thing as an empty extracted field.
type ClassifiedRecord struct {
	ExtractedRecord

	Flow        *FlowDirection `json:"flow"`
	Material    *Material      `json:"material"`
	Eligibility *Eligibility   `json:"eligibility"`
}

// FlowString, MaterialString and EligibilityString render a verdict for the
// tabular export, where no verdict is an empty cell.
func (r *ClassifiedRecord) FlowString() string {
	if r.Flow == nil {
		return ""
	}
	return string(*r.Flow)
}

func (r *ClassifiedRecord) MaterialString() string {
	if r.Material == nil {
		return ""
	}
	return string(*r.Material)
}

func (r *ClassifiedRecord) EligibilityString() string {
	if r.Eligibility == nil {
		return ""
	}
	return string(*r.Eligibility)
}
