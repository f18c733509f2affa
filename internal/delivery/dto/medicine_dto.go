package dto

type MedicineSearchResponse struct {
	Query     string   `json:"query"`
	Medicines []string `json:"medicines"`
	Total     int      `json:"total"`
}

// OptionResponse is one choice of a fixed select field
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type MedicineOptionsResponse struct {
	DosageFrequencies []OptionResponse `json:"dosage_frequencies"`
	Timings           []OptionResponse `json:"timings"`
}
