package converter

import (
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
)

// DraftToResponse converts a draft plus its current suggestion list.
// suggestions is what the editor offers for the focused row; an empty list
// means the panel is closed.
func DraftToResponse(draft *entity.PrescriptionDraft, suggestions []string) *dto.DraftResponse {
	if draft == nil {
		return nil
	}

	if suggestions == nil {
		suggestions = []string{}
	}

	response := &dto.DraftResponse{
		ID:            draft.ID,
		PatientID:     draft.PatientID,
		DiagnosisText: draft.DiagnosisText,
		FollowUpDate:  formatDatePtr(draft.FollowUpDate),
		Advice:        draft.Advice,
		Medicines:     make([]dto.MedicineEntryResponse, len(draft.Medicines)),
		Autocomplete: dto.AutocompleteResponse{
			FocusedRow:  draft.FocusedRowIndex,
			Query:       draft.Query,
			PanelOpen:   len(suggestions) > 0,
			Suggestions: suggestions,
		},
		CreatedAt: draft.CreatedAt,
		UpdatedAt: draft.UpdatedAt,
	}

	removable := len(draft.Medicines) > 1
	for i, m := range draft.Medicines {
		response.Medicines[i] = dto.MedicineEntryResponse{
			Index:                i,
			MedicineName:         m.MedicineName,
			DosageFrequency:      string(m.DosageFrequency),
			DosageFrequencyLabel: m.DosageFrequency.Label(),
			Timing:               string(m.Timing),
			TimingLabel:          m.Timing.Label(),
			SpecialInstructions:  m.SpecialInstructions,
			Complete:             m.IsComplete(),
			Removable:            removable,
		}
	}

	return response
}
