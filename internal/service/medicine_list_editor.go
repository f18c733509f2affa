package service

import (
	"fmt"
	"unicode/utf8"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/pkg/autocomplete"
)

// MinQueryLength is the shortest query that opens the suggestion panel.
// A single character would match most of the corpus.
const MinQueryLength = 2

// IndexOutOfRangeError reports a row index that does not reference an entry.
// Callers must bounds-check before reaching the editor; seeing this error
// means the wiring is broken, so the editor panics with it.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("medicine row index %d out of range [0,%d)", e.Index, e.Len)
}

// MedicineListEditor manages the ordered medicine rows of one draft and the
// autocomplete session of whichever row holds focus. It mutates the draft it
// was built with. Not safe for concurrent use.
type MedicineListEditor struct {
	draft  *entity.PrescriptionDraft
	corpus []string
}

// NewMedicineListEditor wraps draft. A draft without rows gets one empty row.
func NewMedicineListEditor(draft *entity.PrescriptionDraft, corpus []string) *MedicineListEditor {
	if len(draft.Medicines) == 0 {
		draft.Medicines = []entity.MedicineEntry{{}}
	}
	return &MedicineListEditor{draft: draft, corpus: corpus}
}

// Len returns the number of rows
func (e *MedicineListEditor) Len() int {
	return len(e.draft.Medicines)
}

// Entries returns a copy of the rows in display order
func (e *MedicineListEditor) Entries() []entity.MedicineEntry {
	entries := make([]entity.MedicineEntry, len(e.draft.Medicines))
	copy(entries, e.draft.Medicines)
	return entries
}

// HasIndex reports whether index references an existing row
func (e *MedicineListEditor) HasIndex(index int) bool {
	return index >= 0 && index < len(e.draft.Medicines)
}

// AddEntry appends an empty row
func (e *MedicineListEditor) AddEntry() {
	e.draft.Medicines = append(e.draft.Medicines, entity.MedicineEntry{})
}

// RemoveEntry deletes the row at index and reports whether it did.
// The last remaining row is protected and is never removed.
func (e *MedicineListEditor) RemoveEntry(index int) bool {
	e.mustIndex(index)

	if len(e.draft.Medicines) <= 1 {
		return false
	}

	medicines := make([]entity.MedicineEntry, 0, len(e.draft.Medicines)-1)
	medicines = append(medicines, e.draft.Medicines[:index]...)
	medicines = append(medicines, e.draft.Medicines[index+1:]...)
	e.draft.Medicines = medicines

	if focused, ok := e.FocusedRow(); ok {
		switch {
		case focused == index:
			e.Blur()
		case focused > index:
			e.setFocus(focused - 1)
		}
	}
	return true
}

// UpdateField replaces one field of the row at index. Editing the medicine
// name retargets autocomplete to that row with the new value as query; any
// other field means the name input lost focus, so the panel closes.
func (e *MedicineListEditor) UpdateField(index int, field entity.MedicineField, value string) {
	e.mustIndex(index)

	e.draft.Medicines[index] = e.draft.Medicines[index].WithField(field, value)

	if field == entity.FieldMedicineName {
		e.setFocus(index)
		e.draft.Query = value
		return
	}
	e.Blur()
}

// Focus moves input focus to the name field of the row at index.
// The row's current name becomes the query.
func (e *MedicineListEditor) Focus(index int) {
	e.mustIndex(index)

	e.setFocus(index)
	e.draft.Query = e.draft.Medicines[index].MedicineName
}

// Blur closes the autocomplete session
func (e *MedicineListEditor) Blur() {
	e.draft.FocusedRowIndex = nil
	e.draft.Query = ""
}

// SelectSuggestion commits candidate verbatim as the row's medicine name,
// then closes the panel by clearing the query.
func (e *MedicineListEditor) SelectSuggestion(index int, candidate string) {
	e.mustIndex(index)

	e.draft.Medicines[index].MedicineName = candidate
	e.draft.Query = ""
}

// FocusedRow returns the row holding focus, if any
func (e *MedicineListEditor) FocusedRow() (int, bool) {
	if e.draft.FocusedRowIndex == nil {
		return 0, false
	}
	return *e.draft.FocusedRowIndex, true
}

// Query returns the pending autocomplete query
func (e *MedicineListEditor) Query() string {
	return e.draft.Query
}

// Suggestions returns the candidates for the focused row. It is empty when
// no row is focused or the query is shorter than MinQueryLength.
func (e *MedicineListEditor) Suggestions() []string {
	if _, ok := e.FocusedRow(); !ok {
		return []string{}
	}
	if utf8.RuneCountInString(e.draft.Query) < MinQueryLength {
		return []string{}
	}
	return autocomplete.Match(e.draft.Query, e.corpus)
}

// PanelOpen reports whether a suggestion panel is showing for any row
func (e *MedicineListEditor) PanelOpen() bool {
	return len(e.Suggestions()) > 0
}

// PanelOpenFor reports whether the suggestion panel is showing for index
func (e *MedicineListEditor) PanelOpenFor(index int) bool {
	focused, ok := e.FocusedRow()
	return ok && focused == index && e.PanelOpen()
}

// IsSuggested reports whether candidate is currently offered for index
func (e *MedicineListEditor) IsSuggested(index int, candidate string) bool {
	if !e.PanelOpenFor(index) {
		return false
	}
	for _, s := range e.Suggestions() {
		if s == candidate {
			return true
		}
	}
	return false
}

func (e *MedicineListEditor) setFocus(index int) {
	i := index
	e.draft.FocusedRowIndex = &i
}

func (e *MedicineListEditor) mustIndex(index int) {
	if !e.HasIndex(index) {
		panic(&IndexOutOfRangeError{Index: index, Len: len(e.draft.Medicines)})
	}
}
