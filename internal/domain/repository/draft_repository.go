package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// DraftRepository keeps prescription drafts between requests.
// Drafts are scoped to their author and expire when abandoned.
type DraftRepository interface {
	Save(ctx context.Context, draft *entity.PrescriptionDraft) error
	FindByID(ctx context.Context, doctorID, draftID uuid.UUID) (*entity.PrescriptionDraft, error)
	Delete(ctx context.Context, doctorID, draftID uuid.UUID) error
}
