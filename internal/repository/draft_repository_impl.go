package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type draftRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewDraftRepository stores drafts in Redis. Every save refreshes ttl, so a
// draft disappears once its author stops touching it.
func NewDraftRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.DraftRepository {
	return &draftRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func draftKey(doctorID, draftID uuid.UUID) string {
	return fmt.Sprintf("prescription:draft:%s:%s", doctorID.String(), draftID.String())
}

func (r *draftRepository) Save(ctx context.Context, draft *entity.PrescriptionDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return r.redisClient.Set(ctx, draftKey(draft.DoctorID, draft.ID), payload, r.ttl).Err()
}

func (r *draftRepository) FindByID(ctx context.Context, doctorID, draftID uuid.UUID) (*entity.PrescriptionDraft, error) {
	payload, err := r.redisClient.Get(ctx, draftKey(doctorID, draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var draft entity.PrescriptionDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, doctorID, draftID uuid.UUID) error {
	return r.redisClient.Del(ctx, draftKey(doctorID, draftID)).Err()
}
