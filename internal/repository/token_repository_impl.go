package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type tokenRepository struct {
	redisClient *redis.Client
}

func NewTokenRepository(redisClient *redis.Client) domainRepo.TokenRepository {
	return &tokenRepository{redisClient: redisClient}
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (r *tokenRepository) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (r *tokenRepository) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := r.redisClient.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return r.redisClient.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}
