package usecase

import (
	"context"

	"go-prescription-portal/internal/converter"
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"
	"go-prescription-portal/pkg/autocomplete"

	"github.com/sirupsen/logrus"
)

type MedicineCatalogUsecase interface {
	Search(ctx context.Context, auth entity.AuthContext, query string, limit int) (*dto.MedicineSearchResponse, error)
	Options(ctx context.Context, auth entity.AuthContext) (*dto.MedicineOptionsResponse, error)
}

type medicineCatalogUsecase struct {
	log          *logrus.Logger
	corpus       repository.MedicineCorpus
	defaultLimit int
}

func NewMedicineCatalogUsecase(log *logrus.Logger, corpus repository.MedicineCorpus, defaultLimit int) MedicineCatalogUsecase {
	return &medicineCatalogUsecase{
		log:          log,
		corpus:       corpus,
		defaultLimit: defaultLimit,
	}
}

// Search matches the catalog directly. Unlike the draft editor it applies no
// minimum query length. A limit of zero or less uses the configured default.
func (u *medicineCatalogUsecase) Search(ctx context.Context, auth entity.AuthContext, query string, limit int) (*dto.MedicineSearchResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	corpus, err := u.corpus.Medicines(ctx)
	if err != nil {
		u.log.Warnf("Failed to load medicine corpus: %+v", err)
		return nil, err
	}

	if limit <= 0 || limit > u.defaultLimit {
		limit = u.defaultLimit
	}

	medicines := autocomplete.MatchLimit(query, corpus, limit)
	return &dto.MedicineSearchResponse{
		Query:     query,
		Medicines: medicines,
		Total:     len(medicines),
	}, nil
}

// Options lists dosage frequencies and timings with their labels
func (u *medicineCatalogUsecase) Options(ctx context.Context, auth entity.AuthContext) (*dto.MedicineOptionsResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}
	return converter.MedicineOptions(), nil
}
