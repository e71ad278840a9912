package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
	"github.com/ghs-carnival/carnival-server/storage"
	"github.com/gosimple/slug"
)

type SportService interface {
	CreateSport(ctx context.Context, input CreateSportInput) (*models.Sport, error)
	GetSportBySlug(ctx context.Context, sportSlug string) (*models.Sport, error)
	GetAllSports(ctx context.Context) ([]models.Sport, error)
	UpdateSport(ctx context.Context, id int, input UpdateSportInput) (*models.Sport, error)
	UploadSportLogo(ctx context.Context, id int, contentType string, reader io.Reader) (*models.Sport, error)
	DeleteSport(ctx context.Context, id int) error
}

type CreateSportInput struct {
	Name string `json:"name"`
}

type UpdateSportInput struct {
	Name string `json:"name"`
}

var logoExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

type sportService struct {
	sportRepo repositories.SportRepository
	uploader  storage.FileUploader
}

// NewSportService builds the sport catalog service. uploader may be nil when
// media storage is not configured; logo uploads then fail with
// ErrMediaStorageUnavailable while the rest of the catalog keeps working.
func NewSportService(sportRepo repositories.SportRepository, uploader storage.FileUploader) SportService {
	return &sportService{
		sportRepo: sportRepo,
		uploader:  uploader,
	}
}

func (s *sportService) CreateSport(ctx context.Context, input CreateSportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSportNameRequired
	}

	sport := &models.Sport{
		Name: name,
		Slug: slug.Make(name),
	}

	if err := s.sportRepo.Create(ctx, sport); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportSlugConflict):
			return nil, ErrSportSlugConflict
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		default:
			return nil, fmt.Errorf("failed to create sport: %w", err)
		}
	}

	s.attachLogoURL(sport)
	return sport, nil
}

func (s *sportService) GetSportBySlug(ctx context.Context, sportSlug string) (*models.Sport, error) {
	sport, err := s.sportRepo.GetBySlug(ctx, sportSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport by slug %q: %w", sportSlug, err)
	}

	s.attachLogoURL(sport)
	return sport, nil
}

func (s *sportService) GetAllSports(ctx context.Context) ([]models.Sport, error) {
	sports, err := s.sportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sports: %w", err)
	}
	for i := range sports {
		s.attachLogoURL(&sports[i])
	}
	return sports, nil
}

// UpdateSport changes cosmetic fields only. The slug never changes once set:
// matches and score rendering key off it.
func (s *sportService) UpdateSport(ctx context.Context, id int, input UpdateSportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSportNameRequired
	}

	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	sport.Name = name
	if err := s.sportRepo.Update(ctx, sport); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		default:
			return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
		}
	}

	s.attachLogoURL(sport)
	return sport, nil
}

func (s *sportService) UploadSportLogo(ctx context.Context, id int, contentType string, reader io.Reader) (*models.Sport, error) {
	if s.uploader == nil {
		return nil, ErrMediaStorageUnavailable
	}

	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedLogoType
	}

	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	key := fmt.Sprintf("sports/%d/logo.%s", sport.ID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload sport logo: %w", err)
	}

	oldKey := sport.LogoKey
	if err := s.sportRepo.UpdateLogoKey(ctx, sport.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to persist sport logo key: %w", err)
	}
	sport.LogoKey = &result.Key

	if oldKey != nil && *oldKey != result.Key {
		// Best effort: a stale object is harmless.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.attachLogoURL(sport)
	return sport, nil
}

func (s *sportService) DeleteSport(ctx context.Context, id int) error {
	err := s.sportRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return ErrSportNotFound
		case errors.Is(err, repositories.ErrSportInUse):
			return ErrSportInUse
		default:
			return fmt.Errorf("failed to delete sport %d: %w", id, err)
		}
	}
	return nil
}

func (s *sportService) attachLogoURL(sport *models.Sport) {
	if s.uploader == nil || sport.LogoKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*sport.LogoKey)
	sport.LogoURL = &url
}
