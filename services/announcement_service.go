package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
)

const (
	defaultAnnouncementLimit = 20
	maxAnnouncementLimit     = 50
)

type AnnouncementService interface {
	ListAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, input AnnouncementInput) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int, input AnnouncementInput) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int) error
}

type AnnouncementInput struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

type announcementService struct {
	announcementRepo repositories.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) ListAnnouncements(ctx context.Context, limit int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = defaultAnnouncementLimit
	}
	if limit > maxAnnouncementLimit {
		limit = maxAnnouncementLimit
	}

	announcements, err := s.announcementRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (*models.Announcement, error) {
	if err := validateAnnouncementInput(input); err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		Title:  strings.TrimSpace(input.Title),
		Body:   strings.TrimSpace(input.Body),
		Pinned: input.Pinned,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, id int, input AnnouncementInput) (*models.Announcement, error) {
	if err := validateAnnouncementInput(input); err != nil {
		return nil, err
	}

	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement %d: %w", id, err)
	}

	announcement.Title = strings.TrimSpace(input.Title)
	announcement.Body = strings.TrimSpace(input.Body)
	announcement.Pinned = input.Pinned

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to update announcement %d: %w", id, err)
	}
	return announcement, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, id int) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			return ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement %d: %w", id, err)
	}
	return nil
}

func validateAnnouncementInput(input AnnouncementInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrAnnouncementTitleRequired
	}
	if strings.TrimSpace(input.Body) == "" {
		return ErrAnnouncementBodyRequired
	}
	return nil
}
