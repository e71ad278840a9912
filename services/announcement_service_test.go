package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
)

type fakeAnnouncementRepo struct {
	items     map[int]*models.Announcement
	nextID    int
	lastLimit int
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{items: map[int]*models.Announcement{}, nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *models.Announcement) error {
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.items[a.ID] = &copied
	return nil
}

func (r *fakeAnnouncementRepo) GetByID(_ context.Context, id int) (*models.Announcement, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrAnnouncementNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context, limit int) ([]models.Announcement, error) {
	r.lastLimit = limit
	var out []models.Announcement
	for _, a := range r.items {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) ListPinned(ctx context.Context, limit int) ([]models.Announcement, error) {
	all, _ := r.List(ctx, 0)
	var out []models.Announcement
	for _, a := range all {
		if a.Pinned {
			out = append(out, a)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) Update(_ context.Context, a *models.Announcement) error {
	if _, ok := r.items[a.ID]; !ok {
		return repositories.ErrAnnouncementNotFound
	}
	copied := *a
	r.items[a.ID] = &copied
	return nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrAnnouncementNotFound
	}
	delete(r.items, id)
	return nil
}

func TestCreateAnnouncementValidation(t *testing.T) {
	svc := NewAnnouncementService(newFakeAnnouncementRepo())
	ctx := context.Background()

	if _, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Body: "b"}); !errors.Is(err, ErrAnnouncementTitleRequired) {
		t.Errorf("error = %v, want ErrAnnouncementTitleRequired", err)
	}
	if _, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Title: "t", Body: "   "}); !errors.Is(err, ErrAnnouncementBodyRequired) {
		t.Errorf("error = %v, want ErrAnnouncementBodyRequired", err)
	}

	created, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Title: "  Finals Today  ", Body: "Centre court, 4pm", Pinned: true})
	if err != nil {
		t.Fatalf("CreateAnnouncement() error: %v", err)
	}
	if created.Title != "Finals Today" {
		t.Errorf("Title = %q, want trimmed", created.Title)
	}
	if !created.Pinned {
		t.Error("Pinned = false, want true")
	}
}

func TestListAnnouncementsClampsLimit(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	if _, err := svc.ListAnnouncements(ctx, 0); err != nil {
		t.Fatalf("ListAnnouncements() error: %v", err)
	}
	if repo.lastLimit != defaultAnnouncementLimit {
		t.Errorf("limit = %d, want default %d", repo.lastLimit, defaultAnnouncementLimit)
	}

	if _, err := svc.ListAnnouncements(ctx, 500); err != nil {
		t.Fatalf("ListAnnouncements() error: %v", err)
	}
	if repo.lastLimit != maxAnnouncementLimit {
		t.Errorf("limit = %d, want max %d", repo.lastLimit, maxAnnouncementLimit)
	}
}

func TestUpdateAnnouncement(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Title: "Draft", Body: "tbd"})
	if err != nil {
		t.Fatalf("CreateAnnouncement() error: %v", err)
	}

	updated, err := svc.UpdateAnnouncement(ctx, created.ID, AnnouncementInput{Title: "Schedule Change", Body: "Moved to 5pm", Pinned: true})
	if err != nil {
		t.Fatalf("UpdateAnnouncement() error: %v", err)
	}
	if updated.Title != "Schedule Change" || !updated.Pinned {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := svc.UpdateAnnouncement(ctx, 404, AnnouncementInput{Title: "t", Body: "b"}); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Errorf("error = %v, want ErrAnnouncementNotFound", err)
	}
}

func TestDeleteAnnouncement(t *testing.T) {
	repo := newFakeAnnouncementRepo()
	svc := NewAnnouncementService(repo)
	ctx := context.Background()

	created, err := svc.CreateAnnouncement(ctx, AnnouncementInput{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("CreateAnnouncement() error: %v", err)
	}

	if err := svc.DeleteAnnouncement(ctx, created.ID); err != nil {
		t.Fatalf("DeleteAnnouncement() error: %v", err)
	}
	if err := svc.DeleteAnnouncement(ctx, created.ID); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Errorf("second delete error = %v, want ErrAnnouncementNotFound", err)
	}
}
