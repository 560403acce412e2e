package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	items map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	for _, u := range s.items {
		if u.Email == user.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) List(_ context.Context, offset, limit int) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(s.items))
	for _, u := range s.items {
		out = append(out, u)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return []*entities.User{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type profileRepoStub struct {
	items map[uuid.UUID]*entities.Profile
}

func newProfileRepoStub() *profileRepoStub {
	return &profileRepoStub{items: map[uuid.UUID]*entities.Profile{}}
}

func (s *profileRepoStub) Create(_ context.Context, p *entities.Profile) error {
	s.items[p.ID] = p
	return nil
}

func (s *profileRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Profile, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *profileRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.Profile, error) {
	for _, p := range s.items {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *profileRepoStub) List(_ context.Context, role string) ([]*entities.Profile, error) {
	out := make([]*entities.Profile, 0)
	for _, p := range s.items {
		if role == "" || string(p.Role) == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *profileRepoStub) ListByVerificationStatus(_ context.Context, status entities.VerificationStatus) ([]*entities.Profile, error) {
	out := make([]*entities.Profile, 0)
	for _, p := range s.items {
		if p.VerificationStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *profileRepoStub) Update(_ context.Context, p *entities.Profile) error {
	if _, ok := s.items[p.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[p.ID] = p
	return nil
}

func (s *profileRepoStub) UpdateVerificationStatus(_ context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	p, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.VerificationStatus = status
	return nil
}

func (s *profileRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type wallRepoStub struct {
	items map[uuid.UUID]*entities.Wall
}

func newWallRepoStub() *wallRepoStub {
	return &wallRepoStub{items: map[uuid.UUID]*entities.Wall{}}
}

func (s *wallRepoStub) Create(_ context.Context, w *entities.Wall) error {
	cp := *w
	s.items[w.ID] = &cp
	return nil
}

func (s *wallRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Wall, error) {
	w, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (s *wallRepoStub) ListPublished(_ context.Context) ([]*entities.Wall, error) {
	out := make([]*entities.Wall, 0)
	for _, w := range s.items {
		if w.Published {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *wallRepoStub) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*entities.Wall, error) {
	out := make([]*entities.Wall, 0)
	for _, w := range s.items {
		if w.ProfileID == profileID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *wallRepoStub) Update(_ context.Context, w *entities.Wall) error {
	if _, ok := s.items[w.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *w
	s.items[w.ID] = &cp
	return nil
}

func (s *wallRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *wallRepoStub) IncrementViewCount(_ context.Context, id uuid.UUID) (int64, error) {
	w, ok := s.items[id]
	if !ok {
		return 0, domainerrors.ErrNotFound
	}
	w.ViewCount++
	return w.ViewCount, nil
}

func (s *wallRepoStub) ListMediaRefs(_ context.Context) ([]string, error) {
	out := make([]string, 0)
	for _, w := range s.items {
		for _, ref := range []string{w.LogoURL, w.HeroMediaURL, w.ShowreelURL} {
			if strings.HasPrefix(ref, media.PublicPrefix+"/") {
				out = append(out, ref)
			}
		}
	}
	return out, nil
}

func (s *wallRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type projectRepoStub struct {
	items map[uuid.UUID]*entities.Project
}

func newProjectRepoStub() *projectRepoStub {
	return &projectRepoStub{items: map[uuid.UUID]*entities.Project{}}
}

func (s *projectRepoStub) Create(_ context.Context, p *entities.Project) error {
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *projectRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Project, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *projectRepoStub) ListByWall(_ context.Context, wallID uuid.UUID) ([]*entities.Project, error) {
	out := make([]*entities.Project, 0)
	for _, p := range s.items {
		if p.WallID == wallID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (s *projectRepoStub) Update(_ context.Context, p *entities.Project) error {
	if _, ok := s.items[p.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *projectRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *projectRepoStub) DeleteByWall(_ context.Context, wallID uuid.UUID) error {
	for id, p := range s.items {
		if p.WallID == wallID {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *projectRepoStub) ListMediaRefs(_ context.Context) ([]string, error) {
	out := make([]string, 0)
	for _, p := range s.items {
		if strings.HasPrefix(p.MediaURL, media.PublicPrefix+"/") {
			out = append(out, p.MediaURL)
		}
	}
	return out, nil
}

type teamRepoStub struct {
	items map[uuid.UUID]*entities.TeamMember
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{items: map[uuid.UUID]*entities.TeamMember{}}
}

func (s *teamRepoStub) Create(_ context.Context, m *entities.TeamMember) error {
	for _, existing := range s.items {
		if existing.StudioWallID == m.StudioWallID && existing.ArtistID == m.ArtistID {
			return domainerrors.ErrAlreadyExists
		}
	}
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *teamRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *teamRepoStub) ListByWall(_ context.Context, wallID uuid.UUID) ([]*entities.TeamMember, error) {
	out := make([]*entities.TeamMember, 0)
	for _, m := range s.items {
		if m.StudioWallID == wallID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *teamRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *teamRepoStub) DeleteByWall(_ context.Context, wallID uuid.UUID) error {
	for id, m := range s.items {
		if m.StudioWallID == wallID {
			delete(s.items, id)
		}
	}
	return nil
}

type connRepoStub struct {
	items map[uuid.UUID]*entities.Connection
}

func newConnRepoStub() *connRepoStub {
	return &connRepoStub{items: map[uuid.UUID]*entities.Connection{}}
}

func (s *connRepoStub) Create(_ context.Context, c *entities.Connection) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	s.items[c.ID] = &cp
	return nil
}

func (s *connRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Connection, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *connRepoStub) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	out := make([]*entities.Connection, 0)
	for _, c := range s.items {
		if c.SenderID == profileID || c.ReceiverID == profileID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *connRepoStub) GetBetween(_ context.Context, senderID, receiverID uuid.UUID) (*entities.Connection, error) {
	for _, c := range s.items {
		if c.SenderID == senderID && c.ReceiverID == receiverID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *connRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ConnectionStatus) error {
	c, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	c.Status = status
	return nil
}
