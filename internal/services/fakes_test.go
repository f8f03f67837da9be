package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/pkg/utils"
)

var berlin = utils.LoadLocation("Europe/Berlin")

type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[string]*db_models.User
	nameLookups int
	err         error
	refreshErr  map[string]error
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*db_models.User{}, refreshErr: map[string]error{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID.String()] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.Triggers = append([]string(nil), u.Triggers...)
	return &cp, nil
}

func (r *fakeUserRepo) FindByName(_ context.Context, name string) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nameLookups++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) update(id string, fn func(u *db_models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fn(u)
	return nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return r.update(id, func(u *db_models.User) {
		if v, ok := fields["email"].(string); ok {
			u.Email = v
		}
	})
}

func (r *fakeUserRepo) UpdateSoberSince(_ context.Context, id string, since time.Time, soberDays int) error {
	return r.update(id, func(u *db_models.User) {
		u.SoberSince = &since
		u.SoberDays = soberDays
	})
}

func (r *fakeUserRepo) UpdateTriggers(_ context.Context, id string, triggers []string) error {
	return r.update(id, func(u *db_models.User) {
		u.Triggers = append([]string(nil), triggers...)
	})
}

func (r *fakeUserRepo) UpdateSOSContact(_ context.Context, id string, contact db_models.SOSContact) error {
	return r.update(id, func(u *db_models.User) {
		u.SOSContact = contact
	})
}

func (r *fakeUserRepo) ListWithSoberSince(_ context.Context) ([]db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []db_models.User
	for _, u := range r.users {
		if u.SoberSince != nil {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) RefreshSoberDays(_ context.Context, id string, soberDays int) error {
	if err := r.refreshErr[id]; err != nil {
		return err
	}
	return r.update(id, func(u *db_models.User) {
		u.SoberDays = soberDays
	})
}

type fakeMoodRepo struct {
	mu          sync.Mutex
	entries     []db_models.MoodEntry
	lastChecked map[uuid.UUID]time.Time
	calls       int
	err         error
	saveErr     error
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{lastChecked: map[uuid.UUID]time.Time{}}
}

func (r *fakeMoodRepo) ListByUser(_ context.Context, userID string, start, end *time.Time) ([]db_models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []db_models.MoodEntry
	for _, e := range r.entries {
		if e.UserID.String() != userID {
			continue
		}
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && e.Date.After(*end) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeMoodRepo) FindInRange(ctx context.Context, userID string, rng domain.DateRange) (*db_models.MoodEntry, error) {
	entries, err := r.ListByUser(ctx, userID, &rng.Start, &rng.End)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

// SaveForDay mirrors the ON CONFLICT (user_id, day_key) upsert.
func (r *fakeMoodRepo) SaveForDay(_ context.Context, entry *db_models.MoodEntry, checkedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.entries {
		e := &r.entries[i]
		if e.UserID == entry.UserID && e.DayKey == entry.DayKey {
			e.MoodValue = entry.MoodValue
			e.Note = entry.Note
			e.UpdatedAt = entry.UpdatedAt
			r.lastChecked[entry.UserID] = checkedAt
			return nil
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, *entry)
	r.lastChecked[entry.UserID] = checkedAt
	return nil
}

type fakeLocationRepo struct {
	locations []db_models.SupportLocation
	err       error
}

func (r *fakeLocationRepo) ListAll(_ context.Context) ([]db_models.SupportLocation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := append([]db_models.SupportLocation(nil), r.locations...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeLocationRepo) Create(_ context.Context, location *db_models.SupportLocation) error {
	r.locations = append(r.locations, *location)
	return nil
}

func (r *fakeLocationRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, l := range r.locations {
		if l.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func patient(name, password string) *db_models.User {
	return &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, berlin)},
		Username:  name,
		Password:  password,
		Role:      string(domain.RolePatient),
		Name:      name,
	}
}

func uuidString() string {
	return uuid.NewString()
}

func mustUUID(id string) uuid.UUID {
	return uuid.MustParse(id)
}
