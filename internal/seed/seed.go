// Package seed loads users and support locations from a YAML file. This is
// how accounts and help points get into the database; the API has no
// endpoints to create them.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"soberup/internal/domain"
	"soberup/internal/models/db_models"
	"soberup/internal/repositories"
	"soberup/pkg/utils"
)

type File struct {
	Users            []User            `yaml:"users"`
	SupportLocations []SupportLocation `yaml:"support_locations"`
}

type User struct {
	Username   string      `yaml:"username"`
	Password   string      `yaml:"password"`
	Role       string      `yaml:"role"`
	Name       string      `yaml:"name"`
	Email      string      `yaml:"email"`
	SoberSince string      `yaml:"sober_since"`
	SOSContact *SOSContact `yaml:"sos_contact"`
	Triggers   []string    `yaml:"triggers"`
}

type SOSContact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type SupportLocation struct {
	Name            string `yaml:"name"`
	Address         string `yaml:"address"`
	OpeningHours    string `yaml:"opening_hours"`
	EmergencyNumber string `yaml:"emergency_number"`
	CreatedBy       string `yaml:"created_by"`
}

// Decode reads a seed file. Unknown keys, unknown roles, malformed dates and
// missing required fields are errors; nothing is defaulted silently except
// an empty role, which means patient.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	seen := map[string]bool{}
	for i, u := range f.Users {
		where := fmt.Sprintf("users[%d]", i)
		if strings.TrimSpace(u.Username) == "" || strings.TrimSpace(u.Name) == "" || u.Password == "" {
			return fmt.Errorf("%s: username, name and password are required", where)
		}
		if seen[u.Username] {
			return fmt.Errorf("%s: duplicate username %q", where, u.Username)
		}
		seen[u.Username] = true

		if u.Role != "" {
			if _, err := domain.ParseRole(u.Role); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
		}
		if u.SoberSince != "" {
			if _, err := domain.ParseDay(u.SoberSince, time.UTC); err != nil {
				return fmt.Errorf("%s: sober_since %q is not YYYY-MM-DD", where, u.SoberSince)
			}
		}
		if u.SOSContact != nil && (strings.TrimSpace(u.SOSContact.Name) == "" || strings.TrimSpace(u.SOSContact.Phone) == "") {
			return fmt.Errorf("%s: sos_contact needs both name and phone", where)
		}
		var triggers []string
		for _, t := range u.Triggers {
			next, err := domain.AddTrigger(triggers, t)
			if err != nil {
				return fmt.Errorf("%s: trigger %q: %w", where, t, err)
			}
			triggers = next
		}
	}
	for i, l := range f.SupportLocations {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("support_locations[%d]: name is required", i)
		}
	}
	return nil
}

type Options struct {
	HashPasswords bool
	DryRun        bool
	Location      *time.Location
	Now           time.Time
}

type Result struct {
	UsersCreated     int
	UsersSkipped     int
	LocationsCreated int
	LocationsSkipped int
}

// Apply inserts what is not there yet. Users are matched by username and
// locations by name; existing rows are never modified. f is validated again
// so files built in code get the same checks as decoded ones.
func Apply(
	ctx context.Context,
	f *File,
	users repositories.UserRepository,
	locations repositories.SupportLocationRepository,
	opts Options,
	logger *zap.Logger,
) (Result, error) {
	var res Result
	if err := f.validate(); err != nil {
		return res, err
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	for _, u := range f.Users {
		exists, err := users.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return res, fmt.Errorf("checking user %q: %w", u.Username, err)
		}
		if exists {
			res.UsersSkipped++
			logger.Debug("user exists, skipping", zap.String("username", u.Username))
			continue
		}

		record, err := u.toModel(loc, opts)
		if err != nil {
			return res, err
		}
		if !opts.DryRun {
			if err := users.Create(ctx, record); err != nil {
				return res, fmt.Errorf("creating user %q: %w", u.Username, err)
			}
		}
		res.UsersCreated++
		logger.Info("user seeded", zap.String("username", u.Username), zap.String("role", record.Role))
	}

	for _, l := range f.SupportLocations {
		exists, err := locations.ExistsByName(ctx, l.Name)
		if err != nil {
			return res, fmt.Errorf("checking location %q: %w", l.Name, err)
		}
		if exists {
			res.LocationsSkipped++
			continue
		}
		if !opts.DryRun {
			err := locations.Create(ctx, &db_models.SupportLocation{
				Name:            strings.TrimSpace(l.Name),
				Address:         l.Address,
				OpeningHours:    l.OpeningHours,
				EmergencyNumber: l.EmergencyNumber,
				CreatedBy:       l.CreatedBy,
			})
			if err != nil {
				return res, fmt.Errorf("creating location %q: %w", l.Name, err)
			}
		}
		res.LocationsCreated++
		logger.Info("support location seeded", zap.String("name", l.Name))
	}

	return res, nil
}

func (u User) toModel(loc *time.Location, opts Options) (*db_models.User, error) {
	role := domain.RolePatient
	if u.Role != "" {
		role = domain.Role(u.Role)
	}

	password := u.Password
	if opts.HashPasswords && !utils.IsBcryptHash(password) {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hashing password of %q: %w", u.Username, err)
		}
		password = hashed
	}

	record := &db_models.User{
		Username: strings.TrimSpace(u.Username),
		Password: password,
		Role:     string(role),
		Name:     strings.TrimSpace(u.Name),
		Email:    u.Email,
	}

	if u.SoberSince != "" {
		day, err := domain.ParseDay(u.SoberSince, loc)
		if err != nil {
			return nil, fmt.Errorf("sober_since of %q: %w", u.Username, err)
		}
		since := domain.StartOfDay(day, loc)
		record.SoberSince = &since
		record.SoberDays = domain.SoberDays(opts.Now, &since)
	}
	if u.SOSContact != nil {
		record.SOSContact = db_models.SOSContact{
			Name:  strings.TrimSpace(u.SOSContact.Name),
			Phone: strings.TrimSpace(u.SOSContact.Phone),
		}
	}

	var triggers []string
	for _, t := range u.Triggers {
		next, err := domain.AddTrigger(triggers, t)
		if err != nil {
			return nil, fmt.Errorf("trigger %q of %q: %w", t, u.Username, err)
		}
		triggers = next
	}
	record.Triggers = pq.StringArray(triggers)
	return record, nil
}
