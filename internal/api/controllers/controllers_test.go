package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"soberup/internal/models/request_models"
	"soberup/internal/models/response_models"
	"soberup/pkg/middleware"
	"soberup/pkg/utils"
)

const testUserID = "6f1c2a8e-3b5d-4c7e-9f00-112233445566"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextToken, "tok-"+userID)
		c.Set(middleware.ContextTokenExp, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		c.Next()
	}
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// fakes

type fakeAccountService struct {
	loginErr  error
	loggedOut map[string]time.Time
	lastReq   request_models.LoginRequest
}

func (f *fakeAccountService) Login(_ context.Context, req request_models.LoginRequest, _ time.Time) (*response_models.LoginResponse, error) {
	f.lastReq = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &response_models.LoginResponse{
		Token: "signed",
		User:  response_models.SessionUser{ID: testUserID, Username: req.Name, Role: "patient"},
	}, nil
}

func (f *fakeAccountService) Logout(token string, expiresAt time.Time) {
	if f.loggedOut == nil {
		f.loggedOut = map[string]time.Time{}
	}
	f.loggedOut[token] = expiresAt
}

func (f *fakeAccountService) UsernameExists(_ context.Context, username string) (bool, error) {
	return username == "anna", nil
}

type fakeMoodService struct {
	saveErr   error
	gotUser   string
	gotYear   int
	gotMonth  int
	gotStart  string
	gotEnd    string
	today     *response_models.MoodEntryResponse
	savedWith int
}

func (f *fakeMoodService) SaveMood(_ context.Context, userID string, moodValue int, note string, _ time.Time) (*response_models.MoodEntryResponse, error) {
	f.gotUser = userID
	f.savedWith = moodValue
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &response_models.MoodEntryResponse{ID: "e1", MoodValue: moodValue, Note: note, Band: "STABLE"}, nil
}

func (f *fakeMoodService) GetToday(_ context.Context, userID string, _ time.Time) (*response_models.MoodEntryResponse, error) {
	f.gotUser = userID
	return f.today, nil
}

func (f *fakeMoodService) GetMonth(_ context.Context, userID string, year, month int) (*response_models.MoodCalendarResponse, error) {
	f.gotUser, f.gotYear, f.gotMonth = userID, year, month
	if month < 0 || month > 11 {
		return nil, utils.ErrInvalidMonth
	}
	return &response_models.MoodCalendarResponse{Year: year, Month: month, Entries: []response_models.MoodEntryResponse{}, Days: map[string]string{}}, nil
}

func (f *fakeMoodService) GetRange(_ context.Context, userID, start, end string) ([]response_models.MoodEntryResponse, error) {
	f.gotUser, f.gotStart, f.gotEnd = userID, start, end
	return []response_models.MoodEntryResponse{}, nil
}

type fakeTriggerService struct {
	triggers []string
}

func (f *fakeTriggerService) ListTriggers(context.Context, string) ([]string, error) {
	return f.triggers, nil
}

func (f *fakeTriggerService) AddTrigger(_ context.Context, _ string, text string) ([]string, error) {
	for _, t := range f.triggers {
		if t == text {
			return nil, utils.ErrDuplicateTrigger
		}
	}
	f.triggers = append(f.triggers, text)
	return f.triggers, nil
}

func (f *fakeTriggerService) DeleteTrigger(_ context.Context, _ string, text string) ([]string, error) {
	out := []string{}
	for _, t := range f.triggers {
		if t != text {
			out = append(out, t)
		}
	}
	f.triggers = out
	return out, nil
}

type fakeUserService struct {
	err error
}

func (f *fakeUserService) profile(id string) (*response_models.UserProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.UserProfileResponse{ID: id, Role: "patient", SoberDays: 12, Triggers: []string{}}, nil
}

func (f *fakeUserService) GetProfile(_ context.Context, id string, _ time.Time) (*response_models.UserProfileResponse, error) {
	return f.profile(id)
}

func (f *fakeUserService) UpdateSOSContact(_ context.Context, id, _, _ string, _ time.Time) (*response_models.UserProfileResponse, error) {
	return f.profile(id)
}

func (f *fakeUserService) SetSoberSince(_ context.Context, id, date string, _ time.Time) (*response_models.UserProfileResponse, error) {
	if date == "2999-01-01" {
		return nil, utils.ErrInvalidInput
	}
	return f.profile(id)
}

func (f *fakeUserService) MarkRelapse(_ context.Context, id string, _ time.Time) (*response_models.UserProfileResponse, error) {
	p, err := f.profile(id)
	if p != nil {
		p.SoberDays = 0
	}
	return p, err
}

type fakeDashboardService struct{}

func (fakeDashboardService) BuildDashboard(_ context.Context, id string, _ time.Time) (*response_models.DashboardResponse, error) {
	return &response_models.DashboardResponse{Profile: &response_models.UserProfileResponse{ID: id}}, nil
}

type fakeLocationService struct{}

func (fakeLocationService) ListAll(context.Context) ([]response_models.SupportLocationResponse, error) {
	return []response_models.SupportLocationResponse{{Name: "AA Nord"}}, nil
}
