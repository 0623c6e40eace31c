package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/metrics"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	register    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	login       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createToken func(ctx context.Context, user models.User) (models.Token, error)
	parseToken  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return f.register(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return f.login(ctx, request)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createToken(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseToken(ctx, tokenString)
}

type fakeUserService struct {
	all  func(ctx context.Context) ([]models.User, error)
	byID func(ctx context.Context, id string) (models.User, error)
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return f.all(ctx)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return f.byID(ctx, id)
}

type fakeProjectService struct {
	create  func(ctx context.Context, project models.Project) (models.Project, error)
	byOwner func(ctx context.Context, ownerID string) ([]models.Project, error)
	byID    func(ctx context.Context, id string) ([]models.Project, error)
	update  func(ctx context.Context, actorID string, project models.Project) (models.Project, error)
	delete  func(ctx context.Context, actorID, id string) error
}

func (f *fakeProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	return f.create(ctx, project)
}

func (f *fakeProjectService) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	return f.byOwner(ctx, ownerID)
}

func (f *fakeProjectService) GetProjectsByID(ctx context.Context, id string) ([]models.Project, error) {
	return f.byID(ctx, id)
}

func (f *fakeProjectService) UpdateProject(ctx context.Context, actorID string, project models.Project) (models.Project, error) {
	return f.update(ctx, actorID, project)
}

func (f *fakeProjectService) DeleteProject(ctx context.Context, actorID, id string) error {
	return f.delete(ctx, actorID, id)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// newTestHandler wires the given fakes; nil services are replaced by empty
// fakes that panic if called.
func newTestHandler(auth *fakeAuthService, users *fakeUserService, projects *fakeProjectService) (*Handler, *metrics.Metrics) {
	if auth == nil {
		auth = &fakeAuthService{}
	}
	if users == nil {
		users = &fakeUserService{}
	}
	if projects == nil {
		projects = &fakeProjectService{}
	}

	m := metrics.NewMetrics()
	services := &service.Services{
		AuthService:    auth,
		UserService:    users,
		ProjectService: projects,
		AppInfoService: &fakeAppInfoService{version: "1.0.0"},
	}
	cfg := config.Server{AllowedOrigins: []string{"http://localhost:5173"}}

	return NewHandler(services, cfg, m, logger.Nop()), m
}

func serve(t *testing.T, h *Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func scrapeMetrics(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
