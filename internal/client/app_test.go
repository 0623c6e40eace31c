package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHub implements only what a test sets; other methods panic through the
// nil embedded interface.
type fakeHub struct {
	adapter.HubAdapter

	register      func(models.RegisterRequest) (models.User, error)
	login         func(models.LoginRequest) (models.Token, error)
	byOwner       func(string) ([]models.Project, error)
	createProject func(models.ProjectRequest) (models.Project, error)
	deleteProject func(actorID, id string) error
}

func (f *fakeHub) Register(_ context.Context, r models.RegisterRequest) (models.User, error) {
	return f.register(r)
}

func (f *fakeHub) Login(_ context.Context, r models.LoginRequest) (models.Token, error) {
	return f.login(r)
}

func (f *fakeHub) GetProjectsByOwner(_ context.Context, ownerID string) ([]models.Project, error) {
	return f.byOwner(ownerID)
}

func (f *fakeHub) CreateProject(_ context.Context, r models.ProjectRequest) (models.Project, error) {
	return f.createProject(r)
}

func (f *fakeHub) DeleteProject(_ context.Context, actorID, id string) error {
	return f.deleteProject(actorID, id)
}

func run(t *testing.T, hub adapter.HubAdapter, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := NewApp(hub, &out).Run(context.Background(), args)
	return out.String(), err
}

func TestRun_NoCommand(t *testing.T) {
	_, err := run(t, &fakeHub{})
	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), "create-project")
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := run(t, &fakeHub{}, "explode")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_Register(t *testing.T) {
	hub := &fakeHub{
		register: func(r models.RegisterRequest) (models.User, error) {
			assert.Equal(t, models.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "pw"}, r)
			return models.User{ID: "u-1", Name: r.Name, Email: r.Email}, nil
		},
	}

	out, err := run(t, hub, "register", "-name", "Ann", "-email", "a@x.com", "-password", "pw")

	require.NoError(t, err)
	var user models.User
	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "u-1", user.ID)
}

func TestRun_LoginPrintsToken(t *testing.T) {
	hub := &fakeHub{
		login: func(models.LoginRequest) (models.Token, error) {
			return models.Token{SignedString: "jwt"}, nil
		},
	}

	out, err := run(t, hub, "login", "-email", "a@x.com", "-password", "pw")

	require.NoError(t, err)
	assert.Equal(t, "jwt\n", out)
}

func TestRun_ProjectsNeedsSelector(t *testing.T) {
	_, err := run(t, &fakeHub{}, "projects")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestRun_ProjectsByOwner(t *testing.T) {
	hub := &fakeHub{
		byOwner: func(ownerID string) ([]models.Project, error) {
			return []models.Project{{ID: "p-1", OwnerID: ownerID}}, nil
		},
	}

	out, err := run(t, hub, "projects", "-owner", "u-1")

	require.NoError(t, err)
	assert.Contains(t, out, `"ownerId": "u-1"`)
}

func TestRun_CreateProject(t *testing.T) {
	hub := &fakeHub{
		createProject: func(r models.ProjectRequest) (models.Project, error) {
			assert.Equal(t, "u-1", r.OwnerID)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.StartDate)
			assert.Equal(t, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), r.EndDate.UTC())
			return models.Project{ID: "p-1"}, nil
		},
	}

	_, err := run(t, hub, "create-project", "-owner", "u-1", "-name", "Hub", "-start", "2026-03-01", "-end", "2026-06-01T12:00:00Z")
	require.NoError(t, err)

	_, err = run(t, hub, "create-project", "-name", "Hub")
	assert.ErrorIs(t, err, ErrMissingArgument)

	_, err = run(t, hub, "create-project", "-owner", "u-1", "-start", "March")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRun_DeleteProject(t *testing.T) {
	hub := &fakeHub{
		deleteProject: func(actorID, id string) error {
			assert.Equal(t, "u-1", actorID)
			assert.Equal(t, "p-1", id)
			return nil
		},
	}

	out, err := run(t, hub, "delete-project", "-id", "p-1", "-actor", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "deleted\n", out)

	_, err = run(t, hub, "delete-project", "-id", "p-1")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestRun_AdapterErrorPropagates(t *testing.T) {
	hub := &fakeHub{
		register: func(models.RegisterRequest) (models.User, error) {
			return models.User{}, adapter.ErrConflict
		},
	}

	_, err := run(t, hub, "register", "-name", "Ann", "-email", "a@x.com", "-password", "pw")
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HUB_TOKEN", "tkn")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "tkn", cfg.Token)
}
