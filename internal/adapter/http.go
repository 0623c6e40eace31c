package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpHubAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

// NewHTTPHubAdapter returns an adapter talking to the server at baseURL.
func NewHTTPHubAdapter(baseURL string) HubAdapter {
	return &httpHubAdapter{client: utils.NewHTTPClient(strings.TrimRight(baseURL, "/"))}
}

func (h *httpHubAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpHubAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpHubAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var user models.User
	resp, err := h.client.R().SetContext(ctx).SetBody(request).SetResult(&user).Post("/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpHubAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(request).Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var signed string
	if err = json.Unmarshal(resp.Body(), &signed); err != nil || signed == "" {
		signed = parseBearerToken(resp.Header().Get("Authorization"))
	}
	if signed == "" {
		return models.Token{}, ErrNoToken
	}

	claims, err := parseClaimsUnverified(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token claims: %w", err)
	}

	h.SetToken(signed)
	return models.Token{SignedString: signed, Claims: claims}, nil
}

func (h *httpHubAdapter) Whoami(ctx context.Context) (models.Claims, error) {
	var protected models.ProtectedResponse
	resp, err := h.authorized(ctx).SetResult(&protected).Get("/protected")
	if err != nil {
		return models.Claims{}, fmt.Errorf("protected request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Claims{}, err
	}

	return protected.User, nil
}

func (h *httpHubAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	resp, err := h.client.R().SetContext(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("get users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpHubAdapter) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	resp, err := h.client.R().SetContext(ctx).SetResult(&user).Get("/users/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return user, nil
}

func (h *httpHubAdapter) CreateProject(ctx context.Context, request models.ProjectRequest) (models.Project, error) {
	var project models.Project
	resp, err := h.client.R().SetContext(ctx).SetBody(request).SetResult(&project).Post("/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (h *httpHubAdapter) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	return h.listProjects(ctx, "/projects/"+url.PathEscape(ownerID))
}

func (h *httpHubAdapter) GetProjectsByID(ctx context.Context, id string) ([]models.Project, error) {
	return h.listProjects(ctx, "/projectsById/"+url.PathEscape(id))
}

func (h *httpHubAdapter) UpdateProject(ctx context.Context, actorID, id string, request models.ProjectRequest) (models.Project, error) {
	var project models.Project
	resp, err := h.client.R().SetContext(ctx).SetBody(request).SetResult(&project).Put(projectPath(id, actorID))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (h *httpHubAdapter) DeleteProject(ctx context.Context, actorID, id string) error {
	resp, err := h.client.R().SetContext(ctx).Delete(projectPath(id, actorID))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpHubAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpHubAdapter) listProjects(ctx context.Context, path string) ([]models.Project, error) {
	var projects []models.Project
	resp, err := h.client.R().SetContext(ctx).SetResult(&projects).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return projects, nil
}

func (h *httpHubAdapter) authorized(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx).SetAuthToken(h.Token())
}

func projectPath(id, actorID string) string {
	return "/projects/" + url.PathEscape(id) + "/" + url.PathEscape(actorID)
}

func parseBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func parseClaimsUnverified(signed string) (models.Claims, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(signed, &claims); err != nil {
		return models.Claims{}, err
	}
	return claims, nil
}
