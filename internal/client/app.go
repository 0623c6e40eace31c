package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/adapter"
	"github.com/MKhiriev/go-project-hub/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"version":        {"version", runVersion},
	"register":       {"register -name NAME -email EMAIL -password PASSWORD", runRegister},
	"login":          {"login -email EMAIL -password PASSWORD", runLogin},
	"whoami":         {"whoami", runWhoami},
	"users":          {"users [-id ID]", runUsers},
	"projects":       {"projects (-owner USER_ID | -id PROJECT_ID)", runProjects},
	"create-project": {"create-project -owner USER_ID -name NAME [project flags]", runCreateProject},
	"update-project": {"update-project -id PROJECT_ID -actor USER_ID [project flags]", runUpdateProject},
	"delete-project": {"delete-project -id PROJECT_ID -actor USER_ID", runDeleteProject},
}

type App struct {
	adapter adapter.HubAdapter
	out     io.Writer
}

func NewApp(hub adapter.HubAdapter, out io.Writer) *App {
	return &App{adapter: hub, out: out}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, Usage())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], Usage())
	}

	result, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		return err
	}

	return a.print(result)
}

// Usage lists every subcommand, one per line.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  " + commands[name].usage + "\n")
	}
	return b.String()
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runVersion(ctx context.Context, a *App, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}

func runRegister(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var req models.RegisterRequest
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "login email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.adapter.Register(ctx, req)
}

func runLogin(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "login email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return token.SignedString, nil
}

func runWhoami(ctx context.Context, a *App, _ []string) (any, error) {
	return a.adapter.Whoami(ctx)
}

func runUsers(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	id := fs.String("id", "", "fetch a single user")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *id != "" {
		return a.adapter.GetUser(ctx, *id)
	}
	return a.adapter.GetUsers(ctx)
}

func runProjects(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("projects", flag.ContinueOnError)
	owner := fs.String("owner", "", "list projects of this user")
	id := fs.String("id", "", "fetch a project by id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case *id != "":
		return a.adapter.GetProjectsByID(ctx, *id)
	case *owner != "":
		return a.adapter.GetProjectsByOwner(ctx, *owner)
	default:
		return nil, fmt.Errorf("%w: -owner or -id", ErrMissingArgument)
	}
}

func runCreateProject(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("create-project", flag.ContinueOnError)
	pf := bindProjectFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	req, err := pf.request()
	if err != nil {
		return nil, err
	}
	if req.OwnerID == "" {
		return nil, fmt.Errorf("%w: -owner", ErrMissingArgument)
	}

	return a.adapter.CreateProject(ctx, req)
}

func runUpdateProject(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("update-project", flag.ContinueOnError)
	pf := bindProjectFlags(fs)
	id := fs.String("id", "", "project id")
	actor := fs.String("actor", "", "id of the user performing the update")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *id == "" || *actor == "" {
		return nil, fmt.Errorf("%w: -id and -actor", ErrMissingArgument)
	}

	req, err := pf.request()
	if err != nil {
		return nil, err
	}

	return a.adapter.UpdateProject(ctx, *actor, *id, req)
}

func runDeleteProject(ctx context.Context, a *App, args []string) (any, error) {
	fs := flag.NewFlagSet("delete-project", flag.ContinueOnError)
	id := fs.String("id", "", "project id")
	actor := fs.String("actor", "", "id of the user performing the deletion")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *id == "" || *actor == "" {
		return nil, fmt.Errorf("%w: -id and -actor", ErrMissingArgument)
	}

	if err := a.adapter.DeleteProject(ctx, *actor, *id); err != nil {
		return nil, err
	}
	return "deleted", nil
}

type projectFlags struct {
	req        models.ProjectRequest
	start, end string
}

func bindProjectFlags(fs *flag.FlagSet) *projectFlags {
	pf := &projectFlags{}
	fs.StringVar(&pf.req.OwnerID, "owner", "", "owner user id")
	fs.StringVar(&pf.req.ProjectName, "name", "", "project name")
	fs.StringVar(&pf.req.GroupName, "group", "", "group name")
	fs.StringVar(&pf.req.Description, "description", "", "description")
	fs.StringVar(&pf.req.Status, "status", "", "status label")
	fs.StringVar(&pf.start, "start", "", "start date")
	fs.StringVar(&pf.end, "end", "", "end date")
	return pf
}

func (pf *projectFlags) request() (models.ProjectRequest, error) {
	var err error
	req := pf.req
	if req.StartDate, err = parseDate(pf.start); err != nil {
		return models.ProjectRequest{}, err
	}
	if req.EndDate, err = parseDate(pf.end); err != nil {
		return models.ProjectRequest{}, err
	}
	return req, nil
}

// parseDate accepts "" (zero time), YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
