// Command nutritrack is the terminal client for the NutriTrack platform.
// Each invocation loads configuration, restores the persisted session,
// runs the route guard for the requested view, and performs one action.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/nutritrack/nutritrack/config"
	"github.com/nutritrack/nutritrack/internal/bootstrap"
	"github.com/nutritrack/nutritrack/internal/guard"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	App    *bootstrap.App
}

const defaultCommandTimeout = 2 * time.Minute

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	if len(os.Args) < 2 {
		if usageErr := printUsage(); usageErr != nil {
			logger.Error("print usage failed", "error", usageErr)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if writeErr := writef(os.Stderr, "unknown command %q\n\n", cmdName); writeErr != nil {
			logger.Error("print unknown command message failed", "error", writeErr)
		}
		if usageErr := printUsage(); usageErr != nil {
			logger.Error("print usage failed", "error", usageErr)
		}
		os.Exit(2)
	}

	app, err := bootstrap.BuildApp(cfg, bootstrap.BuildOptions{
		Logger:   logger,
		Notifier: stderrNotifier{},
	})
	if err != nil {
		logger.Error("build application", "error", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
		App:    app,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Authenticate and persist the session token",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create a new account",
			run:         runRegister,
		},
		"logout": {
			name:        "logout",
			description: "Clear the session and the persisted token",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the current session identity",
			run:         runWhoami,
		},
		"dashboard": {
			name:        "dashboard",
			description: "Show today's summary: profile, goals, and recent progress",
			run:         runDashboard,
		},
		"log": {
			name:        "log",
			description: "Record a food intake entry",
			run:         runLog,
		},
		"report": {
			name:        "report",
			description: "Show the progress report for a date range",
			run:         runReport,
		},
		"plans": {
			name:        "plans",
			description: "List nutrition plans",
			run:         runPlans,
		},
		"plan": {
			name:        "plan",
			description: "Show one nutrition plan",
			run:         runPlan,
		},
		"plan-create": {
			name:        "plan-create",
			description: "Create a nutrition plan",
			run:         runPlanCreate,
		},
		"recipe": {
			name:        "recipe",
			description: "Show a recipe",
			run:         runRecipe,
		},
		"profile": {
			name:        "profile",
			description: "Show the user profile",
			run:         runProfile,
		},
		"set-characteristics": {
			name:        "set-characteristics",
			description: "Update physical characteristics on the profile",
			run:         runSetCharacteristics,
		},
		"set-goals": {
			name:        "set-goals",
			description: "Update nutrition goals on the profile",
			run:         runSetGoals,
		},
		"feed": {
			name:        "feed",
			description: "Show the community feed",
			run:         runFeed,
		},
		"share": {
			name:        "share",
			description: "Share a post to the community feed",
			run:         runShare,
		},
		"like": {
			name:        "like",
			description: "Like a community post",
			run:         runLike,
		},
		"comment": {
			name:        "comment",
			description: "Comment on a community post",
			run:         runComment,
		},
		"advice": {
			name:        "advice",
			description: "Ask the AI service for nutrition advice",
			run:         runAdvice,
		},
		"vision": {
			name:        "vision",
			description: "Analyze a food photo with the AI service",
			run:         runVision,
		},
		"admin-users": {
			name:        "admin-users",
			description: "List platform users (admin)",
			run:         runAdminUsers,
		},
		"admin-user": {
			name:        "admin-user",
			description: "Show one platform user (admin)",
			run:         runAdminUser,
		},
		"admin-lock": {
			name:        "admin-lock",
			description: "Lock or unlock a user account (admin)",
			run:         runAdminLock,
		},
		"admin-foods": {
			name:        "admin-foods",
			description: "List the food database (admin)",
			run:         runAdminFoods,
		},
		"admin-food-add": {
			name:        "admin-food-add",
			description: "Add a food database entry (admin)",
			run:         runAdminFoodAdd,
		},
		"admin-food-update": {
			name:        "admin-food-update",
			description: "Update a food database entry (admin)",
			run:         runAdminFoodUpdate,
		},
		"admin-food-delete": {
			name:        "admin-food-delete",
			description: "Delete a food database entry (admin)",
			run:         runAdminFoodDelete,
		},
		"admin-retrain": {
			name:        "admin-retrain",
			description: "Trigger an AI model retraining run (admin)",
			run:         runAdminRetrain,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: nutritrack <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(os.Stdout, "  %-20s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

// openView restores the session and runs the route guard for the command's
// view. Commands proceed only when the guard renders the protected view.
func openView(cmdCtx *commandContext, route string) (context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultCommandTimeout)

	cmdCtx.App.AuthService.Bootstrap(ctx)
	decision := cmdCtx.App.Router.Navigate(route)
	switch decision.Action {
	case guard.RenderProtected:
		return ctx, cancel, nil
	case guard.RedirectToLogin:
		cancel()
		return nil, nil, errors.New("not logged in, run: nutritrack login")
	case guard.RedirectToDefault:
		// The access-denied notice has already been delivered.
		cancel()
		return nil, nil, errors.New("command unavailable for this account")
	default:
		cancel()
		return nil, nil, errors.New("session check still pending")
	}
}

// stderrNotifier delivers user-facing notices on stderr, keeping stdout
// reserved for command output.
type stderrNotifier struct{}

func (stderrNotifier) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// renderJSON writes the value as indented JSON, optionally filtered
// through a JMESPath expression first.
func renderJSON(w io.Writer, value any, query string) error {
	if query != "" {
		filtered, err := applyQuery(value, query)
		if err != nil {
			return err
		}
		value = filtered
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// applyQuery evaluates a JMESPath expression against the value's JSON form.
func applyQuery(value any, query string) (any, error) {
	if _, err := jmespath.Compile(query); err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal output for query: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal output for query: %w", err)
	}
	result, err := jmespath.Search(query, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate query %q: %w", query, err)
	}
	return result, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}
