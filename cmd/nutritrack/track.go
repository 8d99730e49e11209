package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nutritrack/nutritrack/internal/domain/model"
	"github.com/nutritrack/nutritrack/internal/nav"
)

// Dates travel in the backend's YYYY-MM-DD wire format.
const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(dateLayout)
}

func runDashboard(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("dashboard")
	days := fs.Int("days", 7, "How many days of progress to include")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *days <= 0 {
		return errors.New("days must be positive")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteDashboard)
	if err != nil {
		return err
	}
	defer cancel()

	end := today()
	start := daysAgo(*days - 1)
	report, err := cmdCtx.App.ReportService.Progress(ctx, start, end)
	if err != nil {
		return err
	}

	profile, err := cmdCtx.App.Profile.Get(ctx)
	if err != nil {
		return err
	}

	if err := writef(os.Stdout, "Hello, %s\n\n", profile.DisplayName()); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Daily target: %.0f kcal\n\n", report.Goals.TargetCalories); err != nil {
		return err
	}
	return renderProgressTable(report.Points)
}

type logOptions struct {
	Food     string
	Calories float64
	Date     string
	Meal     string
	Quantity float64
}

func runLog(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("log")
	var opts logOptions
	fs.StringVar(&opts.Food, "food", "", "Food name")
	fs.Float64Var(&opts.Calories, "calories", 0, "Calories for the entry")
	fs.StringVar(&opts.Date, "date", today(), "Entry date (YYYY-MM-DD)")
	fs.StringVar(&opts.Meal, "meal", "snack", "Meal type: breakfast, lunch, dinner, snack")
	fs.Float64Var(&opts.Quantity, "quantity", 1, "Quantity in servings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mealType, ok := model.ParseMealType(opts.Meal)
	if !ok {
		return fmt.Errorf("unsupported meal type %q", opts.Meal)
	}
	entry := model.DailyLog{
		FoodName: opts.Food,
		Calories: opts.Calories,
		Date:     opts.Date,
		MealType: mealType,
		Quantity: opts.Quantity,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteLog)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := cmdCtx.App.Logs.Create(ctx, entry)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Logged %s (%.0f kcal) for %s\n", created.FoodName, created.Calories, created.Date)
}

func runReport(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("report")
	start := fs.String("start", daysAgo(6), "Range start (YYYY-MM-DD)")
	end := fs.String("end", today(), "Range end (YYYY-MM-DD)")
	query := fs.String("query", "", "JMESPath filter for JSON output")
	asJSON := fs.Bool("json", false, "Emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteReport)
	if err != nil {
		return err
	}
	defer cancel()

	report, err := cmdCtx.App.ReportService.Progress(ctx, *start, *end)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return renderJSON(os.Stdout, report, *query)
	}
	return renderProgressTable(report.Points)
}

func renderProgressTable(points []model.ProgressPoint) error {
	if len(points) == 0 {
		return writeln(os.Stdout, "No entries in range")
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "DATE\tCALORIES\tTARGET"); err != nil {
		return err
	}
	for _, p := range points {
		if err := writef(w, "%s\t%.0f\t%.0f\n", p.Date, p.TotalCalories, p.Target); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runPlans(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("plans")
	query := fs.String("query", "", "JMESPath filter for JSON output")
	asJSON := fs.Bool("json", false, "Emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RoutePlans)
	if err != nil {
		return err
	}
	defer cancel()

	plans, err := cmdCtx.App.Plans.List(ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return renderJSON(os.Stdout, plans, *query)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tNAME\tMEALS"); err != nil {
		return err
	}
	for _, p := range plans {
		if err := writef(w, "%s\t%s\t%d\n", p.ID, p.Name, len(p.Meals)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runPlanCreate(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("plan-create")
	name := fs.String("name", "", "Plan name")
	description := fs.String("description", "", "Plan description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("--name is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RoutePlans)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := cmdCtx.App.Plans.Create(ctx, model.Plan{
		Name:        *name,
		Description: *description,
	})
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Created plan %s (%s)\n", created.Name, created.ID)
}

func runPlan(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("plan")
	id := fs.String("id", "", "Plan ID")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RoutePlans)
	if err != nil {
		return err
	}
	defer cancel()

	plan, err := cmdCtx.App.Plans.Get(ctx, *id)
	if err != nil {
		return err
	}
	return renderJSON(os.Stdout, plan, *query)
}

func runRecipe(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("recipe")
	id := fs.String("id", "", "Recipe ID")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RoutePlans)
	if err != nil {
		return err
	}
	defer cancel()

	recipe, err := cmdCtx.App.Plans.Recipe(ctx, *id)
	if err != nil {
		return err
	}
	return renderJSON(os.Stdout, recipe, *query)
}

func runProfile(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("profile")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteProfile)
	if err != nil {
		return err
	}
	defer cancel()

	profile, err := cmdCtx.App.Profile.Get(ctx)
	if err != nil {
		return err
	}
	return renderJSON(os.Stdout, profile, *query)
}

func runSetCharacteristics(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("set-characteristics")
	var ch model.Characteristics
	fs.Float64Var(&ch.Height, "height", 0, "Height in cm")
	fs.Float64Var(&ch.Weight, "weight", 0, "Weight in kg")
	fs.IntVar(&ch.Age, "age", 0, "Age in years")
	fs.StringVar(&ch.Gender, "gender", "", "Gender")
	fs.StringVar(&ch.ActivityLevel, "activity", "", "Activity level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := ch.Validate(); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteProfile)
	if err != nil {
		return err
	}
	defer cancel()

	profile, err := cmdCtx.App.Profile.UpdateCharacteristics(ctx, ch)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Characteristics updated for %s\n", profile.DisplayName())
}

func runSetGoals(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("set-goals")
	var goals model.Goals
	fs.Float64Var(&goals.TargetCalories, "calories", 0, "Daily calorie target")
	fs.Float64Var(&goals.TargetProtein, "protein", 0, "Daily protein target in grams")
	fs.Float64Var(&goals.TargetCarb, "carb", 0, "Daily carbohydrate target in grams")
	fs.Float64Var(&goals.TargetFat, "fat", 0, "Daily fat target in grams")
	fs.Float64Var(&goals.TargetWeight, "weight", 0, "Target weight in kg")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := goals.Validate(); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteProfile)
	if err != nil {
		return err
	}
	defer cancel()

	profile, err := cmdCtx.App.Profile.UpdateGoals(ctx, goals)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Goals updated: %.0f kcal/day\n", profile.Goals.TargetCalories)
}
