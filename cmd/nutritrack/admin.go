package main

import (
	"errors"
	"os"
	"text/tabwriter"

	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	"github.com/nutritrack/nutritrack/internal/domain/model"
	"github.com/nutritrack/nutritrack/internal/nav"
)

func runAdminUsers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-users")
	query := fs.String("query", "", "JMESPath filter for JSON output")
	asJSON := fs.Bool("json", false, "Emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminUsers)
	if err != nil {
		return err
	}
	defer cancel()

	users, err := cmdCtx.App.Admin.Users(ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return renderJSON(os.Stdout, users, *query)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tUSERNAME\tEMAIL\tADMIN\tLOCKED"); err != nil {
		return err
	}
	for _, u := range users {
		isAdmin := u.Roles.Contains(domainauth.RoleAdmin)
		if err := writef(w, "%s\t%s\t%s\t%t\t%t\n", u.ID, u.Username, u.Email, isAdmin, u.IsLocked); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runAdminUser(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-user")
	id := fs.String("id", "", "User ID")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminUsers)
	if err != nil {
		return err
	}
	defer cancel()

	user, err := cmdCtx.App.Admin.User(ctx, *id)
	if err != nil {
		return err
	}
	return renderJSON(os.Stdout, user, *query)
}

func runAdminLock(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-lock")
	id := fs.String("id", "", "User ID")
	unlock := fs.Bool("unlock", false, "Unlock instead of lock")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminUsers)
	if err != nil {
		return err
	}
	defer cancel()

	user, err := cmdCtx.App.Admin.SetUserLock(ctx, *id, !*unlock)
	if err != nil {
		return err
	}
	state := "locked"
	if !user.IsLocked {
		state = "unlocked"
	}
	return writef(os.Stdout, "User %s is now %s\n", user.Username, state)
}

func runAdminFoods(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-foods")
	query := fs.String("query", "", "JMESPath filter for JSON output")
	asJSON := fs.Bool("json", false, "Emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminFoods)
	if err != nil {
		return err
	}
	defer cancel()

	foods, err := cmdCtx.App.Admin.Foods(ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return renderJSON(os.Stdout, foods, *query)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tNAME\tCALORIES\tPROTEIN\tCARB\tFAT"); err != nil {
		return err
	}
	for _, f := range foods {
		if err := writef(w, "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", f.ID, f.FoodName, f.Calories, f.Protein, f.Carb, f.Fat); err != nil {
			return err
		}
	}
	return w.Flush()
}

func parseFoodFlags(name string, args []string) (string, model.Food, error) {
	fs := newFlagSet(name)
	id := fs.String("id", "", "Food ID (update and delete only)")
	var food model.Food
	fs.StringVar(&food.FoodName, "name", "", "Food name")
	fs.Float64Var(&food.Calories, "calories", 0, "Calories per serving")
	fs.Float64Var(&food.Protein, "protein", 0, "Protein grams per serving")
	fs.Float64Var(&food.Carb, "carb", 0, "Carbohydrate grams per serving")
	fs.Float64Var(&food.Fat, "fat", 0, "Fat grams per serving")
	if err := fs.Parse(args); err != nil {
		return "", model.Food{}, err
	}
	return *id, food, nil
}

func runAdminFoodAdd(cmdCtx *commandContext, args []string) error {
	_, food, err := parseFoodFlags("admin-food-add", args)
	if err != nil {
		return err
	}
	if err := food.Validate(); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminFoods)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := cmdCtx.App.Admin.CreateFood(ctx, food)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Added food %s (%s)\n", created.FoodName, created.ID)
}

func runAdminFoodUpdate(cmdCtx *commandContext, args []string) error {
	id, food, err := parseFoodFlags("admin-food-update", args)
	if err != nil {
		return err
	}
	if id == "" {
		return errors.New("--id is required")
	}
	if err := food.Validate(); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminFoods)
	if err != nil {
		return err
	}
	defer cancel()

	updated, err := cmdCtx.App.Admin.UpdateFood(ctx, id, food)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Updated food %s\n", updated.FoodName)
}

func runAdminFoodDelete(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-food-delete")
	id := fs.String("id", "", "Food ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminFoods)
	if err != nil {
		return err
	}
	defer cancel()

	if err := cmdCtx.App.Admin.DeleteFood(ctx, *id); err != nil {
		return err
	}
	return writef(os.Stdout, "Deleted food %s\n", *id)
}

func runAdminRetrain(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("admin-retrain")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdminRetrain)
	if err != nil {
		return err
	}
	defer cancel()

	job, err := cmdCtx.App.Admin.TriggerRetrain(ctx)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Retraining %s (job %s)\n", job.Status, job.JobID)
}
