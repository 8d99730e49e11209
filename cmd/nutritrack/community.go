package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/nutritrack/nutritrack/internal/api"
	"github.com/nutritrack/nutritrack/internal/nav"
)

func runFeed(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("feed")
	query := fs.String("query", "", "JMESPath filter for JSON output")
	asJSON := fs.Bool("json", false, "Emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteCommunity)
	if err != nil {
		return err
	}
	defer cancel()

	posts, err := cmdCtx.App.FeedService.Refresh(ctx)
	if err != nil {
		return err
	}

	if *asJSON || *query != "" {
		return renderJSON(os.Stdout, posts, *query)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "ID\tAUTHOR\tLIKES\tCOMMENTS\tCONTENT"); err != nil {
		return err
	}
	for _, p := range posts {
		if err := writef(w, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Author, p.Likes, len(p.Comments), p.Content); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runShare(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("share")
	content := fs.String("content", "", "Post content")
	imageURL := fs.String("image-url", "", "Optional image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteCommunity)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := cmdCtx.App.FeedService.Share(ctx, api.ShareInput{
		Content:  *content,
		ImageURL: *imageURL,
	})
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Shared post %s\n", created.ID)
}

func runLike(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("like")
	id := fs.String("id", "", "Post ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteCommunity)
	if err != nil {
		return err
	}
	defer cancel()

	likes, err := cmdCtx.App.FeedService.Like(ctx, *id)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Post %s now has %d likes\n", *id, likes)
}

func runComment(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("comment")
	id := fs.String("id", "", "Post ID")
	content := fs.String("content", "", "Comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("--id is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteCommunity)
	if err != nil {
		return err
	}
	defer cancel()

	created, err := cmdCtx.App.FeedService.Comment(ctx, *id, *content)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Comment %s added\n", created.ID)
}

func runAdvice(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("advice")
	message := fs.String("message", "", "Question for the nutrition assistant")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdvice)
	if err != nil {
		return err
	}
	defer cancel()

	userID := sessionUserID(cmdCtx)
	reply, err := cmdCtx.App.AI.Advice(ctx, *message, userID)
	if err != nil {
		return err
	}

	if *query != "" {
		return renderJSON(os.Stdout, reply, *query)
	}
	if err := writeln(os.Stdout, reply.Text); err != nil {
		return err
	}
	for _, suggestion := range reply.PlanSuggestion {
		if err := writef(os.Stdout, "  - %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

func runVision(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("vision")
	imagePath := fs.String("image", "", "Path to the food photo")
	query := fs.String("query", "", "JMESPath filter for the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *imagePath == "" {
		return errors.New("--image is required")
	}

	ctx, cancel, err := openView(cmdCtx, nav.RouteAdvice)
	if err != nil {
		return err
	}
	defer cancel()

	file, err := os.Open(*imagePath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	userID := sessionUserID(cmdCtx)
	result, err := cmdCtx.App.AI.AnalyzeImage(ctx, filepath.Base(*imagePath), file, userID)
	if err != nil {
		return err
	}

	if *query != "" {
		return renderJSON(os.Stdout, result, *query)
	}
	return writef(os.Stdout, "%s: %.0f kcal (protein %.1fg, carb %.1fg, fat %.1fg)\n",
		result.RecognizedFood, result.Calories, result.Protein, result.Carb, result.Fat)
}

func sessionUserID(cmdCtx *commandContext) string {
	snap := cmdCtx.App.Store.Snapshot()
	if snap.User == nil {
		return ""
	}
	return snap.User.ID
}
