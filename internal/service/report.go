package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nutritrack/nutritrack/internal/domain/model"
)

// ProgressAPI is the slice of the log endpoints the report needs.
type ProgressAPI interface {
	Report(ctx context.Context, startDate, endDate string) ([]model.ProgressPoint, error)
}

// ProfileAPI is the slice of the profile endpoints the report needs.
type ProfileAPI interface {
	Get(ctx context.Context) (*model.Profile, error)
}

// ProgressReport combines daily aggregates with the user's goals.
type ProgressReport struct {
	Points []model.ProgressPoint
	Goals  model.Goals
}

// ReportService assembles the progress report view data.
type ReportService struct {
	logs    ProgressAPI
	profile ProfileAPI
}

// NewReportService constructs a ReportService.
func NewReportService(logs ProgressAPI, profile ProfileAPI) *ReportService {
	return &ReportService{logs: logs, profile: profile}
}

// Progress fetches the report range and the profile goals in parallel and
// merges them. Points missing a per-day target inherit the profile's
// calorie goal so the chart always has a target line.
func (s *ReportService) Progress(ctx context.Context, startDate, endDate string) (*ProgressReport, error) {
	var (
		points  []model.ProgressPoint
		profile *model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		points, err = s.logs.Report(gctx, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.profile.Get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ProgressReport{Points: points, Goals: profile.Goals}
	for i := range report.Points {
		if report.Points[i].Target == 0 {
			report.Points[i].Target = profile.Goals.TargetCalories
		}
	}
	return report, nil
}
