package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/nutritrack/internal/domain/model"
)

type fakeProgressAPI struct {
	points []model.ProgressPoint
	err    error
	calls  atomic.Int32
}

func (f *fakeProgressAPI) Report(_ context.Context, _, _ string) ([]model.ProgressPoint, error) {
	f.calls.Add(1)
	return f.points, f.err
}

type fakeProfileAPI struct {
	profile *model.Profile
	err     error
	calls   atomic.Int32
}

func (f *fakeProfileAPI) Get(_ context.Context) (*model.Profile, error) {
	f.calls.Add(1)
	return f.profile, f.err
}

func TestReportServiceMergesGoalsIntoPoints(t *testing.T) {
	logs := &fakeProgressAPI{points: []model.ProgressPoint{
		{Date: "2026-08-01", TotalCalories: 1800},
		{Date: "2026-08-02", TotalCalories: 2100, Target: 2500},
	}}
	profile := &fakeProfileAPI{profile: &model.Profile{
		Goals: model.Goals{TargetCalories: 2200, TargetProtein: 120},
	}}
	svc := NewReportService(logs, profile)

	report, err := svc.Progress(context.Background(), "2026-08-01", "2026-08-02")
	require.NoError(t, err)

	require.Len(t, report.Points, 2)
	assert.Equal(t, 2200.0, report.Points[0].Target, "missing target inherits the profile goal")
	assert.Equal(t, 2500.0, report.Points[1].Target, "server-provided target is kept")
	assert.Equal(t, 2200.0, report.Goals.TargetCalories)

	assert.Equal(t, int32(1), logs.calls.Load())
	assert.Equal(t, int32(1), profile.calls.Load())
}

func TestReportServiceLogsFailure(t *testing.T) {
	logs := &fakeProgressAPI{err: errors.New("report unavailable")}
	profile := &fakeProfileAPI{profile: &model.Profile{}}
	svc := NewReportService(logs, profile)

	_, err := svc.Progress(context.Background(), "2026-08-01", "2026-08-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report unavailable")
}

func TestReportServiceProfileFailure(t *testing.T) {
	logs := &fakeProgressAPI{points: []model.ProgressPoint{{Date: "2026-08-01"}}}
	profile := &fakeProfileAPI{err: errors.New("profile unavailable")}
	svc := NewReportService(logs, profile)

	_, err := svc.Progress(context.Background(), "2026-08-01", "2026-08-02")
	require.Error(t, err)
}

func TestReportServiceEmptyRange(t *testing.T) {
	logs := &fakeProgressAPI{}
	profile := &fakeProfileAPI{profile: &model.Profile{Goals: model.Goals{TargetCalories: 2000}}}
	svc := NewReportService(logs, profile)

	report, err := svc.Progress(context.Background(), "2026-08-01", "2026-08-01")
	require.NoError(t, err)
	assert.Empty(t, report.Points)
	assert.Equal(t, 2000.0, report.Goals.TargetCalories)
}
