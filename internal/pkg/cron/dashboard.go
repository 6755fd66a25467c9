package cron

import (
	"context"
	"time"

	"github.com/yamato-foods/backoffice-go/internal/domain/report"
	"github.com/yamato-foods/backoffice-go/internal/pkg/sse"
)

// DashboardJobs re-runs today's attendance aggregation on a short interval
// and pushes the snapshot to SSE subscribers. The admin dashboard used to
// poll every few seconds; this moves the poll loop server-side so every
// watcher sees the same snapshot.
type DashboardJobs struct {
	reportSvc report.ReportService
	hub       *sse.Hub
	loc       *time.Location
	interval  time.Duration
}

func NewDashboardJobs(reportSvc report.ReportService, hub *sse.Hub, loc *time.Location, interval time.Duration) *DashboardJobs {
	return &DashboardJobs{
		reportSvc: reportSvc,
		hub:       hub,
		loc:       loc,
		interval:  interval,
	}
}

func (j *DashboardJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("dashboard_refresh", j.interval, j.RefreshDashboards)
}

// RefreshDashboards recomputes today's snapshot for every company that has
// at least one live subscriber. Companies nobody is watching are skipped;
// their next request recomputes from raw events anyway.
func (j *DashboardJobs) RefreshDashboards(ctx context.Context) error {
	today := time.Now().In(j.loc).Format("2006-01-02")

	for _, companyID := range j.hub.CompanyIDs() {
		snapshot, err := j.reportSvc.DashboardForCompany(ctx, companyID, today)
		if err != nil {
			return err
		}
		j.hub.Publish(companyID, sse.Event{Event: "dashboard", Data: snapshot})
	}
	return nil
}
