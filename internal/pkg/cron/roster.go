package cron

import (
	"context"
	"time"
)

const RosterRefreshJob = "refresh_roster"

// Loader reloads the attendance roster from the employees API
type Loader interface {
	Load(ctx context.Context) error
}

// RosterJobs keeps the sheet's roster in step with changes made by other clients
type RosterJobs struct {
	loader Loader
}

func NewRosterJobs(loader Loader) *RosterJobs {
	return &RosterJobs{loader: loader}
}

// RegisterJobs registers the refresh job; a zero interval disables it
func (j *RosterJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	if interval <= 0 {
		return
	}
	scheduler.AddJob(RosterRefreshJob, interval, j.RefreshRoster)
}

// RefreshRoster reloads the roster. A failed reload keeps the current one.
func (j *RosterJobs) RefreshRoster(ctx context.Context) error {
	return j.loader.Load(ctx)
}
