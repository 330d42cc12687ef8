package recruitController

import (
	"context"
	"crm/internal/database"
	. "crm/internal/models"
	"crm/internal/services"
	"sort"
	"time"
)

const DASHBOARD_CACHE_EXPIRY = 30 * time.Second

// Overdue returns the follow-up work queue, most neglected first. The
// repository filters in SQL with the same rule Recruit.IsOverdue applies
// in memory.
func (rc *RecruitController) Overdue(ctx context.Context, now time.Time) ([]*Recruit, error) {
	return rc.recruitRepo.GetOverdue(ctx, now)
}

// Dashboard assembles the landing-page projection: per-stage counts,
// overdue count, weekly stats, recent activity, and the full recruit list
// with overdue flags. The snapshot is cached briefly; any recruit
// mutation invalidates it.
func (rc *RecruitController) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	log := rc.log.Function("Dashboard")

	var cached Dashboard
	if found, err := database.NewCacheBuilder(rc.db.Cache.Dashboard, services.DashboardCacheKey).
		WithContext(ctx).Get(&cached); err == nil && found {
		return &cached, nil
	}

	recruits, err := rc.recruitRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := BuildDashboard(recruits, now)

	weekAgo := now.Add(-7 * 24 * time.Hour)
	if dashboard.WeeklyNew, err = rc.recruitRepo.CountCreatedSince(ctx, weekAgo); err != nil {
		return nil, err
	}
	if dashboard.WeeklyLicensed, err = rc.recruitRepo.CountLicensedSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	activity, err := rc.communicationRepo.GetRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	dashboard.RecentActivity = make([]Activity, 0, len(activity))
	for _, entry := range activity {
		dashboard.RecentActivity = append(dashboard.RecentActivity, *entry)
	}

	if err := database.NewCacheBuilder(rc.db.Cache.Dashboard, services.DashboardCacheKey).
		WithStruct(dashboard).
		WithTTL(DASHBOARD_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache dashboard", "error", err)
	}

	return dashboard, nil
}

// BuildDashboard is the pure aggregation over a recruit snapshot. Stage
// counts cover only the known vocabulary; recruits with stage values
// outside it fall in no bucket but still count toward the total. The
// listing sorts overdue first, then priority descending, then most
// recently updated.
func BuildDashboard(recruits []*Recruit, now time.Time) *Dashboard {
	counts := make(map[Stage]int, len(Stages()))
	statuses := make([]RecruitStatus, 0, len(recruits))
	overdueCount := 0

	for _, recruit := range recruits {
		stage := ParseStage(string(recruit.Stage))
		if stage != StageUnknown {
			counts[stage]++
		}

		overdue := recruit.IsOverdue(now)
		if overdue {
			overdueCount++
		}

		statuses = append(statuses, RecruitStatus{Recruit: *recruit, Overdue: overdue})
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].Overdue != statuses[j].Overdue {
			return statuses[i].Overdue
		}
		if statuses[i].Priority != statuses[j].Priority {
			return statuses[i].Priority > statuses[j].Priority
		}
		return statuses[i].UpdatedAt.After(statuses[j].UpdatedAt)
	})

	stageCounts := make([]StageCount, 0, len(Stages()))
	for _, stage := range Stages() {
		stageCounts = append(stageCounts, StageCount{Stage: stage, Count: counts[stage]})
	}

	return &Dashboard{
		StageCounts:   stageCounts,
		TotalRecruits: len(recruits),
		OverdueCount:  overdueCount,
		Recruits:      statuses,
	}
}
