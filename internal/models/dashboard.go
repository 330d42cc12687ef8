package models

type StageCount struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
}

// Dashboard is the read-only projection rendered on the landing page. It
// is recomputed from current rows on every build; nothing here is
// persisted.
type Dashboard struct {
	StageCounts    []StageCount    `json:"stageCounts"`
	TotalRecruits  int             `json:"totalRecruits"`
	OverdueCount   int             `json:"overdueCount"`
	WeeklyNew      int             `json:"weeklyNew"`
	WeeklyLicensed int             `json:"weeklyLicensed"`
	Recruits       []RecruitStatus `json:"recruits"`
	RecentActivity []Activity      `json:"recentActivity"`
}
