// Package activity derives recency feeds and notification views from entity
// snapshots. Nothing here is persisted; every view is recomputed from the
// latest fetch on each load.
package activity

import (
	"sort"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/job"
)

type Kind string

const (
	KindJob         Kind = "job"
	KindApplication Kind = "application"
	KindContract    Kind = "contract"
	KindUser        Kind = "user"
)

const (
	fallbackClientName     = "Unknown client"
	fallbackFreelancerName = "Unknown freelancer"

	// Each source list contributes at most this many items to the merged feed,
	// so a burst of one kind cannot starve the other out of the result.
	perKindLimit = 5

	DefaultFeedLimit = 10
)

type Item struct {
	ID        common.UUID `json:"id"`
	Kind      Kind        `json:"kind"`
	Title     string      `json:"title"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
}

// BuildFeed merges job and application activity into one list, newest first.
// Jobs and applications are sorted and truncated to perKindLimit separately
// before the merge; the merged list is then re-sorted and cut to limit. Both
// sorts are stable so equal timestamps keep their input order.
func BuildFeed(jobs []job.Job, applications []application.Application, limit int) []Item {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	jobItems := make([]Item, 0, len(jobs))
	for _, j := range jobs {
		actor := j.ClientName
		if actor == "" {
			actor = fallbackClientName
		}
		jobItems = append(jobItems, Item{
			ID:        j.ID,
			Kind:      KindJob,
			Title:     "New job posted: " + j.Title,
			Actor:     actor,
			Timestamp: j.CreatedAt,
		})
	}

	appItems := make([]Item, 0, len(applications))
	for _, app := range applications {
		actor := app.FreelancerName
		if actor == "" {
			actor = fallbackFreelancerName
		}
		appItems = append(appItems, Item{
			ID:        app.ID,
			Kind:      KindApplication,
			Title:     "New application for: " + app.JobTitle,
			Actor:     actor,
			Timestamp: app.CreatedAt,
		})
	}

	jobItems = topNewest(jobItems, perKindLimit)
	appItems = topNewest(appItems, perKindLimit)

	merged := make([]Item, 0, len(jobItems)+len(appItems))
	merged = append(merged, jobItems...)
	merged = append(merged, appItems...)
	return topNewest(merged, limit)
}

func topNewest(items []Item, n int) []Item {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
