// Package stats aggregates execution history into per-user counts for the
// project statistics view.
package stats

import (
	"sort"
	"time"

	"github.com/Kamegrueon/household-task-manager/internal/model"
	"github.com/Kamegrueon/household-task-manager/internal/timeutil"
)

// UserCount is the number of executions one user carried out in the
// selected period.
type UserCount struct {
	UserName   string
	Executions int
}

// ExecutionsPerUser counts executions per user within the half-open UTC
// interval [start, end). Zero start and end mean no bound on that side.
// Executions whose date cannot be parsed are counted only when no range is
// set, since they cannot be placed inside or outside one.
func ExecutionsPerUser(executions []model.TaskExecution, start, end time.Time) []UserCount {
	counts := map[string]int{}
	for _, execution := range executions {
		if !start.IsZero() || !end.IsZero() {
			instant, err := timeutil.ParseWire(execution.ExecutionDate)
			if err != nil {
				continue
			}
			if !start.IsZero() && instant.Before(start) {
				continue
			}
			if !end.IsZero() && !instant.Before(end) {
				continue
			}
		}
		counts[execution.UserName]++
	}

	result := make([]UserCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, UserCount{UserName: name, Executions: count})
	}

	// Busiest user first; ties break on name so output is stable.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Executions != result[j].Executions {
			return result[i].Executions > result[j].Executions
		}
		return result[i].UserName < result[j].UserName
	})
	return result
}
