// Package aggregate folds normalized employee records into per-manager
// statistics.
package aggregate

import (
	"github.com/montanaflynn/stats"

	"rosterlens/domain/roster"
)

// Summary covers the whole upload, across manager groups.
type Summary struct {
	TotalRecords     int     `json:"total_records"`
	SkippedNoManager int     `json:"skipped_no_manager"`
	PresentTotal     int     `json:"present_total"`
	AbsentTotal      int     `json:"absent_total"`
	AvgPartTime      float64 `json:"avg_part_time"`
	MedianPartTime   float64 `json:"median_part_time"`
}

// Result is the aggregation output: manager groups in first-encountered
// order plus the overall summary.
type Result struct {
	Managers []roster.ManagerStats `json:"managers"`
	Summary  Summary               `json:"summary"`
}

// Aggregate folds the records into a mapping keyed by manager. Records
// without a manager are skipped; presence is decided by ClassifyPresence;
// a part-time value that fails float coercion contributes 0. Averages are
// computed once after the fold, rounded to 2 decimal places.
func Aggregate(records []roster.EmployeeRecord) Result {
	groups := make(map[string]*roster.ManagerStats)
	var order []string

	var percentages []float64
	summary := Summary{TotalRecords: len(records)}

	for _, rec := range records {
		pct, _ := rec.PartTime.Float() // failed coercion contributes 0
		percentages = append(percentages, pct)

		present := roster.ClassifyPresence(rec.Present)
		if present {
			summary.PresentTotal++
		} else {
			summary.AbsentTotal++
		}

		if rec.Manager == "" {
			summary.SkippedNoManager++
			continue
		}

		group, ok := groups[rec.Manager]
		if !ok {
			group = &roster.ManagerStats{Manager: rec.Manager}
			groups[rec.Manager] = group
			order = append(order, rec.Manager)
		}

		group.TotalEmployees++
		if present {
			group.PresentEmployees++
		} else {
			group.AbsentEmployees++
		}
		group.TotalPartTime += pct
	}

	managers := make([]roster.ManagerStats, 0, len(order))
	for _, name := range order {
		group := groups[name]
		// TotalEmployees is at least 1: a group only exists once a record
		// has been folded into it.
		avg, _ := stats.Round(group.TotalPartTime/float64(group.TotalEmployees), 2)
		group.AvgPartTime = avg
		managers = append(managers, *group)
	}

	if len(percentages) > 0 {
		mean, _ := stats.Mean(percentages)
		median, _ := stats.Median(percentages)
		summary.AvgPartTime, _ = stats.Round(mean, 2)
		summary.MedianPartTime, _ = stats.Round(median, 2)
	}

	return Result{Managers: managers, Summary: summary}
}
