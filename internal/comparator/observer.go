package comparator

import (
	"github.com/fatih/color"

	"schemasync/internal/models"
)

// ConsoleObserver narrates each probe as it happens, keeping the output
// formatting out of the probing logic itself.
type ConsoleObserver struct{}

func (ConsoleObserver) TableProbed(env string, result models.ProbeResult) {
	switch {
	case result.Error != "" && !result.Exists:
		color.Red("[%s] %s: probe failed: %s", env, result.Table, result.Error)
	case result.Error != "":
		color.Yellow("[%s] %s: %d rows, sample failed: %s", env, result.Table, result.RowCount, result.Error)
	default:
		color.Green("[%s] %s: %d rows, %d columns", env, result.Table, result.RowCount, len(result.Columns))
	}
}

func (ConsoleObserver) StorageProbed(env string, report models.EnvironmentReport) {
	if report.BucketError != "" {
		color.Yellow("[%s] bucket listing unavailable: %s", env, report.BucketError)
	} else {
		color.Cyan("[%s] %d storage buckets", env, len(report.Buckets))
	}

	if report.PolicyError != "" {
		color.Yellow("[%s] policy listing unavailable: %s", env, report.PolicyError)
	} else {
		color.Cyan("[%s] %d access policies", env, len(report.Policies))
	}
}
