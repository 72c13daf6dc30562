// Package quotastore meters generation requests per user and calendar
// month. The month is part of the storage key, so counters roll over
// without any cleanup job.
package quotastore

import (
	"fmt"

	"brandforge/internal/domain/pipeline"
	apperrors "brandforge/pkg/errors"
)

// DefaultMonthlyLimit applies when no limit is configured.
const DefaultMonthlyLimit = 40

const periodLayout = "2006-01"

func usageFor(used, limit int, period string) pipeline.Usage {
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return pipeline.Usage{Used: used, Limit: limit, Remaining: remaining, Period: period}
}

func quotaExceeded(limit int) error {
	return apperrors.Wrap("quota_exceeded", fmt.Sprintf("monthly limit of %d generations reached", limit), nil)
}
