package campaigns

import (
	"errors"
	"fmt"

	"trace-analytics/internal/shared/svcerrors"
)

var ErrNoRuns = errors.New("no completed runs")

// CampaignService errors
const (
	codeRunFailed           = "CMP_1000"
	codeNoRuns              = "CMP_1001"
	codeInternalReportStore = "CMP_9000"
)

// errRunFailed returns an error for a run whose files could not be analyzed.
// The run is left out of the summary.
func errRunFailed(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRunFailed, fmt.Sprintf("run %s: %v", runID, cause), cause)
}

func errNoRuns(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoRuns, cause.Error(), cause)
}

// errInternalReportStoreFailed returns an error when a results table could not be written.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStore, fmt.Errorf("reportStoreFailed: %w", cause))
}
