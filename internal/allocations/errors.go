package allocations

import (
	"fmt"

	"trace-analytics/internal/shared/svcerrors"
)

// AllocationService errors
const (
	codeInvalidSubframe     = "ALC_1000"
	codeMalformedAllocation = "ALC_1001"
	codeFileUnavailable     = "ALC_1002"
)

func errInvalidSubframe(subframe int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSubframe, fmt.Sprintf("invalid subframe %d: must be >= 0", subframe), nil)
}

// errMalformedAllocations returns an error when an allocation line could not be decoded.
func errMalformedAllocations(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedAllocation, fmt.Sprintf("malformed allocations: %v", cause), cause)
}

func errAllocationFileUnavailable(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeFileUnavailable, fmt.Sprintf("allocation file %s unavailable", key), cause)
}
