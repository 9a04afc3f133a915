package ingestors

import (
	"fmt"

	"trace-analytics/internal/shared/svcerrors"
)

type serviceError = svcerrors.ServiceError

// IngestionService errors
const (
	codeValidationFailed       = "ING_1000"
	codeTraceAlreadyProcessed  = "ING_1001"
	codeMalformedTrace         = "ING_1002"
	codeTraceResultNotFound    = "ING_1003"
	codeInternalResultStore    = "ING_9000"
	codeInternalPipelineFailed = "ING_9001"
)

// errValidationFailed returns an error for request validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errTraceAlreadyProcessed returns an error when a trace with the same id was already stored.
func errTraceAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeTraceAlreadyProcessed, "trace already processed", cause)
}

// errMalformedTrace returns an error when a trace line could not be decoded.
// The message carries the line and field so the uploader can fix the file.
func errMalformedTrace(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedTrace, fmt.Sprintf("malformed trace: %v", cause), cause)
}

func errTraceResultNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeTraceResultNotFound, "trace result not found", cause)
}

// errInternalTraceResultStoreFailed returns an error when a trace result store operation fails.
func errInternalTraceResultStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalResultStore, fmt.Errorf("traceResultStoreFailed: %w", cause))
}

// errInternalPipelineFailed returns an error when reading or aggregating a trace fails.
func errInternalPipelineFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPipelineFailed, fmt.Errorf("pipelineFailed: %w", cause))
}
