package app

import (
	"logreport/internal/shared/svcerrors"
)

const (
	codeNoRecordsIngested = "APP_1000"
)

// errNoRecordsIngested marks a run where every source was attempted and no
// record survived decoding.
func errNoRecordsIngested() *svcerrors.ServiceError {
	return svcerrors.NewNoInputError(codeNoRecordsIngested, "No valid log entries found in the specified files.", nil)
}
