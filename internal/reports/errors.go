package reports

import (
	"fmt"
	"strings"

	"logreport/internal/shared/svcerrors"
)

const (
	codeUnknownReport = "RPT_1000"
)

// errUnknownReport returns an error naming the unsupported report kind and
// listing the supported ones.
func errUnknownReport(name string) *svcerrors.ServiceError {
	msg := fmt.Sprintf("Unknown report type '%s'. Supported: %s", name, strings.Join(Supported(), ", "))
	return svcerrors.NewInvalidArgumentError(codeUnknownReport, msg, nil)
}
