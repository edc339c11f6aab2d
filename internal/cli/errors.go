package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/dmitrijs2005/gophbank/internal/models"
)

var errUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

// severityOf maps an error to the tag shown in front of its message.
func severityOf(err error) models.Severity {
	if errors.Is(err, errUsage) {
		return models.SeverityInfo
	}
	switch common.KindOf(err) {
	case common.KindValidation, common.KindState:
		return models.SeverityWarning
	default:
		return models.SeverityError
	}
}

func formatError(err error) string {
	return fmt.Sprintf("[%s] %s", severityOf(err), err.Error())
}
