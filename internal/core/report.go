package core

// report.go flattens the run's heterogeneous failures — row-level
// DataErrors, categorized AppErrors and anything else — into the
// operator-facing error report. The report is written after every run,
// even a clean one, so its absence always means the run never finished.

import (
	"errors"
	"strconv"

	"github.com/JonMunkholm/hubsync/internal/schema"
	"github.com/JonMunkholm/hubsync/internal/spreadsheet"
)

// reportHeaders are the report columns in output order.
var reportHeaders = []string{
	"errorType",
	"dataType",
	"message",
	"rowNumber (approx)",
	"rowIdentifier",
}

// BuildReport converts collected failures into report rows. Data errors
// keep their row context; app errors carry their category in the error
// type column; anything else is reported as "Other".
func BuildReport(errs []error) []map[string]string {
	rows := make([]map[string]string, 0, len(errs))
	for _, err := range errs {
		var dataErr *schema.DataError
		var appErr *AppError

		switch {
		case errors.As(err, &dataErr):
			rows = append(rows, map[string]string{
				"errorType":          "Data",
				"dataType":           string(dataErr.Type),
				"message":            dataErr.Message,
				"rowNumber (approx)": strconv.Itoa(dataErr.RowNumber),
				"rowIdentifier":      dataErr.RowIdentifier,
			})
		case errors.As(err, &appErr):
			rows = append(rows, map[string]string{
				"errorType": "App (" + string(appErr.Kind) + ")",
				"message":   appErr.Message,
			})
		default:
			rows = append(rows, map[string]string{
				"errorType": "Other",
				"message":   err.Error(),
			})
		}
	}
	return rows
}

// WriteReport writes the consolidated error report workbook to path.
func WriteReport(path string, errs []error) error {
	return spreadsheet.WriteSheet(path, "Errors", reportHeaders, BuildReport(errs))
}
