package validators

import (
	"fmt"
	"path/filepath"
	"strings"
)

var spreadsheetExtensions = map[string]struct{}{
	".csv":  {},
	".xlsx": {},
	".xls":  {},
	".xlsm": {},
	".ods":  {},
	".tsv":  {},
}

// SpreadsheetFile checks that an uploaded file name carries a spreadsheet
// extension the platform can read.
type SpreadsheetFile struct{}

// NewSpreadsheetFile constructs the validator.
func NewSpreadsheetFile() *SpreadsheetFile {
	return &SpreadsheetFile{}
}

// Validate fails on unsupported extensions.
func (s *SpreadsheetFile) Validate(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := spreadsheetExtensions[ext]; !ok {
		return NewValidationError(fmt.Sprintf("%s isn’t a spreadsheet that Notify can read", filename))
	}
	return nil
}
