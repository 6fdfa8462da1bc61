package rules

import (
	"os"

	"propcheck/check"
)

// Codes for the filesystem rule family. These rules touch the
// filesystem and therefore live at the edge of the otherwise pure
// engine; keep them out of hot validation paths.
const (
	CodeNotFound = "path_not_found"
	CodeNotDir   = "path_not_directory"
	CodeNotFile  = "path_not_file"
)

// FileExists requires the value to name an existing path.
func FileExists() check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if _, err := os.Stat(value); err == nil {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeNotFound,
			Message:  "path does not exist",
			Actual:   value,
		})
	})
}

// IsDir requires the value to name an existing directory.
func IsDir() check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if fi, err := os.Stat(value); err == nil && fi.IsDir() {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeNotDir,
			Message:  "must be an existing directory",
			Actual:   value,
		})
	})
}

// IsFile requires the value to name an existing regular file.
func IsFile() check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if fi, err := os.Stat(value); err == nil && fi.Mode().IsRegular() {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeNotFile,
			Message:  "must be an existing regular file",
			Actual:   value,
		})
	})
}
