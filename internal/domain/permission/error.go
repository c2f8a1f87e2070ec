package permission

import (
	"errors"
	"fmt"
)

var ErrForbidden = errors.New("admin access required")

// InvalidSettingError names the first (module, level) pair of a
// permission payload that failed validation.
type InvalidSettingError struct {
	Module string
	Level  string
}

func (e *InvalidSettingError) Error() string {
	return fmt.Sprintf("Invalid setting: %s->%s", e.Module, e.Level)
}
