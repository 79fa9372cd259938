package hwp_extractor

import (
	"fmt"
	"strings"
)

// UnknownVersionError means the byte source matched none of the known
// HWP variants. Fatal for that document.
type UnknownVersionError struct {
	Filename string
}

func (e *UnknownVersionError) Error() string {
	if e.Filename == "" {
		return "unknown document version: signature matches no known HWP variant"
	}
	return fmt.Sprintf("unknown document version: %s matches no known HWP variant", e.Filename)
}

// InvalidContainerError means the declared container (compound file or ZIP
// package) could not be opened per its own format rules.
type InvalidContainerError struct {
	Container string
	Err       error
}

func (e *InvalidContainerError) Error() string {
	return fmt.Sprintf("invalid %s container: %v", e.Container, e.Err)
}

func (e *InvalidContainerError) Unwrap() error { return e.Err }

// MissingSectionError means a mandatory stream or the body-text area is
// absent, so no section enumeration is possible.
type MissingSectionError struct {
	Missing string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing required stream: %s", e.Missing)
}

// unsupportedPackageNotice describes the degraded outcome of a ZIP package
// that holds none of the known section paths. It is carried on
// Document.Notice rather than returned as an error so batch callers can
// move on to the next document.
func unsupportedPackageNotice(tried []string) string {
	return fmt.Sprintf("no known section path in package (tried %s)", strings.Join(tried, ", "))
}
