package cmdlet

import (
	"errors"
	"fmt"
	"net"

	"github.com/gurre/awscmd/binder"
)

var (
	// ErrSelectorConflict is returned when -PassThru is combined with -Select.
	ErrSelectorConflict = errors.New("-PassThru and -Select are mutually exclusive")

	// ErrUnknownSelector is returned for a -Select value the command cannot project.
	ErrUnknownSelector = errors.New("unknown output selector")

	// ErrUnionConflict is returned when members of more than one variant of a
	// union-typed request member are bound.
	ErrUnionConflict = errors.New("parameters of more than one variant were bound")

	// ErrNameResolution marks remote calls that failed to resolve the service host.
	ErrNameResolution = errors.New("name resolution failure")
)

// InvocationError carries the error of a failed remote call.
type InvocationError struct {
	Command      string
	InvocationID string
	Err          error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Command, e.InvocationID, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// IsUsageError reports whether err comes from how the command was invoked
// rather than from the service. Such errors repeat for every record of a
// pipeline run.
func IsUsageError(err error) bool {
	var bindErr *binder.Error
	return errors.As(err, &bindErr) ||
		errors.Is(err, ErrSelectorConflict) ||
		errors.Is(err, ErrUnknownSelector) ||
		errors.Is(err, ErrUnionConflict)
}

// classify rewraps name-resolution failures with the region and endpoint the
// call was aimed at. Every other error is returned unchanged.
func classify(err error, region, endpoint string) error {
	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		return err
	}
	target := "the default endpoint"
	if endpoint != "" {
		target = "endpoint " + endpoint
	}
	if region == "" {
		region = "(none)"
	}
	return fmt.Errorf("%w attempting to reach %s in region %s for host %s; check the -region and -endpoint-url settings: %w",
		ErrNameResolution, target, region, dnsErr.Name, err)
}
