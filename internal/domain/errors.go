package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Not-found errors
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrWorkNotFound   = errors.New("work not found")
	ErrReportNotFound = errors.New("royalty report not found")
)

// Precondition errors
var (
	ErrTenantInactive       = errors.New("tenant is not active")
	ErrArtistInactive       = errors.New("cannot distribute work for inactive artist")
	ErrMissingAudio         = errors.New("work must have audio file before distribution")
	ErrMissingArtwork       = errors.New("work must have artwork before distribution")
	ErrNoPlatforms          = errors.New("at least one platform must be specified")
	ErrArtistTenantMismatch = errors.New("artist does not belong to the specified tenant")
)

// Invariant errors
var (
	ErrDuplicateReportPeriod = errors.New("royalty report already ingested for this platform and period")
)

// ErrTransactionConflict signals lock contention or a serialization failure
// between concurrent writers. It is the only error kind a caller may safely
// retry unchanged.
var ErrTransactionConflict = errors.New("transaction conflict, retry the operation")

// QuotaExceededError is returned when a tenant has reached the ceiling for
// a resource kind.
type QuotaExceededError struct {
	Resource ResourceKind
	Limit    int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s limit reached, maximum %d allowed for this tenant", e.Resource, e.Limit)
}

// SplitOverflowError is returned when adding a royalty split would push a
// work's total past 100%.
type SplitOverflowError struct {
	Current   decimal.Decimal
	Attempted decimal.Decimal
}

func (e *SplitOverflowError) Error() string {
	return fmt.Sprintf("total percentage cannot exceed 100%%: current total %s%%, trying to add %s%%",
		e.Current.String(), e.Attempted.String())
}

// InvalidPlatformError identifies the unsupported members of a requested
// platform list.
type InvalidPlatformError struct {
	Platforms []string
}

func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid platforms: %s", strings.Join(e.Platforms, ", "))
}

// WorkNotOwnedError is returned when a royalty report references a work
// that does not exist or belongs to a different tenant.
type WorkNotOwnedError struct {
	WorkID   string
	TenantID string
}

func (e *WorkNotOwnedError) Error() string {
	return fmt.Sprintf("work %s not found or does not belong to tenant %s", e.WorkID, e.TenantID)
}
