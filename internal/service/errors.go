package service

import "errors"

var (
	// Quota errors
	ErrInvalidResourceKind = errors.New("resource must be one of: artists, works")

	// Royalty split errors
	ErrInvalidRecipientType = errors.New("recipient type must be one of: artist, writer, producer, label")
	ErrInvalidPercentage    = errors.New("percentage must be greater than 0 and at most 100")

	// Royalty report errors
	ErrInvalidPlatform    = errors.New("platform is not supported")
	ErrInvalidPeriodType  = errors.New("period type must be one of: monthly, quarterly, yearly")
	ErrInvalidPeriodRange = errors.New("period end must not be before period start")
	ErrNegativeEarnings   = errors.New("earnings streams and revenue must not be negative")
)
