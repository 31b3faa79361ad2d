package bitblock

import "github.com/halfbit/bitblock/internal/common"

// Sentinel errors, checked with errors.Is. Call sites wrap these with
// %w alongside segment/block context rather than returning them bare.
var (
	ErrSizeUnderflow           = common.ErrSizeUnderflow
	ErrTypeMismatch            = common.ErrTypeMismatch
	ErrInvalidSize             = common.ErrInvalidSize
	ErrResolverFailure         = common.ErrResolverFailure
	ErrUnknownSegment          = common.ErrUnknownSegment
	ErrDuplicateSegment        = common.ErrDuplicateSegment
	ErrMisplacedDynamicSegment = common.ErrMisplacedDynamicSegment
)
