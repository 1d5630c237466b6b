package geo

import "errors"

var (
	ErrInvalidIP    = errors.New("geo: invalid ip address")
	ErrPrivateIP    = errors.New("geo: ip address is not publicly routable")
	ErrLookupFailed = errors.New("geo: lookup failed")
	ErrDecodeFailed = errors.New("geo: failed to decode lookup response")
)
