package weather

import "errors"

// ErrFetch marks failures of the external provider call. Wrapped errors
// carry either the provider's own message (client-side HTTP errors) or a
// generic description for everything else.
var ErrFetch = errors.New("weather fetch failed")
