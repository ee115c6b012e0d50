package pricewise

import "errors"

// ErrCompsDisabled is returned when the comparable-listings client was not
// configured on the engine.
var ErrCompsDisabled = errors.New("pricewise: comps client not configured")
