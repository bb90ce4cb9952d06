package interngo

import "fmt"

// ErrInvalidID indicates a Lookup with an identifier that was never issued by
// this Interner instance.
//
// This is a caller contract violation rather than a recoverable runtime
// condition: every id an Interner hands out stays valid for its lifetime and
// the issued ids always form [0, Len()). Lookup reports the violation as a
// typed error so callers crossing trust boundaries can check ids cheaply;
// MustLookup keeps the unchecked fast path for callers that trust their own
// ids.
type ErrInvalidID struct {
	ID     ID
	Issued int // ids issued by this instance form [0, Issued)
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid id %d: issued ids are [0, %d)", e.ID, e.Issued)
}
