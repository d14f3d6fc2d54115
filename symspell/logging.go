package symspell

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing structured JSON lines to w, with
// a timestamp field attached to every event. Pass it to WithLogger; omitting
// it leaves the engine with a disabled (zerolog.Nop) logger, so construction
// and lookups never pay for logging unless a caller asks for it.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
