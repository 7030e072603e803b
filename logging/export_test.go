package logging

import "log/slog"

// DiscardHandler exposes the package's discard handler to external tests,
// standing in for slog.DiscardHandler which requires Go 1.24.
var DiscardHandler slog.Handler = discardSlogHandler
