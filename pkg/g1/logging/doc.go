// Package logging provides the logging facade used by the G1 bridge.
//
// Logger wraps the subset of log/slog the bridge needs. Every failure caught
// at the dispatch boundary is reported here, since the C callers only ever
// see a status code.
//
//	logger := logging.New(nil) // slog.Default()
//	logger.Warn(ctx, "rejected call", "op", "move_robot", "handle", 0)
//
// Open builds a Logger from Options, writing text or JSON records either to
// stderr or to a size-rotated file:
//
//	logger, closer, err := logging.Open(logging.Options{
//	    Level:  "debug",
//	    Format: "json",
//	    File:   "/var/log/g1bridge.log",
//	})
//	defer closer.Close()
//
// Applications may supply their own Logger implementation, for example to
// forward records into an existing logging system.
package logging
