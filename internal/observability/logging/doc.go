// Package logging builds the service's log/slog loggers and carries them
// through contexts.
//
// Output is JSON by default; LOG_FORMAT=text selects the text handler and
// LOG_FILE sends output to a size-rotated file instead of stdout.
//
//	logger, closer := logging.New(logging.OptionsFromEnv())
//	defer closer.Close()
//	slog.SetDefault(logger)
package logging
