// Package log records classification traces.
//
// A trace is a stream of Events: one per classified escape sequence plus
// session start, end and error records. It is separate from operational
// logging (slog) and gives a machine-readable record of what a session saw.
//
// # Basic Usage
//
//	// Console output via slog
//	c := classify.New(reg, classify.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// Binary trace file
//	fl, _ := log.NewFileLogger("job.plog")
//	defer fl.Close()
//
//	// Both
//	c := classify.New(reg, classify.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()), fl)))
//
// # File Format
//
// Trace files are a sequence of CBOR-encoded Events with integer keys and
// use the .plog extension. The pcl-seq trace command views, summarises and
// exports them.
package log
