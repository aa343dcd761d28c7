// File: pkg/concat/concat.go
package concat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// now stamps the title line. Tests replace it.
var now = time.Now

// StatusPrinter writes the status line of a finished run to w.
type StatusPrinter func(w io.Writer, result Result)

// PlainStatus prints result.Message() on its own line.
func PlainStatus(w io.Writer, result Result) {
	fmt.Fprintln(w, result.Message())
}

// Concatenate runs Run, reports the outcome to w through print (PlainStatus
// when nil) and returns whether the run succeeded.
func Concatenate(cfg Config, w io.Writer, logger *zap.Logger, print StatusPrinter) bool {
	if print == nil {
		print = PlainStatus
	}
	result := Run(cfg, logger)
	print(w, result)
	return result.OK()
}

// Run walks cfg.RootDirectory and writes every included code file into
// cfg.OutputPath. Unreadable files are recorded in the output and in
// Result.Files. Unreadable directories, the root included, are logged and
// skipped. Only output failures end up in Result.Err.
func Run(cfg Config, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	startTime := time.Now()
	logger.Info("Starting concatenation",
		zap.String("root", cfg.RootDirectory),
		zap.String("output", cfg.OutputPath))

	files, err := concatenate(cfg, logger)
	result := Result{Output: cfg.OutputPath, Files: files, Err: err}
	if err != nil {
		logger.Error("Concatenation failed", zap.String("output", cfg.OutputPath), zap.Error(err))
		return result
	}

	logger.Info("Concatenation completed",
		zap.String("output", cfg.OutputPath),
		zap.Int("files", result.Written()),
		zap.Int("errors", result.Failed()),
		zap.Duration("elapsed", time.Since(startTime)))
	return result
}

func concatenate(cfg Config, logger *zap.Logger) (files []FileResult, err error) {
	outFile, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.OutputPath), zap.Error(cerr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}
	}()

	out := newOutputWriter(outFile)
	out.writeTitle(now())

	w := &walker{
		outputName: filepath.Base(cfg.OutputPath),
		out:        out,
		logger:     logger,
	}
	if err := w.walk(cfg.RootDirectory, ""); err != nil {
		return w.files, err
	}
	if err := out.flush(); err != nil {
		return w.files, fmt.Errorf("failed to write output: %w", err)
	}
	return w.files, nil
}
