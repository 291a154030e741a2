package domain

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"harness.dev/pkg/harness/internal/adapter"
)

// loadToolXML runs the launch helper with an output file argument and decodes the XML it
// wrote. The helper is known to report failure (or time out) after writing a complete
// listing, so a parsable output file is trusted over the exit status; only a missing or
// broken file combined with a failed run is an error.
func loadToolXML(ctx context.Context, ml *adapter.Mlaunch, flag, scratchDir string, log io.Writer, into any) error {
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}

	path := filepath.Join(scratchDir, "listing-"+uuid.NewString()+".xml")

	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Debug("Failed to remove listing", "path", path, "error", err)
		}
	}()

	result, runErr := ml.Run(ctx, []string{flag, path, "--output-format=xml"}, listingTimeout, log, log)
	if runErr != nil {
		slog.Error("Failed to run device listing", "flag", flag, "error", runErr)
		return fmt.Errorf("failed to run %s: %w", flag, runErr)
	}

	toolFailed := !result.Succeeded()

	data, readErr := os.ReadFile(path)
	if readErr == nil {
		readErr = xml.Unmarshal(data, into)
	}

	switch {
	case readErr == nil && toolFailed:
		slog.Warn("Device listing reported failure but produced valid output, using it",
			"flag", flag, "exit_code", result.Code(-1), "timed_out", result.TimedOut)

		return nil
	case readErr == nil:
		return nil
	case toolFailed:
		slog.Error("Device listing failed", "flag", flag, "exit_code", result.Code(-1), "timed_out", result.TimedOut, "error", readErr)
		return fmt.Errorf("device listing %s failed (exit code %d, timed out %t): %w", flag, result.Code(-1), result.TimedOut, readErr)
	default:
		slog.Error("Device listing produced unreadable output", "flag", flag, "error", readErr)
		return fmt.Errorf("invalid device listing output: %w", readErr)
	}
}
