package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"harness.dev/pkg/harness/pkg"
)

// ManifestName is the file WriteManifest produces in the log directory.
const ManifestName = "logs.yaml"

// LogEntry is one artifact produced by a run.
type LogEntry struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

// Logs hands out named, append-only log sinks under one run's output directory and keeps
// track of every artifact so it can be listed at the end of the run.
type Logs interface {
	Directory() string
	// Create makes a new file log. Names are made unique within the directory.
	Create(name, description string, opts ...pkg.FileLogOption) (pkg.FileLog, error)
	// AddFile registers an existing file (a crash report, a pulled result file) as an artifact.
	AddFile(path, description string)
	Files() []LogEntry
	WriteManifest() (string, error)
	Close() error
}

type localLogs struct {
	dir     string
	mu      sync.Mutex
	used    map[string]int
	entries []LogEntry
	open    []pkg.FileLog
}

// NewLogs creates the directory if needed and returns a Logs rooted at it.
func NewLogs(dir string) (Logs, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("Failed to create output directory", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &localLogs{dir: dir, used: map[string]int{}}, nil
}

func (l *localLogs) Directory() string {
	return l.dir
}

func (l *localLogs) Create(name, description string, opts ...pkg.FileLogOption) (pkg.FileLog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name = l.uniqueName(name)
	opts = append(opts, pkg.WithDescription(description))

	log, err := pkg.NewFileLog(filepath.Join(l.dir, name), opts...)
	if err != nil {
		return nil, err
	}

	l.open = append(l.open, log)
	l.entries = append(l.entries, LogEntry{Path: log.Path(), Description: description})

	return log, nil
}

func (l *localLogs) uniqueName(name string) string {
	n := l.used[name]
	l.used[name] = n + 1

	if n == 0 {
		return name
	}

	ext := filepath.Ext(name)

	return strings.TrimSuffix(name, ext) + "-" + strconv.Itoa(n) + ext
}

func (l *localLogs) AddFile(path, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slog.Debug("Registered artifact", "path", path, "description", description)
	l.entries = append(l.entries, LogEntry{Path: path, Description: description})
}

func (l *localLogs) Files() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]LogEntry(nil), l.entries...)
}

func (l *localLogs) WriteManifest() (string, error) {
	manifest := struct {
		Logs []LogEntry `yaml:"logs"`
	}{Logs: l.Files()}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := filepath.Join(l.dir, ManifestName)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		slog.Error("Failed to write manifest", "path", path, "error", err)
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return path, nil
}

func (l *localLogs) Close() error {
	l.mu.Lock()
	open := l.open
	l.open = nil
	l.mu.Unlock()

	var errs []error
	for _, log := range open {
		errs = append(errs, log.Close())
	}

	return errors.Join(errs...)
}
