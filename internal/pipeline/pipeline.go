// Package pipeline runs a tag cloud build from source document to HTML file.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/afero"

	"tagcloud/internal/analysis"
	"tagcloud/internal/frequency"
	"tagcloud/internal/ranking"
	"tagcloud/internal/render"
	"tagcloud/internal/sizing"
	"tagcloud/internal/storage"
)

// Options configures a run.
type Options struct {
	SourcePath string
	OutputPath string
	// TopN is the number of words to keep. Values above the number of
	// distinct words select every word.
	TopN int

	Stylesheet  string
	ClassPrefix string

	// Analyzer splits lines into words. If nil, the standard analyzer is used.
	Analyzer analysis.Analyzer

	// Progress, if non-nil, receives a progress bar while the source is read.
	Progress io.Writer

	// Logger for state transitions. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Result describes a successful run.
type Result struct {
	DistinctWords int
	TotalWords    int
	Tags          []sizing.Tag
	BytesWritten  int64
	Checksum      storage.Checksum
	Duration      time.Duration
}

// Pipeline executes one run. It is not safe for concurrent use.
type Pipeline struct {
	fs     afero.Fs
	opts   Options
	logger *slog.Logger
	state  State
}

// New creates a Pipeline that reads and writes through fs.
func New(fs afero.Fs, opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Analyzer == nil {
		opts.Analyzer = analysis.NewStandardAnalyzer()
	}
	return &Pipeline{
		fs:     fs,
		opts:   opts,
		logger: logger,
		state:  StateIdle,
	}
}

// Run is shorthand for New(fs, opts).Run().
func Run(fs afero.Fs, opts Options) (*Result, error) {
	return New(fs, opts).Run()
}

// State returns the stage the pipeline is in.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes every stage once. On error the pipeline ends in StateFailed,
// and the output file is either absent or left as it was before the run.
// A failed fsync of the output directory after the rename is logged as a
// warning and does not fail the run, since the new file is already complete.
func (p *Pipeline) Run() (*Result, error) {
	if p.state.Terminal() {
		return nil, fmt.Errorf("%w: pipeline already ran (state %s)", ErrInvalidOptions, p.state)
	}
	start := time.Now()

	if err := p.preflight(); err != nil {
		return nil, p.fail(err)
	}

	p.transition(StateReading)
	counter, err := p.read()
	if err != nil {
		return nil, p.fail(err)
	}

	p.transition(StateRanking)
	ranked := ranking.Rank(counter.Entries(), p.opts.TopN)
	p.logger.Debug("ranked words",
		"distinct", counter.Len(),
		"selected", ranked.Len(),
		"max_count", ranked.Max,
		"min_count", ranked.Min,
	)

	p.transition(StateRendering)
	tags := sizing.Tags(ranked)
	n, sum, err := p.write(tags)
	if err != nil {
		return nil, p.fail(err)
	}

	p.transition(StateDone)
	res := &Result{
		DistinctWords: counter.Len(),
		TotalWords:    counter.Total(),
		Tags:          tags,
		BytesWritten:  n,
		Checksum:      sum,
		Duration:      time.Since(start),
	}
	p.logger.Info("tag cloud written",
		"source", p.opts.SourcePath,
		"output", p.opts.OutputPath,
		"words", res.TotalWords,
		"distinct", res.DistinctWords,
		"tags", len(tags),
		"bytes", n,
		"duration", res.Duration,
	)
	return res, nil
}

func (p *Pipeline) preflight() error {
	if p.opts.SourcePath == "" {
		return fmt.Errorf("%w: source path is empty", ErrInvalidOptions)
	}
	if p.opts.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidOptions)
	}
	if p.opts.TopN < 0 {
		return fmt.Errorf("%w: top n must be >= 0, got %d", ErrInvalidOptions, p.opts.TopN)
	}
	if dir := filepath.Dir(p.opts.OutputPath); !storage.DirExists(p.fs, dir) {
		return fmt.Errorf("%w: %s: directory %s does not exist", ErrOutputUnwritable, p.opts.OutputPath, dir)
	}
	return nil
}

// read opens the source and counts its words. Partial counts are never
// returned.
func (p *Pipeline) read() (*frequency.Counter, error) {
	path := p.opts.SourcePath
	info, err := p.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s: not a regular file", ErrSourceUnreadable, path)
	}
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if p.opts.Progress != nil {
		bar := pb.New64(info.Size()).SetWriter(p.opts.Progress).Set(pb.Bytes, true).Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	p.transition(StateAggregating)
	counter, err := frequency.Count(r, p.opts.Analyzer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceReadInterrupted, path, err)
	}
	return counter, nil
}

// write renders tags in memory and commits them atomically to the output
// path, then verifies the installed file.
func (p *Pipeline) write(tags []sizing.Tag) (int64, storage.Checksum, error) {
	path := p.opts.OutputPath

	var buf bytes.Buffer
	n, err := render.Render(&buf, render.Page{
		Source:      p.opts.SourcePath,
		TopN:        p.opts.TopN,
		Stylesheet:  p.opts.Stylesheet,
		ClassPrefix: p.opts.ClassPrefix,
		Tags:        tags,
	})
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}

	if storage.FileExists(p.fs, path) {
		p.logger.Debug("replacing existing output", "output", path)
	}

	sum := storage.ComputeChecksum(buf.Bytes())
	err = storage.AtomicWriteFile(p.fs, path, buf.Bytes(), filepath.Dir(path))
	switch {
	case errors.Is(err, storage.ErrDirNotSynced):
		// The file is complete; only the rename may not survive a crash.
		p.logger.Warn("output written but directory not synced", "output", path, "error", err)
	case err != nil:
		return 0, "", fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	if err := storage.VerifyFileChecksum(p.fs, path, sum); err != nil {
		p.fs.Remove(path)
		return 0, "", fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	return n, sum, nil
}

func (p *Pipeline) transition(to State) {
	p.logger.Debug("pipeline state", "from", p.state.String(), "to", to.String())
	p.state = to
}

func (p *Pipeline) fail(err error) error {
	p.logger.Error("pipeline failed", "state", p.state.String(), "error", err)
	p.state = StateFailed
	return err
}
