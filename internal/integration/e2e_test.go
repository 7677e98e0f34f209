package integration

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"tagcloud/internal/analysis"
	"tagcloud/internal/frequency"
	"tagcloud/internal/logging"
	"tagcloud/internal/pipeline"
	"tagcloud/internal/ranking"
	"tagcloud/internal/sizing"
	"tagcloud/internal/storage"
	"tagcloud/internal/testutil"
)

func TestE2E_StagesAgreeWithPipeline(t *testing.T) {
	doc := testutil.SampleDocument()

	// Run every stage by hand.
	counter, err := frequency.Count(strings.NewReader(doc), analysis.NewStandardAnalyzer())
	if err != nil {
		t.Fatal(err)
	}
	ranked := ranking.Rank(counter.Entries(), 4)
	tags := sizing.Tags(ranked)

	// Run the pipeline against real files.
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.txt")
	out := filepath.Join(dir, "doc.html")
	if err := os.WriteFile(src, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := pipeline.Run(afero.NewOsFs(), pipeline.Options{
		SourcePath: src,
		OutputPath: out,
		TopN:       4,
		Logger:     logging.Discard(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Tags) != len(tags) {
		t.Fatalf("pipeline produced %d tags, stages produced %d", len(res.Tags), len(tags))
	}
	for i := range tags {
		if res.Tags[i] != tags[i] {
			t.Errorf("tag %d = %+v, want %+v", i, res.Tags[i], tags[i])
		}
	}

	testutil.AssertFileExists(t, afero.NewOsFs(), out)
	got, err := storage.ComputeFileChecksum(afero.NewOsFs(), out)
	if err != nil {
		t.Fatal(err)
	}
	if got != res.Checksum {
		t.Errorf("file checksum = %s, result checksum = %s", got, res.Checksum)
	}

	// No temp files left next to the output.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want 2", len(entries))
	}
}

func TestE2E_RerunIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.txt")
	out := filepath.Join(dir, "doc.html")
	if err := os.WriteFile(src, []byte(strings.Repeat(testutil.ExampleText+"\n", 50)), 0644); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{SourcePath: src, OutputPath: out, TopN: 4, Logger: logging.Discard()}
	var outputs []string
	for i := 0; i < 3; i++ {
		if _, err := pipeline.Run(afero.NewOsFs(), opts); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, string(data))
	}
	for i := 1; i < len(outputs); i++ {
		if outputs[i] != outputs[0] {
			t.Errorf("run %d output differs from run 0", i)
		}
	}
}

func TestE2E_OutputParentIsFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.txt")
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(src, []byte(testutil.ExampleText), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := pipeline.Run(afero.NewOsFs(), pipeline.Options{
		SourcePath: src,
		OutputPath: filepath.Join(blocker, "out.html"),
		TopN:       3,
		Logger:     logging.Discard(),
	})
	if !errors.Is(err, pipeline.ErrOutputUnwritable) {
		t.Fatalf("expected ErrOutputUnwritable, got: %v", err)
	}
}

func TestE2E_SourceMissing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "doc.html")

	_, err := pipeline.Run(afero.NewOsFs(), pipeline.Options{
		SourcePath: filepath.Join(dir, "missing.txt"),
		OutputPath: out,
		TopN:       3,
		Logger:     logging.Discard(),
	})
	if !errors.Is(err, pipeline.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got: %v", err)
	}
	if storage.FileExists(afero.NewOsFs(), out) {
		t.Error("output should not exist after a failed run")
	}
}
