package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
)

type fakeCredentials struct {
	obtainErr error
	loginErr  error
	obtained  int
	logins    int
}

func (f *fakeCredentials) Obtain(context.Context) (oauth2.TokenSource, error) {
	f.obtained++
	if f.obtainErr != nil {
		return nil, f.obtainErr
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), nil
}

func (f *fakeCredentials) Login(context.Context) error {
	f.logins++
	return f.loginErr
}

func (f *fakeCredentials) TokenFile() string { return "token.json" }

// fakePipeline lists files through the reporter and returns a fixed summary.
type fakePipeline struct {
	files    []domain.RemoteFile
	summary  *domain.MergeSummary
	err      error
	reporter driving.ProgressReporter
}

func (f *fakePipeline) Run(context.Context) (*domain.MergeSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reporter.Listed(f.files)
	for _, file := range f.files {
		f.reporter.Fetched(file, "downloads/"+file.Name)
	}
	return f.summary, nil
}

type fakeMerger struct {
	paths   []string
	summary *domain.MergeSummary
}

func (f *fakeMerger) Merge(_ context.Context, paths []string) (*domain.MergeSummary, error) {
	f.paths = paths
	return f.summary, nil
}

// fakes installs test doubles for every factory and restores them after
// the test.
type fakes struct {
	cfg      domain.Config
	creds    *fakeCredentials
	pipeline *fakePipeline
	merger   *fakeMerger
	merged   domain.Config
}

func installFakes(t *testing.T) *fakes {
	t.Helper()
	f := &fakes{
		cfg:      domain.DefaultConfig(),
		creds:    &fakeCredentials{},
		pipeline: &fakePipeline{summary: &domain.MergeSummary{Output: domain.DefaultOutputFile}},
		merger:   &fakeMerger{summary: &domain.MergeSummary{Output: domain.DefaultOutputFile}},
	}

	oldLoad, oldCreds, oldPipeline, oldMerger := loadConfig, newCredentials, newPipeline, newMerger
	t.Cleanup(func() {
		loadConfig, newCredentials, newPipeline, newMerger = oldLoad, oldCreds, oldPipeline, oldMerger
	})

	loadConfig = func(string) (domain.Config, error) { return f.cfg, nil }
	newCredentials = func(domain.Config, io.Writer) credentialProvider { return f.creds }
	newPipeline = func(_ context.Context, _ domain.Config, _ oauth2.TokenSource, r driving.ProgressReporter) (driving.Pipeline, error) {
		f.pipeline.reporter = r
		return f.pipeline, nil
	}
	newMerger = func(cfg domain.Config, _ driving.ProgressReporter) driving.Merger {
		f.merged = cfg
		return f.merger
	}
	return f
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose, mergeOutput, authForce = "", false, "", false
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
