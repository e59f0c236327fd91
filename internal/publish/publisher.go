// Package publish creates GitHub issues from roadmap tasks via the gh CLI.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blackboxhq/roadmap-go/internal/roadmap"
)

const ghBinary = "gh"

// ToolUnavailableError reports a missing or broken gh CLI.
type ToolUnavailableError struct {
	Err error
}

func (e *ToolUnavailableError) Error() string {
	return "GitHub CLI (gh) not found, install from https://cli.github.com/"
}

// Unwrap returns the underlying error.
func (e *ToolUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an unusable publish configuration, such as
// a missing target repository.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// TaskPublishError reports a single failed issue creation. It is logged
// and the batch continues; it never aborts a run.
type TaskPublishError struct {
	Title  string
	Output string
	Err    error
}

func (e *TaskPublishError) Error() string {
	return fmt.Sprintf("create issue %q: %v", e.Title, e.Err)
}

// Unwrap returns the underlying error.
func (e *TaskPublishError) Unwrap() error {
	return e.Err
}

// Options configure a publish run.
type Options struct {
	// Repo is the owner/name slug. May be empty in dry-run mode.
	Repo string
	// DryRun prints the constructed commands without executing them.
	DryRun bool
	// Runner executes the gh CLI. Defaults to RealCommandRunner.
	Runner CommandRunner
	// Out receives user-facing confirmation lines. Defaults to stdout.
	Out io.Writer
	// Logger receives per-task failure diagnostics.
	Logger *log.Logger
}

// Result summarizes a publish run.
type Result struct {
	Created int // issues created
	Failed  int // per-task failures, already logged
	Planned int // commands printed in dry-run mode
}

// Publisher creates one remote issue per task.
type Publisher struct {
	repo   string
	dryRun bool
	runner CommandRunner
	out    io.Writer
	logger *log.Logger
}

// New builds a Publisher from options, filling defaults.
func New(opts Options) *Publisher {
	runner := opts.Runner
	if runner == nil {
		runner = &RealCommandRunner{}
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Publisher{
		repo:   opts.Repo,
		dryRun: opts.DryRun,
		runner: runner,
		out:    out,
		logger: logger,
	}
}

// Publish creates one issue per task. The gh CLI is probed once before
// any work; an unavailable tool or an unresolvable repository aborts
// the run. A single task's failure is logged and the batch continues.
func (p *Publisher) Publish(ctx context.Context, tasks []roadmap.Task) (Result, error) {
	var res Result

	if len(tasks) == 0 {
		return res, &ConfigurationError{Reason: "no tasks found"}
	}

	if _, err := p.runner.Run(ghBinary, "--version"); err != nil {
		return res, &ToolUnavailableError{Err: err}
	}

	if p.repo == "" && !p.dryRun {
		return res, &ConfigurationError{Reason: "no target repository: pass --repo or set GH_REPO"}
	}

	base := []string{"issue", "create"}
	if p.repo != "" {
		base = append(base, "--repo", p.repo)
	}

	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		args := append(append([]string{}, base...),
			"--title", t.Title,
			"--body", t.Body(),
			"--label", strings.Join(t.Labels(), ","),
		)

		if p.dryRun {
			fmt.Fprintf(p.out, "DRY: %s %s\n", ghBinary, strings.Join(args, " "))
			res.Planned++
			continue
		}

		output, err := p.runner.Run(ghBinary, args...)
		if err != nil {
			res.Failed++
			perr := &TaskPublishError{Title: t.Title, Output: strings.TrimSpace(string(output)), Err: err}
			p.logger.Error("create issue failed", "title", perr.Title, "err", perr.Err, "output", perr.Output)
			continue
		}

		res.Created++
		fmt.Fprintf(p.out, "Created issue: %s\n", t.Title)
	}

	return res, nil
}
