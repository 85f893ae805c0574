// Package orchestrate fans a set of header-pair comparison jobs out across
// a worker pool and collects their results (O1). The pool shape is the
// teacher's own goroutine/channel pattern (processor.FileProcessor),
// collapsed from two phases to one: ARMOR's core pipeline (parse both
// revisions, build both contexts, diff, describe) is independent per header
// pair, so there is nothing here that needs a global-context barrier
// between phases the way cross-file symbol resolution did.
package orchestrate

import (
	"context"
	"fmt"
	"sync"

	"github.com/armor-abi/armor/internal/apicontext"
	"github.com/armor-abi/armor/internal/armorlog"
	"github.com/armor-abi/armor/internal/describe"
	"github.com/armor-abi/armor/internal/diff"
	"github.com/armor-abi/armor/internal/frontend"
	"github.com/armor-abi/armor/internal/treebuilder"
)

// HeaderJob names one base/head header pair to compare and the label the
// resulting changes should be grouped under in a report.
type HeaderJob struct {
	Name           string
	BaseHeaderPath string
	HeadHeaderPath string
}

// Options configures a Run.
type Options struct {
	Workers  int
	Excluded []string
	Frontend frontend.Options
	Log      *armorlog.Logger
}

// Result is one job's outcome. Err is non-nil if either revision failed to
// parse; Changes and Records are nil in that case. Records is the raw
// tagged diff tree Changes was described from, kept around so --dump-ast-diff
// can write it out without re-running the diff.
type Result struct {
	Job     HeaderJob
	Changes []describe.Change
	Records []*diff.Record
	Err     error
}

// Run processes every job, using at most opts.Workers goroutines
// concurrently (4 when opts.Workers is not positive), and returns one
// Result per job in the same order jobs was given.
func Run(ctx context.Context, jobs []HeaderJob, opts Options) []Result {
	if len(jobs) == 0 {
		return nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	type indexedJob struct {
		index int
		job   HeaderJob
	}
	jobsChan := make(chan indexedJob, len(jobs))
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ij := range jobsChan {
				select {
				case <-ctx.Done():
					results[ij.index] = Result{Job: ij.job, Err: ctx.Err()}
				default:
					results[ij.index] = process(ij.job, opts)
				}
			}
		}()
	}

	for i, job := range jobs {
		jobsChan <- indexedJob{index: i, job: job}
	}
	close(jobsChan)
	wg.Wait()

	return results
}

func process(job HeaderJob, opts Options) Result {
	baseTU, err := frontend.Parse(job.BaseHeaderPath, opts.Frontend)
	if err != nil {
		return Result{Job: job, Err: fmt.Errorf("orchestrate: base %s: %w", job.Name, err)}
	}
	defer baseTU.Close()

	headTU, err := frontend.Parse(job.HeadHeaderPath, opts.Frontend)
	if err != nil {
		return Result{Job: job, Err: fmt.Errorf("orchestrate: head %s: %w", job.Name, err)}
	}
	defer headTU.Close()

	log := opts.Log
	baseCtx := treebuilder.Build(baseTU, opts.Excluded, log)
	headCtx := treebuilder.Build(headTU, opts.Excluded, log)

	if contextsEmpty(baseCtx, headCtx) && log != nil {
		log.Log("no declarations recognised in either revision", "name", job.Name)
	}

	records := diff.Contexts(baseCtx, headCtx)
	changes := describe.Records(job.Name, records)

	if log != nil {
		log.Info("compared header", "name", job.Name, "changes", len(changes))
	}

	return Result{Job: job, Changes: changes, Records: records}
}

// contextsEmpty reports whether both revisions produced no declarations at
// all, a case worth a distinct warning since it usually means the front end
// silently failed to recognise any top-level declaration rather than the
// header genuinely being empty.
func contextsEmpty(base, head *apicontext.Context) bool {
	return base.Empty() && head.Empty()
}
