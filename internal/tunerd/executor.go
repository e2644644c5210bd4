package tunerd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	tunerv1 "github.com/icemelon9/tensortune/gen/go/tuner/v1"
	"github.com/icemelon9/tensortune/internal/driver"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/logger"
)

// JobExecutor manages asynchronous job execution and per-job cancellation.
type JobExecutor struct {
	store *JobStore

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	done    map[string]chan struct{}
}

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrJobTerminal  = errors.New("job is terminal")
	ErrJobIDMissing = errors.New("job_id is required")
)

func NewJobExecutor(store *JobStore) *JobExecutor {
	return &JobExecutor{
		store:   store,
		cancels: make(map[string]context.CancelFunc),
		done:    make(map[string]chan struct{}),
	}
}

// Start begins executing a job asynchronously.
// Returns the updated job state (RUNNING) or an error.
func (e *JobExecutor) Start(jobID string) (*JobRecord, error) {
	if jobID == "" {
		return nil, ErrJobIDMissing
	}

	rec, ok := e.store.Get(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	switch rec.Job.Status {
	case tunerv1.JobStatus_JOB_STATUS_RUNNING:
		return rec, nil
	case tunerv1.JobStatus_JOB_STATUS_COMPLETED,
		tunerv1.JobStatus_JOB_STATUS_FAILED,
		tunerv1.JobStatus_JOB_STATUS_CANCELLED:
		return nil, fmt.Errorf("%w: %s", ErrJobTerminal, jobID)
	}

	updated, err := e.store.SetStatus(jobID, tunerv1.JobStatus_JOB_STATUS_RUNNING, "")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	e.mu.Lock()
	if old, exists := e.cancels[jobID]; exists {
		old()
	}
	e.cancels[jobID] = cancel
	e.done[jobID] = done
	e.mu.Unlock()

	go e.runJob(ctx, jobID, done)
	return updated, nil
}

// Stop requests cancellation for a running job and marks it cancelled.
func (e *JobExecutor) Stop(jobID string) (*JobRecord, error) {
	if jobID == "" {
		return nil, ErrJobIDMissing
	}
	rec, ok := e.store.Get(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	switch rec.Job.Status {
	case tunerv1.JobStatus_JOB_STATUS_CANCELLED:
		return rec, nil
	case tunerv1.JobStatus_JOB_STATUS_COMPLETED,
		tunerv1.JobStatus_JOB_STATUS_FAILED:
		return nil, fmt.Errorf("%w: %s", ErrJobTerminal, jobID)
	}

	e.mu.Lock()
	cancel, ok := e.cancels[jobID]
	e.mu.Unlock()

	if ok {
		cancel()
	}

	updated, err := e.store.SetStatus(jobID, tunerv1.JobStatus_JOB_STATUS_CANCELLED, "")
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Wait blocks until the job's goroutine has finished, or returns
// immediately when the job never ran.
func (e *JobExecutor) Wait(jobID string) {
	e.mu.Lock()
	done, ok := e.done[jobID]
	e.mu.Unlock()
	if ok {
		<-done
	}
}

func (e *JobExecutor) cleanup(jobID string) {
	e.mu.Lock()
	if cancel, ok := e.cancels[jobID]; ok {
		cancel()
		delete(e.cancels, jobID)
	}
	e.mu.Unlock()
}

// taskFromInput parses the job's task YAML and applies input overrides.
func taskFromInput(input *tunerv1.JobInput) (*config.Task, error) {
	task, err := config.ParseTaskYAMLString(input.TaskYaml)
	if err != nil {
		return nil, err
	}
	if input.Trials > 0 {
		task.Tuning.Trials = int(input.Trials)
	}
	if input.Tuner != "" {
		task.Tuning.Tuner = input.Tuner
	}
	if input.Seed != 0 {
		task.Tuning.Seed = input.Seed
	}
	return task, nil
}

func (e *JobExecutor) runJob(ctx context.Context, jobID string, done chan struct{}) {
	defer close(done)
	defer e.cleanup(jobID)

	rec, ok := e.store.Get(jobID)
	if !ok {
		logger.Error("job not found", "job_id", jobID)
		return
	}
	input := rec.Job.GetInput()
	if input == nil {
		e.fail(jobID, "job has no input")
		return
	}

	task, err := taskFromInput(input)
	if err != nil {
		e.fail(jobID, fmt.Sprintf("invalid task: %v", err))
		return
	}

	var w *record.Writer
	if input.LogPath != "" {
		w, err = record.NewWriter(input.LogPath)
		if err != nil {
			e.fail(jobID, fmt.Sprintf("open log: %v", err))
			return
		}
		defer w.Close()
	}

	d, err := driver.New(task, w, driver.WithProgress(func(p driver.Progress) {
		if err := e.store.SetProgress(jobID, progressProto(p)); err != nil {
			logger.Error("failed to record progress", "job_id", jobID, "error", err)
		}
	}))
	if err != nil {
		e.fail(jobID, fmt.Sprintf("assemble driver: %v", err))
		return
	}

	// Resume from an existing log so restarted jobs do not repeat work.
	if input.LogPath != "" {
		if prior, err := record.ReadLog(input.LogPath); err == nil && len(prior) > 0 {
			d.Warmup(prior)
			logger.Info("resumed from log", "job_id", jobID, "prior_trials", len(prior))
		}
	}

	res, err := d.Run(ctx)

	if ctx.Err() != nil {
		// Stop already marked the job cancelled.
		trials := 0
		if res != nil {
			trials = res.TotalTrials
		}
		logger.Info("job cancelled", "job_id", jobID, "trials", trials)
		return
	}
	if err != nil {
		e.fail(jobID, fmt.Sprintf("tuning failed: %v", err))
		return
	}

	if setErr := e.store.SetProgress(jobID, &tunerv1.JobProgress{
		TrialsDone:     int32(res.TotalTrials),
		TrialsFailed:   int32(res.FailedTrials),
		BestCostMs:     res.BestCostMs,
		BestConfigJson: configJSON(res.BestConfig.Values()),
	}); setErr != nil {
		logger.Error("failed to record final progress", "job_id", jobID, "error", setErr)
	}
	if setErr := e.store.SetConvergence(jobID, res.Converged, res.ConvergenceReason); setErr != nil {
		logger.Error("failed to record convergence", "job_id", jobID, "error", setErr)
	}
	if _, setErr := e.store.SetStatus(jobID, tunerv1.JobStatus_JOB_STATUS_COMPLETED, ""); setErr != nil {
		logger.Error("failed to set completed status", "job_id", jobID, "error", setErr)
	}
}

func (e *JobExecutor) fail(jobID, msg string) {
	logger.Error("job failed", "job_id", jobID, "error", msg)
	if _, err := e.store.SetStatus(jobID, tunerv1.JobStatus_JOB_STATUS_FAILED, msg); err != nil {
		logger.Error("failed to set failed status", "job_id", jobID, "error", err)
	}
}

func progressProto(p driver.Progress) *tunerv1.JobProgress {
	return &tunerv1.JobProgress{
		TrialsDone:     int32(p.TrialsDone),
		TrialsFailed:   int32(p.TrialsFailed),
		BestCostMs:     p.BestCostMs,
		BestConfigJson: configJSON(p.BestConfig),
	}
}

func configJSON(values map[string]int) string {
	if len(values) == 0 {
		return ""
	}
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}
