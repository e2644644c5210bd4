package tunerd

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tunerv1 "github.com/icemelon9/tensortune/gen/go/tuner/v1"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// JobRecord is the store's view of one tuning job.
type JobRecord struct {
	Job *tunerv1.Job
}

// JobStore holds all jobs known to the daemon, keyed by ID.
type JobStore struct {
	mu    sync.RWMutex
	jobs  map[string]*JobRecord
	order []string
}

func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*JobRecord),
	}
}

func nowUnixMs() int64 {
	return time.Now().UTC().UnixMilli()
}

func validJobID(id string) error {
	if strings.ContainsAny(id, " /\\:") {
		return fmt.Errorf("job id cannot contain spaces, slashes, or colons: %q", id)
	}
	return nil
}

func (s *JobStore) Create(jobID string, input *tunerv1.JobInput) (*JobRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if jobID == "" {
		jobID = utils.GenerateJobID()
	}
	if err := validJobID(jobID); err != nil {
		return nil, err
	}
	if _, exists := s.jobs[jobID]; exists {
		return nil, fmt.Errorf("job already exists: %s", jobID)
	}

	rec := &JobRecord{
		Job: &tunerv1.Job{
			Id:              jobID,
			Input:           input,
			Status:          tunerv1.JobStatus_JOB_STATUS_PENDING,
			CreatedAtUnixMs: nowUnixMs(),
		},
	}
	s.jobs[jobID] = rec
	s.order = append(s.order, jobID)
	return rec, nil
}

func (s *JobStore) Get(jobID string) (*JobRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.jobs[jobID]
	return rec, ok
}

// List returns up to limit jobs in creation order.
func (s *JobStore) List(limit int) []*JobRecord {
	return s.ListFiltered(limit, 0, tunerv1.JobStatus_JOB_STATUS_UNSPECIFIED)
}

// ListFiltered returns jobs in creation order, optionally filtered by
// status, skipping offset matches.
func (s *JobStore) ListFiltered(limit, offset int, status tunerv1.JobStatus) []*JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	out := make([]*JobRecord, 0, minInt(limit, len(s.order)))
	skipped := 0
	for _, id := range s.order {
		rec := s.jobs[id]
		if status != tunerv1.JobStatus_JOB_STATUS_UNSPECIFIED && rec.Job.Status != status {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (s *JobStore) SetStatus(jobID string, status tunerv1.JobStatus, errMsg string) (*JobRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	rec.Job.Status = status
	if errMsg != "" {
		rec.Job.Error = errMsg
	}

	switch status {
	case tunerv1.JobStatus_JOB_STATUS_RUNNING:
		if rec.Job.StartedAtUnixMs == 0 {
			rec.Job.StartedAtUnixMs = nowUnixMs()
		}
	case tunerv1.JobStatus_JOB_STATUS_COMPLETED,
		tunerv1.JobStatus_JOB_STATUS_FAILED,
		tunerv1.JobStatus_JOB_STATUS_CANCELLED:
		rec.Job.EndedAtUnixMs = nowUnixMs()
	}

	return rec, nil
}

func (s *JobStore) SetProgress(jobID string, progress *tunerv1.JobProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.jobs[jobID]
	if !ok {
		return fmt.Errorf("job not found: %s", jobID)
	}
	rec.Job.Progress = progress
	return nil
}

func (s *JobStore) SetConvergence(jobID string, converged bool, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.jobs[jobID]
	if !ok {
		return fmt.Errorf("job not found: %s", jobID)
	}
	rec.Job.Converged = converged
	rec.Job.ConvergenceReason = reason
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
