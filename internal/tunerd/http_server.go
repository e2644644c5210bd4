package tunerd

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	tunerv1 "github.com/icemelon9/tensortune/gen/go/tuner/v1"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/pkg/logger"
)

type HTTPServer struct {
	mux      *http.ServeMux
	store    *JobStore
	Executor *JobExecutor
}

func NewHTTPServer(store *JobStore, executor *JobExecutor) *HTTPServer {
	s := &HTTPServer{
		mux:      http.NewServeMux(),
		store:    store,
		Executor: executor,
	}

	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/v1/jobs", s.handleJobs)
	s.mux.HandleFunc("/v1/jobs/", s.handleJobByID)

	return s
}

func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleJobs handles /v1/jobs
func (s *HTTPServer) handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateJob(w, r)
	case http.MethodGet:
		s.handleListJobs(w, r)
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleJobByID handles /v1/jobs/{id} and related endpoints
func (s *HTTPServer) handleJobByID(w http.ResponseWriter, r *http.Request) {
	// Parse path: /v1/jobs/{id}, /v1/jobs/{id}:start, /v1/jobs/{id}:stop,
	// /v1/jobs/{id}/best or /v1/jobs/{id}/log
	path := strings.TrimPrefix(r.URL.Path, "/v1/jobs/")
	if path == "" {
		s.writeError(w, http.StatusBadRequest, "job ID is required")
		return
	}

	if strings.HasSuffix(path, ":start") {
		jobID := strings.TrimSuffix(path, ":start")
		if r.Method == http.MethodPost {
			s.handleStartJob(w, r, jobID)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, ":stop") {
		jobID := strings.TrimSuffix(path, ":stop")
		if r.Method == http.MethodPost {
			s.handleStopJob(w, r, jobID)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, "/best") {
		jobID := strings.TrimSuffix(path, "/best")
		if r.Method == http.MethodGet {
			s.handleGetBest(w, r, jobID)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if strings.HasSuffix(path, "/log") {
		jobID := strings.TrimSuffix(path, "/log")
		if r.Method == http.MethodGet {
			s.handleGetLog(w, r, jobID)
		} else {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	if r.Method == http.MethodGet {
		s.handleGetJob(w, r, path)
	} else {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCreateJob handles POST /v1/jobs
func (s *HTTPServer) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID string            `json:"job_id,omitempty"`
		Input *tunerv1.JobInput `json:"input"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Input == nil || req.Input.TaskYaml == "" {
		s.writeError(w, http.StatusBadRequest, "input with task_yaml is required")
		return
	}
	if _, err := taskFromInput(req.Input); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid task: "+err.Error())
		return
	}

	rec, err := s.store.Create(req.JobID, req.Input)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "already exists"):
			s.writeError(w, http.StatusConflict, err.Error())
		case strings.Contains(err.Error(), "cannot contain"):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	logger.Info("job created (HTTP)", "job_id", rec.Job.Id)
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"job": convertJobToJSON(rec.Job),
	})
}

// handleListJobs handles GET /v1/jobs with pagination and filtering
func (s *HTTPServer) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
			if limit > 1000 {
				limit = 1000
			}
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	statusFilter := tunerv1.JobStatus_JOB_STATUS_UNSPECIFIED
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		statusFilter = parseJobStatus(statusStr)
	}

	recs := s.store.ListFiltered(limit, offset, statusFilter)

	jobsJSON := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		jobsJSON = append(jobsJSON, convertJobToJSON(rec.Job))
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"jobs": jobsJSON,
		"pagination": map[string]any{
			"limit":  limit,
			"offset": offset,
			"count":  len(recs),
		},
	})
}

// parseJobStatus parses a status string to JobStatus enum
func parseJobStatus(statusStr string) tunerv1.JobStatus {
	switch strings.ToUpper(statusStr) {
	case "PENDING":
		return tunerv1.JobStatus_JOB_STATUS_PENDING
	case "RUNNING":
		return tunerv1.JobStatus_JOB_STATUS_RUNNING
	case "COMPLETED":
		return tunerv1.JobStatus_JOB_STATUS_COMPLETED
	case "FAILED":
		return tunerv1.JobStatus_JOB_STATUS_FAILED
	case "CANCELLED":
		return tunerv1.JobStatus_JOB_STATUS_CANCELLED
	default:
		return tunerv1.JobStatus_JOB_STATUS_UNSPECIFIED
	}
}

// handleGetJob handles GET /v1/jobs/{id}
func (s *HTTPServer) handleGetJob(w http.ResponseWriter, _ *http.Request, jobID string) {
	rec, ok := s.store.Get(jobID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"job": convertJobToJSON(rec.Job),
	})
}

// handleStartJob handles POST /v1/jobs/{id}:start
func (s *HTTPServer) handleStartJob(w http.ResponseWriter, _ *http.Request, jobID string) {
	updated, err := s.Executor.Start(jobID)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			s.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrJobTerminal):
			s.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrJobIDMissing):
			s.writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	logger.Info("job started (HTTP)", "job_id", jobID)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"job": convertJobToJSON(updated.Job),
	})
}

// handleStopJob handles POST /v1/jobs/{id}:stop
func (s *HTTPServer) handleStopJob(w http.ResponseWriter, _ *http.Request, jobID string) {
	updated, err := s.Executor.Stop(jobID)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			s.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrJobTerminal):
			s.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrJobIDMissing):
			s.writeError(w, http.StatusBadRequest, err.Error())
		case strings.Contains(err.Error(), "not found"):
			s.writeError(w, http.StatusNotFound, err.Error())
		default:
			s.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	logger.Info("job stopped (HTTP)", "job_id", jobID)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"job": convertJobToJSON(updated.Job),
	})
}

// handleGetBest handles GET /v1/jobs/{id}/best
func (s *HTTPServer) handleGetBest(w http.ResponseWriter, _ *http.Request, jobID string) {
	rec, ok := s.store.Get(jobID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	if logPath := rec.Job.GetInput().GetLogPath(); logPath != "" {
		best, err := record.BestFromLog(logPath)
		if err != nil {
			if errors.Is(err, record.ErrNoValidTrial) || errors.Is(err, fs.ErrNotExist) {
				s.writeError(w, http.StatusConflict, "no measured trial succeeded")
			} else {
				s.writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"config":  best.Config,
			"cost_ms": best.CostMs,
		})
		return
	}

	p := rec.Job.GetProgress()
	if p == nil || p.BestConfigJson == "" {
		s.writeError(w, http.StatusConflict, "no measured trial succeeded")
		return
	}
	var cfg map[string]int
	if err := json.Unmarshal([]byte(p.BestConfigJson), &cfg); err != nil {
		s.writeError(w, http.StatusInternalServerError, "corrupt best config")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"config":  cfg,
		"cost_ms": p.BestCostMs,
	})
}

// handleGetLog handles GET /v1/jobs/{id}/log
func (s *HTTPServer) handleGetLog(w http.ResponseWriter, _ *http.Request, jobID string) {
	rec, ok := s.store.Get(jobID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	logPath := rec.Job.GetInput().GetLogPath()
	if logPath == "" {
		s.writeError(w, http.StatusConflict, "job has no trial log")
		return
	}

	trials, err := record.ReadLog(logPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if trials == nil {
		trials = []record.Trial{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"trials": trials,
		"count":  len(trials),
	})
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{
		"error": message,
	})
}

func convertJobToJSON(job *tunerv1.Job) map[string]any {
	out := map[string]any{
		"id":                 job.Id,
		"status":             job.Status.String(),
		"created_at_unix_ms": job.CreatedAtUnixMs,
		"started_at_unix_ms": job.StartedAtUnixMs,
		"ended_at_unix_ms":   job.EndedAtUnixMs,
		"error":              job.Error,
	}
	if p := job.GetProgress(); p != nil {
		out["progress"] = map[string]any{
			"trials_done":      p.TrialsDone,
			"trials_failed":    p.TrialsFailed,
			"best_cost_ms":     p.BestCostMs,
			"best_config_json": p.BestConfigJson,
		}
	}
	if job.ConvergenceReason != "" {
		out["converged"] = job.Converged
		out["convergence_reason"] = job.ConvergenceReason
	}
	return out
}
