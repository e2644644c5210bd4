//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	tunerv1 "github.com/icemelon9/tensortune/gen/go/tuner/v1"
	"github.com/icemelon9/tensortune/internal/tunerd"
)

const testTaskYAML = `
name: matmul-it
kernel: matmul
shape:
  m: 16
  k: 16
  n: 16
tuning:
  tuner: random
  trials: 8
  batch_size: 4
  seed: 5
measure:
  repeats: 1
  validate: true
`

func newServer() (*tunerd.HTTPServer, *tunerd.JobStore, *tunerd.JobExecutor) {
	store := tunerd.NewJobStore()
	executor := tunerd.NewJobExecutor(store)
	return tunerd.NewHTTPServer(store, executor), store, executor
}

func postJSON(t *testing.T, srv *tunerd.HTTPServer, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(rr, req)
	return rr, decodeBody(t, rr)
}

func getJSON(t *testing.T, srv *tunerd.HTTPServer, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler().ServeHTTP(rr, req)
	return rr, decodeBody(t, rr)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if len(rr.Body.Bytes()) == 0 {
		return body
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v: %s", err, rr.Body.String())
	}
	return body
}

func TestIntegration_HTTPEndpoints_ListJobs(t *testing.T) {
	srv, store, _ := newServer()

	for i := 0; i < 5; i++ {
		rec, err := store.Create("", &tunerv1.JobInput{TaskYaml: testTaskYAML})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		switch i % 3 {
		case 1:
			store.SetStatus(rec.Job.Id, tunerv1.JobStatus_JOB_STATUS_RUNNING, "")
		case 2:
			store.SetStatus(rec.Job.Id, tunerv1.JobStatus_JOB_STATUS_COMPLETED, "")
		}
	}

	rr, body := getJSON(t, srv, "/v1/jobs")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	jobs, ok := body["jobs"].([]any)
	if !ok || len(jobs) != 5 {
		t.Fatalf("expected 5 jobs, got %v", body["jobs"])
	}
	pagination, ok := body["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination object")
	}
	if pagination["limit"] == nil || pagination["offset"] == nil || pagination["count"] == nil {
		t.Fatalf("expected pagination metadata, got %v", pagination)
	}

	rr, body = getJSON(t, srv, "/v1/jobs?limit=2&offset=1")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if jobs, _ := body["jobs"].([]any); len(jobs) != 2 {
		t.Fatalf("expected 2 jobs with limit=2, got %d", len(jobs))
	}

	rr, body = getJSON(t, srv, "/v1/jobs?status=completed")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	jobs, _ = body["jobs"].([]any)
	if len(jobs) == 0 {
		t.Fatalf("expected at least one completed job")
	}
	for _, jobAny := range jobs {
		job := jobAny.(map[string]any)
		if job["status"].(string) != "JOB_STATUS_COMPLETED" {
			t.Fatalf("expected completed status, got %v", job["status"])
		}
	}
}

func TestIntegration_HTTPEndpoints_FullLifecycle(t *testing.T) {
	srv, store, executor := newServer()
	logPath := filepath.Join(t.TempDir(), "tuning.jsonl")

	rr, body := postJSON(t, srv, "/v1/jobs", map[string]any{
		"input": map[string]any{
			"task_yaml": testTaskYAML,
			"log_path":  logPath,
		},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	job := body["job"].(map[string]any)
	jobID := job["id"].(string)
	if job["status"].(string) != "JOB_STATUS_PENDING" {
		t.Fatalf("expected pending job, got %v", job["status"])
	}

	// Best before any trial ran must conflict, not 500.
	rr, _ = getJSON(t, srv, "/v1/jobs/"+jobID+"/best")
	if rr.Code != http.StatusConflict {
		t.Fatalf("best before run: expected 409, got %d", rr.Code)
	}

	rr, _ = postJSON(t, srv, "/v1/jobs/"+jobID+":start", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("start: expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	executor.Wait(jobID)

	deadline := time.Now().Add(5 * time.Second)
	var status string
	for time.Now().Before(deadline) {
		rec, ok := store.Get(jobID)
		if !ok {
			t.Fatalf("job disappeared")
		}
		status = rec.Job.Status.String()
		if status == "JOB_STATUS_COMPLETED" || status == "JOB_STATUS_FAILED" {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if status != "JOB_STATUS_COMPLETED" {
		t.Fatalf("expected completed job, got %s", status)
	}

	rr, body = getJSON(t, srv, "/v1/jobs/"+jobID)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected status 200, got %d", rr.Code)
	}
	job = body["job"].(map[string]any)
	progress, ok := job["progress"].(map[string]any)
	if !ok {
		t.Fatalf("expected progress in completed job, got %v", job)
	}
	if progress["trials_done"].(float64) != 8 {
		t.Fatalf("expected 8 trials done, got %v", progress["trials_done"])
	}

	rr, body = getJSON(t, srv, "/v1/jobs/"+jobID+"/best")
	if rr.Code != http.StatusOK {
		t.Fatalf("best: expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if _, ok := body["config"].(map[string]any); !ok {
		t.Fatalf("expected best config object, got %v", body)
	}
	if body["cost_ms"].(float64) <= 0 {
		t.Fatalf("expected positive best cost, got %v", body["cost_ms"])
	}

	rr, body = getJSON(t, srv, "/v1/jobs/"+jobID+"/log")
	if rr.Code != http.StatusOK {
		t.Fatalf("log: expected status 200, got %d", rr.Code)
	}
	if body["count"].(float64) != 8 {
		t.Fatalf("expected 8 logged trials, got %v", body["count"])
	}
}

func TestIntegration_HTTPEndpoints_StopJob(t *testing.T) {
	srv, store, executor := newServer()

	// A large budget so the job is still running when we stop it.
	longTask := `
name: matmul-long
kernel: matmul
shape: {m: 64, k: 64, n: 64}
tuning: {tuner: random, trials: 100000, batch_size: 4, seed: 2}
measure: {repeats: 1}
`
	rec, err := store.Create("stop-me", &tunerv1.JobInput{TaskYaml: longTask})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := executor.Start(rec.Job.Id); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	rr, body := postJSON(t, srv, "/v1/jobs/stop-me:stop", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("stop: expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	job := body["job"].(map[string]any)
	if job["status"].(string) != "JOB_STATUS_CANCELLED" {
		t.Fatalf("expected cancelled job, got %v", job["status"])
	}
	executor.Wait(rec.Job.Id)
}
