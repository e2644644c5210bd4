package tunerd

import (
	"context"
	"errors"
	"io/fs"

	tunerv1 "github.com/icemelon9/tensortune/gen/go/tuner/v1"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TunerGRPCServer implements the gRPC TunerServiceServer using a JobStore backend.
type TunerGRPCServer struct {
	tunerv1.UnimplementedTunerServiceServer
	store    *JobStore
	Executor *JobExecutor
}

// NewTunerGRPCServer creates a new TunerGRPCServer with the provided JobStore and JobExecutor.
func NewTunerGRPCServer(store *JobStore, executor *JobExecutor) *TunerGRPCServer {
	return &TunerGRPCServer{
		store:    store,
		Executor: executor,
	}
}

func (s *TunerGRPCServer) CreateJob(ctx context.Context, req *tunerv1.CreateJobRequest) (*tunerv1.CreateJobResponse, error) {
	if req == nil || req.Input == nil {
		return nil, status.Error(codes.InvalidArgument, "input is required")
	}
	if req.Input.TaskYaml == "" {
		return nil, status.Error(codes.InvalidArgument, "task_yaml is required")
	}
	// Reject malformed tasks at creation instead of at start.
	if _, err := taskFromInput(req.Input); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	rec, err := s.store.Create(req.JobId, req.Input)
	if err != nil {
		return nil, status.Error(codes.AlreadyExists, err.Error())
	}

	logger.Info("job created", "job_id", rec.Job.Id)
	return &tunerv1.CreateJobResponse{Job: rec.Job}, nil
}

func (s *TunerGRPCServer) StartJob(ctx context.Context, req *tunerv1.StartJobRequest) (*tunerv1.StartJobResponse, error) {
	if req == nil || req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	updated, err := s.Executor.Start(req.JobId)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrJobTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	logger.Info("job started (executor)", "job_id", req.JobId)
	return &tunerv1.StartJobResponse{Job: updated.Job}, nil
}

func (s *TunerGRPCServer) StopJob(ctx context.Context, req *tunerv1.StopJobRequest) (*tunerv1.StopJobResponse, error) {
	if req == nil || req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	updated, err := s.Executor.Stop(req.JobId)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrJobTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		if errors.Is(err, ErrJobIDMissing) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	logger.Info("job cancelled", "job_id", req.JobId)
	return &tunerv1.StopJobResponse{Job: updated.Job}, nil
}

func (s *TunerGRPCServer) GetJob(ctx context.Context, req *tunerv1.GetJobRequest) (*tunerv1.GetJobResponse, error) {
	if req == nil || req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	rec, ok := s.store.Get(req.JobId)
	if !ok {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	return &tunerv1.GetJobResponse{Job: rec.Job}, nil
}

func (s *TunerGRPCServer) ListJobs(ctx context.Context, req *tunerv1.ListJobsRequest) (*tunerv1.ListJobsResponse, error) {
	recs := s.store.List(0)
	jobs := make([]*tunerv1.Job, 0, len(recs))
	for _, rec := range recs {
		jobs = append(jobs, rec.Job)
	}
	return &tunerv1.ListJobsResponse{Jobs: jobs}, nil
}

// GetBest returns the best configuration found so far: from the trial
// log when the job has one, otherwise from the in-memory progress.
func (s *TunerGRPCServer) GetBest(ctx context.Context, req *tunerv1.GetBestRequest) (*tunerv1.GetBestResponse, error) {
	if req == nil || req.JobId == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	rec, ok := s.store.Get(req.JobId)
	if !ok {
		return nil, status.Error(codes.NotFound, "job not found")
	}

	if logPath := rec.Job.GetInput().GetLogPath(); logPath != "" {
		best, err := record.BestFromLog(logPath)
		if err != nil {
			// A log that does not exist yet means no trial has run.
			if errors.Is(err, record.ErrNoValidTrial) || errors.Is(err, fs.ErrNotExist) {
				return nil, status.Error(codes.FailedPrecondition, "no measured trial succeeded")
			}
			return nil, status.Error(codes.Internal, err.Error())
		}
		trials, _ := record.ReadLog(logPath)
		return &tunerv1.GetBestResponse{
			ConfigJson: configJSON(best.Config),
			CostMs:     best.CostMs,
			Trials:     int32(len(trials)),
		}, nil
	}

	p := rec.Job.GetProgress()
	if p == nil || p.BestConfigJson == "" {
		return nil, status.Error(codes.FailedPrecondition, "no measured trial succeeded")
	}
	return &tunerv1.GetBestResponse{
		ConfigJson: p.BestConfigJson,
		CostMs:     p.BestCostMs,
		Trials:     p.TrialsDone,
	}, nil
}
