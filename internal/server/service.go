package server

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jharrell-gis/geoloader/constants"
	geoloaderv1 "github.com/jharrell-gis/geoloader/gen/proto/geoloader/v1"
	"github.com/jharrell-gis/geoloader/internal/async"
	"github.com/jharrell-gis/geoloader/internal/common"
	"github.com/jharrell-gis/geoloader/internal/export"
	"github.com/jharrell-gis/geoloader/internal/jobs"
	"github.com/jharrell-gis/geoloader/internal/repository"
	"github.com/jharrell-gis/geoloader/internal/utils"
)

type UploadService struct {
	geoloaderv1.UnimplementedUploadServiceServer
	factory  *jobs.Factory
	queue    async.Queue
	jobsRepo repository.JobRepository
	exporter *export.Service
	logger   *zap.Logger
}

func NewUploadService(factory *jobs.Factory, queue async.Queue, jobsRepo repository.JobRepository, exporter *export.Service, logger *zap.Logger) *UploadService {
	return &UploadService{
		factory:  factory,
		queue:    queue,
		jobsRepo: jobsRepo,
		exporter: exporter,
		logger:   logger,
	}
}

// SubmitUpload implements geoloaderv1.UploadServiceServer
func (s *UploadService) SubmitUpload(ctx context.Context, req *geoloaderv1.SubmitUploadRequest) (*geoloaderv1.SubmitUploadResponse, error) {
	v := common.NewValidator()
	v.Field("path", req.GetPath(), common.Required)
	v.Field("mimetype", req.GetMimetype(), common.Required, common.MimeType)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Warn("submit upload rejected", zap.String("path", req.GetPath()), zap.Error(err))
		return nil, err
	}

	ctx = common.WithRequestID(ctx, uuid.New().String())

	if req.GetAsync() {
		// Queue workers own their file handles; they must outlive this RPC.
		return s.submitAsync(ctx, req)
	}

	data, err := os.Open(req.GetPath())
	if err != nil {
		s.logger.Warn("cannot open upload payload", zap.String("path", req.GetPath()), zap.Error(err))
		return nil, status.Errorf(codes.InvalidArgument, "open payload: %v", err)
	}
	defer func() {
		if cerr := data.Close(); cerr != nil {
			s.logger.Warn("closing payload failed", zap.Error(cerr))
		}
	}()

	upload := jobs.Upload{
		Filename: req.GetPath(),
		Mimetype: strings.TrimSpace(req.GetMimetype()),
		Data:     data,
	}
	if mp := strings.TrimSpace(req.GetMetadataPath()); mp != "" {
		meta, err := os.Open(mp)
		if err != nil {
			s.logger.Warn("cannot open metadata document", zap.String("path", mp), zap.Error(err))
			return nil, status.Errorf(codes.InvalidArgument, "open metadata: %v", err)
		}
		defer func() {
			if cerr := meta.Close(); cerr != nil {
				s.logger.Warn("closing metadata failed", zap.Error(cerr))
			}
		}()
		upload.Metadata = meta
	}

	runner, err := s.factory.CreateJob(ctx, upload)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFormat) {
			return nil, status.Errorf(codes.InvalidArgument, "unsupported media type %q", req.GetMimetype())
		}
		s.logger.Warn("dispatch failed", zap.String("path", req.GetPath()), zap.Error(err))
		return nil, status.Errorf(codes.Internal, "dispatch: %v", err)
	}
	job := runner.Job()

	resp := &geoloaderv1.SubmitUploadResponse{JobId: job.ID.String()}
	if err := runner.Run(ctx); err != nil {
		s.logger.Warn("upload job failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		resp.Error = err.Error()
	}
	if fresh, gerr := s.jobsRepo.GetByID(ctx, job.ID); gerr == nil {
		resp.Status = fresh.Status
	} else {
		resp.Status = job.Status
	}
	return resp, nil
}

func (s *UploadService) submitAsync(ctx context.Context, req *geoloaderv1.SubmitUploadRequest) (*geoloaderv1.SubmitUploadResponse, error) {
	data, err := os.Open(req.GetPath())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "open payload: %v", err)
	}
	upload := jobs.Upload{
		Filename: req.GetPath(),
		Mimetype: strings.TrimSpace(req.GetMimetype()),
		Data:     data,
	}
	if mp := strings.TrimSpace(req.GetMetadataPath()); mp != "" {
		meta, err := os.Open(mp)
		if err != nil {
			_ = data.Close()
			return nil, status.Errorf(codes.InvalidArgument, "open metadata: %v", err)
		}
		upload.Metadata = meta
	}

	runner, err := s.factory.CreateJob(ctx, upload)
	if err != nil {
		_ = data.Close()
		if errors.Is(err, common.ErrUnsupportedFormat) {
			return nil, status.Errorf(codes.InvalidArgument, "unsupported media type %q", req.GetMimetype())
		}
		return nil, status.Errorf(codes.Internal, "dispatch: %v", err)
	}
	job := runner.Job()

	closers := []io.Closer{data}
	if upload.Metadata != nil {
		if mc, ok := upload.Metadata.(io.Closer); ok {
			closers = append(closers, mc)
		}
	}
	queued := &closeAfterRun{Runner: runner, closers: closers}

	if err := s.queue.Enqueue(ctx, async.Task{JobID: job.ID, Runner: queued, SubmittedAt: time.Now()}); err != nil {
		s.logger.Warn("enqueue failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "enqueue failed")
	}
	return &geoloaderv1.SubmitUploadResponse{
		JobId:  job.ID.String(),
		Status: string(constants.JobStatusPending),
	}, nil
}

// closeAfterRun releases the file handles a queued run owns once it finishes.
type closeAfterRun struct {
	jobs.Runner
	closers []io.Closer
}

func (c *closeAfterRun) Run(ctx context.Context) error {
	defer func() {
		for _, cl := range c.closers {
			_ = cl.Close()
		}
	}()
	return c.Runner.Run(ctx)
}

func (s *UploadService) GetJob(ctx context.Context, req *geoloaderv1.GetJobRequest) (*geoloaderv1.GetJobResponse, error) {
	v := common.NewValidator()
	v.Field("job_id", req.GetJobId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	jobID, _ := uuid.Parse(req.GetJobId())
	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		s.logger.Warn("get job failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		return nil, status.Error(codes.NotFound, "job not found")
	}
	return &geoloaderv1.GetJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *UploadService) ListJobs(ctx context.Context, req *geoloaderv1.ListJobsRequest) (*geoloaderv1.ListJobsResponse, error) {
	statusFilter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}

	rows, err := s.jobsRepo.List(ctx, statusFilter, nil, nil)
	if err != nil {
		s.logger.Warn("list jobs failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list jobs failed")
	}
	out := make([]*geoloaderv1.Job, 0, len(rows))
	for _, j := range rows {
		out = append(out, utils.ToPBJob(j))
	}
	return &geoloaderv1.ListJobsResponse{Jobs: out}, nil
}

func (s *UploadService) ExportJobs(ctx context.Context, req *geoloaderv1.ExportJobsRequest) (*geoloaderv1.ExportJobsResponse, error) {
	statusFilter, err := parseStatusFilter(req.GetStatus())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if d := strings.TrimSpace(req.GetFromDate()); d != "" {
		t, err := utils.ParseYMD(d)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid from_date %q", d)
		}
		fromPtr = &t
	}
	if d := strings.TrimSpace(req.GetToDate()); d != "" {
		t, err := utils.ParseYMD(d)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid to_date %q", d)
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportJobsXLSX(ctx, statusFilter, fromPtr, toPtr)
	if err != nil {
		s.logger.Warn("export jobs failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "export jobs failed")
	}
	return &geoloaderv1.ExportJobsResponse{Xlsx: xlsx}, nil
}

func parseStatusFilter(raw string) (*constants.JobStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, allowed := range constants.JobStatuses {
		if raw == allowed {
			st := constants.JobStatus(raw)
			return &st, nil
		}
	}
	return nil, status.Errorf(codes.InvalidArgument, "invalid status %q", raw)
}
