package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/rahadianp/pesanin/gen/orders/v1"
	"github.com/rahadianp/pesanin/internal/async"
)

func (s *OrderService) IngestFile(ctx context.Context, req *ordersv1.IngestFileRequest) (*ordersv1.IngestFileResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	if s.queue == nil {
		return nil, status.Error(codes.Unavailable, "background queue is not enabled")
	}

	msgs, err := s.reader.ReadPath(ctx, path)
	if err != nil {
		s.logger.Warn("ingest read failed", zap.String("path", path), zap.Error(err))
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}

	queued := uint32(0)
	for _, m := range msgs {
		if err := s.queue.Enqueue(ctx, async.Job{
			RawText:     m.Text,
			Source:      m.SourcePath,
			SubmittedAt: time.Now().UTC(),
			TraceID:     uuid.NewString(),
		}); err != nil {
			s.logger.Warn("enqueue failed", zap.String("path", m.SourcePath), zap.Error(err))
			continue
		}
		queued++
	}

	s.logger.Info("file ingested",
		zap.String("path", path),
		zap.Int("messages", len(msgs)),
		zap.Uint32("queued", queued),
	)
	return &ordersv1.IngestFileResponse{
		Messages: uint32(len(msgs)),
		Queued:   queued,
	}, nil
}
