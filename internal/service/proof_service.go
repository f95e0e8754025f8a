package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
)

var (
	// ErrProofRequired indicates the multipart field was missing.
	ErrProofRequired = errors.New("proof file is required")
	// ErrProofTooLarge indicates the proof exceeded the configured limit.
	ErrProofTooLarge = errors.New("proof file exceeds maximum allowed size")
	// ErrProofTypeNotAllowed indicates the detected MIME type is not permitted.
	ErrProofTypeNotAllowed = errors.New("proof file type not allowed")
)

// FileStorage abstracts where proof artifacts are kept. The workflow only
// ever sees the opaque reference this returns.
type FileStorage interface {
	Upload(ctx context.Context, name string, reader io.Reader) (string, error)
}

// ProofService validates and stores proof documents, producing the reference
// submissions and resubmissions carry.
type ProofService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (dto.ProofUploadResponse, error)
}

type proofService struct {
	storage FileStorage
	logger  zerolog.Logger
	maxSize int64
	tracer  trace.Tracer
}

// NewProofService constructs a ProofService instance.
func NewProofService(storage FileStorage, maxSizeMB int, logger zerolog.Logger) ProofService {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &proofService{
		storage: storage,
		logger:  logger.With().Str("component", "proof_service").Logger(),
		maxSize: int64(maxSizeMB) * 1024 * 1024,
		tracer:  otel.Tracer("github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service/proof"),
	}
}

func (s *proofService) Upload(ctx context.Context, file *multipart.FileHeader) (dto.ProofUploadResponse, error) {
	ctx, span := s.tracer.Start(ctx, "proof.store")
	defer span.End()

	if file == nil {
		span.RecordError(ErrProofRequired)
		span.SetStatus(codes.Error, "missing file")
		return dto.ProofUploadResponse{}, ErrProofRequired
	}

	span.SetAttributes(
		attribute.String("proof.original_name", strings.TrimSpace(file.Filename)),
		attribute.Int64("proof.request_size", file.Size),
	)

	if file.Size > s.maxSize {
		span.RecordError(ErrProofTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return dto.ProofUploadResponse{}, ErrProofTooLarge
	}

	handle, err := file.Open()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return dto.ProofUploadResponse{}, err
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, s.maxSize+1)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return dto.ProofUploadResponse{}, err
	}
	if int64(buf.Len()) > s.maxSize {
		span.RecordError(ErrProofTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return dto.ProofUploadResponse{}, ErrProofTooLarge
	}

	mime := mimetype.Detect(buf.Bytes())
	span.SetAttributes(attribute.String("proof.detected_mime", mime.String()))
	if !allowedProofType(mime.String()) {
		span.RecordError(ErrProofTypeNotAllowed)
		span.SetStatus(codes.Error, "type not allowed")
		return dto.ProofUploadResponse{}, ErrProofTypeNotAllowed
	}

	ref, err := s.storage.Upload(ctx, sanitizeProofName(file.Filename), bytes.NewReader(buf.Bytes()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		return dto.ProofUploadResponse{}, err
	}

	span.SetStatus(codes.Ok, "stored")
	s.logger.Info().Str("proof_ref", ref).Int("size_bytes", buf.Len()).Msg("proof stored")

	return dto.ProofUploadResponse{
		ProofRef:  ref,
		MimeType:  mime.String(),
		SizeBytes: int64(buf.Len()),
	}, nil
}

func allowedProofType(mime string) bool {
	lower := strings.ToLower(strings.TrimSpace(mime))
	if strings.HasPrefix(lower, "image/") {
		return true
	}
	switch lower {
	case "application/pdf", "application/zip", "application/x-zip-compressed":
		return true
	default:
		return false
	}
}

func sanitizeProofName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ToLower(base)
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, base)
	base = strings.Trim(base, "-")
	if base == "" {
		base = "proof"
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = ".bin"
	}
	return base + ext
}
