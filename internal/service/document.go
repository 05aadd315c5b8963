package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"logidocs/internal/config"
	"logidocs/internal/logging"
	"logidocs/internal/model"
	"logidocs/internal/repository"
	"logidocs/internal/storage"
)

var tracer = otel.Tracer("logidocs/internal/service")

// UploadInput describes one incoming file for a participant.
type UploadInput struct {
	ParticipantID    string
	Reader           io.Reader
	OriginalFilename string
	ContentType      string
	// Size is the size declared by the client. The stream itself is still capped
	// at the configured maximum while writing.
	Size int64
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload writes the file into the participant folder and saves its record.
	// When the record cannot be saved the written file is removed again.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// ListByParticipant returns the participant's documents, newest first.
	ListByParticipant(ctx context.Context, participantID string) ([]model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Delete removes the file best-effort and then the record.
	Delete(ctx context.Context, id string) (*DeletionResult, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	cfg          config.StorageConfig
	allowed      map[string]struct{}
	store        storage.Store
	docs         repository.DocumentRepository
	participants repository.ParticipantRepository
	metrics      *storage.Metrics
	log          *log.Logger
	newID        func() string
	now          func() time.Time
}

// NewDocumentService constructs a new DocumentService. metrics and logger may be nil.
func NewDocumentService(
	cfg config.StorageConfig,
	store storage.Store,
	docs repository.DocumentRepository,
	participants repository.ParticipantRepository,
	metrics *storage.Metrics,
	logger *log.Logger,
) DocumentService {
	if logger == nil {
		logger = logging.Discard()
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedMIMETypes))
	for _, t := range cfg.AllowedMIMETypes {
		allowed[normalizeContentType(t)] = struct{}{}
	}
	return &documentService{
		cfg:          cfg,
		allowed:      allowed,
		store:        store,
		docs:         docs,
		participants: participants,
		metrics:      metrics,
		log:          logger.With("component", "documents"),
		newID:        func() string { return uuid.New().String() },
		now:          time.Now,
	}
}

func normalizeContentType(ct string) string {
	base, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(base))
}

func (s *documentService) sizeLimitError() error {
	return validationf("file exceeds the %s upload limit", humanize.IBytes(uint64(s.cfg.MaxUploadBytes)))
}

// validate rejects bad input before anything touches the filesystem.
func (s *documentService) validate(in *UploadInput) error {
	if in.Reader == nil {
		return ErrReaderNil
	}
	if in.ParticipantID == "" {
		return ErrIDRequired
	}
	if strings.TrimSpace(in.OriginalFilename) == "" {
		return validationf("file name is required")
	}
	in.ContentType = normalizeContentType(in.ContentType)
	if _, ok := s.allowed[in.ContentType]; !ok {
		return validationf("file type %q is not allowed", in.ContentType)
	}
	if s.cfg.MaxUploadBytes > 0 && in.Size > s.cfg.MaxUploadBytes {
		return s.sizeLimitError()
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "documents.upload")
	defer span.End()
	span.SetAttributes(attribute.String("participant.id", in.ParticipantID))

	doc, err := s.upload(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
	}
	return doc, err
}

func (s *documentService) upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	lg := logging.FromContext(ctx, s.log)

	p, err := s.participants.FindDetail(ctx, in.ParticipantID)
	if err != nil {
		return nil, mapRepoError(err, "participant")
	}
	if p.Operation == nil || p.GlobalCompany == nil {
		return nil, notFound("participant operation or company")
	}

	dir, err := storage.DerivePath(p.Operation.OperationNumber, p.GlobalCompany.Name, string(p.Role))
	if err != nil {
		return nil, validationf("no storage folder can be derived for participant %s", p.ID)
	}
	if err := s.store.EnsureDir(ctx, dir); err != nil {
		lg.Error("participant folder creation failed", "dir", dir, "participant_id", p.ID, "error", err)
		return nil, fmt.Errorf("%w: could not prepare the participant folder", ErrStorage)
	}

	id := s.newID()
	stored := storage.StoredFileName(id, in.OriginalFilename)
	rel := path.Join(dir, stored)
	n, err := s.store.Write(ctx, rel, in.Reader, s.cfg.MaxUploadBytes)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, s.sizeLimitError()
		}
		lg.Error("document write failed", "file_path", rel, "participant_id", p.ID, "error", err)
		return nil, fmt.Errorf("%w: could not write the file", ErrStorage)
	}
	s.metrics.FileStored()

	doc := &model.Document{
		ID:               id,
		OriginalFileName: in.OriginalFilename,
		StoredFileName:   stored,
		FilePath:         rel,
		FileType:         in.ContentType,
		FileSize:         n,
		UploadedAt:       s.now().UTC(),
		ParticipantID:    p.ID,
	}
	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, s.compensate(ctx, rel, err)
	}

	lg.Info("document stored",
		"document_id", created.ID,
		"participant_id", p.ID,
		"file_path", rel,
		"file_size", n,
	)
	return created, nil
}

// compensate removes the file written for a record that could not be saved.
// Cancellation of the request must not skip this step.
func (s *documentService) compensate(ctx context.Context, rel string, cause error) error {
	lg := logging.FromContext(ctx, s.log)
	rmErr := s.store.Remove(context.WithoutCancel(ctx), rel)
	if rmErr != nil && !errors.Is(rmErr, storage.ErrNotExist) {
		s.metrics.IntegrityFailure()
		lg.Error("orphan file cleanup failed",
			"integrity_failure", true,
			"file_path", rel,
			"error", rmErr,
			"cause", cause,
		)
		return fmt.Errorf("%w: document record was not saved and file %s could not be removed", ErrIntegrity, rel)
	}
	lg.Warn("document record insert failed, file removed", "file_path", rel, "error", cause)
	if errors.Is(cause, repository.ErrReferenced) {
		return notFound("participant")
	}
	return fmt.Errorf("save document record: %w", cause)
}

func (s *documentService) ListByParticipant(ctx context.Context, participantID string) ([]model.Document, error) {
	if participantID == "" {
		return nil, ErrIDRequired
	}
	ok, err := s.participants.Exists(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("participant")
	}
	return s.docs.ListByParticipant(ctx, participantID)
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "document")
	}
	return doc, nil
}

// Delete removes a document file best-effort, then deletes its record.
// A file that is already gone or cannot be removed is logged and does not keep
// the record alive.
func (s *documentService) Delete(ctx context.Context, id string) (*DeletionResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "document")
	}

	lg := logging.FromContext(ctx, s.log)
	report := &storage.CleanupReport{}
	removeFile(ctx, s.store, lg, report, doc.FilePath)

	if err := s.docs.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err, "document")
	}
	s.metrics.ObserveReport(report)
	lg.Info("document deleted", "document_id", id, "file_path", doc.FilePath)

	return &DeletionResult{
		Message: fmt.Sprintf("Document '%s' was deleted.", doc.OriginalFileName),
		Report:  report,
	}, nil
}
