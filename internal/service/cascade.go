package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"logidocs/internal/config"
	"logidocs/internal/logging"
	"logidocs/internal/model"
	"logidocs/internal/repository"
	"logidocs/internal/storage"
)

// CascadeService deletes participants and operations together with the files
// they own. Filesystem work is best-effort: failures end up in the returned
// report and the logs, never in the error.
type CascadeService interface {
	// DeleteParticipant removes a participant, its documents and their files.
	// A non-empty operationID must match the participant's operation.
	DeleteParticipant(ctx context.Context, operationID, participantID string) (*DeletionResult, error)

	// DeleteOperation removes an operation with all participants, documents and files.
	DeleteOperation(ctx context.Context, operationID string) (*DeletionResult, error)
}

type cascadeService struct {
	store        storage.Store
	operations   repository.OperationRepository
	participants repository.ParticipantRepository
	metrics      *storage.Metrics
	log          *log.Logger
	concurrency  int
}

// NewCascadeService constructs a new CascadeService. metrics and logger may be nil.
func NewCascadeService(
	cfg config.StorageConfig,
	store storage.Store,
	operations repository.OperationRepository,
	participants repository.ParticipantRepository,
	metrics *storage.Metrics,
	logger *log.Logger,
) CascadeService {
	if logger == nil {
		logger = logging.Discard()
	}
	n := cfg.CleanupConcurrency
	if n < 1 {
		n = 1
	}
	return &cascadeService{
		store:        store,
		operations:   operations,
		participants: participants,
		metrics:      metrics,
		log:          logger.With("component", "cascade"),
		concurrency:  n,
	}
}

func (s *cascadeService) DeleteParticipant(ctx context.Context, operationID, participantID string) (*DeletionResult, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_participant")
	defer span.End()
	span.SetAttributes(attribute.String("participant.id", participantID))

	if participantID == "" {
		return nil, ErrIDRequired
	}
	p, err := s.participants.FindDetail(ctx, participantID)
	if err != nil {
		return nil, mapRepoError(err, "participant")
	}
	if operationID != "" && p.OperationID != operationID {
		return nil, fmt.Errorf("%w: participant does not belong to this operation", ErrForbidden)
	}

	lg := logging.FromContext(ctx, s.log)
	report := &storage.CleanupReport{}
	s.removeFiles(ctx, lg, report, p.Documents)

	if err := s.participants.Delete(ctx, p.ID); err != nil {
		return nil, mapRepoError(err, "participant")
	}

	// the rows are gone; folder cleanup runs even if the caller has given up
	cleanupCtx := context.WithoutCancel(ctx)
	var companyName, opNumber string
	if p.GlobalCompany != nil {
		companyName = p.GlobalCompany.Name
	}
	if p.Operation != nil {
		opNumber = p.Operation.OperationNumber
	}
	for _, dir := range participantFolders(opNumber, companyName, p.Role, p.Documents) {
		removeDir(cleanupCtx, s.store, lg, report, dir)
	}
	if opDir, err := storage.OperationFolder(opNumber); err == nil {
		removeDir(cleanupCtx, s.store, lg, report, opDir)
	}

	s.finish(lg, report, "participant deleted", "participant_id", p.ID, "operation_id", p.OperationID)
	span.SetAttributes(attribute.Int("cleanup.files", len(p.Documents)))

	return &DeletionResult{
		Message: fmt.Sprintf("Participant '%s' (%s) and all of its documents were removed from the operation.", companyName, p.Role),
		Report:  report,
	}, nil
}

func (s *cascadeService) DeleteOperation(ctx context.Context, operationID string) (*DeletionResult, error) {
	ctx, span := tracer.Start(ctx, "cascade.delete_operation")
	defer span.End()
	span.SetAttributes(attribute.String("operation.id", operationID))

	if operationID == "" {
		return nil, ErrIDRequired
	}
	op, err := s.operations.FindDetail(ctx, operationID)
	if err != nil {
		return nil, mapRepoError(err, "operation")
	}

	// folders are derived from the values loaded before anything is deleted
	var (
		docs    []model.DocumentView
		folders []string
	)
	for _, p := range op.Participants {
		docs = append(docs, p.Documents...)
		var companyName string
		if p.GlobalCompany != nil {
			companyName = p.GlobalCompany.Name
		}
		folders = append(folders, participantFolders(op.OperationNumber, companyName, p.Role, p.Documents)...)
	}

	lg := logging.FromContext(ctx, s.log)
	report := &storage.CleanupReport{}
	s.removeFiles(ctx, lg, report, docs)

	if err := s.operations.Delete(ctx, op.ID); err != nil {
		return nil, mapRepoError(err, "operation")
	}

	cleanupCtx := context.WithoutCancel(ctx)
	for _, dir := range dedupe(folders) {
		removeDir(cleanupCtx, s.store, lg, report, dir)
	}
	if opDir, err := storage.OperationFolder(op.OperationNumber); err == nil {
		names, err := s.store.RemoveDirIfEmpty(cleanupCtx, opDir)
		report.Record(storage.KindDir, opDir, err)
		switch {
		case errors.Is(err, storage.ErrDirNotEmpty):
			lg.Warn("operation folder not empty, left in place", "dir", opDir, "entries", names)
		case err != nil && !errors.Is(err, storage.ErrNotExist):
			lg.Warn("operation folder removal failed", "dir", opDir, "error", err)
		}
	}

	s.finish(lg, report, "operation deleted", "operation_id", op.ID, "participants", len(op.Participants))
	span.SetAttributes(attribute.Int("cleanup.files", len(docs)))

	return &DeletionResult{
		Message: fmt.Sprintf("Operation '%s' and all of its related data were deleted.", op.Name),
		Report:  report,
	}, nil
}

// removeFiles deletes every document file with bounded parallelism. Each file
// is independent; no failure stops the others.
func (s *cascadeService) removeFiles(ctx context.Context, lg *log.Logger, report *storage.CleanupReport, docs []model.DocumentView) {
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for _, d := range docs {
		g.Go(func() error {
			removeFile(ctx, s.store, lg, report, d.FilePath)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *cascadeService) finish(lg *log.Logger, report *storage.CleanupReport, msg string, keyvals ...any) {
	s.metrics.ObserveReport(report)
	keyvals = append(keyvals,
		"files_removed", report.Count(storage.KindFile, storage.OutcomeRemoved),
		"files_missing", report.Count(storage.KindFile, storage.OutcomeMissing),
		"files_failed", report.Count(storage.KindFile, storage.OutcomeFailed),
		"dirs_removed", report.Count(storage.KindDir, storage.OutcomeRemoved),
		"dirs_kept", report.Count(storage.KindDir, storage.OutcomeKept),
	)
	lg.Info(msg, keyvals...)
}

// participantFolders returns the derived folder of a participant plus the
// folders its documents actually live in, which differ once a company was
// renamed after upload.
func participantFolders(opNumber, companyName string, role model.Role, docs []model.DocumentView) []string {
	var out []string
	if dir, err := storage.DerivePath(opNumber, companyName, string(role)); err == nil {
		out = append(out, dir)
	}
	for _, d := range docs {
		if dir := path.Dir(d.FilePath); dir != "." && dir != "/" {
			out = append(out, dir)
		}
	}
	return dedupe(out)
}

// dedupe sorts deepest paths first so children go before their parents.
func dedupe(dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := depth(out[i]), depth(out[j])
		if di != dj {
			return di > dj
		}
		return out[i] < out[j]
	})
	return out
}

func depth(p string) int {
	n := 0
	for _, r := range p {
		if r == '/' {
			n++
		}
	}
	return n
}

func removeFile(ctx context.Context, store storage.Store, logger *log.Logger, report *storage.CleanupReport, p string) {
	err := store.Remove(ctx, p)
	switch report.Record(storage.KindFile, p, err) {
	case storage.OutcomeRemoved:
		logger.Debug("file removed", "file_path", p)
	case storage.OutcomeMissing:
		logger.Warn("file already missing", "file_path", p)
	default:
		logger.Error("file removal failed", "file_path", p, "error", err)
	}
}

func removeDir(ctx context.Context, store storage.Store, logger *log.Logger, report *storage.CleanupReport, dir string) {
	names, err := store.RemoveDirIfEmpty(ctx, dir)
	switch report.Record(storage.KindDir, dir, err) {
	case storage.OutcomeRemoved:
		logger.Debug("folder removed", "dir", dir)
	case storage.OutcomeMissing:
	case storage.OutcomeKept:
		logger.Debug("folder not empty, kept", "dir", dir, "entries", names)
	default:
		logger.Warn("folder removal failed", "dir", dir, "error", err)
	}
}
