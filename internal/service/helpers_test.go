package service

import (
	"bytes"
	"path"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"logidocs/internal/config"
	"logidocs/internal/logging"
	"logidocs/internal/model"
)

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{
		Root:               "/data",
		PublicMount:        "/uploads",
		MaxUploadBytes:     10 * 1024 * 1024,
		AllowedMIMETypes:   config.DefaultAllowedMIMETypes,
		CleanupConcurrency: 2,
	}
}

func participantFixture() *model.ParticipantDetail {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return &model.ParticipantDetail{
		Participant: model.Participant{
			ID:              "p-1",
			OperationID:     "op-1",
			GlobalCompanyID: "c-1",
			Role:            model.RoleSupplier,
			CreatedAt:       now,
		},
		Operation: &model.Operation{
			ID:              "op-1",
			OperationNumber: "OP-2024-0007",
			Name:            "Kahve ithalati",
			Type:            model.OperationImport,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		GlobalCompany: &model.GlobalCompany{ID: "c-1", Name: "Acme Şirketi A.Ş.", CreatedAt: now, UpdatedAt: now},
	}
}

// seedFile writes content at p, creating parents.
func seedFile(t *testing.T, fsys afero.Fs, p, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(path.Dir(p), 0o755))
	require.NoError(t, afero.WriteFile(fsys, p, []byte(content), 0o644))
}

func docView(id, filePath string) model.DocumentView {
	return model.DocumentView{Document: model.Document{
		ID:               id,
		OriginalFileName: path.Base(filePath),
		StoredFileName:   path.Base(filePath),
		FilePath:         filePath,
		FileType:         "application/pdf",
	}}
}

// bufferLogger returns a debug level JSON logger writing into the returned buffer.
func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(&buf, time.UTC, "debug"), &buf
}
