package model

import "time"

// Document represents one stored file belonging to a participant.
// FilePath is relative to the storage root and is fixed at upload time; it is not
// recomputed when the operation number, company name or role change later.
type Document struct {
	ID               string    `json:"id"`
	OriginalFileName string    `json:"originalFileName"`
	StoredFileName   string    `json:"storedFileName"`
	FilePath         string    `json:"filePath"`
	FileType         string    `json:"fileType"`
	FileSize         int64     `json:"fileSize"`
	UploadedAt       time.Time `json:"uploadedAt"`
	ParticipantID    string    `json:"participantId"`
}

// DocumentView is a Document as exposed to HTTP callers, with the download URL
// computed at read time.
type DocumentView struct {
	Document
	FullPath string `json:"fullPath"`
}
