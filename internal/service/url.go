package service

import (
	"strings"

	"logidocs/internal/model"
)

// BuildPublicURL joins baseURL and a storage relative path with exactly one slash.
// The path is already slug safe, so no further escaping is applied.
func BuildPublicURL(baseURL, relativePath string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(relativePath, "/")
}

// NewDocumentView attaches the download URL to d.
func NewDocumentView(baseURL string, d model.Document) model.DocumentView {
	return model.DocumentView{Document: d, FullPath: BuildPublicURL(baseURL, d.FilePath)}
}

// NewDocumentViews maps docs to views, preserving order.
func NewDocumentViews(baseURL string, docs []model.Document) []model.DocumentView {
	out := make([]model.DocumentView, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDocumentView(baseURL, d))
	}
	return out
}

// FillFullPaths sets FullPath on every document of an operation detail.
func FillFullPaths(baseURL string, detail *model.OperationDetail) {
	if detail == nil {
		return
	}
	for i := range detail.Participants {
		docs := detail.Participants[i].Documents
		for j := range docs {
			docs[j].FullPath = BuildPublicURL(baseURL, docs[j].FilePath)
		}
	}
}
