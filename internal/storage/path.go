package storage

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

// ErrEmptySegment is returned when an identifying value slugs to nothing and no
// folder can be derived from it.
var ErrEmptySegment = errors.New("storage: path segment is empty after normalization")

var (
	// Any Unicode whitespace, including separators that Go's \s does not match.
	slugSpace   = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
	safeExt     = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)
)

// Slug normalizes s into a filesystem and URL safe token. Letters outside ASCII
// are dropped, not transliterated. Slug is idempotent.
func Slug(s string) string {
	if s == "" {
		return ""
	}
	out := strings.ToLower(s)
	out = slugSpace.ReplaceAllString(out, "-")
	out = slugInvalid.ReplaceAllString(out, "")
	out = slugHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// DerivePath maps a participant's identifying values to its folder, relative to
// the storage root: <slug(operationNumber)>/<slug(companyName)>-<slug(role)>.
func DerivePath(operationNumber, companyName, role string) (string, error) {
	op, company, r := Slug(operationNumber), Slug(companyName), Slug(role)
	if op == "" || company == "" || r == "" {
		return "", ErrEmptySegment
	}
	return path.Join(op, company+"-"+r), nil
}

// OperationFolder is the root folder shared by all participants of an operation.
func OperationFolder(operationNumber string) (string, error) {
	op := Slug(operationNumber)
	if op == "" {
		return "", ErrEmptySegment
	}
	return op, nil
}

// StoredFileName builds <id>_<slug(basename)><ext> from a client supplied name.
// Directory components, including Windows separators, never reach the result.
// The extension is kept only when it is ASCII letters and digits.
func StoredFileName(id, original string) string {
	name := path.Base(strings.ReplaceAll(original, `\`, "/"))
	switch name {
	case ".", "..", "/":
		name = ""
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" || !safeExt.MatchString(ext) {
		// dotfiles such as ".env" have no extension; anything URL unsafe is slugged with the base
		base, ext = name, ""
	}
	return id + "_" + Slug(base) + ext
}
