package attachment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxLogoBytes caps a logo upload at 1 MiB.
const MaxLogoBytes = 1048576

var (
	ErrFileTooLarge    = errors.New("the file is too large, the maximum allowed size is 1MB")
	ErrUnsupportedType = errors.New("only JPG, JPEG and PNG files are allowed")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

type RefKind int

const (
	// RefNone means the submission carries no image field at all.
	RefNone RefKind = iota
	// RefRetain resends the existing logo URL unchanged so the server
	// does not treat the edit as an image removal.
	RefRetain
	// RefUpload replaces the image with the staged file.
	RefUpload
)

// LogoRef is the resolved image reference accompanying a submission.
// Exactly one of URL/File is meaningful, depending on Kind.
type LogoRef struct {
	Kind RefKind
	URL  string
	File *StagedFile
}

// StagedFile is a pending upload spooled to a temp file. It backs the
// editor's preview and must be released with Close once the submission
// finishes; the resolver owns that lifetime.
type StagedFile struct {
	Name string
	Size int64

	path string
}

func (f *StagedFile) Open() (io.ReadCloser, error) {
	rc, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open -> %w", err)
	}

	return rc, nil
}

func (f *StagedFile) Close() error {
	if f.path == "" {
		return nil
	}

	path := f.path
	f.path = ""

	return os.Remove(path)
}

// Resolver manages the tri-state image reference of one editor submission:
// no image, retain the existing URL, or replace with a staged upload.
type Resolver struct {
	staged *StagedFile
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Stage accepts a selected file. The extension is checked before the size,
// matching the console's uploader which filters types first. An oversized
// file is rejected and clears any previously staged file; an existing
// remote logo URL is never touched by a rejection.
func (r *Resolver) Stage(name string, size int64, src io.Reader) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}

	if size > MaxLogoBytes {
		r.discard()
		return ErrFileTooLarge
	}

	tmp, err := os.CreateTemp("", "spot-logo-*"+ext)
	if err != nil {
		return fmt.Errorf("os.CreateTemp -> %w", err)
	}

	written, err := io.Copy(tmp, io.LimitReader(src, MaxLogoBytes+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("io.Copy -> %w", err)
	}

	// A lying Content-Length must not smuggle an oversized body through.
	if written > MaxLogoBytes {
		_ = os.Remove(tmp.Name())
		r.discard()
		return ErrFileTooLarge
	}

	// A new selection supersedes the previous staged file.
	r.discard()
	r.staged = &StagedFile{
		Name: filepath.Base(name),
		Size: written,
		path: tmp.Name(),
	}

	return nil
}

// Staged returns the pending upload, if any.
func (r *Resolver) Staged() *StagedFile {
	return r.staged
}

// Resolve decides which image reference accompanies the submission: a staged
// file wins; otherwise an existing URL is retained; otherwise none.
func (r *Resolver) Resolve(existingURL string) LogoRef {
	if r.staged != nil {
		return LogoRef{Kind: RefUpload, File: r.staged}
	}

	if existingURL != "" {
		return LogoRef{Kind: RefRetain, URL: existingURL}
	}

	return LogoRef{Kind: RefNone}
}

// Close releases the staged file. Safe to call more than once.
func (r *Resolver) Close() error {
	if r.staged == nil {
		return nil
	}

	staged := r.staged
	r.staged = nil

	return staged.Close()
}

func (r *Resolver) discard() {
	if r.staged != nil {
		_ = r.staged.Close()
		r.staged = nil
	}
}
