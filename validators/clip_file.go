package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

// DefaultMaxClipSize caps uploads when upload.max_size is not configured.
// Bigger source material goes through the seed command instead.
const DefaultMaxClipSize = 5 << 20 // 5 MiB

var (
	ErrNoFile              = errors.New("no video file provided")
	ErrFileTypeUnsupported = errors.New("invalid file format, allowed formats: video/mp4, video/webm")
	ErrFileContentMismatch = errors.New("file content does not match its declared format")
	ErrFileTooLarge        = errors.New("file size exceeds the maximum allowed size")
)

var (
	allowedMIMETypes  = []string{"video/mp4", "video/webm"}
	allowedExtensions = []string{".mp4", ".webm"}
)

// MaxClipSize returns the configured upload cap in bytes.
func MaxClipSize() int64 {
	if v := viper.GetInt64("upload.max_size"); v > 0 {
		return v
	}

	return DefaultMaxClipSize
}

// ClipFileValidator checks the uploaded file in the order the API contract
// promises: presence, MIME type, extension, size. Headers are checked first
// which is easy to spoof, but faster for legit clients; the content itself is
// sniffed last and must agree with the declared type. On success the opened
// file is returned rewound to the start, ready for upload.
func ClipFileValidator(fh *multipart.FileHeader) (multipart.File, error) {
	if fh == nil {
		return nil, ErrNoFile
	}

	ct, _, _ := strings.Cut(fh.Header.Get("Content-Type"), ";")
	ct = strings.TrimSpace(ct)
	if !slices.Contains(allowedMIMETypes, ct) {
		return nil, ErrFileTypeUnsupported
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	if !slices.Contains(allowedExtensions, ext) {
		return nil, ErrFileTypeUnsupported
	}

	if fh.Size > MaxClipSize() {
		return nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if !mime.Is(ct) {
		f.Close()
		return nil, ErrFileContentMismatch
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
