package table

import (
	"errors"
	"fmt"
	"path/filepath"

	pb "github.com/mtiwari1/tableloader/proto"
)

// ErrUnsupportedFileType matches any UnsupportedFileTypeError.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// UnsupportedFileTypeError reports a file whose extension has no known format.
type UnsupportedFileTypeError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("%s: %s has no extension", ErrUnsupportedFileType, e.Path)
	}
	return fmt.Sprintf("%s %q: %s", ErrUnsupportedFileType, e.Extension, e.Path)
}

func (e *UnsupportedFileTypeError) Is(target error) bool {
	return target == ErrUnsupportedFileType
}

// Extensions are matched exactly, so ".CSV" and ".csv.gz" are unsupported.
var fileTypes = map[string]pb.FileType{
	".parquet": pb.FileType_FILE_TYPE_PARQUET,
	".csv":     pb.FileType_FILE_TYPE_CSV,
}

// FileTypeForPath maps the extension of path to its file type.
func FileTypeForPath(path string) (pb.FileType, error) {
	ext := filepath.Ext(path)
	ft, ok := fileTypes[ext]
	if !ok {
		return pb.FileType_FILE_TYPE_UNSPECIFIED, &UnsupportedFileTypeError{Path: path, Extension: ext}
	}
	return ft, nil
}

// FileURI returns the file:// URI for the absolute form of path.
func FileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %s: %w", path, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}
