package cli

import (
	stderrors "errors"
	"path/filepath"

	"github.com/toyz/cmockgen/internal/cmock"
	"github.com/toyz/cmockgen/internal/errors"
	"github.com/toyz/cmockgen/internal/utils/fileops"
)

// Cleaner handles removing generated mocks
type Cleaner struct {
	fileOps *fileops.FileOps
}

// NewCleaner creates a new cleaner
func NewCleaner(fo *fileops.FileOps) *Cleaner {
	return &Cleaner{fileOps: fo}
}

// CleanGeneratedFiles removes the mocks CMock generates for headers, and the
// .clang-format file in the mock path. Files that do not exist are skipped.
// It returns the removed paths.
func (c *Cleaner) CleanGeneratedFiles(opts cmock.Options, headers []string) ([]string, error) {
	var targets []string
	for _, header := range headers {
		targets = append(targets, cmock.MockFiles(opts, header)...)
	}
	targets = append(targets, filepath.Join(opts.MockPath(), ClangFormatFileName))

	removed := make([]string, 0, len(targets))
	failures := errors.NewMultipleErrors()

	for _, target := range targets {
		if !c.fileOps.Exists(target) {
			continue
		}
		if c.fileOps.IsDir(target) {
			failures.Add(errors.FileSystemError("remove", target, "is a directory"))
			continue
		}
		if err := c.fileOps.RemoveFile(target); err != nil {
			var coded errors.CodedError
			if !stderrors.As(err, &coded) {
				coded = errors.WrapFileSystemError("remove", target, err)
			}
			failures.Add(coded)
			continue
		}
		removed = append(removed, target)
	}

	return removed, failures.ErrorOrNil()
}
