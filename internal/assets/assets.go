// Package assets mirrors the static site directories into the output tree.
package assets

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// SiteDirs are the input directories copied verbatim to the output root.
var SiteDirs = []string{"images", "style"}

// CopySiteAssets copies every SiteDirs entry present under input into output
// and returns the number of files copied. Missing directories are skipped.
func CopySiteAssets(input, output string) (int, error) {
	total := 0
	for _, dir := range SiteDirs {
		src := filepath.Join(input, dir)
		info, err := os.Stat(src)
		if stderrors.Is(err, fs.ErrNotExist) {
			slog.Debug("Asset directory not present, skipping", logfields.Path(src))
			continue
		}
		if err != nil {
			return total, errors.FileSystemError("failed to stat asset directory").
				WithCause(err).
				WithContext("path", src).
				Build()
		}
		if !info.IsDir() {
			slog.Warn("Asset path is not a directory, skipping", logfields.Path(src))
			continue
		}

		n, err := CopyDir(src, filepath.Join(output, dir))
		total += n
		if err != nil {
			return total, errors.FileSystemError("failed to copy asset directory").
				WithCause(err).
				WithContext("path", src).
				Build()
		}
		slog.Debug("Copied asset directory", logfields.Path(src), logfields.Count(n))
	}
	return total, nil
}

// CopyDir recursively copies a directory tree, preserving file modes. It
// returns the number of regular files copied.
func CopyDir(src, dst string) (int, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			n, err := CopyDir(srcPath, dstPath)
			copied += n
			if err != nil {
				return copied, err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return copied, err
			}
			copied++
		default:
			slog.Debug("Skipping non-regular asset", logfields.Path(srcPath))
		}
	}

	return copied, nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(filepath.Clean(src))
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(filepath.Clean(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode on create, and the umask still applies.
	return os.Chmod(dst, srcInfo.Mode().Perm())
}
