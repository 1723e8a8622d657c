package commands

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

//go:embed scaffold
var scaffoldFS embed.FS

// scaffoldDirs are created even when empty.
var scaffoldDirs = []string{"images", "posts", "style"}

// InitCmd implements the 'init' command.
type InitCmd struct {
	Dir   string `short:"d" help:"Directory to scaffold" default:"." type:"path"`
	Force bool   `help:"Overwrite existing files"`
}

func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	return RunInit(i.Dir, i.Force)
}

// RunInit writes a starter site into dir. Existing files are kept unless
// force is set; an existing config.yaml without force is an error.
func RunInit(dir string, force bool) error {
	// Provide friendly user-facing messages on stdout for CLI integration tests.
	fmt.Println("Initializing blogbuilder site")
	fmt.Printf("Writing site skeleton to %s\n", dir)

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		fmt.Println("Initialization failed")
		return errors.ValidationError("site already initialized (use --force to overwrite)").
			WithContext("file", config.FileName).
			Build()
	}

	for _, d := range scaffoldDirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o750); err != nil {
			return errors.FileSystemError("failed to create directory").WithCause(err).WithContext("path", d).Build()
		}
	}

	if err := config.Write(cfgPath, config.Example(), true); err != nil {
		return errors.FileSystemError("failed to write configuration").WithCause(err).WithContext("file", config.FileName).Build()
	}

	root, err := fs.Sub(scaffoldFS, "scaffold")
	if err != nil {
		return errors.InternalError("scaffold not embedded").WithCause(err).Build()
	}
	err = fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		return writeScaffoldFile(root, dir, p, force)
	})
	if err != nil {
		fmt.Println("Initialization failed")
		return err
	}

	fmt.Println("initialized successfully")
	return nil
}

func writeScaffoldFile(root fs.FS, dir, name string, force bool) error {
	dst := filepath.Join(dir, filepath.FromSlash(name))
	if _, err := os.Stat(dst); err == nil && !force {
		fmt.Printf("Keeping existing %s\n", name)
		return nil
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.FileSystemError("failed to inspect file").WithCause(err).WithContext("file", name).Build()
	}

	data, err := fs.ReadFile(root, name)
	if err != nil {
		return errors.InternalError("failed to read scaffold file").WithCause(err).WithContext("file", name).Build()
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.FileSystemError("failed to create directory").WithCause(err).WithContext("file", name).Build()
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil { //nolint:gosec // G306: site sources are world readable
		return errors.FileSystemError("failed to write file").WithCause(err).WithContext("file", name).Build()
	}
	fmt.Printf("Created %s\n", name)
	return nil
}
