package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Input      string   `short:"i" help:"Site source directory" default:"." env:"BLOGBUILDER_INPUT" type:"path"`
	Title      string   `short:"t" help:"Post title" required:""`
	Categories []string `short:"c" name:"category" help:"Category of the post (repeatable)"`
	Summary    string   `short:"s" help:"Summary shown in the RSS feed"`
	Date       string   `help:"Publication date as YYYY-MM-DD (default: today)"`
	Dir        string   `help:"Subdirectory of posts/ to create the post in"`
	Force      bool     `help:"Overwrite an existing post"`
}

// NewPostOptions are the inputs of RunNew.
type NewPostOptions struct {
	Title      string
	Categories []string
	Summary    string
	// Date is YYYY-MM-DD; empty means today.
	Date  string
	Dir   string
	Force bool
}

func (n *NewCmd) Run(_ *Global, _ *CLI) error {
	_, err := RunNew(n.Input, NewPostOptions{
		Title:      n.Title,
		Categories: n.Categories,
		Summary:    n.Summary,
		Date:       n.Date,
		Dir:        n.Dir,
		Force:      n.Force,
	})
	return err
}

// RunNew writes a new post source below input/posts and returns its path.
func RunNew(input string, opts NewPostOptions) (string, error) {
	if opts.Dir != "" && !filepath.IsLocal(opts.Dir) {
		return "", errors.ValidationError("post directory must stay inside posts/").
			WithContext("dir", opts.Dir).
			Build()
	}

	date := today()
	if opts.Date != "" {
		d, err := post.ParseDate(opts.Date)
		if err != nil {
			return "", errors.ValidationError("invalid --date").WithCause(err).Build()
		}
		date = d
	}

	meta := post.Metadata{
		Title:      opts.Title,
		Date:       date,
		Categories: opts.Categories,
		Summary:    opts.Summary,
	}
	src, err := meta.Marshal([]byte("Write your post here.\n"))
	if err != nil {
		return "", errors.InternalError("failed to encode front matter").WithCause(err).Build()
	}

	dst := filepath.Join(input, site.PostsDir, opts.Dir, post.Slug(opts.Title)+".md")
	if _, err := os.Stat(dst); err == nil && !opts.Force {
		return "", errors.ValidationError("post already exists (use --force to overwrite)").
			WithContext("path", dst).
			Build()
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", errors.FileSystemError("failed to create post directory").WithCause(err).WithContext("path", dst).Build()
	}
	if err := os.WriteFile(dst, src, 0o644); err != nil { //nolint:gosec // G306: site sources are world readable
		return "", errors.FileSystemError("failed to write post").WithCause(err).WithContext("path", dst).Build()
	}

	fmt.Printf("Created %s\n", dst)
	return dst, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
