// Package site builds the static output tree: the landing page, documentation
// pages, theme assets and copied static files.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jibingeo/next-auth/internal/config"
	"github.com/jibingeo/next-auth/internal/docs"
	"github.com/jibingeo/next-auth/internal/landing"
	"github.com/jibingeo/next-auth/internal/model"
	"github.com/jibingeo/next-auth/internal/theme"
)

const indexFile = "index.html"

// ErrUnsafeOutputDir is returned when the output directory would overlap with
// the working directory or an input directory; the build removes it first.
var ErrUnsafeOutputDir = errors.New("unsafe output directory")

// Report summarises a finished build.
type Report struct {
	OutputDir   string
	Pages       []string
	StaticFiles int
	Docs        int
	Duration    time.Duration
}

// Builder renders the site described by a configuration.
type Builder struct {
	cfg    config.Config
	logger *slog.Logger
	docs   *docs.Collector
}

func New(cfg config.Config, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		logger: logger,
		docs:   docs.NewCollector(cfg.CodeStyle),
	}
}

// Host returns the collaborators pages are rendered with.
func (b *Builder) Host() landing.Host {
	urls := theme.NewResolver(b.cfg.URL, b.cfg.BaseURL)
	return landing.Host{
		Layout: theme.Layout{SiteTitle: b.cfg.SiteTitle, Lang: b.cfg.Lang, URLs: urls},
		URLs:   urls,
		Code:   theme.Highlighter{Style: b.cfg.CodeStyle},
		Links:  theme.Anchor{},
	}
}

// RenderLanding writes the landing page to w.
func (b *Builder) RenderLanding(w io.Writer) error {
	site := b.cfg.Site()
	return landing.Render(w, &site, b.Host())
}

// Build regenerates the output directory from scratch.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	start := time.Now()
	out := b.cfg.OutputDir
	report := Report{OutputDir: out}

	if err := b.checkOutputDir(); err != nil {
		return report, err
	}

	b.logger.Info("building site", "output", out, "baseURL", b.cfg.BaseURL, "title", b.cfg.SiteTitle)

	b.logger.Debug("cleaning output directory", "dir", out)
	if err := os.RemoveAll(out); err != nil {
		return report, fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return report, fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	n, err := b.copyStatic()
	if err != nil {
		return report, err
	}
	report.StaticFiles = n

	if err := b.writeAssets(); err != nil {
		return report, err
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	landingPath := filepath.Join(out, indexFile)
	if err := writeFile(landingPath, b.RenderLanding); err != nil {
		return report, fmt.Errorf("rendering landing page: %w", err)
	}
	report.Pages = append(report.Pages, landingPath)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	site, err := b.collectDocs()
	if err != nil {
		return report, err
	}
	pages, err := b.renderDocs(ctx, site)
	report.Pages = append(report.Pages, pages...)
	report.Docs = len(pages)
	if err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	b.logger.Info("site built", "pages", len(report.Pages), "docs", report.Docs, "static", report.StaticFiles, "took", report.Duration)
	return report, nil
}

func (b *Builder) checkOutputDir() error {
	if b.cfg.OutputDir == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeOutputDir)
	}
	out, err := filepath.Abs(b.cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if wd, err := os.Getwd(); err == nil && within(wd, out) {
		return fmt.Errorf("%w: %q contains the working directory", ErrUnsafeOutputDir, b.cfg.OutputDir)
	}
	for _, in := range []string{b.cfg.ContentDir, b.cfg.StaticDir} {
		if in == "" {
			continue
		}
		abs, err := filepath.Abs(in)
		if err != nil {
			continue
		}
		if within(abs, out) || within(out, abs) {
			return fmt.Errorf("%w: %q overlaps %q", ErrUnsafeOutputDir, b.cfg.OutputDir, in)
		}
	}
	return nil
}

// within reports whether path is dir or inside it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (b *Builder) collectDocs() (*model.SiteData, error) {
	items, err := b.docs.Collect(b.cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	site := &model.SiteData{Config: b.cfg.Site(), Docs: items}
	if site.FindDoc(landing.GettingStartedPath+"/") == nil {
		b.logger.Warn("no page for the Get Started link", "permalink", landing.GettingStartedPath+"/", "contentDir", b.cfg.ContentDir)
	}
	return site, nil
}

func (b *Builder) renderDocs(ctx context.Context, site *model.SiteData) ([]string, error) {
	host := b.Host()
	var pages []string
	for _, item := range site.Docs {
		if err := ctx.Err(); err != nil {
			return pages, err
		}
		if item.Permalink == "/" {
			b.logger.Warn("skipping doc that would replace the landing page", "source", item.SourcePath)
			continue
		}

		path := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(item.Permalink), indexFile)
		page := host.Layout.Wrap(
			landing.LayoutOptions{Title: item.Title, Description: item.Description},
			theme.DocBody(item),
		)
		if err := writeFile(path, page.Render); err != nil {
			return pages, fmt.Errorf("rendering %s: %w", item.SourcePath, err)
		}
		b.logger.Debug("rendered doc", "source", item.SourcePath, "output", path)
		pages = append(pages, path)
	}
	return pages, nil
}

func (b *Builder) writeAssets() error {
	err := fs.WalkDir(theme.Assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(theme.Assets, path)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(b.cfg.OutputDir, filepath.FromSlash(path)), func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("writing theme assets: %w", err)
	}

	hl := theme.Highlighter{Style: b.cfg.CodeStyle}
	return writeFile(filepath.Join(b.cfg.OutputDir, filepath.FromSlash(theme.HighlightStylesheet)), hl.CSS)
}

func (b *Builder) copyStatic() (int, error) {
	dir := b.cfg.StaticDir
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		b.logger.Debug("static directory not found, skipping copy", "dir", dir)
		return 0, nil
	}
	n, err := copyDirContents(dir, b.cfg.OutputDir)
	if err != nil {
		return n, fmt.Errorf("failed to copy static assets: %w", err)
	}
	b.logger.Debug("copied static assets", "from", dir, "files", n)
	return n, nil
}

// writeFile creates path and its parent directories and fills it with render.
func writeFile(path string, render func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return render(f)
}

// copyDirContents recursively copies the contents of src into dst and returns
// the number of files copied.
func copyDirContents(src, dst string) (int, error) {
	var n int
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func copyFile(srcFile, dstFile string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", srcFile, err)
	}

	return writeFile(dstFile, func(w io.Writer) error {
		if _, err := io.Copy(w, in); err != nil {
			return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
		}
		if f, ok := w.(*os.File); ok {
			return f.Chmod(info.Mode().Perm())
		}
		return nil
	})
}
