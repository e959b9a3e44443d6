package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jibingeo/next-auth/internal/config"
	"github.com/jibingeo/next-auth/internal/landing"
)

// ErrExists is returned by Init when a file it would create is already present.
var ErrExists = errors.New("file already exists")

const gettingStarted = `---
title: Getting Started
description: Add authentication to a Next.js app
weight: 1
---

Install the package:

` + "```bash\n" + landing.InstallCommand + "\n```" + `

Then create an API route and use the React component, as shown on the home page.
`

// Init writes a starter config at cfgPath and a getting started page in the
// configured content directory, relative to the config file. Existing files are
// left untouched and reported as ErrExists unless force is set.
func Init(cfgPath string, cfg config.Config, force bool) ([]string, error) {
	docPath := filepath.Join(filepath.Dir(cfgPath), cfg.ContentDir, "getting-started.md")

	if !force {
		for _, p := range []string{cfgPath, docPath} {
			if _, err := os.Stat(p); err == nil {
				return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, p)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("checking %s: %w", p, err)
			}
		}
	}

	if err := config.Write(cfgPath, cfg); err != nil {
		return nil, err
	}
	created := []string{cfgPath}

	err := writeFile(docPath, func(w io.Writer) error {
		_, err := io.WriteString(w, gettingStarted)
		return err
	})
	if err != nil {
		return created, err
	}
	return append(created, docPath), nil
}
