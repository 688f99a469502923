package remote

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/types"
)

// CloneDepth is the history depth fetched on every sync
const CloneDepth = 1

// Syncer replaces the template cache with a fresh clone
type Syncer struct {
	FS     types.FS
	Cloner Cloner
}

// Sync removes cacheDir when present and clones url into it
func (s *Syncer) Sync(ctx context.Context, url, cacheDir string) error {
	logger := logging.GetLogger("remote.sync")

	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New(errors.ErrConfigMissing,
			"template_source_repo is not set; configure it with: roo-conf config template_source_repo <url>")
	}

	if _, err := s.FS.Stat(cacheDir); err == nil {
		logger.Info().Str("cache", cacheDir).Msg("Removing existing template cache")
		if err := s.FS.RemoveAll(cacheDir); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", cacheDir)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", cacheDir)
	}

	parent := filepath.Dir(cacheDir)
	if err := s.FS.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent)
	}

	logger.Info().
		Str("url", url).
		Str("cache", cacheDir).
		Str("method", s.Cloner.Name()).
		Msg("Cloning template repository")

	done := logging.LogOperationStart(logger, "clone")
	if err := s.Cloner.Clone(ctx, url, cacheDir, CloneDepth); err != nil {
		return err
	}
	done()

	logger.Info().Str("cache", cacheDir).Msg("Template cache updated")
	return nil
}
