// Package selection computes which templates a deployment materializes
// from user-supplied component tokens.
//
// How a token matches depends on the active source. Against the remote
// cache every token is a doublestar glob ("**" crosses directories).
// Against the bundled set a token must equal an identifier exactly.
package selection

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/templates"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// MatchStrategy resolves one component token into template identifiers
type MatchStrategy interface {
	Name() string
	Match(token string) ([]string, error)
}

// Selection is the outcome of SelectTemplates
type Selection struct {
	IDs      []string
	Warnings []string
}

// GlobMatch evaluates tokens as glob patterns against the cache root
type GlobMatch struct {
	FS fs.FS
}

// Name returns "glob"
func (g GlobMatch) Name() string {
	return "glob"
}

// Match returns the files under the cache matching pattern, sorted.
// Anything inside a .git directory is excluded.
func (g GlobMatch) Match(pattern string) ([]string, error) {
	pattern = strings.TrimPrefix(strings.TrimSpace(pattern), "./")
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid glob pattern %q", pattern).WithDetail("pattern", pattern)
	}

	matches, err := doublestar.Glob(g.FS, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "glob %q failed", pattern).WithDetail("pattern", pattern)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		if inVCSDir(m) {
			continue
		}
		ids = append(ids, m)
	}
	sort.Strings(ids)
	return ids, nil
}

func inVCSDir(id string) bool {
	for _, part := range strings.Split(id, "/") {
		if part == templates.VCSDirName {
			return true
		}
	}
	return false
}

// ExactMatch accepts a token only when it equals an available identifier
type ExactMatch struct {
	Available []string
}

// Name returns "exact"
func (e ExactMatch) Name() string {
	return "exact"
}

// Match returns the token itself when it is available
func (e ExactMatch) Match(token string) ([]string, error) {
	for _, id := range e.Available {
		if id == token {
			return []string{id}, nil
		}
	}
	return nil, nil
}

// StrategyFor picks the strategy matching the catalog's active source
func StrategyFor(c *templates.Catalog) MatchStrategy {
	if c.ActiveOrigin() == types.OriginRemote {
		return GlobMatch{FS: c.Remote.FS()}
	}
	return ExactMatch{Available: c.Available()}
}

// SelectTemplates resolves tokens with strategy, then appends every
// alwaysInclude identifier present in available and not yet selected.
// With no tokens, all of available is selected. The result order is
// deterministic: token matches in first-seen order, then always-include
// entries in their given order.
func SelectTemplates(tokens, available, alwaysInclude []string, strategy MatchStrategy) Selection {
	logger := logging.GetLogger("selection")

	var sel Selection
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			sel.IDs = append(sel.IDs, id)
		}
	}

	if len(tokens) == 0 {
		for _, id := range available {
			add(id)
		}
	} else {
		for _, token := range tokens {
			ids, err := strategy.Match(token)
			if err != nil {
				sel.Warnings = append(sel.Warnings, fmt.Sprintf("component %q skipped: %v", token, err))
				logger.Warn().Err(err).Str("component", token).Msg("Invalid component")
				continue
			}
			if len(ids) == 0 {
				sel.Warnings = append(sel.Warnings, fmt.Sprintf("component %q not found", token))
				logger.Warn().Str("component", token).Str("strategy", strategy.Name()).Msg("Component not found")
				continue
			}
			for _, id := range ids {
				add(id)
			}
		}
	}

	availableSet := make(map[string]bool, len(available))
	for _, id := range available {
		availableSet[id] = true
	}
	for _, id := range alwaysInclude {
		if availableSet[id] {
			add(id)
		}
	}

	logger.Debug().
		Strs("tokens", tokens).
		Str("strategy", strategy.Name()).
		Int("selected", len(sel.IDs)).
		Msg("Resolved template selection")

	return sel
}
