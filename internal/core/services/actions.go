package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// Ensure RepositoryActionService implements the interface.
var _ driving.RepositoryActionService = (*RepositoryActionService)(nil)

// RepositoryActionService provides actions on listed repositories.
type RepositoryActionService struct {
	opener    driven.URLOpener
	clipboard driven.Clipboard
}

// NewRepositoryActionService creates a new repository action service.
// Either dependency may be nil, in which case the matching action fails.
func NewRepositoryActionService(opener driven.URLOpener, clipboard driven.Clipboard) *RepositoryActionService {
	return &RepositoryActionService{
		opener:    opener,
		clipboard: clipboard,
	}
}

// CopyURL copies the repository's web URL to the system clipboard.
func (s *RepositoryActionService) CopyURL(_ context.Context, repo *domain.Repository) error {
	url, err := webURL(repo)
	if err != nil {
		return err
	}
	if s.clipboard == nil {
		return fmt.Errorf("clipboard not available")
	}

	if err := s.clipboard.WriteAll(url); err != nil {
		return fmt.Errorf("copy %s: %w", url, err)
	}
	logger.Debug("Copied %s to clipboard", url)
	return nil
}

// Open opens the repository's web URL in the default browser.
func (s *RepositoryActionService) Open(_ context.Context, repo *domain.Repository) error {
	url, err := webURL(repo)
	if err != nil {
		return err
	}
	if s.opener == nil {
		return fmt.Errorf("browser not available")
	}

	if err := s.opener.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	logger.Debug("Opened %s", url)
	return nil
}

// webURL returns the repository URL, refusing anything that is not http(s).
func webURL(repo *domain.Repository) (string, error) {
	if repo == nil {
		return "", fmt.Errorf("%w: repository is nil", domain.ErrInvalidInput)
	}
	url := repo.HTMLURL
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return "", fmt.Errorf("%w: not a web url: %q", domain.ErrInvalidInput, url)
	}
	return url, nil
}
