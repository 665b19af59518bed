package gitinfo

import (
	"fmt"

	"github.com/abdidvp/taxkraft/internal/domain"
	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.RevisionInfo using go-git. The tax
// table is versioned with the project, so the HEAD commit identifies the
// configuration a receipt was computed with.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

var _ domain.RevisionInfo = (*GitInfoAdapter)(nil)

// CommitHash returns the HEAD commit of the repository containing
// projectPath, searching parent directories for .git.
func (g *GitInfoAdapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
