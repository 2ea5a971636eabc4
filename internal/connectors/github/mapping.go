package github

import (
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// toRepositories converts search items to domain repositories.
// A nil slice (no "items" in the response) yields an empty result.
func toRepositories(items []*gh.Repository) ([]domain.Repository, error) {
	repos := make([]domain.Repository, 0, len(items))
	for i, item := range items {
		repo, err := toRepository(item)
		if err != nil {
			return nil, &ParseError{Op: fmt.Sprintf("decode item %d", i), Err: err}
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// toRepository converts a single search item.
// Identity, owner and popularity fields are required; description,
// language and creation time are optional.
func toRepository(item *gh.Repository) (domain.Repository, error) {
	if item == nil {
		return domain.Repository{}, fmt.Errorf("null item")
	}

	switch {
	case item.ID == nil:
		return domain.Repository{}, missingField("id")
	case item.Name == nil:
		return domain.Repository{}, missingField("name")
	case item.HTMLURL == nil:
		return domain.Repository{}, missingField("html_url")
	case item.StargazersCount == nil:
		return domain.Repository{}, missingField("stargazers_count")
	case item.Owner == nil:
		return domain.Repository{}, missingField("owner")
	case item.Owner.Login == nil:
		return domain.Repository{}, missingField("owner.login")
	case item.Owner.AvatarURL == nil:
		return domain.Repository{}, missingField("owner.avatar_url")
	}

	if item.GetStargazersCount() < 0 {
		return domain.Repository{}, fmt.Errorf("negative stargazers_count %d", item.GetStargazersCount())
	}

	repo := domain.Repository{
		ID:       item.GetID(),
		Name:     item.GetName(),
		FullName: item.GetFullName(),
		Owner: domain.Owner{
			Login:     item.Owner.GetLogin(),
			AvatarURL: item.Owner.GetAvatarURL(),
		},
		Stars:     item.GetStargazersCount(),
		HTMLURL:   item.GetHTMLURL(),
		Language:  item.GetLanguage(),
		CreatedAt: item.GetCreatedAt().Time,
	}
	if item.Description != nil {
		desc := item.GetDescription()
		repo.Description = &desc
	}

	return repo, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
