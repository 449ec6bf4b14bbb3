package accessgate

import (
	"context"
	"errors"

	"codeberg.org/solari/bff/internal/docstore"
)

// team and billing data read from the document store
type DirectorySource struct {
	dir *docstore.Directory
}

func NewDirectorySource(dir *docstore.Directory) *DirectorySource {
	return &DirectorySource{dir: dir}
}

func (s *DirectorySource) ResolveTeam(ctx context.Context, uid string) (string, error) {
	return s.dir.UserTeam(ctx, uid)
}

func (s *DirectorySource) SubscribeBilling(ctx context.Context, teamID string, fn func(status *string, err error)) (Subscription, error) {
	sub, err := s.dir.WatchTeam(ctx, teamID, func(team *docstore.Team, err error) {
		switch {
		case err != nil:
			fn(nil, err)
		case team == nil:
			fn(nil, nil)
		default:
			fn(team.BillingStatus, nil)
		}
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (s *DirectorySource) BillingStatus(ctx context.Context, teamID string) (*string, error) {
	team, err := s.dir.Team(ctx, teamID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return team.BillingStatus, nil
}
