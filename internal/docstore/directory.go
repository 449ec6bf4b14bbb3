package docstore

import (
	"context"
	"errors"
	"fmt"
)

// typed access to the users/teams layout on top of a Store
type Directory struct {
	store Store
}

func NewDirectory(store Store) *Directory {
	return &Directory{store: store}
}

func (d *Directory) Store() Store {
	return d.store
}

// returns the user document; ErrNotFound when absent
func (d *Directory) User(ctx context.Context, uid string) (*User, error) {
	if err := checkIDs(uid); err != nil {
		return nil, err
	}

	doc, err := d.store.Get(ctx, UserPath(uid))
	if err != nil {
		return nil, err
	}

	user := DecodeUser(uid, doc)
	return &user, nil
}

// returns the user's team id, "" when the user or the field does not exist
func (d *Directory) UserTeam(ctx context.Context, uid string) (string, error) {
	user, err := d.User(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read user %s: %w", uid, err)
	}

	return user.TeamID, nil
}

// records a signed-in user without touching an existing team assignment
func (d *Directory) UpsertUser(ctx context.Context, uid, email string) error {
	if err := checkIDs(uid); err != nil {
		return err
	}

	data := Document{}
	if email != "" {
		data[FieldEmail] = email
	}

	if err := d.store.Set(ctx, UserPath(uid), data); err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", uid, err)
	}

	return nil
}

// returns the team document; ErrNotFound when absent
func (d *Directory) Team(ctx context.Context, teamID string) (*Team, error) {
	if err := checkIDs(teamID); err != nil {
		return nil, err
	}

	doc, err := d.store.Get(ctx, TeamPath(teamID))
	if err != nil {
		return nil, err
	}

	team := DecodeTeam(teamID, doc)
	return &team, nil
}

// streams the team document; team is nil when the document does not exist
func (d *Directory) WatchTeam(ctx context.Context, teamID string, fn func(team *Team, err error)) (Subscription, error) {
	if err := checkIDs(teamID); err != nil {
		return nil, err
	}

	return d.store.Subscribe(ctx, TeamPath(teamID), func(snap Snapshot, err error) {
		if err != nil {
			fn(nil, err)
			return
		}

		if !snap.Exists {
			fn(nil, nil)
			return
		}

		team := DecodeTeam(teamID, snap.Data)
		fn(&team, nil)
	})
}

// clears Jira credentials and site details from the team document
func (d *Directory) DeleteJiraTokens(ctx context.Context, teamID string) error {
	if err := checkIDs(teamID); err != nil {
		return err
	}

	err := d.store.DeleteFields(ctx, TeamPath(teamID), JiraTokenFields...)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to clear jira tokens for team %s: %w", teamID, err)
	}

	return nil
}

// clears the team-level Slack bot token
func (d *Directory) DeleteSlackTokens(ctx context.Context, teamID string) error {
	if err := checkIDs(teamID); err != nil {
		return err
	}

	err := d.store.DeleteFields(ctx, TeamPath(teamID), SlackTokenFields...)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to clear slack tokens for team %s: %w", teamID, err)
	}

	return nil
}

func (d *Directory) SlackInstallations(ctx context.Context, teamID, uid string) ([]SlackInstallation, error) {
	if err := checkIDs(teamID, uid); err != nil {
		return nil, err
	}

	snaps, err := d.store.List(ctx, SlackInstallationsPath(teamID, uid))
	if err != nil {
		return nil, fmt.Errorf("failed to list slack installations: %w", err)
	}

	out := make([]SlackInstallation, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, DecodeSlackInstallation(teamID, uid, documentID(snap.Path), snap.Data))
	}

	return out, nil
}

func (d *Directory) DeleteSlackInstallation(ctx context.Context, teamID, uid, id string) error {
	if err := checkIDs(teamID, uid, id); err != nil {
		return err
	}

	if err := d.store.Delete(ctx, SlackInstallationPath(teamID, uid, id)); err != nil {
		return fmt.Errorf("failed to delete slack installation %s: %w", id, err)
	}

	return nil
}

// removes one installation and clears the team bot token once no member of
// the team has an installation left
func (d *Directory) DisconnectSlackInstallation(ctx context.Context, teamID, uid, id string) error {
	if err := d.DeleteSlackInstallation(ctx, teamID, uid, id); err != nil {
		return err
	}

	remaining, err := d.teamHasSlackInstallations(ctx, teamID, uid)
	if err != nil {
		return err
	}

	if remaining {
		return nil
	}

	return d.DeleteSlackTokens(ctx, teamID)
}

// checks uid and every user whose team is teamID
func (d *Directory) teamHasSlackInstallations(ctx context.Context, teamID, uid string) (bool, error) {
	members := []string{uid}

	users, err := d.store.List(ctx, collectionUsers)
	if err != nil {
		return false, fmt.Errorf("failed to list users: %w", err)
	}

	for _, snap := range users {
		member := documentID(snap.Path)
		if member != uid && DecodeUser(member, snap.Data).TeamID == teamID {
			members = append(members, member)
		}
	}

	for _, member := range members {
		installs, err := d.SlackInstallations(ctx, teamID, member)
		if err != nil {
			return false, err
		}

		if len(installs) > 0 {
			return true, nil
		}
	}

	return false, nil
}
