package docstore

import (
	"fmt"
	"strings"
)

const (
	collectionUsers              = "users"
	collectionTeams              = "teams"
	collectionSlackInstallations = "slack_installations"
)

func UserPath(uid string) string {
	return collectionUsers + "/" + uid
}

func TeamPath(teamID string) string {
	return collectionTeams + "/" + teamID
}

// collection of a user's Slack installations inside a team
func SlackInstallationsPath(teamID, uid string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", collectionTeams, teamID, collectionUsers, uid, collectionSlackInstallations)
}

func SlackInstallationPath(teamID, uid, id string) string {
	return SlackInstallationsPath(teamID, uid) + "/" + id
}

// checks that path names a document (even number of non-empty segments)
func ValidateDocumentPath(path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	if len(segments)%2 != 0 {
		return fmt.Errorf("%w: %q is a collection path", ErrInvalidPath, path)
	}

	return nil
}

// checks that path names a collection (odd number of non-empty segments)
func ValidateCollectionPath(path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	if len(segments)%2 != 1 {
		return fmt.Errorf("%w: %q is a document path", ErrInvalidPath, path)
	}

	return nil
}

// returns the collection containing a document
func parentCollection(path string) string {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}

	return path[:i]
}

func documentID(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, "/")
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// rejects ids that would escape their path segment
func checkIDs(ids ...string) error {
	for _, id := range ids {
		if id == "" || id == "." || id == ".." || strings.Contains(id, "/") {
			return fmt.Errorf("%w: bad id %q", ErrInvalidPath, id)
		}
	}

	return nil
}
