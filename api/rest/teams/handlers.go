package teams

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/errors"
	"github.com/gin-gonic/gin"
)

// resolves the caller's team id; writes the error response and returns "" on failure
func currentTeamID(c *gin.Context, dir *docstore.Directory) (string, string) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return "", ""
	}

	teamID, err := dir.UserTeam(c.Request.Context(), userID)
	if err != nil {
		errors.InternalError(c, "failed to resolve team", err)
		return "", ""
	}

	if teamID == "" {
		errors.NotFound(c, "team")
		return "", ""
	}

	return userID, teamID
}

// GetCurrentTeamHandler godoc
// @Summary Get current team
// @Description Team name, billing status and integration state of the caller's team
// @Tags teams
// @Produce json
// @Success 200 {object} TeamResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/teams/current [get]
// @Security BearerAuth
func GetCurrentTeamHandler(dir *docstore.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, teamID := currentTeamID(c, dir)
		if teamID == "" {
			return
		}

		team, err := dir.Team(c.Request.Context(), teamID)
		if stderrors.Is(err, docstore.ErrNotFound) {
			errors.NotFound(c, "team")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load team", err)
			return
		}

		c.JSON(http.StatusOK, TeamResponse{
			ID:             team.ID,
			Name:           team.Name,
			BillingStatus:  team.BillingStatus,
			JiraConnected:  team.JiraConnected,
			JiraSiteURL:    team.JiraSiteURL,
			SlackConnected: team.SlackBotToken,
		})
	}
}

// ListSlackInstallationsHandler godoc
// @Summary List Slack installations
// @Description Slack workspaces the caller installed for their team, without credentials
// @Tags teams
// @Produce json
// @Success 200 {object} SlackInstallationsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/teams/current/slack-installations [get]
// @Security BearerAuth
func ListSlackInstallationsHandler(dir *docstore.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, teamID := currentTeamID(c, dir)
		if teamID == "" {
			return
		}

		installs, err := dir.SlackInstallations(c.Request.Context(), teamID, userID)
		if err != nil {
			errors.InternalError(c, "failed to list slack installations", err)
			return
		}

		resp := SlackInstallationsResponse{
			Installations: make([]SlackInstallationResponse, 0, len(installs)),
		}

		for _, in := range installs {
			scopes := in.Scopes
			if scopes == nil {
				scopes = []string{}
			}

			resp.Installations = append(resp.Installations, SlackInstallationResponse{
				ID:            in.ID,
				SlackTeamID:   in.SlackTeamID,
				SlackTeamName: in.SlackTeamName,
				BotUserID:     in.BotUserID,
				Scopes:        scopes,
				HasBotToken:   in.HasBotToken,
				HasUserToken:  in.HasUserToken,
				InstalledAt:   in.InstalledAt,
			})
		}

		c.JSON(http.StatusOK, resp)
	}
}
