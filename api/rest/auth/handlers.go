package auth

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/docstore"
	"codeberg.org/solari/bff/internal/errors"
	"codeberg.org/solari/bff/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// gothic reads the provider from the query string
func withProvider(c *gin.Context) string {
	provider := c.Param("provider")

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	return provider
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with the given provider
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := withProvider(c)

		if !auth.ProviderEnabled(provider) {
			errors.ServiceUnavailable(c, "login provider not configured")
			return
		}

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description Completes the login, records the user, stores the token in the session cookie and redirects to the dashboard
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google)
// @Success 302 {string} string "Redirect to /app/dashboard"
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(dir *docstore.Directory, sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := withProvider(c)

		if !auth.ProviderEnabled(provider) {
			errors.ServiceUnavailable(c, "login provider not configured")
			return
		}

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		uid := gothUser.Provider + ":" + gothUser.UserID

		if err := dir.UpsertUser(c.Request.Context(), uid, gothUser.Email); err != nil {
			errors.InternalError(c, "failed to record user", err)
			return
		}

		token, err := auth.GenerateJWT(uid, gothUser.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		if err := sessions.SaveToken(c.Writer, c.Request, token); err != nil {
			errors.InternalError(c, "failed to save session", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("user signed in", "uid", uid, "provider", provider)

		c.Redirect(http.StatusFound, postLoginPath)
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the signed-in user and their team
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(dir *docstore.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		resp := UserResponse{UID: userID, Email: auth.GetUserEmail(c)}

		user, err := dir.User(c.Request.Context(), userID)
		switch {
		case stderrors.Is(err, docstore.ErrNotFound):
		case err != nil:
			errors.InternalError(c, "failed to load user", err)
			return
		default:
			resp.TeamID = user.TeamID
			if user.Email != "" {
				resp.Email = user.Email
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}

		if err := sessions.Clear(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear session cookie")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}
