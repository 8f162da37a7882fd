package http

import (
	"net/http"
	"time"

	"pokedex-srv/pkg/response"
	"pokedex-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Register
// @Description Create a viewer account and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsReq true "Credentials"
// @Success 200 {object} response.Resp{data=authResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /auth/register [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Register(ctx, req.toRegisterInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Register: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setAuthCookie(c, o.AccessToken, o.ExpiresAt)
	response.OK(c, h.newAuthResp(o))
}

// @Summary Login
// @Description Exchange credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsReq true "Credentials"
// @Success 200 {object} response.Resp{data=authResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Login(ctx, req.toLoginInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setAuthCookie(c, o.AccessToken, o.ExpiresAt)
	response.OK(c, h.newAuthResp(o))
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 401 {object} response.Resp
// @Router /auth/me [get]
func (h *handler) Me(c *gin.Context) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newScopeResp(sc))
}

func (h *handler) setAuthCookie(c *gin.Context, token string, expiresAt time.Time) {
	if h.cookie.Name == "" {
		return
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", false, true)
}
