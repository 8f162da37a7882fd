package http

import (
	"time"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/user"
)

type credentialsReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func (r credentialsReq) toRegisterInput() user.RegisterInput {
	return user.RegisterInput{Username: r.Username, Password: r.Password}
}

func (r credentialsReq) toLoginInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

type userResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

type authResp struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        userResp  `json:"user"`
}

func (h *handler) newAuthResp(o user.AuthOutput) authResp {
	return authResp{
		AccessToken: o.AccessToken,
		ExpiresAt:   o.ExpiresAt,
		User:        newUserResp(o.User),
	}
}

func newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Username: u.Username, Role: u.Role(), IsAdmin: u.IsAdmin}
}

func newScopeResp(sc model.Scope) userResp {
	return userResp{ID: sc.UserID, Username: sc.Username, Role: sc.Role, IsAdmin: sc.IsAdmin}
}
