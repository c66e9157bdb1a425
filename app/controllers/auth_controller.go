package controllers

import (
	"net/http"

	"github.com/zee467/twitter-clone/app/dto"
	"github.com/zee467/twitter-clone/app/forms"
	"github.com/zee467/twitter-clone/app/services"
	"github.com/zee467/twitter-clone/app/session"
	"github.com/zee467/twitter-clone/app/views"
)

// loginFailedMsg is deliberately the same for an unknown username and a
// wrong password.
const loginFailedMsg = "Invalid username or password."

type AuthController struct {
	Views    *views.Renderer
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(v *views.Renderer, users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Views: v, Users: users, Sessions: sessions}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	form, err := forms.ParseLogin(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if errs := form.Validate(); errs != nil {
		c.renderFailed(w, http.StatusUnprocessableEntity, form.Username)
		return
	}

	u, err := c.Users.ValidateCredentials(form.Username, form.Password)
	if err != nil {
		c.renderFailed(w, http.StatusUnauthorized, form.Username)
		return
	}

	if err := c.Sessions.Start(w, r, u, form.Remember); err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (c *AuthController) renderFailed(w http.ResponseWriter, status int, username string) {
	c.Views.Render(w, status, "index.html", dto.LoginPage{
		Page:     dto.Page{Title: "Log in"},
		Username: username,
		Error:    loginFailedMsg,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
