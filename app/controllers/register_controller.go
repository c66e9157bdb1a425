package controllers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zee467/twitter-clone/app/dto"
	"github.com/zee467/twitter-clone/app/forms"
	"github.com/zee467/twitter-clone/app/services"
	"github.com/zee467/twitter-clone/app/session"
	"github.com/zee467/twitter-clone/app/views"
)

type RegisterController struct {
	Views    *views.Renderer
	Users    *services.UserService
	Sessions *session.Manager
	Log      zerolog.Logger
}

func NewRegisterController(v *views.Renderer, users *services.UserService, sessions *session.Manager, log zerolog.Logger) *RegisterController {
	return &RegisterController{Views: v, Users: users, Sessions: sessions, Log: log}
}

func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.Views.Render(w, http.StatusOK, "register.html", dto.RegisterPage{Page: dto.Page{Title: "Sign up"}})
	case http.MethodPost:
		c.submit(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *RegisterController) submit(w http.ResponseWriter, r *http.Request) {
	form, err := forms.ParseRegister(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if errs := form.Validate(); errs != nil {
		c.renderForm(w, http.StatusUnprocessableEntity, form, errs)
		return
	}

	u, err := c.Users.Register(r.Context(), form.Name, form.Username, form.Password, form.Image)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.renderForm(w, http.StatusUnprocessableEntity, form, forms.Errors{"username": "That username is taken."})
			return
		}
		c.Log.Error().Err(err).Str("username", form.Username).Msg("registration failed")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// New accounts are logged in right away.
	if err := c.Sessions.Start(w, r, u, false); err != nil {
		c.Log.Error().Err(err).Uint("user_id", u.ID).Msg("session start after registration failed")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (c *RegisterController) renderForm(w http.ResponseWriter, status int, form *forms.RegisterForm, errs forms.Errors) {
	c.Views.Render(w, status, "register.html", dto.RegisterPage{
		Page:     dto.Page{Title: "Sign up"},
		Name:     form.Name,
		Username: form.Username,
		Errors:   errs,
	})
}
