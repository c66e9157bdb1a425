package controllers

import (
	"net/http"

	"github.com/zee467/twitter-clone/app/dto"
	"github.com/zee467/twitter-clone/app/middleware"
	"github.com/zee467/twitter-clone/app/services"
	"github.com/zee467/twitter-clone/app/session"
	"github.com/zee467/twitter-clone/app/views"
)

type PagesController struct {
	Views    *views.Renderer
	Users    *services.UserService
	Sessions *session.Manager
}

func NewPagesController(v *views.Renderer, users *services.UserService, sessions *session.Manager) *PagesController {
	return &PagesController{Views: v, Users: users, Sessions: sessions}
}

func (c *PagesController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// Index is the landing page with the login form. Logged-in users go straight
// to their profile.
func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if c.Sessions.Current(r) != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	c.Views.Render(w, http.StatusOK, "index.html", dto.LoginPage{Page: dto.Page{Title: "Log in"}})
}

func (c *PagesController) Timeline(w http.ResponseWriter, r *http.Request) {
	loggedIn := c.Sessions.Current(r) != nil
	c.Views.Render(w, http.StatusOK, "timeline.html", dto.Page{Title: "Timeline", LoggedIn: loggedIn})
}

func (c *PagesController) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	u, err := c.Users.GetByID(claims.UserID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	c.Views.Render(w, http.StatusOK, "profile.html", dto.ProfilePage{
		Page:   dto.Page{Title: u.Name, LoggedIn: true},
		Name:   u.Name,
		User:   u.Username,
		Image:  u.Image,
		Joined: u.CreatedAt.Format("2 January 2006"),
	})
}
