package router

import (
	"net/http"

	"github.com/zee467/twitter-clone/app/controllers"
	"github.com/zee467/twitter-clone/app/middleware"
)

func New(pages *controllers.PagesController, auth *controllers.AuthController, register *controllers.RegisterController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/", pages.Index)
	mux.HandleFunc("/ping", pages.Ping)
	mux.HandleFunc("/timeline", pages.Timeline)
	mux.HandleFunc("/login", auth.Login)
	mux.HandleFunc("/register", register.Register)

	// session required
	mux.Handle("/profile", mw.RequireSession(http.HandlerFunc(pages.Profile)))
	mux.Handle("/logout", mw.RequireSession(http.HandlerFunc(auth.Logout)))

	return mux
}
