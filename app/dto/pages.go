package dto

// Page carries the fields every template's layout expects.
type Page struct {
	Title    string
	LoggedIn bool
}

type LoginPage struct {
	Page
	Username string
	Error    string
}

type RegisterPage struct {
	Page
	Name     string
	Username string
	Errors   map[string]string
}

type ProfilePage struct {
	Page
	Name   string
	User   string
	Image  string
	Joined string
}
