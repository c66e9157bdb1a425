package forms

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxUploadBytes = 10 << 20

// Errors maps a form field to its validation message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

type RegisterForm struct {
	Name     string
	Username string
	Password string
	Image    *multipart.FileHeader
}

func ParseRegister(r *http.Request) (*RegisterForm, error) {
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	f := &RegisterForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	if r.MultipartForm != nil {
		if fhs := r.MultipartForm.File["profile_image"]; len(fhs) > 0 {
			f.Image = fhs[0]
		}
	}
	return f, nil
}

func (f *RegisterForm) Validate() Errors {
	errs := Errors{}
	if f.Name == "" {
		errs["name"] = "A full name is required."
	} else if utf8.RuneCountInString(f.Name) > 100 {
		errs["name"] = "Your name can't be more than 100 characters."
	}
	if f.Username == "" {
		errs["username"] = "Username is required."
	} else if utf8.RuneCountInString(f.Username) > 30 {
		errs["username"] = "Your username can't be more than 30 characters."
	}
	if f.Password == "" {
		errs["password"] = "A password is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type LoginForm struct {
	Username string
	Password string
	Remember bool
}

func ParseLogin(r *http.Request) (*LoginForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Remember: r.FormValue("remember") != "",
	}, nil
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if f.Username == "" {
		errs["username"] = "Username is required."
	}
	if f.Password == "" {
		errs["password"] = "A password is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
