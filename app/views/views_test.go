package views

import (
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zee467/twitter-clone/app/dto"
)

func TestEmbeddedTemplatesRender(t *testing.T) {
	r, err := New("", false, zerolog.Nop())
	require.NoError(t, err)

	cases := []struct {
		name string
		data any
		want string
	}{
		{"index.html", dto.LoginPage{Page: dto.Page{Title: "Log in"}, Error: "nope"}, "nope"},
		{"register.html", dto.RegisterPage{Page: dto.Page{Title: "Sign up"}, Errors: map[string]string{"username": "taken"}}, "taken"},
		{"profile.html", dto.ProfilePage{Page: dto.Page{Title: "Alice", LoggedIn: true}, Name: "Alice", User: "alice", Joined: "1 May 2024"}, "@alice"},
		{"timeline.html", dto.Page{Title: "Timeline"}, "Timeline"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.Render(w, 200, tc.name, tc.data)
		assert.Equal(t, 200, w.Code, tc.name)
		assert.Contains(t, w.Body.String(), tc.want, tc.name)
	}
}

func TestImageEscaped(t *testing.T) {
	r, err := New("", false, zerolog.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.Render(w, 200, "profile.html", dto.ProfilePage{
		Page:  dto.Page{Title: "x"},
		Name:  `<script>alert(1)</script>`,
		User:  "x",
		Image: "https://img.example.com/twitter-clone/a.png",
	})
	body := w.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "https://img.example.com/twitter-clone/a.png")
}
