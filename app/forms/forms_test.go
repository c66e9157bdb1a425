package forms

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, filename string) *RegisterForm {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("profile_image", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("img"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	form, err := ParseRegister(req)
	require.NoError(t, err)
	return form
}

func TestRegisterFormValid(t *testing.T) {
	form := multipartRequest(t, map[string]string{
		"name": "Alice Liddell", "username": "alice", "password": "secret123",
	}, "avatar.png")
	assert.Nil(t, form.Validate())
	require.NotNil(t, form.Image)
	assert.Equal(t, "avatar.png", form.Image.Filename)
}

func TestRegisterFormMissingFields(t *testing.T) {
	form := multipartRequest(t, map[string]string{}, "")
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestRegisterFormLengthLimits(t *testing.T) {
	form := multipartRequest(t, map[string]string{
		"name":     strings.Repeat("a", 101),
		"username": strings.Repeat("b", 31),
		"password": "pw",
	}, "")
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "username")
	assert.NotContains(t, errs, "password")

	// Exactly at the limits is fine.
	form = multipartRequest(t, map[string]string{
		"name":     strings.Repeat("a", 100),
		"username": strings.Repeat("b", 30),
		"password": "pw",
	}, "")
	assert.Nil(t, form.Validate())
}

func TestLoginFormRemember(t *testing.T) {
	body := url.Values{"username": {"alice"}, "password": {"pw"}, "remember": {"1"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseLogin(req)
	require.NoError(t, err)
	assert.Nil(t, form.Validate())
	assert.True(t, form.Remember)

	body.Del("remember")
	req = httptest.NewRequest("POST", "/login", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form, err = ParseLogin(req)
	require.NoError(t, err)
	assert.False(t, form.Remember)
}

func TestLoginFormMissingFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form, err := ParseLogin(req)
	require.NoError(t, err)
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}
