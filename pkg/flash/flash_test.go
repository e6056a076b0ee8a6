package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setAndExtract(t *testing.T, secret string, msg Message) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	Set(rec, secret, msg)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestFlashRoundTrip(t *testing.T) {
	cookie := setAndExtract(t, testSecret, Message{Text: "Saved.", Category: CategorySuccess})
	assert.Equal(t, cookieName, cookie.Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	msg := Pop(rec, req, testSecret)
	require.NotNil(t, msg)
	assert.Equal(t, "Saved.", msg.Text)
	assert.Equal(t, CategorySuccess, msg.Category)

	// Pop must clear the cookie so the flash shows once.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestFlashRejectsWrongSecret(t *testing.T) {
	cookie := setAndExtract(t, testSecret, Message{Text: "hi", Category: CategoryDanger})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	assert.Nil(t, Pop(httptest.NewRecorder(), req, "other-secret"))
}

func TestFlashRejectsTamperedCookie(t *testing.T) {
	cookie := setAndExtract(t, testSecret, Message{Text: "hi", Category: CategoryDanger})
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	assert.Nil(t, Pop(httptest.NewRecorder(), req, testSecret))
}

func TestFlashPopWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Pop(httptest.NewRecorder(), req, testSecret))
}
