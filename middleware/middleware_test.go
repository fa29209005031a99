package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
)

func newSignedRouter(publicURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/myapp.php", TwilioSignature("12345", publicURL, adapters.NewZerologWrapper()), func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("CallSid"))
	})
	return router
}

func TestTwilioSignature(t *testing.T) {
	// Reference example from Twilio's webhook security documentation.
	const valid = "0/KCTR6DLpKmkAf8muzZqo1nDgQ="
	form := url.Values{
		"CallSid": {"CA1234567890ABCDE"},
		"Caller":  {"+12349013030"},
		"Digits":  {"1234"},
		"From":    {"+12349013030"},
		"To":      {"+18005551212"},
	}

	tests := []struct {
		name      string
		publicURL string
		signature string
		body      url.Values
		expected  int
	}{
		{name: "valid", publicURL: "https://mycompany.com/", signature: valid, body: form, expected: http.StatusOK},
		{name: "explicit default port", publicURL: "https://mycompany.com:443", signature: valid, body: form, expected: http.StatusOK},
		{name: "missing", publicURL: "https://mycompany.com", signature: "", body: form, expected: http.StatusForbidden},
		{name: "tampered signature", publicURL: "https://mycompany.com", signature: "AAAA" + valid[4:], body: form, expected: http.StatusForbidden},
		{name: "tampered body", publicURL: "https://mycompany.com", signature: valid, body: url.Values{"CallSid": {"CA0"}}, expected: http.StatusForbidden},
		{name: "other host", publicURL: "https://example.ngrok.app", signature: valid, body: form, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/myapp.php?foo=1&bar=2", strings.NewReader(tt.body.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.signature != "" {
				req.Header.Set(TwilioSignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()
			newSignedRouter(tt.publicURL).ServeHTTP(w, req)
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, w.Code)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")
	handler := &authHandler{keyfunc: func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}}

	router := gin.New()
	router.POST("/process_audio/", handler.AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserIDKey))
	})

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scopes: "audio:upload",
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{name: "valid token", header: "Bearer " + signed, expected: http.StatusOK},
		{name: "missing header", header: "", expected: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", expected: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/process_audio/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, w.Code)
			}
			if tt.expected == http.StatusOK && w.Body.String() != "user-1" {
				t.Fatalf("unexpected subject %q", w.Body.String())
			}
		})
	}
}
