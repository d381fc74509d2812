package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type echoHandler struct {
	lastBody string
	reply    string
}

func (h *echoHandler) HandleMessage(ctx context.Context, body string) string {
	h.lastBody = body
	return h.reply
}

func newTestServer(t *testing.T, handler MessageHandler) *Server {
	t.Helper()
	s := NewServer(":0", handler)
	t.Cleanup(func() { s.Shutdown(context.Background()) })
	return s
}

func postWebhook(t *testing.T, s *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRepliesWithTwiML(t *testing.T) {
	h := &echoHandler{reply: "✅ Saved: Lunch - $15.50\n📁 Category: Food"}
	s := newTestServer(t, h)

	rec := postWebhook(t, s, url.Values{
		"Body": {"Lunch 15.50"},
		"From": {"whatsapp:+15551234567"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/xml") {
		t.Errorf("Content-Type = %q, want text/xml", ct)
	}
	if h.lastBody != "Lunch 15.50" {
		t.Errorf("handler received body %q", h.lastBody)
	}

	body, _ := io.ReadAll(rec.Body)
	text := string(body)
	if !strings.Contains(text, "<Response>") || !strings.Contains(text, "</Message>") {
		t.Errorf("body is not TwiML: %s", text)
	}
	if !strings.Contains(text, "Category: Food") {
		t.Errorf("body missing reply text: %s", text)
	}
}

func TestWebhookEscapesReply(t *testing.T) {
	h := &echoHandler{reply: `reply with <tags> & "quotes"`}
	s := newTestServer(t, h)

	rec := postWebhook(t, s, url.Values{"Body": {"x 1"}})

	text := rec.Body.String()
	if strings.Contains(text, "<tags>") {
		t.Errorf("reply should be XML-escaped: %s", text)
	}
	if !strings.Contains(text, "&lt;tags&gt;") {
		t.Errorf("reply should contain escaped tags: %s", text)
	}
}

func TestWebhookRejectsGET(t *testing.T) {
	s := newTestServer(t, &echoHandler{})

	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "POST" {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &echoHandler{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", payload["status"])
	}
	if payload["timestamp"] == "" {
		t.Error("timestamp should be set")
	}
}

func TestIndexStatusPage(t *testing.T) {
	s := newTestServer(t, &echoHandler{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Status: Running") {
		t.Errorf("index body = %q", rec.Body.String())
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers should be set")
	}
}

func TestWebhookRateLimit(t *testing.T) {
	s := newTestServer(t, &echoHandler{reply: "ok"})

	var lastCode int
	for i := 0; i < 61; i++ {
		rec := postWebhook(t, s, url.Values{"Body": {"x 1"}})
		lastCode = rec.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("status after 61 requests = %d, want 429", lastCode)
	}
}

func TestRenderTwiML(t *testing.T) {
	out, err := renderTwiML("hello")
	if err != nil {
		t.Fatalf("renderTwiML() error = %v", err)
	}
	text := string(out)
	if !strings.HasPrefix(text, "<?xml") {
		t.Errorf("TwiML should start with XML header: %s", text)
	}
	if !strings.Contains(text, "<Response><Message>hello</Message></Response>") {
		t.Errorf("TwiML = %s", text)
	}
}
