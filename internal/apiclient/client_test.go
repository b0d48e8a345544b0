package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spec-kit/rental-console/internal/domain"
	"github.com/spec-kit/rental-console/internal/events"
	"github.com/spec-kit/rental-console/internal/observability"
	"github.com/spec-kit/rental-console/internal/persistence"
	"github.com/spec-kit/rental-console/internal/session"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

type capture struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *capture) Publish(_ context.Context, e events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

func (c *capture) failures() []events.RequestFailedPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []events.RequestFailedPayload
	for _, e := range c.events {
		if p, ok := e.Payload.(events.RequestFailedPayload); ok {
			out = append(out, p)
		}
	}
	return out
}

func signedIn(t *testing.T) (*session.Store, persistence.KeyValueStore) {
	t.Helper()
	kv := persistence.NewMemoryStore()
	store := session.NewStore(context.Background(), kv)
	err := store.SetIdentity(context.Background(), &domain.UserVO{
		ID:       1,
		UserName: "Ada",
		UserType: "1",
		Token:    &domain.TokenInfo{TokenName: "sa-tok", TokenValue: "abc"},
	})
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}
	return store, kv
}

func newTestClient(t *testing.T, handler http.HandlerFunc, sess Session, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", sess, opts...), srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestSendUnwrapsEnvelope(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/wrapped":
			writeJSON(w, http.StatusOK, `{"code":0,"message":"ok","data":{"id":"12","title":"Spring sale"}}`)
		case "/api/code-only":
			writeJSON(w, http.StatusOK, `{"code":0}`)
		case "/api/null-data":
			writeJSON(w, http.StatusOK, `{"code":0,"data":null}`)
		case "/api/bare":
			writeJSON(w, http.StatusOK, `[{"id":1},{"id":2}]`)
		case "/api/empty":
			w.WriteHeader(http.StatusNoContent)
		}
	}, store)
	ctx := context.Background()

	news, err := Do[*domain.NewsVO](ctx, client, Request{Path: "/wrapped"})
	if err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if news == nil || news.ID != 12 || news.Title != "Spring sale" {
		t.Fatalf("unexpected payload %+v", news)
	}

	res, err := client.Send(ctx, Request{Path: "/code-only"})
	if err != nil {
		t.Fatalf("code only: %v", err)
	}
	if !res.Enveloped || res.Envelope.Code == nil || *res.Envelope.Code != 0 || res.Envelope.HasData || res.Data != nil {
		t.Fatalf("unexpected result for {code:0}: %+v", res)
	}

	res, err = client.Send(ctx, Request{Path: "/null-data"})
	if err != nil {
		t.Fatalf("null data: %v", err)
	}
	if !res.Envelope.HasData || string(res.Data) != "null" {
		t.Fatalf("present null data must be kept, got %+v", res)
	}
	if v, err := Do[*domain.NewsVO](ctx, client, Request{Path: "/null-data"}); err != nil || v != nil {
		t.Fatalf("null data should decode to nil, got %+v err=%v", v, err)
	}

	ids, err := Do[[]map[string]int](ctx, client, Request{Path: "/bare"})
	if err != nil || len(ids) != 2 {
		t.Fatalf("bare body should be passed through, got %v err=%v", ids, err)
	}

	if err := Exec(ctx, client, Request{Method: http.MethodDelete, Path: "/empty"}); err != nil {
		t.Fatalf("empty body: %v", err)
	}
}

func TestSendStatusTaxonomy(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{name: "forbidden", status: 403, code: apperrors.CodeForbidden},
		{name: "not found", status: 404, code: apperrors.CodeNotFound},
		{name: "server error", status: 503, code: apperrors.CodeServerError},
		{name: "other with message", status: 409, body: `{"code":40900,"message":"car already rented"}`, code: apperrors.CodeRequestFailed, message: "car already rented"},
		{name: "other without message", status: 400, body: `oops`, code: apperrors.CodeRequestFailed, message: "request failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := signedIn(t)
			pub := &capture{}
			metrics := observability.NewMetrics()
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			}, store, WithPublisher(pub), WithMetrics(metrics))

			_, err := client.Send(context.Background(), Request{Path: "/resource/cars"})
			var derr *apperrors.DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if derr.Code != tc.code {
				t.Fatalf("code = %s, want %s", derr.Code, tc.code)
			}
			if tc.message != "" && derr.Message != tc.message {
				t.Fatalf("message = %q, want %q", derr.Message, tc.message)
			}
			if !store.IsAuthenticated() {
				t.Fatalf("only a 401 may clear the session")
			}
			failures := pub.failures()
			if len(failures) != 1 || failures[0].Status != tc.status || failures[0].Code != tc.code {
				t.Fatalf("expected one failure notice, got %+v", failures)
			}
			if snap := metrics.Snapshot(); len(snap.Errors) != 1 {
				t.Fatalf("expected error counter, got %+v", snap)
			}
		})
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	store, kv := signedIn(t)
	pub := &capture{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":40100,"message":"not logged in"}`)
	}, store, WithPublisher(pub))

	_, err := client.Send(context.Background(), Request{Path: "/system/dashboard/overview"})
	if !apperrors.IsCode(err, apperrors.CodeUnauthorized) {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if store.IsAuthenticated() || store.Identity() != nil {
		t.Fatalf("session survived a 401: %+v", store.Summary())
	}
	for _, key := range []string{session.KeyTokenName, session.KeyTokenValue, session.KeyUserInfo} {
		if _, ok, _ := kv.Get(context.Background(), key); ok {
			t.Fatalf("durable key %s survived a 401", key)
		}
	}
	if len(pub.failures()) != 1 {
		t.Fatalf("expected one failure notice")
	}
}

func TestNetworkAndConfigErrors(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, store).Send(context.Background(), Request{Path: "/portal/cars"})
	if !apperrors.IsCode(err, apperrors.CodeNetworkError) {
		t.Fatalf("expected NETWORK_ERROR, got %v", err)
	}

	_, err = NewClient("", store).Send(context.Background(), Request{Path: "/portal/cars"})
	if !apperrors.IsCode(err, apperrors.CodeConfigError) {
		t.Fatalf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestCredentialHeaderAndRotation(t *testing.T) {
	store, kv := signedIn(t)
	var (
		mu   sync.Mutex
		seen []string
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("sa-tok"))
		mu.Unlock()
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing request id")
		}
		if r.URL.Path == "/api/rotate" {
			// lower-case name as some servers send it
			w.Header()["sa-tok"] = []string{"xyz"}
		}
		writeJSON(w, http.StatusOK, `{"code":0,"data":{}}`)
	}, store)
	ctx := context.Background()

	if _, err := client.Send(ctx, Request{Path: "/rotate"}); err != nil {
		t.Fatalf("rotate call: %v", err)
	}
	if _, err := client.Send(ctx, Request{Path: "/after"}); err != nil {
		t.Fatalf("follow-up call: %v", err)
	}
	custom := http.Header{}
	custom.Set("Sa-Tok", "caller-supplied")
	if _, err := client.Send(ctx, Request{Path: "/custom", Header: custom}); err != nil {
		t.Fatalf("custom header call: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"abc", "xyz", "caller-supplied"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("call %d sent %q, want %q (all: %v)", i, seen[i], want[i], seen)
		}
	}
	if v, _, _ := kv.Get(ctx, session.KeyTokenValue); v != "xyz" {
		t.Fatalf("rotated value not persisted, got %q", v)
	}
}

func TestNoCredentialHeaderWhenSignedOut(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if len(r.Header.Values("sa-tok")) != 0 {
			t.Errorf("unexpected credential header")
		}
		w.Header().Set("sa-tok", "xyz")
		writeJSON(w, http.StatusOK, `{"code":0}`)
	}, store)

	if _, err := client.Send(context.Background(), Request{Path: "/portal/news"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("a response header alone must not create a session")
	}
}

func TestJSONBodyAndQuery(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if got := r.URL.Query().Get("current"); got != "2" {
			t.Errorf("current = %q", got)
		}
		var body domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserAccount != "ada" {
			t.Errorf("body = %+v err=%v", body, err)
		}
		writeJSON(w, http.StatusOK, `{"code":0,"data":true}`)
	}, store)

	ok, err := Do[bool](context.Background(), client, Request{
		Method: "post",
		Path:   "/user/login",
		Query:  domain.PageQuery{Current: 2},
		Body:   domain.LoginRequest{UserAccount: "ada", UserPassword: "pw"},
	})
	if err != nil || !ok {
		t.Fatalf("do: %v %v", ok, err)
	}
}

func TestMultipartUpload(t *testing.T) {
	store, _ := signedIn(t)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary=") {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		if string(b) != "png-bytes" || header.Filename != "cover.png" {
			t.Errorf("upload = %q %q", b, header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("part content type = %q", ct)
		}
		writeJSON(w, http.StatusOK, `{"code":0,"data":{"bucket":"cars","objectKey":"c/1.png","url":"http://127.0.0.1:9000/cars/c/1.png"}}`)
	}, store)

	file, err := Do[*domain.StorageFileVO](context.Background(), client, Request{
		Method: http.MethodPost,
		Path:   "/resource/cars/cover/upload",
		File:   &FilePart{FileName: "cover.png", ContentType: "image/png", Reader: strings.NewReader("png-bytes")},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if file.ObjectKey != "c/1.png" {
		t.Fatalf("unexpected file %+v", file)
	}
}

func TestDoReportsUndecodablePayload(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"code":0,"data":"not an object"}`)
	}, store)

	_, err := Do[*domain.CarInfoVO](context.Background(), client, Request{Path: "/resource/cars/1"})
	if !apperrors.IsCode(err, apperrors.CodeInvalidResponse) {
		t.Fatalf("expected INVALID_RESPONSE, got %v", err)
	}
}
