// Package apitest runs an in-memory stand-in for the fitness REST API.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

// Credentials of the user every server starts with.
const (
	Token    = "test-token"
	Name     = "Ada"
	Email    = "ada@example.com"
	Password = "correct horse"
)

type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type failure struct {
	status    int
	remaining int
}

type account struct {
	id       string
	password string
	profile  map[string]any
}

type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	accounts map[string]*account
	tokens   map[string]string
	workouts []map[string]any
	foods    []map[string]any
	goals    []map[string]any
	failures map[string]*failure
	delays   map[string]time.Duration
	requests []Request
	nextID   int
}

func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		accounts: map[string]*account{},
		tokens:   map[string]string{},
		failures: map[string]*failure{},
		delays:   map[string]time.Duration{},
	}
	s.accounts[Email] = &account{
		id:       "user-0",
		password: Password,
		profile:  map[string]any{"name": Name, "email": Email},
	}
	s.tokens[Token] = Email

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.record, s.inject)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireToken)
	authed.HandleFunc("/auth/me", s.me).Methods(http.MethodGet)
	authed.HandleFunc("/users/profile", s.profile).Methods(http.MethodGet, http.MethodPut)
	for _, c := range []struct {
		path   string
		prefix string
		items  *[]map[string]any
	}{
		{path: "/workouts", prefix: "workout", items: &s.workouts},
		{path: "/foods", prefix: "food", items: &s.foods},
		{path: "/goals", prefix: "goal", items: &s.goals},
	} {
		authed.HandleFunc(c.path, s.list(c.items)).Methods(http.MethodGet)
		authed.HandleFunc(c.path, s.create(c.prefix, c.items)).Methods(http.MethodPost)
		authed.HandleFunc(c.path+"/{id}", s.patch(c.items)).Methods(http.MethodPatch)
		authed.HandleFunc(c.path+"/{id}", s.remove(c.items)).Methods(http.MethodDelete)
	}

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

func (s *Server) HTTPClient() *http.Client {
	return s.srv.Client()
}

func (s *Server) SeedWorkouts(items ...map[string]any) {
	s.seed(&s.workouts, "workout", items)
}

func (s *Server) SeedFoods(items ...map[string]any) {
	s.seed(&s.foods, "food", items)
}

func (s *Server) SeedGoals(items ...map[string]any) {
	s.seed(&s.goals, "goal", items)
}

func (s *Server) Workouts() []map[string]any { return s.snapshot(&s.workouts) }
func (s *Server) Foods() []map[string]any    { return s.snapshot(&s.foods) }
func (s *Server) Goals() []map[string]any    { return s.snapshot(&s.goals) }

// Fail makes every matching request answer with status.
func (s *Server) Fail(method, path string, status int) {
	s.FailN(method, path, status, -1)
}

// FailN makes the next n matching requests answer with status.
func (s *Server) FailN(method, path string, status, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = &failure{status: status, remaining: n}
}

// Delay holds matching requests for d or until the client gives up.
func (s *Server) Delay(method, path string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[method+" "+path] = d
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) seed(items *[]map[string]any, prefix string, in []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range in {
		item = maps.Clone(item)
		if _, ok := item["_id"]; !ok {
			item["_id"] = s.newID(prefix)
		}
		*items = append(*items, item)
	}
}

func (s *Server) snapshot(items *[]map[string]any) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(*items))
	for _, item := range *items {
		out = append(out, maps.Clone(item))
	}
	return out
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func routeKey(r *http.Request) string {
	return r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, "/api"),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := routeKey(r)
		s.mu.Lock()
		delay := s.delays[key]
		status := 0
		if f, ok := s.failures[key]; ok && f.remaining != 0 {
			status = f.status
			if f.remaining > 0 {
				f.remaining--
			}
		}
		s.mu.Unlock()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if status != 0 {
			writeJSON(w, status, map[string]string{"message": "injected failure"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		_, ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not authorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) currentAccount(r *http.Request) (string, *account) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	email := s.tokens[token]
	return email, s.accounts[email]
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Email == "" || in.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "name, email and password are required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[in.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "user already exists"})
		return
	}
	acc := &account{
		id:       s.newID("user"),
		password: in.Password,
		profile:  map[string]any{"name": in.Name, "email": in.Email},
	}
	s.accounts[in.Email] = acc
	token := "token-" + acc.id
	s.tokens[token] = in.Email
	writeJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  map[string]any{"_id": acc.id, "name": in.Name, "email": in.Email},
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[in.Email]
	if !ok || acc.password != in.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}
	token := "token-" + acc.id
	s.tokens[token] = in.Email
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"_id": acc.id, "name": acc.profile["name"], "email": in.Email},
	})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, acc := s.currentAccount(r)
	writeJSON(w, http.StatusOK, map[string]any{"_id": acc.id, "name": acc.profile["name"], "email": email})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, acc := s.currentAccount(r)
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, acc.profile)
		return
	}
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid profile"})
		return
	}
	maps.Copy(acc.profile, in)
	writeJSON(w, http.StatusOK, map[string]any{"message": "profile updated", "user": acc.profile})
}

func (s *Server) list(items *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.snapshot(items))
	}
}

func (s *Server) create(prefix string, items *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
			return
		}
		s.mu.Lock()
		in["_id"] = s.newID(prefix)
		in["createdAt"] = time.Now().UTC().Format(time.RFC3339)
		*items = append(*items, in)
		out := maps.Clone(in)
		s.mu.Unlock()
		writeJSON(w, http.StatusCreated, out)
	}
}

func (s *Server) patch(items *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
			return
		}
		id := mux.Vars(r)["id"]
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, item := range *items {
			if item["_id"] == id {
				maps.Copy(item, in)
				writeJSON(w, http.StatusOK, maps.Clone(item))
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (s *Server) remove(items *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, item := range *items {
			if item["_id"] == id {
				*items = append((*items)[:i], (*items)[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
