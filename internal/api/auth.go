package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

type User struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	u.ID = r.Get("_id").String()
	if u.ID == "" {
		u.ID = r.Get("id").String()
	}
	u.Name = strings.TrimSpace(r.Get("name").String())
	u.Email = strings.TrimSpace(r.Get("email").String())
	return nil
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Profile struct {
	Name       string  `json:"name,omitempty" yaml:"name"`
	Email      string  `json:"email,omitempty" yaml:"email"`
	Age        int     `json:"age,omitempty" yaml:"age"`
	HeightCm   float64 `json:"height,omitempty" yaml:"height_cm"`
	WeightKg   float64 `json:"weight,omitempty" yaml:"weight_kg"`
	Preference string  `json:"preference,omitempty" yaml:"preference"`
}

// UnmarshalJSON merges the fields present in data into p. The profile form
// posted raw input strings, so numbers may come back quoted, and updates may
// be wrapped in a "user" object.
func (p *Profile) UnmarshalJSON(data []byte) error {
	r := gjson.ParseBytes(data)
	if user := r.Get("user"); user.IsObject() {
		r = user
	}
	if v := r.Get("name"); v.Exists() {
		p.Name = strings.TrimSpace(v.String())
	}
	if v := r.Get("email"); v.Exists() {
		p.Email = strings.TrimSpace(v.String())
	}
	if v := r.Get("age"); v.Exists() {
		p.Age = int(v.Int())
	}
	if v := r.Get("height"); v.Exists() {
		p.HeightCm = v.Float()
	}
	if v := r.Get("weight"); v.Exists() {
		p.WeightKg = v.Float()
	}
	if v := r.Get("preference"); v.Exists() {
		p.Preference = strings.TrimSpace(v.String())
	}
	return nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	return c.authenticate(ctx, "/auth/register", map[string]string{"name": name, "email": email, "password": password})
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return c.authenticate(ctx, "/auth/login", map[string]string{"email": email, "password": password})
}

func (c *Client) authenticate(ctx context.Context, path string, payload map[string]string) (AuthResult, error) {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return AuthResult{}, err
	}
	var out AuthResult
	if err := decodeInto(http.MethodPost, path, body, &out); err != nil {
		return AuthResult{}, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return AuthResult{}, fmt.Errorf("%s response did not include a token", path)
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context) (User, error) {
	body, err := c.do(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	var out User
	if err := decodeInto(http.MethodGet, "/auth/me", body, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/profile", nil)
	if err != nil {
		return Profile{}, err
	}
	var out Profile
	if err := decodeInto(http.MethodGet, "/users/profile", body, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in Profile) (Profile, error) {
	body, err := c.do(ctx, http.MethodPut, "/users/profile", in)
	if err != nil {
		return Profile{}, err
	}
	out := in
	if err := decodeInto(http.MethodPut, "/users/profile", body, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}
