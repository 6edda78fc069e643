package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// loginFormMarker appears in the login form's own markup; seeing it in a
// protected page means the portal bounced the session back to the login.
const loginFormMarker = "user[user_name]"

type authenticator struct {
	client *resty.Client
}

// csrfToken loads the login page and reads the portal's anti-forgery meta
// tag. The failure here is a portal availability problem, not a credential
// one, and keeps its own error kind through the whole login flow.
func (a *authenticator) csrfToken(ctx context.Context) (string, error) {
	res, err := a.client.R().
		SetContext(ctx).
		Get(loginPath)
	if err != nil {
		return "", serviceUnavailableError("Failed to get CSRF token", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return "", serviceUnavailableError("Failed to get CSRF token", err)
	}

	token, exists := doc.Find(`meta[name="csrf-token"]`).Attr("content")
	if !exists || token == "" {
		return "", serviceUnavailableError("Failed to get CSRF token", fmt.Errorf("csrf token not found"))
	}
	return token, nil
}

// login submits the credentials to the portal and verifies the session by
// probing the student record page. Redirects are followed and error-page
// re-renders (4xx) are treated as part of the normal flow; only the probe
// decides whether the session is authenticated.
func (a *authenticator) login(ctx context.Context, credentials LoginRequest) error {
	token, err := a.csrfToken(ctx)
	if err != nil {
		return err
	}

	_, err = a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("X-CSRF-Token", token).
		SetFormData(map[string]string{
			"utf8":               "✓",
			"authenticity_token": token,
			"user[user_name]":    credentials.Username,
			"user[password]":     credentials.Password,
		}).
		Post(loginPath)
	if err != nil {
		return unauthorizedError("Login failed - invalid credentials", err)
	}

	probe, err := a.client.R().
		SetContext(ctx).
		Get(studentRecordPath)
	if err != nil {
		return unauthorizedError("Login failed - invalid credentials", err)
	}
	if probe.StatusCode() != 200 || strings.Contains(string(probe.Body()), loginFormMarker) {
		return unauthorizedError("Login failed - invalid credentials", nil)
	}

	return nil
}
