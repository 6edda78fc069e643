package main

import (
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

const (
	loginPath         = "/login"
	studentRecordPath = "/student_record"
)

// newPortalClient builds a session-bearing client for one extraction run.
// Every call gets a fresh cookie jar so sessions are never shared between
// concurrent requests.
func newPortalClient(cfg Config) (*resty.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(cfg.PortalBaseURL)
	client.SetCookieJar(jar)
	client.SetTimeout(cfg.RequestTimeout)
	client.SetHeaders(map[string]string{
		"User-Agent":                cfg.UserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	})

	return client, nil
}
