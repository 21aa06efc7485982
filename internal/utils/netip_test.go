package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseHostNoPort(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"1.2.3.4":       "1.2.3.4",
		"1.2.3.4:8080":  "1.2.3.4",
		"[::1]:443":     "::1",
		"[2001:db8::1]": "2001:db8::1",
		"2001:db8::1":   "2001:db8::1",
	}
	for in, want := range tests {
		if got := ParseHostNoPort(in); got != want {
			t.Errorf("ParseHostNoPort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{
			name: "remote addr only",
			want: "192.0.2.1",
		},
		{
			name:    "headers ignored without trust",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:    "192.0.2.1",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.2", "X-Forwarded-For": "203.0.113.7"},
			trustProxy: true,
			want:       "198.51.100.2",
		},
		{
			name:       "first forwarded for",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			trustProxy: true,
			want:       "203.0.113.7",
		},
		{
			name:       "real ip",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			trustProxy: true,
			want:       "203.0.113.9",
		},
		{
			name:       "trusted but no headers",
			trustProxy: true,
			want:       "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = "192.0.2.1:54321"
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 127.0.0.1 ", "::1", "not-an-ip", ""})
	if m.IsEmpty() {
		t.Fatal("IsEmpty() = true, want false")
	}

	tests := map[string]bool{
		"10.1.2.3":         true,
		"127.0.0.1":        true,
		"::ffff:127.0.0.1": true,
		"::1":              true,
		"127.0.0.2":        false,
		"192.168.1.1":      false,
		"garbage":          false,
		"":                 false,
	}
	for ip, want := range tests {
		if got := m.Allow(ip); got != want {
			t.Errorf("Allow(%q) = %v, want %v", ip, got, want)
		}
	}

	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("NewIPMatcher(nil).IsEmpty() = false, want true")
	}
}
