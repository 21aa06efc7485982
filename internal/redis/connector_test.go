package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/logger"
)

func validOptions() ConnectOptions {
	return ConnectOptions{
		Addr:           "localhost:6379",
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    10 * time.Millisecond,
		WarnThreshold:  3,
	}
}

func TestConnectOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConnectOptions)
		wantErr bool
	}{
		{name: "valid", mutate: func(*ConnectOptions) {}},
		{name: "missing addr", mutate: func(o *ConnectOptions) { o.Addr = "" }, wantErr: true},
		{name: "zero connect timeout", mutate: func(o *ConnectOptions) { o.ConnectTimeout = 0 }, wantErr: true},
		{name: "zero retry interval", mutate: func(o *ConnectOptions) { o.RetryInterval = 0 }, wantErr: true},
		{name: "zero max wait", mutate: func(o *ConnectOptions) { o.MaxWait = 0 }, wantErr: true},
		{name: "zero ping timeout", mutate: func(o *ConnectOptions) { o.PingTimeout = 0 }, wantErr: true},
		{name: "negative warn threshold", mutate: func(o *ConnectOptions) { o.WarnThreshold = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestBackoffIsCapped(t *testing.T) {
	b := &backoff{next: 10 * time.Millisecond, max: 35 * time.Millisecond}
	want := []time.Duration{10, 20, 35, 35}
	for i, w := range want {
		if got := b.wait(); got != w*time.Millisecond {
			t.Errorf("wait() #%d = %v, want %v", i, got, w*time.Millisecond)
		}
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := validOptions()
	opts.PingTimeout = 0
	if _, err := New(context.Background(), opts, logger.New("error", false)); err == nil {
		t.Error("New() with invalid options should fail")
	}
}

func TestNewUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that dials the network")
	}

	opts := validOptions()
	opts.Addr = "127.0.0.1:1"
	opts.ConnectTimeout = 100 * time.Millisecond
	opts.DialTimeout = 20 * time.Millisecond

	if _, err := New(context.Background(), opts, logger.New("error", false)); err == nil {
		t.Error("New() against a closed port should fail")
	}
}
