package minutemail

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExpiresIn_MarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value ExpiresIn
		want  string
	}{
		{"minutes", ExpiresInMinutes(20), "20"},
		{"text", ExpiresInText("20m"), `"20m"`},
		{"text hours", ExpiresInText("1h"), `"1h"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExpiresIn_ZeroValue(t *testing.T) {
	t.Parallel()
	var zero ExpiresIn
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if ExpiresInMinutes(20).IsZero() {
		t.Error("constructed value should not report IsZero")
	}

	// The zero value must vanish from request bodies, not appear as null.
	wrapper := struct {
		ExpiresIn ExpiresIn `json:"expires_in,omitzero"`
	}{}
	got, err := json.Marshal(wrapper)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("Marshal() = %s, want {}", got)
	}
}

func TestOptions_Apply(t *testing.T) {
	t.Parallel()
	cfg := &clientConfig{}
	for _, opt := range []Option{
		WithBaseURL("https://gw.example.com"),
		WithTimeout(7 * time.Second),
		WithUserAgent("my-app/2.0"),
		WithThrottle(5, 2),
	} {
		opt(cfg)
	}

	if cfg.baseURL != "https://gw.example.com" {
		t.Errorf("baseURL = %s", cfg.baseURL)
	}
	if cfg.timeout != 7*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if cfg.userAgent != "my-app/2.0" {
		t.Errorf("userAgent = %s", cfg.userAgent)
	}
	if cfg.throttleRPS != 5 || cfg.throttleBurst != 2 {
		t.Errorf("throttle = %d/%d", cfg.throttleRPS, cfg.throttleBurst)
	}
}

func TestMailboxOptions_Apply(t *testing.T) {
	t.Parallel()
	cfg := &mailboxConfig{}
	for _, opt := range []MailboxOption{
		WithExpiresIn(ExpiresInMinutes(20)),
		WithRecoverable(true),
		WithTag("onboarding"),
	} {
		opt(cfg)
	}

	if cfg.expiresIn.IsZero() {
		t.Error("expiresIn not applied")
	}
	if cfg.recoverable == nil || !*cfg.recoverable {
		t.Error("recoverable not applied")
	}
	if cfg.tag != "onboarding" {
		t.Errorf("tag = %s", cfg.tag)
	}
}

func TestWithRecoverable_ExplicitFalse(t *testing.T) {
	t.Parallel()
	cfg := &mailboxConfig{}
	WithRecoverable(false)(cfg)
	if cfg.recoverable == nil {
		t.Fatal("explicit false should still set the field")
	}
	if *cfg.recoverable {
		t.Error("recoverable = true, want false")
	}
}
