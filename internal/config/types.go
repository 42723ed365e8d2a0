package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration that unmarshals from the human-readable
// form ("60s", "2m") used in YAML config and environment variables.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("duration cannot be negative: %s", text)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration().String()), nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration().String())
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// redactedPlaceholder replaces a non-empty Secret on every output path.
const redactedPlaceholder = "[REDACTED]"

// Secret holds credential material, such as the per-request API keys.
// Every serialization and formatting path emits a placeholder instead
// of the value; only Value returns the real string, and only the
// provider HTTP clients call it. An empty secret stays empty so that
// "unset" remains distinguishable.
type Secret string

// String implements fmt.Stringer, covering %s and %v.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redactedPlaceholder
}

// GoString covers %#v, which bypasses String.
func (s Secret) GoString() string {
	return "Secret(" + redactedPlaceholder + ")"
}

// Value returns the credential itself, for the request header that
// needs it.
func (s Secret) Value() string {
	return string(s)
}

// IsSet reports whether a credential is present. The provider chain
// uses this to decide whether a remote backend can participate.
func (s Secret) IsSet() bool {
	return s != ""
}

func (s Secret) MarshalJSON() ([]byte, error) {
	if s == "" {
		return json.Marshal("")
	}
	return json.Marshal(redactedPlaceholder)
}

func (s Secret) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(""), nil
	}
	return []byte(redactedPlaceholder), nil
}

func (s Secret) MarshalYAML() (interface{}, error) {
	if s == "" {
		return "", nil
	}
	return redactedPlaceholder, nil
}

// Unmarshaling accepts raw values; secrets enter in the clear and are
// guarded on the way out.

func (s *Secret) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*s = Secret(raw)
	return nil
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Secret(raw)
	return nil
}

func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
