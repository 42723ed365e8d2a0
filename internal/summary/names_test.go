package summary

import (
	"reflect"
	"testing"
)

func TestCollapseNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "case-insensitive dedupe",
			input: []string{"sarah", "Sarah", "SARAH"},
			want:  []string{"Sarah"},
		},
		{
			name:  "prefix alias collapses into longer form",
			input: []string{"Sarah", "Sarah Chen"},
			want:  []string{"Sarah Chen"},
		},
		{
			name:  "non-boundary prefix is not an alias",
			input: []string{"Sam", "Samantha"},
			want:  []string{"Sam", "Samantha"},
		},
		{
			name:  "single-character noise dropped",
			input: []string{"A", "Bob"},
			want:  []string{"Bob"},
		},
		{
			name:  "sorted deterministic output",
			input: []string{"Zoe", "Alice", "Mike"},
			want:  []string{"Alice", "Mike", "Zoe"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseNames(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CollapseNames(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  sarah   chen "); got != "Sarah Chen" {
		t.Errorf("NormalizeName() = %q, want %q", got, "Sarah Chen")
	}
}
