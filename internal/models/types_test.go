package models

import (
	"reflect"
	"testing"
)

func TestParsePlatformList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []PlatformKey
	}{
		{
			name:  "single key",
			input: "FakeStore",
			want:  []PlatformKey{PlatformFakeStore},
		},
		{
			name:  "multiple keys with whitespace",
			input: " FakeStore , MockBlinkit ",
			want:  []PlatformKey{PlatformFakeStore, PlatformMockBlinkit},
		},
		{
			name:  "empty entries dropped",
			input: "FakeStore,,MockBlinkit,",
			want:  []PlatformKey{PlatformFakeStore, PlatformMockBlinkit},
		},
		{
			name:  "unknown keys pass through",
			input: "FakeStore,NotAPlatform",
			want:  []PlatformKey{PlatformFakeStore, "NotAPlatform"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "only separators",
			input: " , , ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePlatformList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePlatformList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	got := Unavailable(PlatformZepto)
	if got.Platform != PlatformZepto {
		t.Errorf("expected platform %q, got %q", PlatformZepto, got.Platform)
	}
	if !got.NotAvailable {
		t.Error("expected notAvailable to be set")
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %v", got.Items)
	}
}
