package main

import (
	"testing"

	"go-piano/keys"
)

func TestResolve(t *testing.T) {
	c := keys.Default()
	tests := []struct {
		note, key string
		want      string
		wantErr   bool
	}{
		{note: "C4", want: "C4"},
		{note: "A4", want: "A4"},
		{note: "C4", key: "w", want: "C#4"},
		{note: "C4", key: "W", want: "C#4"},
		{note: "H2", wantErr: true},
		{key: "z", wantErr: true},
		{key: "ab", wantErr: true},
	}
	for _, tt := range tests {
		k, err := resolve(c, tt.note, tt.key)
		if (err != nil) != tt.wantErr {
			t.Fatalf("resolve(%q, %q) err = %v, wantErr %v", tt.note, tt.key, err, tt.wantErr)
		}
		if !tt.wantErr && k.Note != tt.want {
			t.Fatalf("resolve(%q, %q) = %s, want %s", tt.note, tt.key, k.Note, tt.want)
		}
	}
}
