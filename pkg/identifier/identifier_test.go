package identifier

import (
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantDomain string
		wantPath   string
		wantErr    bool
	}{
		{
			name:       "qualified identifier",
			id:         "tfc:ore/copper",
			wantDomain: "tfc",
			wantPath:   "ore/copper",
		},
		{
			name:       "unqualified identifier defaults domain",
			id:         "ore/copper",
			wantDomain: DefaultDomain,
			wantPath:   "ore/copper",
		},
		{
			name:       "third-party domain",
			id:         "minecraft:block/stone",
			wantDomain: "minecraft",
			wantPath:   "block/stone",
		},
		{
			name:       "empty domain is kept as-is",
			id:         ":stone",
			wantDomain: "",
			wantPath:   "stone",
		},
		{
			name:    "curly brace is rejected",
			id:      "a{b",
			wantErr: true,
		},
		{
			name:    "square bracket is rejected",
			id:      "tfc:rock[type=granite]",
			wantErr: true,
		},
		{
			name:    "more than one separator",
			id:      "a:b:c",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, path, err := Split(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIdentifier) {
					t.Fatalf("Split(%q) error = %v, want ErrInvalidIdentifier", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.id, err)
			}
			if domain != tt.wantDomain || path != tt.wantPath {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.id, domain, path, tt.wantDomain, tt.wantPath)
			}
		})
	}
}

func TestApplyPrefixSuffixIdempotent(t *testing.T) {
	paths := []string{"", "ore", "textures/ore", "ore.png", "textures/ore.png"}

	for _, p := range paths {
		once := ApplyPrefix(p, "textures/")
		if twice := ApplyPrefix(once, "textures/"); twice != once {
			t.Errorf("ApplyPrefix not idempotent for %q: %q then %q", p, once, twice)
		}

		once = ApplySuffix(p, ".png")
		if twice := ApplySuffix(once, ".png"); twice != once {
			t.Errorf("ApplySuffix not idempotent for %q: %q then %q", p, once, twice)
		}
	}

	if got := ApplyPrefix("ore", "textures/"); got != "textures/ore" {
		t.Errorf("ApplyPrefix() = %q, want %q", got, "textures/ore")
	}
	if got := ApplySuffix("ore", ".png"); got != "ore.png" {
		t.Errorf("ApplySuffix() = %q, want %q", got, "ore.png")
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "textures/blocks/ore.png", want: "blocks_ore.png"},
		{path: "blocks/ore.png", want: "blocks_ore.png"},
		{path: "ore.gif", want: "ore.gif"},
		{path: "item/textures/gem.png", want: "item_gem.png"},
	}

	for _, tt := range tests {
		if got := Flatten(tt.path); got != tt.want {
			t.Errorf("Flatten(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
