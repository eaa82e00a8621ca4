package tspool

import (
	"context"
	"testing"

	"github.com/testatlas/core/pkg/domain"
)

func TestGetLanguage(t *testing.T) {
	t.Parallel()

	dialects := []domain.Dialect{
		domain.DialectJavaScript,
		domain.DialectTypeScript,
		domain.DialectTSX,
	}

	for _, d := range dialects {
		if GetLanguage(d) == nil {
			t.Errorf("GetLanguage(%q) = nil", d)
		}
	}

	// TSX uses a distinct grammar from plain TypeScript.
	if GetLanguage(domain.DialectTSX) == GetLanguage(domain.DialectTypeScript) {
		t.Error("TSX and TypeScript should use distinct grammars")
	}

	// Unknown dialects fall back to TypeScript.
	if GetLanguage(domain.Dialect("other")) != GetLanguage(domain.DialectTypeScript) {
		t.Error("unknown dialect should fall back to TypeScript")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect domain.Dialect
		source  string
	}{
		{"should parse empty JavaScript", domain.DialectJavaScript, ""},
		{"should parse TypeScript with types", domain.DialectTypeScript, "const x: number = 1;"},
		{"should parse JSX in TSX dialect", domain.DialectTSX, "const el = <div>hi</div>;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Parse(context.Background(), tt.dialect, []byte(tt.source))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			defer tree.Close()

			if tree.RootNode() == nil {
				t.Fatal("RootNode() = nil")
			}
		})
	}
}
