package parser

import (
	"testing"

	"github.com/testatlas/core/pkg/domain"
)

func TestLineIndexPosition(t *testing.T) {
	t.Parallel()

	source := "abc\ndef\n\nghi"
	ix := newLineIndex([]byte(source))

	tests := []struct {
		name   string
		offset uint32
		want   domain.Position
	}{
		{"should map start of file", 0, domain.Position{Line: 1, Column: 0}},
		{"should map middle of first line", 2, domain.Position{Line: 1, Column: 2}},
		{"should map newline to end of its line", 3, domain.Position{Line: 1, Column: 3}},
		{"should map start of second line", 4, domain.Position{Line: 2, Column: 0}},
		{"should map empty line", 8, domain.Position{Line: 3, Column: 0}},
		{"should map last line", 10, domain.Position{Line: 4, Column: 1}},
		{"should map end of file", 12, domain.Position{Line: 4, Column: 3}},
		{"should clamp offset past end", 99, domain.Position{Line: 4, Column: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ix.position(tt.offset); got != tt.want {
				t.Errorf("position(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestLineIndexEmptySource(t *testing.T) {
	t.Parallel()

	ix := newLineIndex(nil)

	want := domain.Position{Line: 1, Column: 0}
	if got := ix.position(0); got != want {
		t.Errorf("position(0) = %+v, want %+v", got, want)
	}
	if got := ix.position(5); got != want {
		t.Errorf("position(5) = %+v, want %+v", got, want)
	}
}

func TestLineIndexTrailingNewline(t *testing.T) {
	t.Parallel()

	ix := newLineIndex([]byte("a\n"))

	want := domain.Position{Line: 2, Column: 0}
	if got := ix.position(2); got != want {
		t.Errorf("position(2) = %+v, want %+v", got, want)
	}
}
