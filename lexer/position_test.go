package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionTrackerAdvance(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []Position
	}{
		{
			name:   "plain run",
			chunks: []string{"if"},
			want:   []Position{{Index: 2, Row: 1, Col: 3}},
		},
		{
			name:   "lf newline",
			chunks: []string{"a", "\n", "bb"},
			want: []Position{
				{Index: 1, Row: 1, Col: 2},
				{Index: 2, Row: 2, Col: 1},
				{Index: 4, Row: 2, Col: 3},
			},
		},
		{
			name:   "crlf counts once",
			chunks: []string{"x\r\ny"},
			want:   []Position{{Index: 4, Row: 2, Col: 2}},
		},
		{
			name:   "lone cr",
			chunks: []string{"x\ry"},
			want:   []Position{{Index: 3, Row: 2, Col: 2}},
		},
		{
			name:   "multiple newlines in one chunk",
			chunks: []string{"a\nb\nc"},
			want:   []Position{{Index: 5, Row: 3, Col: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewPositionTracker()
			var got []Position
			for _, c := range tt.chunks {
				_, end := tracker.Advance(c)
				got = append(got, end)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPositionTrackerInitial(t *testing.T) {
	require.Equal(t, Position{Index: 0, Row: 1, Col: 1}, NewPositionTracker().Position())
}
