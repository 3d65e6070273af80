package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadPuzzle(t *testing.T) {
	{ // Decorative separators, box bars and '.' blanks
		text := `
5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
------+-------+------
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
------+-------+------
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9
`
		grid, err := ReadPuzzle(strings.NewReader(text))
		assert.NoError(t, err)
		assert.Equal(t, puzzleGrid(), grid)
	}
	{ // Bare digit rows, no decoration
		text := "534678912\n672195348\n198342567\n859761423\n426853791\n713924856\n961537284\n287419635\n345286179\n"
		grid, err := ReadPuzzle(strings.NewReader(text))
		assert.NoError(t, err)
		assert.Equal(t, solvedGrid(), grid)
	}
	{ // Too few rows
		_, err := ReadPuzzle(strings.NewReader("534678912\n672195348\n"))
		assert.Error(t, err)
	}
	{ // Short row
		text := "53467891\n672195348\n198342567\n859761423\n426853791\n713924856\n961537284\n287419635\n345286179\n"
		_, err := ReadPuzzle(strings.NewReader(text))
		assert.Error(t, err)
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(puzzleGrid())
	s := b.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	// Header, 9 rows, 4 separator lines
	assert.Equal(t, 14, len(lines))
	assert.Contains(t, lines[0], "0   1   2")
	assert.Contains(t, lines[1], "---+")
	// Row 0 renders givens and '.' blanks with its index header
	assert.True(t, strings.HasPrefix(lines[2], "0 | 5"))
	assert.Contains(t, lines[2], ".")
}
