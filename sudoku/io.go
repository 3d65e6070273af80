package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadPuzzle parses the textual puzzle form into a Grid. Lines containing a
// dash are decorative separators and are skipped, as are lines carrying no
// cell characters at all. Within a line, digit characters are cell values
// and '.' is a blank; everything else (spaces, box bars) is ignored.
func ReadPuzzle(r io.Reader) (grid Grid, err error) {
	var nRows int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.ContainsRune(line, '-') {
			continue
		}
		var row []int
		for _, ch := range line {
			switch {
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == '.':
				row = append(row, 0)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(row) != 9 {
			err = fmt.Errorf("puzzle line %q has %d cells, want 9", line, len(row))
			return
		}
		if nRows == 9 {
			err = fmt.Errorf("puzzle has more than 9 rows")
			return
		}
		copy(grid[nRows][:], row)
		nRows++
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if nRows != 9 {
		err = fmt.Errorf("puzzle has %d rows, want 9", nRows)
	}
	return
}

// ReadPuzzleFile reads a puzzle from a file on disk.
func ReadPuzzleFile(path string) (grid Grid, err error) {
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()
	return ReadPuzzle(f)
}

// String renders the board with row/column index headers and 3x3 box
// separator lines. Blank cells print as '.'. Presentational only, not a
// round-trip format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("    ")
	for c := 0; c < 9; c++ {
		if c > 0 {
			sb.WriteString("   ")
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteString("\n")
	separator := "  +" + strings.Repeat("---+", 9) + "\n"
	sb.WriteString(separator)
	for r := 0; r < 9; r++ {
		fmt.Fprintf(&sb, "%d | ", r)
		for c := 0; c < 9; c++ {
			cell := "."
			if v := b.grid[r][c]; v != 0 {
				cell = fmt.Sprintf("%d", v)
			}
			sb.WriteString(cell)
			if (c+1)%3 == 0 {
				sb.WriteString(" | ")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("\n")
		if (r+1)%3 == 0 {
			sb.WriteString(separator)
		}
	}
	return sb.String()
}
