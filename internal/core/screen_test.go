package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Style != StyleDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetStyled(5, 5, 'X', StylePrimary)
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Style != StylePrimary {
		t.Errorf("GetCell(5, 5) = %+v, expected X/primary", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsStyle(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawStyledRect(NewRect(0, 0, 4, 4), 'X', StyleBlock)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("after Clear, (%d, %d) = %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	if got := s.String(); got != strings.Repeat("#####\n", 4)+"#####" {
		t.Errorf("after Fill, String() = %q", got)
	}
}

func TestScreenPaint(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(0, 0, "ABCDEF")
	s.Paint(NewRect(2, 0, 2, 5), StyleSecondary)

	for x := 0; x < 6; x++ {
		want := StyleDefault
		if x == 2 || x == 3 {
			want = StyleSecondary
		}
		if c := s.GetCell(x, 0); c.Style != want {
			t.Errorf("cell %d style = %v, expected %v", x, c.Style, want)
		}
	}
	if s.Row(0) != "ABCDEF" {
		t.Errorf("Paint must not change runes, row = %q", s.Row(0))
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"fits", 0, "Hello", "Hello     "},
		{"offset", 3, "Hi", "   Hi     "},
		{"clipped right", 7, "Hello", "       Hel"},
		{"clipped left", -2, "Hello", "llo       "},
		{"multibyte", 0, "Ωμέγα", "Ωμέγα     "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawStyledTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawStyledTextCentered(0, "Hi", StyleHeading)

	if s.Row(0) != "    Hi    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Style != StyleHeading || s.GetCell(3, 0).Style != StyleDefault {
		t.Error("only the text cells should carry the style")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawStyledBox(NewRect(0, 0, 5, 4), StyleBorder)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if s.GetCell(0, 0).Style != StyleBorder || s.GetCell(2, 2).Style != StyleDefault {
		t.Error("box style should apply to the outline only")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(0, 2, 5, '-')
	s.DrawVLine(2, 0, 5, '|')

	if s.Row(2) != "--|--" {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
	if s.Row(0) != "  |  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetStyled(1, 1, 'X', StyleNumber)
	s.SetStyled(4, 4, 'Y', StyleNumber)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Style != StyleNumber {
		t.Errorf("content inside the new bounds should survive, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content clipped by a shrink should not reappear")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blanks", s.Row(5))
	}
}

func TestParseStyle(t *testing.T) {
	for _, st := range Styles() {
		got, ok := ParseStyle(st.String())
		if !ok || got != st {
			t.Errorf("ParseStyle(%q) = %v, %v", st.String(), got, ok)
		}
	}
	if _, ok := ParseStyle("sparkly"); ok {
		t.Error("unknown style name should not parse")
	}
}
