package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// rowText returns row y of the screen as plain text.
func rowText(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func testSnapshot(status snake.Status) snake.Snapshot {
	return snake.Snapshot{
		TileCount: 5,
		Snake:     []snake.Cell{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:      snake.Cell{X: 4, Y: 4},
		HasFood:   true,
		Score:     3,
		Interval:  150 * time.Millisecond,
		Status:    status,
	}
}

func TestDrawBoardLayout(t *testing.T) {
	s := core.NewScreen(40, 10)
	DrawBoard(s, BoardView{Snapshot: testSnapshot(snake.StatusRunning), Preset: "hard", Best: 7})

	hud := rowText(s, 0)
	for _, want := range []string{"SNAKE", "Score 3", "Best 7", "Speed 150ms", "[hard]"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// 5 tiles * 2 cols + frame = 12 wide, centered in 40
	if got := s.GetCell(14, 1).Rune; got != '┌' {
		t.Errorf("Top-left corner = %q, want '┌'", got)
	}
	if got := s.GetCell(25, 7).Rune; got != '┘' {
		t.Errorf("Bottom-right corner = %q, want '┘'", got)
	}

	head := s.GetCell(19, 4)
	if head.Rune != '█' || head.Color != core.ColorSnakeHead {
		t.Errorf("Head cell = %+v", head)
	}
	if body := s.GetCell(17, 4); body.Color != core.ColorSnakeBody {
		t.Errorf("Body cell = %+v", body)
	}
	if food := s.GetCell(23, 6); food.Rune != '<' || food.Color != core.ColorFood {
		t.Errorf("Food cell = %+v", food)
	}
	if bg := s.GetCell(15, 2); bg.Rune != '·' || bg.Color != core.ColorBoard {
		t.Errorf("Background cell = %+v", bg)
	}
}

func TestDrawBoardEffects(t *testing.T) {
	s := core.NewScreen(60, 10)
	var fx Effects
	fx.Observe(snake.TickResult{AteFood: true, SpeedUp: true})

	DrawBoard(s, BoardView{Snapshot: testSnapshot(snake.StatusRunning), Effects: fx})

	if !strings.Contains(rowText(s, 0), "faster!") {
		t.Errorf("HUD should show speed-up tag: %q", rowText(s, 0))
	}
	if food := s.GetCell(33, 6); food.Color != core.ColorFlash {
		t.Errorf("Food should flash after eating, got %+v", food)
	}
}

func TestDrawBoardBestTracksScore(t *testing.T) {
	s := core.NewScreen(40, 10)
	DrawBoard(s, BoardView{Snapshot: testSnapshot(snake.StatusRunning), Best: 1})

	if !strings.Contains(rowText(s, 0), "Best 3") {
		t.Errorf("Best should never be below the live score: %q", rowText(s, 0))
	}
}

func TestDrawBoardOverlays(t *testing.T) {
	tests := []struct {
		name   string
		view   BoardView
		want   []string
		absent string
	}{
		{
			name: "not started",
			view: BoardView{Snapshot: testSnapshot(snake.StatusNotStarted)},
			want: []string{"S N A K E", "Press Enter"},
		},
		{
			name: "paused",
			view: BoardView{Snapshot: testSnapshot(snake.StatusRunning), Paused: true},
			want: []string{"PAUSED"},
		},
		{
			name: "game over",
			view: BoardView{Snapshot: testSnapshot(snake.StatusOver), Collision: snake.CollisionSelf},
			want: []string{"Game Over (self)", "Score: 3"},
		},
		{
			name:   "running",
			view:   BoardView{Snapshot: testSnapshot(snake.StatusRunning)},
			absent: "Game Over",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(60, 12)
			DrawBoard(s, tt.view)
			out := s.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Screen missing %q:\n%s", w, out)
				}
			}
			if tt.absent != "" && strings.Contains(out, tt.absent) {
				t.Errorf("Screen should not contain %q", tt.absent)
			}
		})
	}
}

func TestDrawBoardWon(t *testing.T) {
	snap := testSnapshot(snake.StatusOver)
	snap.Won = true

	s := core.NewScreen(60, 12)
	DrawBoard(s, BoardView{Snapshot: snap})

	if !strings.Contains(s.String(), "filled the board") {
		t.Errorf("Win banner missing:\n%s", s.String())
	}
	if strings.Contains(s.String(), "Game Over") {
		t.Error("Win should not show the game over banner")
	}
}

func TestDrawBoardCrashedHead(t *testing.T) {
	snap := testSnapshot(snake.StatusOver)
	snap.Snake = []snake.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}}

	s := core.NewScreen(40, 10)
	DrawBoard(s, BoardView{Snapshot: snap, Collision: snake.CollisionSelf})

	// Top row is clear of the banner.
	if head := s.GetCell(19, 2); head.Color != core.ColorDanger {
		t.Errorf("Crashed head color = %v, want danger", head.Color)
	}
}

func TestDrawBoardHeadOffBoard(t *testing.T) {
	snap := testSnapshot(snake.StatusOver)
	snap.TileCount = 20
	snap.Snake = []snake.Cell{{X: 20, Y: 5}, {X: 19, Y: 5}}

	// 20 tiles * 2 cols + frame = 42 wide at x=19; overlay rows are 10-12.
	s := core.NewScreen(80, 30)
	DrawBoard(s, BoardView{Snapshot: snap})

	// Head past the right wall must not overwrite the frame.
	if got := s.GetCell(60, 7); got.Rune != '│' || got.Color != core.ColorBorder {
		t.Errorf("Right frame = %+v, want border '│'", got)
	}
	if got := s.GetCell(61, 7); got.Rune != ' ' {
		t.Errorf("Cell past the frame = %q, want blank", got.Rune)
	}
	if body := s.GetCell(59, 7); body.Color != core.ColorSnakeBody {
		t.Errorf("Last column should hold the body, got %+v", body)
	}
}

func TestDrawBoardOverlayPanel(t *testing.T) {
	snap := testSnapshot(snake.StatusOver)
	s := core.NewScreen(40, 10)
	DrawBoard(s, BoardView{Snapshot: snap})

	// The game-over banner is wider than the 5-tile board: the panel
	// behind it clears the frame rather than leaving stray glyphs.
	row := rowText(s, 4)
	if !strings.Contains(row, " Score: 3 ") {
		t.Fatalf("Score banner missing from row 4: %q", row)
	}
	if strings.ContainsAny(row, "│·") {
		t.Errorf("Overlay row should be cleared, got %q", row)
	}
	if got := s.GetCell(14, 2).Rune; got != '│' {
		t.Errorf("Frame above the panel = %q, want '│'", got)
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	s := core.NewScreen(10, 5)
	DrawBoard(s, BoardView{Snapshot: testSnapshot(snake.StatusRunning)})

	if !strings.Contains(s.String(), "too small") {
		t.Errorf("Expected too-small message:\n%s", s.String())
	}
	if boardFits(5, 10, 5) {
		t.Error("boardFits(5, 10, 5) = true")
	}
	if !boardFits(5, 12, 8) {
		t.Error("boardFits(5, 12, 8) = false")
	}
	if boardFits(5, 12, 7) {
		t.Error("boardFits(5, 12, 7) = true")
	}
}

func TestDrawTooSmallCentered(t *testing.T) {
	s := core.NewScreen(30, 7)
	DrawBoard(s, BoardView{Snapshot: testSnapshot(snake.StatusRunning)})

	// Three lines, the widest 20 runes, centered in 30x7.
	for y, want := range map[int]string{2: "Window too small", 3: "need 12x9, have 30x8", 4: "Resize to continue"} {
		if !strings.Contains(rowText(s, y), want) {
			t.Errorf("Row %d = %q, want %q", y, rowText(s, y), want)
		}
	}
	if got := s.GetCell(5, 3).Rune; got != 'n' {
		t.Errorf("Widest line should start at x=5, got %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorFood)
	s.DrawText(2, 0, "cd", core.ColorHUD)

	out := RenderScreen(s)
	if !strings.Contains(out, "a") || !strings.Contains(out, "d") {
		t.Errorf("Rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}
