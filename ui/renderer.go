package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"quantum-snake/game"
	"quantum-snake/game/entity"
	"quantum-snake/game/stats"
	"quantum-snake/game/types"
)

const (
	maxScores  = 100 // Rounds shown in the graph
	statsPanel = 240
	fontSize   = 16
	lineHeight = 22
)

var (
	bgColor      = rl.NewColor(34, 34, 42, 255)
	headColor    = rl.NewColor(255, 152, 0, 255)
	segmentColor = rl.NewColor(150, 150, 150, 255)
	foodColor    = rl.NewColor(240, 17, 17, 255)
	barrierColor = rl.NewColor(3, 169, 176, 120)
	panelColor   = rl.NewColor(24, 24, 30, 255)
)

// HUD carries the presentation-only flags.
type HUD struct {
	Paused    bool
	Autopilot bool
	StartTime time.Time
}

type Renderer struct {
	cellPx       int32
	gridSize     int32
	boardWidth   int32
	boardHeight  int32
	screenWidth  int32
	screenHeight int32
	graphWidth   int32
	graphHeight  int32
}

// NewRenderer lays out a board drawn at cellPx pixels per grid step with the
// stats panel to its right.
func NewRenderer(grid types.Grid, cellPx int) *Renderer {
	r := &Renderer{
		cellPx:   int32(cellPx),
		gridSize: int32(grid.CellSize),
	}
	r.boardWidth = r.px(grid.Width)
	r.boardHeight = r.px(grid.Height)
	r.screenWidth = r.boardWidth + statsPanel
	r.screenHeight = r.boardHeight
	r.graphWidth = statsPanel - 20
	r.graphHeight = r.screenHeight / 5
	return r
}

// WindowSize is the window needed for the board and the panel.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

// px converts board units to pixels.
func (r *Renderer) px(v int) int32 {
	return int32(v) * r.cellPx / r.gridSize
}

// ScoreLine is the text drawn above the board.
func ScoreLine(score, high int) string {
	return fmt.Sprintf("Score : %d  Highest Score : %d", score, high)
}

func (r *Renderer) Draw(f game.Frame, history *stats.History, hud HUD) {
	rl.BeginDrawing()
	rl.ClearBackground(bgColor)

	cell := r.px(f.Grid.CellSize)
	for i, p := range f.Snake {
		color := segmentColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(r.px(p.X), r.px(p.Y), cell, cell, color)
	}

	// Food is drawn before the barriers so it shows through them while tunneling.
	cx, cy := f.Food.Center(f.Grid.CellSize)
	rl.DrawCircle(r.px(cx), r.px(cy), float32(r.px(f.FoodRadius)), foodColor)

	for _, b := range f.Barriers {
		rl.DrawRectangle(r.px(b.X), r.px(b.Y), r.px(b.W), r.px(b.H), barrierColor)
	}

	line := ScoreLine(f.Score, f.HighScore)
	width := rl.MeasureText(line, fontSize+8)
	rl.DrawText(line, (r.boardWidth-width)/2, 10, fontSize+8, rl.White)

	switch {
	case hud.Paused:
		r.drawBanner("Paused")
	case f.State == entity.Idle && f.Round > 1:
		r.drawBanner(fmt.Sprintf("Round %d", f.Round))
	}

	r.drawStatsPanel(f, history, hud)
	rl.EndDrawing()
}

func (r *Renderer) drawBanner(text string) {
	width := rl.MeasureText(text, fontSize*2)
	rl.DrawText(text, (r.boardWidth-width)/2, r.boardHeight/2-fontSize, fontSize*2, rl.White)
}

func (r *Renderer) drawStatsPanel(f game.Frame, history *stats.History, hud HUD) {
	statsX := r.boardWidth + 10
	statsY := int32(10)

	rl.DrawRectangle(r.boardWidth, 0, statsPanel, r.screenHeight, panelColor)

	lines := []string{
		fmt.Sprintf("Round: %d", f.Round),
		fmt.Sprintf("Length: %d", len(f.Snake)),
		fmt.Sprintf("Heading: %v", f.Direction),
		fmt.Sprintf("Food: %v", f.Food.Axis),
		"",
		fmt.Sprintf("Games: %d", history.GamesPlayed()),
		fmt.Sprintf("Avg: %.2f", history.AverageScore()),
		fmt.Sprintf("Median: %.0f", history.MedianScore()),
		fmt.Sprintf("Best: %d", history.MaxScore()),
		fmt.Sprintf("Avg time: %.1fs", history.AverageDuration()),
		"",
		fmt.Sprintf("Tunnel: %d/%d", f.Tunnels, f.TunnelAttempts),
	}
	if hud.Autopilot {
		lines = append(lines, "Autopilot: on")
	} else {
		lines = append(lines, "Autopilot: off")
	}
	for _, l := range lines {
		rl.DrawText(l, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawPerformanceGraph(history, statsX, hud.StartTime)
	rl.DrawText(shortID(f.SessionID), statsX, r.screenHeight-fontSize-5, fontSize, rl.Gray)
}

func (r *Renderer) drawPerformanceGraph(history *stats.History, graphX int32, start time.Time) {
	graphY := r.screenHeight - r.graphHeight - fontSize*3

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Performance", graphX, graphY-fontSize-5, fontSize, rl.White)

	if !start.IsZero() {
		d := time.Since(start)
		elapsed := fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
		rl.DrawText(elapsed, graphX, graphY+r.graphHeight+5, fontSize, rl.White)
	}

	recent := history.Recent(maxScores)
	if len(recent) < 2 {
		return
	}

	maxScore := 1.0
	for _, rec := range recent {
		maxScore = max(maxScore, rec.AverageScore)
	}

	scale := func(i int, v float64) (int32, int32) {
		x := graphX + int32(float64(r.graphWidth)*float64(i)/float64(maxScores))
		y := graphY + r.graphHeight - int32(float64(r.graphHeight)*v/maxScore)
		return x, y
	}
	for j := 1; j < len(recent); j++ {
		x1, y1 := scale(j-1, recent[j-1].AverageScore)
		x2, y2 := scale(j, recent[j].AverageScore)
		rl.DrawLine(x1, y1, x2, y2, headColor)
	}

	// Dashed average line
	_, avgY := scale(0, history.AverageScore())
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, foodColor)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
