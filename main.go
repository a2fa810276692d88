package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"quantum-snake/ai"
	"quantum-snake/game"
	"quantum-snake/game/rng"
	"quantum-snake/logger"
	"quantum-snake/ui"
)

// maxCatchUp bounds the ticks run in one frame after a stall.
const maxCatchUp = 5

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in board units")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in board units")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Grid step in board units")
	flag.IntVar(&cfg.BarrierCount, "barriers", cfg.BarrierCount, "Barriers per layout")
	flag.IntVar(&cfg.BarrierSpacing, "spacing", cfg.BarrierSpacing, "Minimum barrier anchor separation per axis")
	flag.DurationVar(&cfg.SnakeTick, "snake-tick", cfg.SnakeTick, "Snake step period")
	flag.DurationVar(&cfg.FoodTick, "food-tick", cfg.FoodTick, "Food step period")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")
	autopilot := flag.Bool("autopilot", false, "Start with the Q-learning autopilot driving")
	train := flag.Int("train", 0, "Headless training episodes to run before playing")
	qtable := flag.String("qtable", "", "Q-table file to load at start and save on exit")
	cellPx := flag.Int("cell-px", 20, "Pixels per grid step")
	flag.Parse()

	log := logger.NewLogger()
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	src := rng.New(cfg.Seed)

	brain := ai.NewQLearning(src)
	if *qtable != "" {
		if err := brain.LoadQTable(*qtable); err != nil {
			log.Warn("starting with an empty q-table: %v", err)
		}
	}

	if *train > 0 {
		st, err := ai.Train(cfg, brain, *train, 5000, log, game.WithRand(src))
		if err != nil {
			log.Error("training failed: %+v", err)
			os.Exit(1)
		}
		log.Info("trained %d episodes: best %d, average %.2f", st.Episodes, st.BestScore, st.AverageScore)
		saveQTable(log, brain, *qtable)
	}

	g, err := game.New(cfg, game.WithRand(src), game.WithLogger(log))
	if err != nil {
		log.Error("cannot start game: %+v", err)
		os.Exit(1)
	}
	log.Info("board %dx%d grid %d, snake %v food %v, seed %d",
		cfg.Width, cfg.Height, cfg.GridSize, cfg.SnakeTick, cfg.FoodTick, cfg.Seed)

	renderer := ui.NewRenderer(g.Grid, *cellPx)
	w, h := renderer.WindowSize()
	rl.InitWindow(w, h, "Quantum Snake Game")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	agent := ai.NewAgent(brain)
	hud := ui.HUD{Autopilot: *autopilot, StartTime: time.Now()}
	interval := g.TickInterval()
	var acc time.Duration
	lastFrame := time.Now()

	for !rl.WindowShouldClose() {
		dirs, cmds := ui.PollInput()
		for _, c := range cmds {
			switch c {
			case ui.TogglePause:
				hud.Paused = !hud.Paused
			case ui.ForceReset:
				g.Reset()
			case ui.ToggleAutopilot:
				hud.Autopilot = !hud.Autopilot
				agent.Forget()
				log.Info("autopilot %v", hud.Autopilot)
			}
		}
		if !hud.Autopilot {
			for _, d := range dirs {
				g.SetDirection(d)
			}
		}

		now := time.Now()
		if !hud.Paused {
			acc += now.Sub(lastFrame)
		}
		lastFrame = now

		for steps := 0; acc >= interval; steps++ {
			if steps == maxCatchUp {
				acc = 0
				break
			}
			if hud.Autopilot {
				agent.Step(g)
			} else {
				g.Tick()
			}
			acc -= interval
		}

		renderer.Draw(g.Frame(), g.Stats(), hud)
	}

	saveQTable(log, brain, *qtable)
	log.Info("session %s ended after %d rounds, high score %d", g.UUID, g.Round, g.HighScore())
}

func saveQTable(log *logger.Logger, brain *ai.QLearning, filename string) {
	if filename == "" {
		return
	}
	if err := brain.SaveQTable(filename); err != nil {
		log.Error("saving q-table: %v", err)
		return
	}
	log.Info("q-table saved to %s (%d states)", filename, len(brain.QTable))
}
