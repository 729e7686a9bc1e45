package replay

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

func TestFrameOfKeepsEventOrder(t *testing.T) {
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	in.Hold(core.ActionUp)
	in.Set(core.ActionFire)
	in.Set(core.ActionPause)
	in.Set(core.ActionFire)

	f := FrameOf(in)
	if len(f.Held) != 2 || f.Held[0] != core.ActionUp || f.Held[1] != core.ActionRight {
		t.Errorf("Held = %v, expected [Up Right]", f.Held)
	}

	out := f.Input()
	events := out.Events()
	expected := []core.Action{core.ActionFire, core.ActionPause, core.ActionFire}
	if len(events) != len(expected) {
		t.Fatalf("Events() = %v, expected %v", events, expected)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d = %v, expected %v", i, events[i], expected[i])
		}
	}
	if !out.IsHeld(core.ActionUp) || !out.IsHeld(core.ActionRight) || out.IsHeld(core.ActionLeft) {
		t.Error("held keys were not restored")
	}
}

func TestEncodeDecodeFrames(t *testing.T) {
	frames := []Frame{
		{},
		{Held: []core.Action{core.ActionLeft}},
		{Events: []core.Action{core.ActionFire, core.ActionFire}},
	}

	data, err := EncodeFrames(frames)
	if err != nil {
		t.Fatalf("EncodeFrames() failed: %v", err)
	}
	got, err := DecodeFrames(data)
	if err != nil {
		t.Fatalf("DecodeFrames() failed: %v", err)
	}
	if len(got) != 3 || len(got[1].Held) != 1 || len(got[2].Events) != 2 {
		t.Errorf("DecodeFrames() = %+v", got)
	}

	if _, err := DecodeFrames([]byte{0xc1}); err == nil {
		t.Error("DecodeFrames() should reject garbage")
	}
}

// playRecorded runs a live game for n steps with random input, recording every step.
func playRecorded(t *testing.T, cfg config.KokatonConfig, seed int64, n int) (*kokaton.Game, Recording) {
	t.Helper()
	g, err := kokaton.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)

	rec := NewRecorder(seed, cfg)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n && !g.State().Ended(); i++ {
		in := core.NewInputFrame()
		for _, a := range core.MoveActions {
			if rng.Intn(3) == 0 {
				in.Hold(a)
			}
		}
		if rng.Intn(5) == 0 {
			in.Set(core.ActionFire)
		}
		rec.Record(in)
		g.Step(in)
	}
	return g, rec.Recording()
}

func TestRunReproducesSession(t *testing.T) {
	cfg := config.DefaultKokatonConfig()
	cfg.Hazards.Count = 15

	for seed := int64(1); seed <= 5; seed++ {
		live, rec := playRecorded(t, cfg, seed, 2000)

		res, err := Run(rec)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		if res.State != live.State() {
			t.Errorf("seed %d: replayed state %+v, live %+v", seed, res.State, live.State())
		}
		if res.Ticks != live.Ticks() {
			t.Errorf("seed %d: replayed %d ticks, live %d", seed, res.Ticks, live.Ticks())
		}
		if res.Steps != len(rec.Frames) {
			t.Errorf("seed %d: played %d of %d frames", seed, res.Steps, len(rec.Frames))
		}
	}
}

func TestPlayerStopsWhenGameEnds(t *testing.T) {
	cfg := config.DefaultKokatonConfig()
	cfg.Hazards.Count = 0

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	rec := Recording{
		GameID: kokaton.GameID,
		Seed:   1,
		Config: cfg,
		Frames: []Frame{{}, FrameOf(quit), {}, {}},
	}

	p, err := NewPlayer(rec)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	steps := 0
	for p.Step() {
		steps++
	}
	if steps != 2 || !p.Game().State().Quit {
		t.Errorf("expected to stop after the quit frame, played %d, state %+v", steps, p.Game().State())
	}
}

func TestNewPlayerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultKokatonConfig()
	cfg.Explosion.Life = 0

	if _, err := NewPlayer(Recording{GameID: kokaton.GameID, Config: cfg}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewPlayer() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultKokatonConfig()
	cfg.Hazards.Count = 8
	live, rec := playRecorded(t, cfg, 99, 500)

	id, err := Save(store, rec, live.State(), live.Ticks())
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(store, id)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Seed != 99 || loaded.Config.Hazards.Count != 8 || len(loaded.Frames) != len(rec.Frames) {
		t.Errorf("loaded recording does not match: seed %d, %d hazards, %d frames",
			loaded.Seed, loaded.Config.Hazards.Count, len(loaded.Frames))
	}

	res, err := Run(loaded)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.State.Score != live.State().Score {
		t.Errorf("replayed score %d, live %d", res.State.Score, live.State().Score)
	}

	list, err := store.ListReplays(kokaton.GameID, 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 1 || list[0].Outcome != OutcomeOf(live.State()) {
		t.Errorf("unexpected listing %+v", list)
	}
}

func TestFromStorageRejectsOtherGames(t *testing.T) {
	_, err := FromStorage(&storage.Replay{GameID: "snake"})
	if !errors.Is(err, ErrUnsupportedGame) {
		t.Errorf("FromStorage() error = %v, expected ErrUnsupportedGame", err)
	}
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		state    core.GameState
		expected string
	}{
		{core.GameState{GameOver: true}, "loss"},
		{core.GameState{Won: true}, "cleared"},
		{core.GameState{Quit: true}, "quit"},
		{core.GameState{Score: 3}, "unfinished"},
	}
	for _, tc := range tests {
		if got := OutcomeOf(tc.state); got != tc.expected {
			t.Errorf("OutcomeOf(%+v) = %q, expected %q", tc.state, got, tc.expected)
		}
	}
}
