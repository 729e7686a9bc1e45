package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/kokaton-arcade/internal/config"
	"github.com/vovakirdan/kokaton-arcade/internal/core"
	"github.com/vovakirdan/kokaton-arcade/internal/games/kokaton"
	"github.com/vovakirdan/kokaton-arcade/internal/storage"
)

// ErrUnsupportedGame is returned for replays of games other than kokaton.
var ErrUnsupportedGame = errors.New("unsupported game")

// Recording is everything needed to reproduce one session.
type Recording struct {
	GameID string
	Seed   int64
	Config config.KokatonConfig
	Frames []Frame
}

// Recorder accumulates the frames of a running session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a session created from cfg and seed.
func NewRecorder(seed int64, cfg config.KokatonConfig) *Recorder {
	return &Recorder{rec: Recording{GameID: kokaton.GameID, Seed: seed, Config: cfg}}
}

// Record appends the input of one step.
func (r *Recorder) Record(in core.InputFrame) {
	r.rec.Frames = append(r.rec.Frames, FrameOf(in))
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.rec.Frames) }

// Recording returns what has been recorded so far.
func (r *Recorder) Recording() Recording { return r.rec }

// OutcomeOf names the end state of a game for storage.
func OutcomeOf(state core.GameState) string {
	switch {
	case state.GameOver:
		return "loss"
	case state.Won:
		return "cleared"
	case state.Quit:
		return "quit"
	default:
		return "unfinished"
	}
}

// ToStorage converts the recording into a storage row.
func (rec Recording) ToStorage(state core.GameState, ticks int) (storage.Replay, error) {
	cfgData, err := config.MarshalKokaton(rec.Config)
	if err != nil {
		return storage.Replay{}, fmt.Errorf("replay: %w", err)
	}
	frames, err := EncodeFrames(rec.Frames)
	if err != nil {
		return storage.Replay{}, err
	}

	return storage.Replay{
		GameID:  rec.GameID,
		Seed:    rec.Seed,
		Config:  cfgData,
		Frames:  frames,
		Score:   state.Score,
		Outcome: OutcomeOf(state),
		Ticks:   ticks,
	}, nil
}

// FromStorage decodes a stored replay.
func FromStorage(r *storage.Replay) (Recording, error) {
	if r.GameID != kokaton.GameID {
		return Recording{}, fmt.Errorf("replay: %w %q", ErrUnsupportedGame, r.GameID)
	}
	cfg, err := config.ParseKokaton(r.Config)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: %w", err)
	}
	frames, err := DecodeFrames(r.Frames)
	if err != nil {
		return Recording{}, err
	}
	return Recording{GameID: r.GameID, Seed: r.Seed, Config: cfg, Frames: frames}, nil
}

// Save encodes rec and stores it, returning the new replay ID.
func Save(store *storage.Store, rec Recording, state core.GameState, ticks int) (string, error) {
	row, err := rec.ToStorage(state, ticks)
	if err != nil {
		return "", err
	}
	return store.SaveReplay(row)
}

// Load fetches and decodes a stored replay.
func Load(store *storage.Store, id string) (Recording, error) {
	row, err := store.LoadReplay(id)
	if err != nil {
		return Recording{}, err
	}
	return FromStorage(row)
}
