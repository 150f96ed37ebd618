package storage

import (
	"strconv"

	"github.com/vovakirdan/floaty-cloud/internal/games/floaty"
)

// HighScoreKey is the key-value entry holding the high score as a decimal string.
const HighScoreKey = "floatyHigh"

// ScoreBook keeps the high score and session history of one player in a Store.
type ScoreBook struct {
	store  *Store
	player string
}

// NewScoreBook creates a score book recording sessions under player.
func NewScoreBook(store *Store, player string) *ScoreBook {
	if player == "" {
		player = LocalPlayer
	}
	return &ScoreBook{store: store, player: player}
}

// LoadHighScore returns the stored high score.
// An absent or unparseable value reads as 0.
func (b *ScoreBook) LoadHighScore() (int, error) {
	raw, ok, err := b.store.Get(HighScoreKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	high, err := strconv.Atoi(raw)
	if err != nil || high < 0 {
		return 0, nil
	}
	return high, nil
}

// SaveHighScore stores score if it beats the stored value.
// The stored value never decreases, even with several sessions saving at once.
func (b *ScoreBook) SaveHighScore(score int) error {
	if score <= 0 {
		return nil
	}
	return b.store.PutMax(HighScoreKey, score)
}

// RecordScore appends a finished session to the history.
func (b *ScoreBook) RecordScore(score int) error {
	_, err := b.store.SaveScore(b.player, score)
	return err
}

var _ floaty.Persistence = (*ScoreBook)(nil)
