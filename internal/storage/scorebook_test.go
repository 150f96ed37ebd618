package storage

import (
	"fmt"
	"sync"
	"testing"
)

func TestKVGetPut(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = (%v, %v), expected absent", ok, err)
	}

	store.Put("a", "1")
	store.Put("a", "2")

	v, ok, err := store.Get("a")
	if err != nil || !ok || v != "2" {
		t.Errorf("Get(a) = (%q, %v, %v), expected overwritten value 2", v, ok, err)
	}
}

func TestScoreBookLoadHighScore(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		present  bool
		expected int
	}{
		{"absent", "", false, 0},
		{"stored", "37", true, 37},
		{"garbage", "lots", true, 0},
		{"negative", "-4", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if tt.present {
				store.Put(HighScoreKey, tt.stored)
			}

			high, err := NewScoreBook(store, "").LoadHighScore()
			if err != nil {
				t.Fatalf("LoadHighScore() failed: %v", err)
			}
			if high != tt.expected {
				t.Errorf("LoadHighScore() = %d, expected %d", high, tt.expected)
			}
		})
	}
}

func TestScoreBookNeverLowersHighScore(t *testing.T) {
	store := openTestStore(t)
	book := NewScoreBook(store, "")

	for _, score := range []int{5, 9, 3, 9, 12, 1} {
		before, _ := book.LoadHighScore()
		if err := book.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
		}
		after, _ := book.LoadHighScore()
		if after < before {
			t.Fatalf("high score dropped from %d to %d", before, after)
		}
	}

	v, _, _ := store.Get(HighScoreKey)
	if v != "12" {
		t.Errorf("stored value = %q, expected decimal 12", v)
	}
}

func TestScoreBookReplacesUnreadableHighScore(t *testing.T) {
	store := openTestStore(t)
	store.Put(HighScoreKey, "lots")

	if err := NewScoreBook(store, "").SaveHighScore(3); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if v, _, _ := store.Get(HighScoreKey); v != "3" {
		t.Errorf("stored value = %q, expected 3", v)
	}
}

func TestScoreBookConcurrentSessionsKeepHighest(t *testing.T) {
	store := openTestStore(t)

	for round := 0; round < 30; round++ {
		key := fmt.Sprintf("%s-%d", HighScoreKey, round)
		store.Put(key, "0")

		var wg sync.WaitGroup
		errs := make(chan error, 4)
		for _, score := range []int{40, 10, 20, 30} {
			wg.Add(1)
			go func(score int) {
				defer wg.Done()
				errs <- store.PutMax(key, score)
			}(score)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				t.Fatalf("round %d: PutMax failed: %v", round, err)
			}
		}
		if v, _, _ := store.Get(key); v != "40" {
			t.Fatalf("round %d: stored value = %q, expected 40", round, v)
		}
	}
}

func TestScoreBookConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for _, score := range []int{40, 10, 20, 30} {
		wg.Add(1)
		go func(player string, score int) {
			defer wg.Done()
			errs <- NewScoreBook(store, player).SaveHighScore(score)
		}(fmt.Sprintf("p%d", score), score)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("SaveHighScore failed: %v", err)
		}
	}
	if high, _ := NewScoreBook(store, "").LoadHighScore(); high != 40 {
		t.Errorf("high score = %d, expected 40", high)
	}
}

func TestScoreBookRecordScore(t *testing.T) {
	store := openTestStore(t)

	NewScoreBook(store, "").RecordScore(8)
	NewScoreBook(store, "carol").RecordScore(11)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(scores))
	}
	if scores[0].Player != "carol" || scores[1].Player != LocalPlayer {
		t.Errorf("unexpected players: %+v", scores)
	}
}
