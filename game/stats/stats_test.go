package stats

import (
	"testing"
	"time"
)

func round(start time.Time, score int, seconds int) RoundRecord {
	return RoundRecord{
		StartTime: start,
		EndTime:   start.Add(time.Duration(seconds) * time.Second),
		Score:     score,
		Length:    1 + score/10,
	}
}

func TestEmptyHistory(t *testing.T) {
	h := NewHistory(10)
	if h.GamesPlayed() != 0 || h.AverageScore() != 0 || h.MaxScore() != 0 || h.MedianScore() != 0 {
		t.Error("empty history must report zeros")
	}
	if len(h.Recent(5)) != 0 {
		t.Error("empty history has recent records")
	}
}

func TestSingleRounds(t *testing.T) {
	h := NewHistory(10)
	base := time.Unix(0, 0)
	h.Add(round(base, 10, 5))
	h.Add(round(base.Add(time.Minute), 30, 15))
	h.Add(round(base.Add(2*time.Minute), 20, 10))

	if got := h.GamesPlayed(); got != 3 {
		t.Errorf("GamesPlayed = %d", got)
	}
	if got := h.AverageScore(); got != 20 {
		t.Errorf("AverageScore = %v, want 20", got)
	}
	if got := h.MedianScore(); got != 20 {
		t.Errorf("MedianScore = %v, want 20", got)
	}
	if got := h.MaxScore(); got != 30 {
		t.Errorf("MaxScore = %d, want 30", got)
	}
	if got := h.AverageDuration(); got != 10 {
		t.Errorf("AverageDuration = %v, want 10", got)
	}
	for _, r := range h.Records() {
		if r.ID == "" {
			t.Error("record without id")
		}
	}
}

func TestGroupingPreservesTotals(t *testing.T) {
	h := NewHistory(3)
	base := time.Unix(0, 0)
	scores := []int{10, 20, 30, 40, 50, 60, 70}
	for i, s := range scores {
		h.Add(round(base.Add(time.Duration(i)*time.Minute), s, 10))
	}

	recs := h.Records()
	// Seven rounds with groups of three: two level-1 groups plus one raw record.
	if len(recs) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(recs))
	}
	grouped := 0
	for _, r := range recs {
		if r.CompressionIndex == 1 {
			grouped++
			if r.GamesCount != 3 {
				t.Errorf("group size = %d, want 3", r.GamesCount)
			}
		}
	}
	if grouped != 2 {
		t.Errorf("grouped records = %d, want 2", grouped)
	}

	if got := h.GamesPlayed(); got != len(scores) {
		t.Errorf("GamesPlayed = %d, want %d", got, len(scores))
	}
	if got := h.AverageScore(); got != 40 {
		t.Errorf("AverageScore = %v, want 40", got)
	}
	if got := h.MaxScore(); got != 70 {
		t.Errorf("MaxScore = %d, want 70", got)
	}
}

func TestGroupingCascades(t *testing.T) {
	h := NewHistory(2)
	base := time.Unix(0, 0)
	for i := 0; i < 4; i++ {
		h.Add(round(base.Add(time.Duration(i)*time.Minute), 10*(i+1), 1))
	}
	recs := h.Records()
	if len(recs) != 1 {
		t.Fatalf("len(records) = %d, want a single level-2 group", len(recs))
	}
	r := recs[0]
	if r.CompressionIndex != 2 || r.GamesCount != 4 {
		t.Errorf("group = level %d count %d", r.CompressionIndex, r.GamesCount)
	}
	if r.MinScore != 10 || r.MaxScore != 40 {
		t.Errorf("extremes = %d..%d", r.MinScore, r.MaxScore)
	}
	if !r.StartTime.Equal(base) {
		t.Errorf("group start = %v", r.StartTime)
	}
}

func TestRecentIsChronological(t *testing.T) {
	h := NewHistory(100)
	base := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		h.Add(round(base.Add(time.Duration(i)*time.Minute), i, 1))
	}
	recent := h.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("len = %d", len(recent))
	}
	for i, want := range []int{2, 3, 4} {
		if recent[i].Score != want {
			t.Errorf("recent[%d].Score = %d, want %d", i, recent[i].Score, want)
		}
	}
}
