// Package stats keeps the in-memory history of finished rounds.
//
// Records are appended one per round. Once GroupSize records share the same
// compression level they are folded into a single grouped record one level up,
// so memory stays bounded over long sessions while totals and extremes survive.
// Nothing here is written to disk.
package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultGroupSize is the number of records folded into one group.
const DefaultGroupSize = 100

// RoundRecord is a finished round (CompressionIndex 0) or a group of rounds.
type RoundRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Ticks     int       `json:"ticks"`
	Cause     string    `json:"cause"`

	CompressionIndex int     `json:"compressionIndex"` // 0 for single rounds
	GamesCount       int     `json:"gamesCount"`
	AverageScore     float64 `json:"averageScore"`
	MedianScore      float64 `json:"medianScore"`
	MaxScore         int     `json:"maxScore"`
	MinScore         int     `json:"minScore"`
	AverageDuration  float64 `json:"averageDuration"`
	MaxDuration      float64 `json:"maxDuration"`
	MinDuration      float64 `json:"minDuration"`
}

// Duration is the wall-clock length of a single round in seconds.
func (r RoundRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// History holds round records for one process run.
type History struct {
	records   []RoundRecord
	groupSize int
}

func NewHistory(groupSize int) *History {
	if groupSize < 2 {
		groupSize = DefaultGroupSize
	}
	return &History{
		records:   make([]RoundRecord, 0),
		groupSize: groupSize,
	}
}

// Add appends a finished round and folds full groups.
func (h *History) Add(rec RoundRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	d := rec.Duration()
	rec.CompressionIndex = 0
	rec.GamesCount = 1
	rec.AverageScore = float64(rec.Score)
	rec.MedianScore = float64(rec.Score)
	rec.MaxScore = rec.Score
	rec.MinScore = rec.Score
	rec.AverageDuration = d
	rec.MaxDuration = d
	rec.MinDuration = d
	h.records = append(h.records, rec)

	h.groupRecords()
}

// groupRecords folds every run of groupSize records sharing a compression level.
func (h *History) groupRecords() {
	sort.SliceStable(h.records, func(i, j int) bool {
		if h.records[i].CompressionIndex != h.records[j].CompressionIndex {
			return h.records[i].CompressionIndex > h.records[j].CompressionIndex
		}
		return h.records[i].StartTime.Before(h.records[j].StartTime)
	})

	for level := 0; ; level++ {
		var same, rest []RoundRecord
		for _, r := range h.records {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(same) < h.groupSize {
			break
		}

		var folded []RoundRecord
		for i := 0; i < len(same); i += h.groupSize {
			end := i + h.groupSize
			if end > len(same) {
				folded = append(folded, same[i:]...)
				break
			}
			folded = append(folded, fold(same[i:end], level+1))
		}
		h.records = append(rest, folded...)
	}
}

func fold(group []RoundRecord, level int) RoundRecord {
	out := RoundRecord{
		ID:               uuid.NewString(),
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	scores := make([]float64, len(group))
	durations := make([]float64, len(group))
	medians := make([]float64, len(group))
	weights := make([]float64, len(group))
	for i, g := range group {
		scores[i] = g.AverageScore
		durations[i] = g.AverageDuration
		medians[i] = g.MedianScore
		weights[i] = float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		out.Ticks += g.Ticks

		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
	}
	out.AverageScore = stat.Mean(scores, weights)
	out.AverageDuration = stat.Mean(durations, weights)
	out.MedianScore = weightedMedian(medians, weights)
	return out
}

// weightedMedian returns the lower weighted median of x.
func weightedMedian(x, weights []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	xs := make([]float64, len(x))
	ws := make([]float64, len(weights))
	copy(xs, x)
	copy(ws, weights)
	stat.SortWeighted(xs, ws)
	return stat.Quantile(0.5, stat.Empirical, xs, ws)
}

// Records returns a copy of the stored records.
func (h *History) Records() []RoundRecord {
	out := make([]RoundRecord, len(h.records))
	copy(out, h.records)
	return out
}

// GamesPlayed is the total number of rounds recorded.
func (h *History) GamesPlayed() int {
	total := 0
	for _, r := range h.records {
		total += r.GamesCount
	}
	return total
}

func (h *History) column(pick func(RoundRecord) float64) (x, w []float64) {
	x = make([]float64, len(h.records))
	w = make([]float64, len(h.records))
	for i, r := range h.records {
		x[i] = pick(r)
		w[i] = float64(r.GamesCount)
	}
	return x, w
}

// AverageScore is the mean score over all recorded rounds.
func (h *History) AverageScore() float64 {
	if len(h.records) == 0 {
		return 0
	}
	x, w := h.column(func(r RoundRecord) float64 { return r.AverageScore })
	return stat.Mean(x, w)
}

// MedianScore is the lower median score over all recorded rounds.
func (h *History) MedianScore() float64 {
	x, w := h.column(func(r RoundRecord) float64 { return r.MedianScore })
	return weightedMedian(x, w)
}

// MaxScore is the best round score recorded.
func (h *History) MaxScore() int {
	if len(h.records) == 0 {
		return 0
	}
	x, _ := h.column(func(r RoundRecord) float64 { return float64(r.MaxScore) })
	return int(floats.Max(x))
}

// AverageDuration is the mean round length in seconds.
func (h *History) AverageDuration() float64 {
	if len(h.records) == 0 {
		return 0
	}
	x, w := h.column(func(r RoundRecord) float64 { return r.AverageDuration })
	return stat.Mean(x, w)
}

// Recent returns up to n records in chronological order, newest last.
func (h *History) Recent(n int) []RoundRecord {
	recs := h.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].StartTime.Before(recs[j].StartTime)
	})
	if n > 0 && len(recs) > n {
		recs = recs[len(recs)-n:]
	}
	return recs
}
