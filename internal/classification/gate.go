// Package classification limits hive classifications to a daily allowance and keeps a bounded history.
package classification

import (
	"fmt"
	"maps"

	"github.com/google/uuid"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
)

// Defaults
const (
	DefaultMaxPerHive = 1
	DefaultHistoryCap = 1000
	DateLayout        = "2006-01-02"
)

// Log messages
const (
	LogMsgClassificationRecorded = "Classification recorded"
	LogMsgClassificationRejected = "Classification rejected"
)

// Gate applies the daily allowance. It holds no state of its own.
type Gate struct {
	clock      clock.Clock
	maxPerHive int
	historyCap int
}

// NewGate creates a Gate; non-positive settings use the defaults
func NewGate(c clock.Clock, maxPerHive, historyCap int) *Gate {
	if maxPerHive <= 0 {
		maxPerHive = DefaultMaxPerHive
	}
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &Gate{clock: c, maxPerHive: maxPerHive, historyCap: historyCap}
}

// Today returns daily if it is for the current date, else a fresh record
func (g *Gate) Today(daily *domain.DailyClassifications) domain.DailyClassifications {
	today := g.clock.Now().Format(DateLayout)
	if daily == nil || daily.Date != today {
		return domain.DailyClassifications{
			Date:                      today,
			ClassificationsByHive:     make(map[string]int),
			MaxClassificationsPerHive: g.maxPerHive,
		}
	}
	out := *daily
	out.ClassificationsByHive = maps.Clone(daily.ClassificationsByHive)
	if out.ClassificationsByHive == nil {
		out.ClassificationsByHive = make(map[string]int)
	}
	if out.MaxClassificationsPerHive <= 0 {
		out.MaxClassificationsPerHive = g.maxPerHive
	}
	return out
}

// Remaining is how many classifications hiveID has left today
func (g *Gate) Remaining(daily *domain.DailyClassifications, hiveID string) int {
	d := g.Today(daily)
	return max(0, d.MaxClassificationsPerHive-d.ClassificationsByHive[hiveID])
}

// CanClassify reports whether hiveID still has an allowance today
func (g *Gate) CanClassify(daily *domain.DailyClassifications, hiveID string) bool {
	return g.Remaining(daily, hiveID) > 0
}

// Record accepts one classification for userID. Without a session user nothing is recorded.
func (g *Gate) Record(daily *domain.DailyClassifications, history []domain.Classification, userID, hiveID, label string) (domain.DailyClassifications, []domain.Classification, domain.Classification, error) {
	d := g.Today(daily)
	if userID == "" {
		return d, history, domain.Classification{}, domain.ErrNoSession
	}
	if d.ClassificationsByHive[hiveID] >= d.MaxClassificationsPerHive {
		return d, history, domain.Classification{}, fmt.Errorf("%w: %s", domain.ErrAlreadyClassified, hiveID)
	}

	d.ClassificationsByHive[hiveID]++
	c := domain.Classification{
		ID:        hiveID + "-" + uuid.NewString(),
		HiveID:    hiveID,
		UserID:    userID,
		Label:     label,
		Timestamp: g.clock.Now(),
	}

	next := make([]domain.Classification, 0, min(len(history)+1, g.historyCap))
	if drop := len(history) + 1 - g.historyCap; drop > 0 {
		next = append(next, history[drop:]...)
	} else {
		next = append(next, history...)
	}
	next = append(next, c)

	return d, next, c, nil
}
