package hive

import (
	"fmt"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// HatchOutcome carries the hatch result and the state to persist
type HatchOutcome struct {
	Result     domain.HatchResult
	Hives      []domain.Hive
	Milestones []domain.PollinationMilestone
	// Recorded is true when a new milestone was appended and must be persisted
	Recorded bool
}

// LastProcessedMilestone is the highest milestone score already handled
func LastProcessedMilestone(milestones []domain.PollinationMilestone) int {
	last := 0
	for _, m := range milestones {
		if m.Score > last {
			last = m.Score
		}
	}
	return last
}

// CheckForBeeHatching awards bees for a newly crossed pollination milestone.
// Calling it again with the same score is a no-op.
func (l *Ledger) CheckForBeeHatching(score int, hives []domain.Hive, milestones []domain.PollinationMilestone) HatchOutcome {
	outcome := HatchOutcome{Hives: hives, Milestones: milestones}

	currentMilestone := (score / l.milestoneInterval) * l.milestoneInterval
	if currentMilestone <= LastProcessedMilestone(milestones) {
		return outcome
	}

	summary := l.Summarize(hives)
	beesToAward := max(0, score/l.milestoneInterval-summary.CurrentBees)

	record := domain.PollinationMilestone{Score: currentMilestone, Timestamp: l.clock.Now()}
	outcome.Result.Milestone = currentMilestone
	outcome.Recorded = true

	switch {
	case summary.AvailableCapacity > 0:
		award := min(beesToAward, summary.AvailableCapacity)
		if award > 0 {
			next, target, placed := l.distribute(hives, award)
			award = placed
			outcome.Hives = next
			outcome.Result.NewBeesHatched = award
			outcome.Result.TargetHiveID = target
			outcome.Result.ShouldShowAlert = true
			if award == 1 {
				outcome.Result.Message = fmt.Sprintf(MsgSingleBeeHatched, target, score)
			} else {
				outcome.Result.Message = fmt.Sprintf(MsgBeesHatched, award, score)
			}
		}
		record.BeesAwarded = award
	case beesToAward > 0:
		outcome.Result.HivesFull = true
		outcome.Result.ShouldShowAlert = true
		outcome.Result.Message = fmt.Sprintf(MsgHivesFull, score)
	}

	outcome.Milestones = append(append([]domain.PollinationMilestone{}, milestones...), record)
	return outcome
}

// distribute places bees into the hive with the most free space first,
// spilling into the next roomiest hive. Every placement goes through AddBees,
// so it reports how many bees actually landed. Ties keep iteration order.
func (l *Ledger) distribute(hives []domain.Hive, count int) ([]domain.Hive, string, int) {
	out := hives
	target := ""
	placed := 0
	for count > 0 {
		best, bestFree := -1, 0
		for i, h := range out {
			if free := l.Capacity(h) - h.BeeCount; free > bestFree {
				best, bestFree = i, free
			}
		}
		if best < 0 {
			break
		}
		n := min(count, bestFree)
		next, err := l.AddBees(out, out[best].ID, n)
		if err != nil {
			break
		}
		if target == "" {
			target = out[best].ID
		}
		out = next
		placed += n
		count -= n
	}
	return out, target, placed
}
