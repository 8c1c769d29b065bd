package scoring

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// fakeSettlementTx is an in-memory SettlementTx.
type fakeSettlementTx struct {
	predictions  []domain.Prediction
	users        map[string]*domain.User
	weekly       map[string]int
	achievements map[string]bool
	failScore    error
	outcomePages int
}

func newFakeTx(preds ...domain.Prediction) *fakeSettlementTx {
	tx := &fakeSettlementTx{
		predictions:  preds,
		users:        map[string]*domain.User{},
		weekly:       map[string]int{},
		achievements: map[string]bool{},
	}
	for _, p := range preds {
		if _, ok := tx.users[p.UserID]; !ok {
			tx.users[p.UserID] = &domain.User{ID: p.UserID}
		}
	}
	return tx
}

func (f *fakeSettlementTx) Commit(context.Context) error   { return nil }
func (f *fakeSettlementTx) Rollback(context.Context) error { return nil }

func (f *fakeSettlementTx) GetMarketForUpdate(context.Context, string) (*domain.Market, error) {
	return nil, errors.New("not used")
}

func (f *fakeSettlementTx) MarkResolved(context.Context, string, bool, time.Time) error {
	return nil
}

func (f *fakeSettlementTx) GetPredictionsForUpdate(_ context.Context, marketID string) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range f.predictions {
		if p.MarketID == marketID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSettlementTx) GetRecentOutcomes(_ context.Context, userID string, offset, limit int) ([]bool, error) {
	f.outcomePages++
	var scored []domain.Prediction
	for _, p := range f.predictions {
		if p.UserID == userID && p.IsScored() {
			scored = append(scored, p)
		}
	}
	sort.Slice(scored, func(i, j int) bool {
		if !scored[i].ScoredAt.Equal(*scored[j].ScoredAt) {
			return scored[i].ScoredAt.After(*scored[j].ScoredAt)
		}
		return scored[i].ID > scored[j].ID
	})
	var out []bool
	for i, p := range scored {
		if i < offset {
			continue
		}
		if i >= offset+limit {
			break
		}
		out = append(out, *p.IsCorrect)
	}
	return out, nil
}

func (f *fakeSettlementTx) ScorePrediction(_ context.Context, id int64, points int, correct bool, at time.Time) (bool, error) {
	if f.failScore != nil {
		return false, f.failScore
	}
	for i := range f.predictions {
		p := &f.predictions[i]
		if p.ID != id {
			continue
		}
		if p.IsScored() {
			return false, nil
		}
		p.PointsEarned = points
		p.IsCorrect = &correct
		p.ScoredAt = &at
		return true, nil
	}
	return false, nil
}

func (f *fakeSettlementTx) ApplyUserScore(_ context.Context, userID string, d repository.UserScoreDelta) (*domain.User, error) {
	u := f.users[userID]
	u.TotalPoints += d.Points
	if d.CountWeekly {
		u.WeeklyPoints += d.Points
	}
	if d.Correct {
		u.PredictionsCorrect++
	}
	u.Streak = d.Streak
	cp := *u
	return &cp, nil
}

func (f *fakeSettlementTx) AddWeeklyScore(_ context.Context, userID string, leagueID int64, weekStart time.Time, points int) error {
	f.weekly[userID+"|"+weekStart.Format(domain.WeekDateLayout)] += points
	return nil
}

func (f *fakeSettlementTx) AwardAchievement(_ context.Context, userID, key string, _ time.Time) (bool, error) {
	k := userID + "|" + key
	if f.achievements[k] {
		return false, nil
	}
	f.achievements[k] = true
	return true, nil
}

var (
	testWeek = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)
)

func pending(id int64, user, market string, choice bool) domain.Prediction {
	return domain.Prediction{ID: id, UserID: user, MarketID: market, LeagueID: domain.DefaultLeagueID, Choice: choice}
}

func TestSettle_FanOut(t *testing.T) {
	market := &domain.Market{ID: "M", WeekStart: testWeek}
	tx := newFakeTx(
		pending(1, "u1", "M", true),
		pending(2, "u2", "M", true),
		pending(3, "u3", "M", true),
		pending(4, "u4", "M", false),
		pending(5, "u5", "M", false),
	)

	result, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, market, true, testNow)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Scored)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 2, result.Incorrect)
	assert.Equal(t, 30, result.PointsAwarded)

	for _, id := range []string{"u1", "u2", "u3"} {
		assert.Equal(t, 10, tx.users[id].TotalPoints)
		assert.Equal(t, 10, tx.users[id].WeeklyPoints)
		assert.Equal(t, 1, tx.users[id].PredictionsCorrect)
		assert.Equal(t, 1, tx.users[id].Streak)
	}
	for _, id := range []string{"u4", "u5"} {
		assert.Equal(t, 0, tx.users[id].TotalPoints)
		assert.Equal(t, 0, tx.users[id].PredictionsCorrect)
	}
	for _, p := range tx.predictions {
		assert.True(t, p.IsScored(), "prediction %d", p.ID)
	}
	assert.Equal(t, 10, tx.weekly["u1|2024-06-03"])
}

func TestSettle_NoPredictions(t *testing.T) {
	tx := newFakeTx()
	result, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "EMPTY"}, false, testNow)
	require.NoError(t, err)
	assert.Zero(t, result.Scored)
	assert.Empty(t, result.Predictions)
}

func TestSettle_AlreadyScoredIsSkipped(t *testing.T) {
	at := testNow.Add(-time.Hour)
	correct := true
	done := pending(1, "u1", "M", true)
	done.ScoredAt = &at
	done.IsCorrect = &correct
	done.PointsEarned = 10

	tx := newFakeTx(done, pending(2, "u2", "M", true))
	result, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "M", WeekStart: testWeek}, true, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scored)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, tx.users["u1"].TotalPoints)
	assert.Equal(t, 10, tx.predictions[0].PointsEarned)
}

func TestSettle_StreakBonusFromHistory(t *testing.T) {
	earlier := testNow.Add(-48 * time.Hour)
	yes := true
	var preds []domain.Prediction
	for i := int64(1); i <= 3; i++ {
		p := pending(i, "u1", "OLD", true)
		at := earlier.Add(time.Duration(i) * time.Minute)
		p.ScoredAt = &at
		p.IsCorrect = &yes
		preds = append(preds, p)
	}
	preds = append(preds, pending(10, "u1", "M", true))

	tx := newFakeTx(preds...)
	tx.users["u1"].TotalPoints = 30
	tx.users["u1"].Streak = 3

	result, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "M", WeekStart: testWeek}, true, testNow)
	require.NoError(t, err)

	require.Len(t, result.Predictions, 1)
	assert.Equal(t, 4, result.Predictions[0].Streak)
	assert.Equal(t, 14, result.Predictions[0].Points) // 10 + (4-3+1)*2
	assert.Equal(t, 44, tx.users["u1"].TotalPoints)
}

func TestSettle_StreakSpansSeveralHistoryPages(t *testing.T) {
	earlier := testNow.Add(-72 * time.Hour)
	yes, no := true, false
	var preds []domain.Prediction
	// one miss, then seven correct answers in a row
	for i := int64(1); i <= 8; i++ {
		p := pending(i, "u1", "OLD", true)
		at := earlier.Add(time.Duration(i) * time.Minute)
		p.ScoredAt = &at
		p.IsCorrect = &yes
		if i == 1 {
			p.IsCorrect = &no
		}
		preds = append(preds, p)
	}
	preds = append(preds, pending(20, "u1", "M", true))

	cfg := DefaultConfig()
	cfg.StreakPageSize = 2
	tx := newFakeTx(preds...)

	result, err := NewEngine(cfg).Settle(context.Background(), tx, &domain.Market{ID: "M", WeekStart: testWeek}, true, testNow)
	require.NoError(t, err)

	require.Len(t, result.Predictions, 1)
	assert.Equal(t, 8, result.Predictions[0].Streak)
	assert.Equal(t, 10+(8-3+1)*2, result.Predictions[0].Points)
	assert.Equal(t, 4, tx.outcomePages, "stops at the page holding the miss")
}

func TestSettle_WrongAnswerResetsStreak(t *testing.T) {
	tx := newFakeTx(pending(1, "u1", "M", false))
	tx.users["u1"].Streak = 6

	_, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "M", WeekStart: testWeek}, true, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, tx.users["u1"].Streak)
}

func TestSettle_PastWeekDoesNotCountWeekly(t *testing.T) {
	tx := newFakeTx(pending(1, "u1", "M", true))
	market := &domain.Market{ID: "M", WeekStart: testWeek.AddDate(0, 0, -7)}

	_, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, market, true, testNow)
	require.NoError(t, err)
	assert.Equal(t, 10, tx.users["u1"].TotalPoints)
	assert.Equal(t, 0, tx.users["u1"].WeeklyPoints)
	assert.Equal(t, 10, tx.weekly["u1|2024-05-27"])
}

func TestSettle_Achievements(t *testing.T) {
	p := pending(1, "u1", "M", false)
	p.IsContrarian = true
	tx := newFakeTx(p)
	tx.users["u1"].TotalPoints = 90

	result, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "M", WeekStart: testWeek}, false, testNow)
	require.NoError(t, err)

	keys := map[string]bool{}
	for _, a := range result.Achievements {
		keys[a.Key] = true
	}
	assert.True(t, keys[domain.AchievementCenturyClub])
	assert.True(t, keys[domain.AchievementContrarianGenius])
	assert.False(t, keys[domain.AchievementHotStreak])
}

func TestSettle_StorageErrorAborts(t *testing.T) {
	tx := newFakeTx(pending(1, "u1", "M", true))
	tx.failScore = domain.ErrStorageTimeout

	_, err := NewEngine(DefaultConfig()).Settle(context.Background(), tx, &domain.Market{ID: "M"}, true, testNow)
	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
}
