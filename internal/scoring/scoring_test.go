package scoring

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPoints(t *testing.T) {
	tests := []struct {
		activity string
		amount   float64
		unit     domain.Unit
		want     int
	}{
		{"coding", 3, domain.UnitQuestions, 15},
		{"coding", 12, domain.UnitMinutes, 2},
		{"coding", 1, domain.UnitSession, 10},
		{"gym", 3, domain.UnitHours, 10},
		{"sleep", 7.5, domain.UnitHours, 7},
		{"reading", 20, domain.UnitPages, 40},
		{"reading", 45, domain.UnitMinutes, 4},
		{"reading", 1, domain.UnitSession, 8},
		{"meditation", 15, domain.UnitMinutes, 15},
		{"meditation", 1, domain.UnitSession, 10},
		{"yoga", 35, domain.UnitMinutes, 3},
		{"yoga", 1.5, domain.UnitHours, 15},
		{"journaling", 3, domain.UnitPages, 6},
		{"running", 5, domain.UnitDistance, 5},
		{"yoga", 1, domain.UnitSession, 5},
	}
	for _, tt := range tests {
		got := BuiltinPoints(tt.activity, tt.amount, tt.unit)
		assert.Equal(t, tt.want, got, "%s %v %s", tt.activity, tt.amount, tt.unit)
	}
}

func TestPoints_CustomOverride(t *testing.T) {
	st := &domain.TrackerState{}
	rate := 2.5
	require.NoError(t, st.AddActivity(domain.Activity{Name: "coding", CustomPointsPerUnit: &rate}))
	require.NoError(t, st.AddActivity(domain.Activity{Name: "yoga"}))

	assert.Equal(t, 7, Points("coding", 3, domain.UnitQuestions, st), "override replaces builtin table")
	assert.Equal(t, 5, Points("yoga", 1, domain.UnitSession, st))
	assert.Equal(t, 10, Points("gym", 1, domain.UnitSession, st))
	assert.Equal(t, 15, Points("coding", 3, domain.UnitQuestions, nil))
}

func TestPoints_CustomOverrideIsRateTimesAmount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := &domain.TrackerState{}
	require.NoError(t, st.AddActivity(domain.Activity{Name: "pushups"}))
	a, _ := st.Activity("pushups")

	for i := 0; i < 100; i++ {
		rate := float64(rng.Intn(20))
		amount := float64(rng.Intn(50) + 1)
		require.NoError(t, a.SetCustomPoints(&rate))
		assert.Equal(t, int(rate*amount), Points("pushups", amount, domain.UnitSession, st))
	}
}

func TestBadges_TierTable(t *testing.T) {
	tests := []struct {
		count int
		want  domain.BadgeTier
	}{
		{0, ""}, {2, ""}, {3, domain.TierSpark}, {6, domain.TierSpark},
		{7, domain.TierGlow}, {13, domain.TierGlow}, {14, domain.TierMedal},
		{29, domain.TierMedal}, {30, domain.TierChampion}, {120, domain.TierChampion},
	}
	for _, tt := range tests {
		b, ok := BadgeFor("gym", tt.count)
		if tt.want == "" {
			assert.False(t, ok, "count=%d", tt.count)
			continue
		}
		require.True(t, ok, "count=%d", tt.count)
		assert.Equal(t, tt.want, b.Tier, "count=%d", tt.count)
	}
}

func TestBadges_OrderAndShape(t *testing.T) {
	streaks := domain.NewStreakMap(
		domain.StreakEntry{Activity: "sleep", Count: 14},
		domain.StreakEntry{Activity: "gym", Count: 1},
		domain.StreakEntry{Activity: "coding", Count: 31},
	)

	badges := Badges(streaks)
	require.Len(t, badges, 2)
	assert.Equal(t, domain.Badge{
		Activity: "sleep", Tier: domain.TierMedal, Name: "sleep Medal", Icon: "🏅", Description: "14-day streak!",
	}, badges[0])
	assert.Equal(t, "coding Champion", badges[1].Name)
	assert.Equal(t, "🏆", badges[1].Icon)
	assert.Equal(t, "30-day streak!", badges[1].Description)
}

func TestBadges_Empty(t *testing.T) {
	assert.Empty(t, Badges(domain.StreakMap{}))
}

func TestIsMilestone(t *testing.T) {
	for _, n := range []int{3, 7, 14, 30} {
		assert.True(t, IsMilestone(n), n)
	}
	for _, n := range []int{0, 2, 4, 15, 31} {
		assert.False(t, IsMilestone(n), n)
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		count int
		want  int
		tier  domain.BadgeTier
		ok    bool
	}{
		{0, 3, domain.TierSpark, true},
		{3, 7, domain.TierGlow, true},
		{13, 14, domain.TierMedal, true},
		{29, 30, domain.TierChampion, true},
		{30, 0, "", false},
		{45, 0, "", false},
	}
	for _, tt := range tests {
		got, tier, ok := NextMilestone(tt.count)
		assert.Equal(t, tt.want, got, "count %d", tt.count)
		assert.Equal(t, tt.tier, tier, "count %d", tt.count)
		assert.Equal(t, tt.ok, ok, "count %d", tt.count)
	}
}
