package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	emails := []Email{
		{ID: 1, Status: EmailDraft, ScheduledAt: now.Add(time.Hour)},
		{ID: 2, Status: EmailApproved, ScheduledAt: now.Add(time.Hour)},
		{ID: 3, Status: EmailApproved, ScheduledAt: now},
		{ID: 4, Status: EmailApproved, ScheduledAt: now.Add(-time.Hour)},
		{ID: 5, Status: EmailDraft, ScheduledAt: now.Add(-time.Hour)},
	}

	sel := Partition(emails, now)

	assert.Equal(t, []int64{1, 5}, ids(sel.DraftEmails))
	assert.Equal(t, []int64{2, 3, 4}, ids(sel.ApprovedEmails))
	assert.Equal(t, []int64{2}, ids(sel.FutureApprovedEmails))
}

func TestRevertibleNeedsStrictlyFutureSendTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, Email{Status: EmailApproved, ScheduledAt: now.Add(time.Nanosecond)}.Revertible(now))
	assert.False(t, Email{Status: EmailApproved, ScheduledAt: now}.Revertible(now))
	assert.False(t, Email{Status: EmailDraft, ScheduledAt: now.Add(time.Hour)}.Revertible(now))
}

func TestNextUpdateFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 42, 7, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), NextUpdateFrom(now, time.UTC))
}

func TestNextUpdateFromUsesGivenZone(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	// 22:30 UTC is already the next day at UTC+3
	now := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)

	got := NextUpdateFrom(now, plus3)
	assert.True(t, got.Equal(time.Date(2026, 3, 18, 0, 0, 0, 0, plus3)), got.String())
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), NextUpdateFrom(now, time.UTC))
}

func ids(emails []Email) []int64 {
	out := make([]int64, 0, len(emails))
	for _, e := range emails {
		out = append(out, e.ID)
	}
	return out
}
