package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanes(t *testing.T) {
	l := newLanes(context.Background())

	first, tok1 := l.start(LaneList)
	second, tok2 := l.start(LaneList)
	trend, tokTrend := l.start(LaneTrend)

	assert.ErrorIs(t, first.Err(), context.Canceled)
	assert.NoError(t, second.Err())
	assert.NoError(t, trend.Err())

	assert.False(t, l.finish(LaneList, tok1))
	assert.True(t, l.loading(LaneList))
	assert.True(t, l.finish(LaneList, tok2))
	assert.False(t, l.loading(LaneList))
	assert.ErrorIs(t, second.Err(), context.Canceled)

	l.abandon(LaneTrend)
	assert.False(t, l.finish(LaneTrend, tokTrend))
	assert.ErrorIs(t, trend.Err(), context.Canceled)
}

func TestLaneString(t *testing.T) {
	assert.Equal(t, "news", LaneNews.String())
	assert.Equal(t, "unknown", Lane(99).String())
}
