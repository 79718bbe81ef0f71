package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatWindowPeriodSeconds(t *testing.T) {
	w := StatWindow{Period: 7 * 24 * time.Hour}
	assert.Equal(t, int32(604800), w.PeriodSeconds())

	w = StatWindow{Period: 0}
	assert.Equal(t, int32(1), w.PeriodSeconds())

	w = StatWindow{Period: 250 * time.Millisecond}
	assert.Equal(t, int32(1), w.PeriodSeconds())
}

func TestAlarmFiring(t *testing.T) {
	assert.True(t, Alarm{State: AlarmStateFiring}.Firing())
	assert.False(t, Alarm{State: AlarmStateOK}.Firing())
	assert.False(t, Alarm{State: AlarmStateInsufficient}.Firing())
}
