package core

import (
	"log/slog"
	"time"
)

// StageTimer records how long each named stage of a generation run takes.
type StageTimer struct {
	now    func() time.Time
	start  time.Time
	stages []StageTiming
}

// StageTiming is a single completed stage measurement.
type StageTiming struct {
	Name     string
	Duration time.Duration
}

// NewStageTimer starts a timer using the wall clock.
func NewStageTimer() *StageTimer {
	return newStageTimer(time.Now)
}

func newStageTimer(now func() time.Time) *StageTimer {
	return &StageTimer{now: now, start: now()}
}

// Track runs fn and records its duration under name.
func (t *StageTimer) Track(name string, fn func()) time.Duration {
	begin := t.now()
	fn()
	d := t.now().Sub(begin)
	t.stages = append(t.stages, StageTiming{Name: name, Duration: d})
	return d
}

// Stages returns the recorded measurements in completion order.
func (t *StageTimer) Stages() []StageTiming { return t.stages }

// Total reports the time elapsed since the timer was created.
func (t *StageTimer) Total() time.Duration { return t.now().Sub(t.start) }

// LogValue renders the measurements as a slog group, one attribute per stage.
func (t *StageTimer) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(t.stages)+1)
	for _, s := range t.stages {
		attrs = append(attrs, slog.Duration(s.Name, s.Duration))
	}
	attrs = append(attrs, slog.Duration("total", t.Total()))
	return slog.GroupValue(attrs...)
}
