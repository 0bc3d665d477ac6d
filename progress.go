// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Phase is one of the four phases of mosaic generation that report progress.
type Phase int

const (
	// PhaseImport is the decoding and resizing of tile images.
	PhaseImport Phase = iota
	// PhaseAverage is the computation of the tile average colors.
	PhaseAverage
	// PhaseResolve is the nearest tile lookup for each grid cell.
	PhaseResolve
	// PhaseDraw is the pasting of tiles into the mosaic.
	PhaseDraw
)

func (phase Phase) String() string {
	switch phase {
	case PhaseImport:
		return "import tiles"
	case PhaseAverage:
		return "average colors"
	case PhaseResolve:
		return "nearest tiles"
	case PhaseDraw:
		return "draw tiles"
	default:
		return fmt.Sprintf("Phase(%d)", phase)
	}
}

// ProgressFunc is a function that is used to inform a caller about the progress
// of mosaic generation.
// It is called once per unit of work (a tile or a grid cell) with the
// completion percentage of the phase (0 - 100). Within a phase the percentage
// never decreases. It's purely advisory and must not block for long.
type ProgressFunc func(phase Phase, percent float64)

// ProgressIgnore is a ProgressFunc that does nothing.
func ProgressIgnore(phase Phase, percent float64) {}

// LoggerProgressFunc is a parameterized ProgressFunc that logs to log.
// step describes how often to log in percent, for example step = 10 logs
// each time another 10% are done. The completion of a phase (100%) is always
// logged. step ≤ 0 logs every call.
func LoggerProgressFunc(step float64) ProgressFunc {
	last := make(map[Phase]float64)
	return func(phase Phase, percent float64) {
		prev, has := last[phase]
		if step > 0 && has && percent-prev < step && percent < 100.0 {
			return
		}
		last[phase] = percent
		log.WithFields(log.Fields{
			"phase":   phase.String(),
			"percent": fmt.Sprintf("%.1f", percent),
		}).Info("Progress")
	}
}

// progressCounter counts completed units of one phase. It is not safe for
// concurrent use, only the goroutine collecting results calls it.
type progressCounter struct {
	phase    Phase
	total    int
	done     int
	progress ProgressFunc
}

func newProgressCounter(phase Phase, total int, progress ProgressFunc) *progressCounter {
	if progress == nil {
		progress = ProgressIgnore
	}
	return &progressCounter{phase: phase, total: total, progress: progress}
}

// add marks units more items done, the progress function is called once per
// unit.
func (counter *progressCounter) add(units int) {
	if counter == nil || counter.total <= 0 {
		return
	}
	for i := 0; i < units; i++ {
		counter.done++
		percent := (float64(counter.done) / float64(counter.total)) * 100.0
		if percent > 100.0 {
			percent = 100.0
		}
		counter.progress(counter.phase, percent)
	}
}
