// Package sound holds the contract the interpreter uses to start and stop
// background sounds. Playback itself happens elsewhere; calls never block and
// never fail from the caller's point of view.
package sound

import (
	"sync"

	"go.uber.org/zap"
)

// Player starts and stops looping background sound.
type Player interface {
	// Loop starts playing the given file on repeat, replacing whatever was
	// playing. An empty file stops playback.
	Loop(file string)

	// Stop stops whatever is playing.
	Stop()

	// Playing returns the file currently looping, or "" if nothing is.
	Playing() string
}

// LogPlayer is a Player that records what would be playing and logs each
// change. It is used when the front end cannot play audio, and in tests.
type LogPlayer struct {
	log     *zap.Logger
	mtx     sync.Mutex
	current string
	history []string
}

// NewLogPlayer creates a LogPlayer. If log is nil, nothing is logged.
func NewLogPlayer(log *zap.Logger) *LogPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPlayer{log: log}
}

// Loop records file as the current sound. Asking for the sound that is already
// playing does nothing.
func (lp *LogPlayer) Loop(file string) {
	lp.mtx.Lock()
	defer lp.mtx.Unlock()

	if file == "" {
		lp.stop()
		return
	}
	if file == lp.current {
		return
	}

	lp.current = file
	lp.history = append(lp.history, file)
	lp.log.Info("sound loop", zap.String("file", file))
}

// Stop clears the current sound.
func (lp *LogPlayer) Stop() {
	lp.mtx.Lock()
	defer lp.mtx.Unlock()
	lp.stop()
}

func (lp *LogPlayer) stop() {
	if lp.current == "" {
		return
	}
	lp.log.Info("sound stop", zap.String("file", lp.current))
	lp.current = ""
}

// Playing returns the current sound.
func (lp *LogPlayer) Playing() string {
	lp.mtx.Lock()
	defer lp.mtx.Unlock()
	return lp.current
}

// History returns every file that has been started, in order.
func (lp *LogPlayer) History() []string {
	lp.mtx.Lock()
	defer lp.mtx.Unlock()

	h := make([]string, len(lp.history))
	copy(h, lp.history)
	return h
}
