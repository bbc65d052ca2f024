// Package sound plays game sounds through the system speaker with beep. The
// terminal frontend uses it; the window frontend has its own Ebitengine
// backend.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/core"
)

// Library is the part of the asset library the player reads.
type Library interface {
	Sound(key string) ([]byte, bool)
}

// LibrarySource returns the loaded library, or nil while assets load.
type LibrarySource func() Library

// FromLoader adapts an asset loader to a LibrarySource.
func FromLoader(l *assets.Loader) LibrarySource {
	return func() Library {
		if lib := l.Library(); lib != nil {
			return lib
		}
		return nil
	}
}

// Player mixes every sound into one speaker stream.
type Player struct {
	rate   beep.SampleRate
	source LibrarySource
	logger *log.Logger

	mu      sync.Mutex
	mixer   *beep.Mixer
	next    core.SinkID
	sinks   map[core.SinkID]*sink
	started bool
}

// sink is one stream in the mix. done is written by the speaker goroutine,
// so it is only read under the speaker lock.
type sink struct {
	ctrl *beep.Ctrl
	done bool
}

var _ core.AudioBackend = (*Player)(nil)

// NewPlayer creates a player. Call Start to open the speaker; until then
// sounds are mixed but not heard.
func NewPlayer(sampleRate int, source LibrarySource, logger *log.Logger) *Player {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Player{
		rate:   beep.SampleRate(sampleRate),
		source: source,
		logger: logger,
		mixer:  &beep.Mixer{},
		sinks:  make(map[core.SinkID]*sink),
	}
}

// Start opens the speaker and feeds it the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences every sink.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	for id, s := range p.sinks {
		s.ctrl.Streamer = nil
		delete(p.sinks, id)
	}
	p.mixer.Clear()
	speaker.Unlock()
}

// Play decodes a sound and adds it to the mix. Sounds missing from the
// library play silently.
func (p *Player) Play(s core.Sound) (core.SinkID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.next++
	id := p.next

	var lib Library
	if p.source != nil {
		lib = p.source()
	}
	if lib == nil {
		return id, nil
	}
	data, ok := lib.Sound(s.Key)
	if !ok {
		return id, nil
	}

	stream, format, err := vorbis.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return 0, fmt.Errorf("sound: decode %s: %w", s.Key, err)
	}

	var src beep.Streamer = stream
	if s.Looped {
		src = beep.Loop(-1, stream)
	}
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, src)
	}
	p.add(id, volume(src, s.Volume))
	return id, nil
}

// add mixes a stream under id. Callers hold p.mu.
func (p *Player) add(id core.SinkID, src beep.Streamer) {
	sk := &sink{}
	sk.ctrl = &beep.Ctrl{Streamer: beep.Seq(src, beep.Callback(func() {
		sk.done = true
	}))}

	speaker.Lock()
	p.reap()
	p.mixer.Add(sk.ctrl)
	speaker.Unlock()

	p.sinks[id] = sk
}

// Stop removes one sink from the mix.
func (p *Player) Stop(id core.SinkID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sinks[id]
	if !ok {
		return
	}
	speaker.Lock()
	s.ctrl.Streamer = nil
	speaker.Unlock()
	delete(p.sinks, id)
}

// Active returns the number of sinks still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.reap()
	speaker.Unlock()
	return len(p.sinks)
}

// reap forgets sinks that finished or were silenced. Callers hold the
// speaker lock.
func (p *Player) reap() {
	for id, s := range p.sinks {
		if s.done || s.ctrl.Streamer == nil {
			delete(p.sinks, id)
		}
	}
}

// volume scales a stream linearly: 1 is unchanged, 0 is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}
