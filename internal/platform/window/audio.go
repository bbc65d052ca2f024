package window

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"github.com/vovakirdan/flappybust/internal/assets"
	"github.com/vovakirdan/flappybust/internal/core"
)

// Audio plays game sounds through Ebitengine's audio context.
type Audio struct {
	ctx    *audio.Context
	loader *assets.Loader
	logger *log.Logger

	mu      sync.Mutex
	next    core.SinkID
	players map[core.SinkID]*audio.Player
}

var _ core.AudioBackend = (*Audio)(nil)

// NewAudio creates the process-wide audio context.
func NewAudio(sampleRate int, loader *assets.Loader, logger *log.Logger) *Audio {
	return &Audio{
		ctx:     audio.NewContext(sampleRate),
		loader:  loader,
		logger:  logger,
		players: make(map[core.SinkID]*audio.Player),
	}
}

// Play decodes and starts a sound. Sounds missing from the library play
// silently.
func (a *Audio) Play(s core.Sound) (core.SinkID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reap()

	a.next++
	id := a.next

	lib := a.loader.Library()
	if lib == nil {
		return id, nil
	}
	data, ok := lib.Sound(s.Key)
	if !ok {
		return id, nil
	}

	stream, err := vorbis.DecodeWithSampleRate(a.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("window: decode %s: %w", s.Key, err)
	}
	var src io.Reader = stream
	if s.Looped {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	p, err := a.ctx.NewPlayer(src)
	if err != nil {
		return 0, fmt.Errorf("window: player for %s: %w", s.Key, err)
	}
	p.SetVolume(s.Volume)
	p.Play()
	a.players[id] = p
	return id, nil
}

// Stop halts one sink.
func (a *Audio) Stop(id core.SinkID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.players[id]; ok {
		p.Pause()
		p.Close()
		delete(a.players, id)
	}
}

// reap releases players that finished on their own.
func (a *Audio) reap() {
	for id, p := range a.players {
		if !p.IsPlaying() {
			p.Close()
			delete(a.players, id)
		}
	}
}
