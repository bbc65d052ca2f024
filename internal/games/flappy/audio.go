package flappy

import (
	"github.com/vovakirdan/flappybust/internal/core"
	"github.com/vovakirdan/flappybust/internal/ecs"
)

// AudioEvent asks for a sound. Zero volume means full volume.
type AudioEvent struct {
	Sound  string
	Looped bool
	Volume float64
}

type sink struct {
	id      core.SinkID
	ambient bool
}

type audioState struct {
	reader  ecs.Reader[AudioEvent]
	backend core.AudioBackend
	sinks   []sink
}

type audioPlugin struct {
	backend core.AudioBackend
}

func (audioPlugin) Name() string { return "audio" }

func (p audioPlugin) Build(app *ecs.App) {
	ecs.AddEvent[AudioEvent](app)
	ecs.SetResource(app.World, audioState{backend: p.backend})

	app.AddSystems(ecs.Update, playAudio)
	app.AddSystems(ecs.OnEnter(Playing), playTheme)
	app.AddSystems(ecs.OnExit(Playing), stopAmbient)
	app.AddSystems(ecs.OnExit(Over), stopAllSinks)
}

func playSound(w *ecs.World, key string) {
	ecs.Send(w, AudioEvent{Sound: key})
}

func playAudio(w *ecs.World) {
	st := ecs.MustResource[audioState](w)
	events := st.reader.Read(ecs.MustResource[ecs.Events[AudioEvent]](w))
	if st.backend == nil {
		return
	}
	for _, ev := range events {
		vol := ev.Volume
		if vol == 0 {
			vol = 1
		}
		id, err := st.backend.Play(core.Sound{Key: ev.Sound, Volume: vol, Looped: ev.Looped})
		if err != nil {
			ecs.MustResource[Logger](w).Warn("audio playback failed", "sound", ev.Sound, "err", err)
			continue
		}
		st.sinks = append(st.sinks, sink{id: id, ambient: ev.Looped})
	}
}

func playTheme(w *ecs.World) {
	s := ecs.MustResource[Settings](w)
	ecs.Send(w, AudioEvent{Sound: "theme", Looped: true, Volume: s.Audio.ThemeVolume})
}

func stopAmbient(w *ecs.World) {
	st := ecs.MustResource[audioState](w)
	kept := st.sinks[:0]
	for _, s := range st.sinks {
		if s.ambient {
			st.backend.Stop(s.id)
			continue
		}
		kept = append(kept, s)
	}
	st.sinks = kept
}

func stopAllSinks(w *ecs.World) {
	st := ecs.MustResource[audioState](w)
	for _, s := range st.sinks {
		st.backend.Stop(s.id)
	}
	st.sinks = nil
}
