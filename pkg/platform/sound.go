package platform

// SoundPlayer plays named sound cues. Elements reference cues by name only;
// loading and mixing belong to the host.
type SoundPlayer interface {
	// Play starts a named cue from the beginning. Unknown names are ignored.
	Play(name string)
	// Stop halts a named cue if it is playing.
	Stop(name string)
	// SetVolume sets a cue's volume in [0, 1].
	SetVolume(name string, volume float64)
}

// NopSound is the default SoundPlayer; it discards every call.
type NopSound struct{}

// Play implements SoundPlayer.
func (NopSound) Play(string) {}

// Stop implements SoundPlayer.
func (NopSound) Stop(string) {}

// SetVolume implements SoundPlayer.
func (NopSound) SetVolume(string, float64) {}
