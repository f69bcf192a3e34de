package core

// Event is a discrete semantic event emitted by the simulation, consumed by
// the audio collaborator. Each event is emitted exactly once per triggering
// transition and is never replayed retroactively.
type Event int

const (
	EventNone           Event = iota
	EventChompA               // pellet eaten, first of the alternating pair
	EventChompB               // pellet eaten, second of the alternating pair
	EventPowerActivated       // power pellet consumed
	EventFruitAwarded         // active fruit consumed
	EventGhostEaten           // frightened ghost captured
	EventPlayerDeath          // fatal ghost contact
	EventLevelComplete        // last collectible consumed
	EventExtraLife            // score crossed a 10000 boundary
	EventReadyCue             // ready phase entered
	EventSiren                // playing resumed (background siren cue)
	EventIntroBeep            // intro sequence beep
	EventGhostRollBeep1       // roll call: first ghost presented
	EventGhostRollBeep2       // roll call: second ghost presented
	EventGhostRollBeep3       // roll call: third ghost presented
	EventGhostRollBeep4       // roll call: fourth ghost presented
	EventGlitch               // kill screen corruption blip
)

// String returns a stable identifier for the event, used in logs and tests.
func (e Event) String() string {
	switch e {
	case EventChompA:
		return "chomp_a"
	case EventChompB:
		return "chomp_b"
	case EventPowerActivated:
		return "power_activated"
	case EventFruitAwarded:
		return "fruit_awarded"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerDeath:
		return "player_death"
	case EventLevelComplete:
		return "level_complete"
	case EventExtraLife:
		return "extra_life"
	case EventReadyCue:
		return "ready_cue"
	case EventSiren:
		return "siren"
	case EventIntroBeep:
		return "intro_beep"
	case EventGhostRollBeep1:
		return "ghost_roll_beep_1"
	case EventGhostRollBeep2:
		return "ghost_roll_beep_2"
	case EventGhostRollBeep3:
		return "ghost_roll_beep_3"
	case EventGhostRollBeep4:
		return "ghost_roll_beep_4"
	case EventGlitch:
		return "glitch"
	default:
		return "none"
	}
}
