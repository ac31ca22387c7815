// Package hook dispatches ACME client lifecycle events.
package hook

// Event is an enumeration of the lifecycle events emitted by the ACME client.
type Event int

// All the recognized events.
const (
	EventDeployChallenge Event = iota
	EventCleanChallenge
	EventDeployCert
	EventUnchangedCert
	EventInvalidChallenge
	EventRequestFailure
	EventGenerateCSR
	EventStartupHook
	EventExitHook
)

var eventNames = map[string]Event{
	"deploy_challenge":  EventDeployChallenge,
	"clean_challenge":   EventCleanChallenge,
	"deploy_cert":       EventDeployCert,
	"unchanged_cert":    EventUnchangedCert,
	"invalid_challenge": EventInvalidChallenge,
	"request_failure":   EventRequestFailure,
	"generate_csr":      EventGenerateCSR,
	"startup_hook":      EventStartupHook,
	"exit_hook":         EventExitHook,
}

// ParseEvent maps an event name to an [Event].
// Unrecognized names are reported via the second return value; they are not errors.
func ParseEvent(name string) (Event, bool) {
	e, ok := eventNames[name]
	return e, ok
}

// String gives the name of the event as used by the ACME client.
func (e Event) String() string {
	for name, val := range eventNames {
		if val == e {
			return name
		}
	}
	return "<unknown>"
}
