package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
)

// EventLogSystem writes gameplay events to the standard logger. Apex and
// run events are only logged when Verbose is set.
type EventLogSystem struct {
	Verbose bool
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{Verbose: verbose}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	w.Events().Each(func(evt ecs.Event) {
		switch evt.Kind {
		case ecs.EventLanded:
			log.Printf("event: %s entity=%s speed=%.2f", evt.Kind, evt.Entity, evt.Value)
		case ecs.EventApex, ecs.EventRunStarted, ecs.EventRunEnded:
			if s.Verbose {
				log.Printf("event: %s entity=%s", evt.Kind, evt.Entity)
			}
		default:
			log.Printf("event: %s entity=%s", evt.Kind, evt.Entity)
		}
	})
}
