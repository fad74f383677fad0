package deploy

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal printf-style logging surface.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer receives structured events from the deployment pipeline.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured deployment event.
type Event struct {
	Type      EventType
	Step      string // pipeline step ("telephony", "project", "container", ...)
	Message   string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType represents the type of deployment event.
type EventType string

const (
	// EventStepStarted indicates a pipeline step has started.
	EventStepStarted EventType = "step.started"
	// EventStepCompleted indicates a pipeline step completed successfully.
	EventStepCompleted EventType = "step.completed"
	// EventStepSkipped indicates a step was skipped because the resource
	// already exists in the config.
	EventStepSkipped EventType = "step.skipped"
	// EventStepFailed indicates a pipeline step failed.
	EventStepFailed EventType = "step.failed"

	// EventRollbackStarted indicates compensation of completed steps began.
	EventRollbackStarted EventType = "rollback.started"
	// EventRollbackStep indicates one completed step was compensated.
	EventRollbackStep EventType = "rollback.step"
	// EventRollbackFailed indicates one compensation failed; the rest
	// still run.
	EventRollbackFailed EventType = "rollback.failed"
	// EventRollbackCompleted indicates all compensations were attempted.
	EventRollbackCompleted EventType = "rollback.completed"

	// EventWarning indicates a non-fatal problem (notification failure,
	// health check timeout).
	EventWarning EventType = "warning"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{contextFields: make(map[string]string)}
}

// WithFields returns a ConsoleObserver carrying additional context
// fields on every event.
func (o *ConsoleObserver) WithFields(fields map[string]string) *ConsoleObserver {
	merged := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleObserver{contextFields: merged}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}
	log.Print(o.formatEvent(event))
}

func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string
	parts = append(parts, string(event.Type))
	if event.Step != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Step))
	}
	parts = append(parts, event.Message)
	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}
	return strings.Join(parts, " ")
}
