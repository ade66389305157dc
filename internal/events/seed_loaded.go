package events

import "time"

const SeedLoadedTopic = "payroll.seed.loaded.v1"

const SeedLoadedEventType = "payroll.seed_loaded"

type SeedLoadedEvent struct {
	EventType  string    `json:"event_type"`
	RunID      string    `json:"run_id"`
	Employees  int       `json:"employees"`
	WorkLogs   int       `json:"work_logs"`
	Bonuses    int       `json:"bonuses"`
	Penalties  int       `json:"penalties"`
	Salaries   int       `json:"salaries"`
	Skipped    int       `json:"skipped"`
	OccurredAt time.Time `json:"occurred_at"`
}
