// internals/features/registrations/registrations/model/sequence_counter_model.go
package model

import "time"

// Counter sekuensial per scope (mis. "username:pelajar", "certificate:2025").
// Selalu dinaikkan lewat satu statement upsert RETURNING, tidak pernah count lalu format.
type SequenceCounterModel struct {
	SequenceCounterScope     string     `gorm:"type:varchar(100);primaryKey;column:sequence_counter_scope" json:"sequence_counter_scope"`
	SequenceCounterLastValue int64      `gorm:"not null;default:0;column:sequence_counter_last_value" json:"sequence_counter_last_value"`
	SequenceCounterUpdatedAt *time.Time `gorm:"column:sequence_counter_updated_at;autoUpdateTime" json:"sequence_counter_updated_at,omitempty"`
}

func (SequenceCounterModel) TableName() string { return "sequence_counters" }
