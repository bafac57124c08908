// Package model defines the domain data structures shared across the app:
// the per-video report record, playlist entities, and per-item status enums.
// Records are plain values; derived fields are computed by constructors here
// so every producer agrees on the same defaults.
package model
