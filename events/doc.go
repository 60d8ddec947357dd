// Package events provides a donburi-backed publish/subscribe bus for
// engine change notifications, mirroring the teacher package's
// donburi-backed InteractionEventType adapter.
package events
