package domain

type Intent string

const (
	IntentNone         Intent = "none"
	IntentRoomService  Intent = "room-service"
	IntentHousekeeping Intent = "housekeeping"
	IntentMaintenance  Intent = "maintenance"
	IntentStatus       Intent = "status"
)

// Source says which resolution stage produced a reply.
type Source string

const (
	SourceIntent  Source = "intent"
	SourceRemote  Source = "remote"
	SourceOffline Source = "offline"
	SourceFault   Source = "fault"
)

type Reply struct {
	Text     string `json:"reply"`
	Source   Source `json:"source"`
	Intent   Intent `json:"intent"`
	Language string `json:"language"`
}
