package update_settings

type UpdateRequest struct {
	SlotDurationMinutes int `json:"slotDuration"`
	StartHour           int `json:"startHour"`
	EndHour             int `json:"endHour"`
}
