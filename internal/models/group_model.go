package models

import "time"

// Group is a named collection of playback devices. Disabled groups stay
// selectable for assignment; the console only flags them.
type Group struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Device struct {
	ID         string     `json:"id"`
	MacAddress string     `json:"macAddress"`
	IP         string     `json:"ip"`
	Name       *string    `json:"name"`
	Location   *string    `json:"location"`
	Groups     []Group    `json:"groups"`
	LastSeen   *time.Time `json:"lastSeen"`
}
