package transfer

type GroupPayload struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// DeviceCreate omits groupId entirely when no group was chosen.
type DeviceCreate struct {
	MacAddress string  `json:"macAddress"`
	IP         string  `json:"ip"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	GroupID    *string `json:"groupId,omitempty"`
}

// DeviceUpdate always carries groupId, null included, so a device can be
// detached from its group.
type DeviceUpdate struct {
	MacAddress string  `json:"macAddress"`
	IP         string  `json:"ip"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	GroupID    *string `json:"groupId"`
}

type DashboardStats struct {
	Devices int `json:"devices"`
	Groups  int `json:"groups"`
	Media   int `json:"media"`
}
