package fleet

import "encoding/json"

// Organization is a fleet customer
type Organization struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Store is a site belonging to an organization
type Store struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	OrganizationID int64  `json:"organization_id"`
}

// Robot is a deployed robot
type Robot struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StoreID int64  `json:"store_id"`
}

// Command is posted to robots/{id}/commands
type Command struct {
	CommandType string      `json:"command_type"`
	Parameters  interface{} `json:"parameters"`
}

// Command types understood by the fleet API
const (
	CommandOpenVPN      = "open_vpn"
	CommandCloseVPN     = "close_vpn"
	CommandPowerControl = "power_control"
)

// PowerControl holds the parameters of a power_control command
type PowerControl struct {
	Action                   string `json:"action"`
	Force                    bool   `json:"force"`
	ObjectID                 string `json:"object_id"`
	ResetDelaySeconds        string `json:"reset_delay_seconds"`
	WaitBeforeCancel         string `json:"wait_before_cancel"`
	WaitBeforeForcedShutdown string `json:"wait_before_forced_shutdown"`
}

// DefaultPowerControl returns a forced power off of the whole robot
func DefaultPowerControl() PowerControl {
	return PowerControl{
		Action:                   "off",
		Force:                    true,
		ObjectID:                 "robot",
		ResetDelaySeconds:        "30",
		WaitBeforeCancel:         "30",
		WaitBeforeForcedShutdown: "120",
	}
}

// PlayExecution is returned as the untyped JSON document
type PlayExecution = map[string]json.RawMessage
