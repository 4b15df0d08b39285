package fleet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	hlog "github.com/msto63/helper/foundation/core/log"
)

// Organizations lists all organizations
func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Organization fetches one organization
func (c *Client) Organization(ctx context.Context, id int64) (*Organization, error) {
	var org Organization
	if err := c.get(ctx, fmt.Sprintf("organizations/%d", id), &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Stores lists all stores
func (c *Client) Stores(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := c.get(ctx, "stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// Store fetches one store
func (c *Client) Store(ctx context.Context, id int64) (*Store, error) {
	var store Store
	if err := c.get(ctx, fmt.Sprintf("stores/%d", id), &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// Robots lists all robots
func (c *Client) Robots(ctx context.Context) ([]Robot, error) {
	var robots []Robot
	if err := c.get(ctx, "robots", &robots); err != nil {
		return nil, err
	}
	return robots, nil
}

// Robot fetches one robot
func (c *Client) Robot(ctx context.Context, id int64) (*Robot, error) {
	var robot Robot
	if err := c.get(ctx, fmt.Sprintf("robots/%d", id), &robot); err != nil {
		return nil, err
	}
	return &robot, nil
}

// PlayExecution fetches one play execution
func (c *Client) PlayExecution(ctx context.Context, id int64) (PlayExecution, error) {
	var exec PlayExecution
	if err := c.get(ctx, fmt.Sprintf("play_executions/%d", id), &exec); err != nil {
		return nil, err
	}
	return exec, nil
}

// OpenRobotVPN asks the robot to open its VPN tunnel
func (c *Client) OpenRobotVPN(ctx context.Context, robotID int64) (json.RawMessage, error) {
	return c.SendCommand(ctx, robotID, Command{CommandType: CommandOpenVPN, Parameters: struct{}{}})
}

// CloseRobotVPN asks the robot to close its VPN tunnel
func (c *Client) CloseRobotVPN(ctx context.Context, robotID int64) (json.RawMessage, error) {
	return c.SendCommand(ctx, robotID, Command{CommandType: CommandCloseVPN, Parameters: struct{}{}})
}

// PowerControlRobot sends a power_control command
func (c *Client) PowerControlRobot(ctx context.Context, robotID int64, params PowerControl) (json.RawMessage, error) {
	return c.SendCommand(ctx, robotID, Command{CommandType: CommandPowerControl, Parameters: params})
}

// SendCommand posts cmd to robots/{id}/commands
func (c *Client) SendCommand(ctx context.Context, robotID int64, cmd Command) (json.RawMessage, error) {
	c.logger.Info("sending robot command", hlog.Fields{"robot_id": robotID, "command_type": cmd.CommandType})
	return c.Request(ctx, http.MethodPost, fmt.Sprintf("robots/%d/commands", robotID), cmd, nil)
}
