// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     fleet
// Description: Locates the VPN client config for a robot's organization
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package fleet

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	herror "github.com/msto63/helper/foundation/core/error"
	hlog "github.com/msto63/helper/foundation/core/log"
	"github.com/msto63/helper/foundation/utils/filex"
)

// VPNResolver maps a robot name to the container path of the VPN config
// of the organization owning the robot
type VPNResolver struct {
	Client *Client

	// ConfigDir is the host directory holding the config files
	ConfigDir string

	// ContainerRoot is where ConfigDir's parent is mounted in the container
	ContainerRoot string
}

// NormalizeRobotName strips quotes, upper-cases the "bar" prefix and adds
// it when missing: "1234" and "bar1234" both become "BAR1234".
func NormalizeRobotName(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	name = strings.ReplaceAll(name, "bar", "BAR")
	if !strings.Contains(name, "BAR") {
		name = "BAR" + name
	}
	return name
}

// Resolve returns ContainerRoot/configs/<file> for the first config file
// whose name contains the organization slug
func (r *VPNResolver) Resolve(ctx context.Context, robotName string) (string, error) {
	const op = "fleet.VPNResolver.Resolve"
	name := NormalizeRobotName(robotName)

	robots, err := r.Client.Robots(ctx)
	if err != nil {
		return "", err
	}
	var robot *Robot
	for i := range robots {
		if robots[i].Name == name {
			robot = &robots[i]
			break
		}
	}
	if robot == nil {
		return "", herror.Newf("no robot named %s", name).
			WithCode(herror.CodeNotFound).
			WithOperation(op).
			WithDetail("robot", name)
	}

	store, err := r.Client.Store(ctx, robot.StoreID)
	if err != nil {
		return "", err
	}
	org, err := r.Client.Organization(ctx, store.OrganizationID)
	if err != nil {
		return "", err
	}
	if org.Slug == "" {
		return "", herror.Newf("organization %d has no slug", org.ID).
			WithCode(herror.CodeNotFound).
			WithOperation(op).
			WithDetail("robot", name)
	}

	entries, err := filex.DirectSubpaths(r.ConfigDir)
	if err != nil {
		return "", err
	}
	for _, file := range entries.Files {
		base := filepath.Base(file)
		if !strings.Contains(base, org.Slug) {
			continue
		}
		resolved := path.Join(r.ContainerRoot, "configs", base)
		r.Client.logger.Debug("vpn config resolved", hlog.Fields{"robot": name, "slug": org.Slug, "path": resolved})
		return resolved, nil
	}

	return "", herror.Newf("no VPN config for organization %s in %s", org.Slug, r.ConfigDir).
		WithCode(herror.CodeNotFound).
		WithOperation(op).
		WithDetail("robot", name).
		WithDetail("slug", org.Slug)
}
