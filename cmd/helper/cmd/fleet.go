package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/helper/pkg/fleet"
	"github.com/msto63/helper/pkg/prompt"
)

func newFleetCmd(a *app) *cobra.Command {
	var yes bool

	fleetCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Query the fleet API and send robot commands",
		Long: `Query the fleet API and send robot commands.

The environment comes from --env or general.environment in the config.
Credentials are read from the [fleet] section.`,
	}
	fleetCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "do not ask before sending commands")

	confirm := func(cmd *cobra.Command, question string) (bool, error) {
		if yes {
			return true, nil
		}
		return prompt.Confirm(cmd.Context(), question, prompt.Options{
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
		})
	}

	fleetCmd.AddCommand(
		&cobra.Command{
			Use:   "orgs",
			Short: "List organizations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				orgs, err := client.Organizations(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, orgs, func(w io.Writer) {
					rows := make([][]string, len(orgs))
					for i, o := range orgs {
						rows[i] = []string{strconv.FormatInt(o.ID, 10), o.Name, o.Slug}
					}
					fmt.Fprintln(w, renderTable([]string{"ID", "Name", "Slug"}, rows))
				})
			},
		},
		&cobra.Command{
			Use:   "stores",
			Short: "List stores",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				stores, err := client.Stores(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, stores, func(w io.Writer) {
					rows := make([][]string, len(stores))
					for i, s := range stores {
						rows[i] = []string{strconv.FormatInt(s.ID, 10), s.Name, strconv.FormatInt(s.OrganizationID, 10)}
					}
					fmt.Fprintln(w, renderTable([]string{"ID", "Name", "Organization"}, rows))
				})
			},
		},
		&cobra.Command{
			Use:   "robots",
			Short: "List robots",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				robots, err := client.Robots(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(cmd, robots, func(w io.Writer) {
					fmt.Fprintln(w, renderTable([]string{"ID", "Name", "Store"}, robotRows(robots)))
				})
			},
		},
		&cobra.Command{
			Use:   "robot <id>",
			Short: "Show one robot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				robot, err := client.Robot(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(cmd, robot, func(w io.Writer) {
					fmt.Fprintln(w, field("id", robot.ID))
					fmt.Fprintln(w, field("name", robot.Name))
					fmt.Fprintln(w, field("store", robot.StoreID))
				})
			},
		},
		&cobra.Command{
			Use:   "play-execution <id>",
			Short: "Show one play execution",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				exec, err := client.PlayExecution(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), exec)
			},
		},
		&cobra.Command{
			Use:   "vpn-path <robot>",
			Short: "Print the container path of the VPN config for a robot's organization",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				resolver := &fleet.VPNResolver{
					Client:        client,
					ConfigDir:     a.cfg.Fleet.VPNConfigDir,
					ContainerRoot: a.cfg.Fleet.ContainerRoot,
				}
				path, err := resolver.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		newFleetVPNCmd(a, confirm),
		newFleetPowerCmd(a, confirm),
	)
	return fleetCmd
}

type confirmFunc func(cmd *cobra.Command, question string) (bool, error)

func newFleetVPNCmd(a *app, confirm confirmFunc) *cobra.Command {
	vpnCmd := &cobra.Command{
		Use:   "vpn",
		Short: "Open or close a robot's VPN tunnel",
	}

	for _, action := range []string{"open", "close"} {
		action := action
		vpnCmd.AddCommand(&cobra.Command{
			Use:   action + " <id>",
			Short: "Send the " + action + "_vpn command",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				client, err := a.fleetClient()
				if err != nil {
					return err
				}
				ok, err := confirm(cmd, fmt.Sprintf("%s the VPN of robot %d?", action, id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), MutedStyle.Render("cancelled"))
					return nil
				}

				send := client.OpenRobotVPN
				if action == "close" {
					send = client.CloseRobotVPN
				}
				raw, err := send(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printRaw(cmd.OutOrStdout(), raw)
			},
		})
	}
	return vpnCmd
}

func newFleetPowerCmd(a *app, confirm confirmFunc) *cobra.Command {
	params := fleet.DefaultPowerControl()

	powerCmd := &cobra.Command{
		Use:   "power <id>",
		Short: "Send a power_control command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.fleetClient()
			if err != nil {
				return err
			}
			ok, err := confirm(cmd, fmt.Sprintf("power %s robot %d?", params.Action, id))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), MutedStyle.Render("cancelled"))
				return nil
			}
			raw, err := client.PowerControlRobot(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printRaw(cmd.OutOrStdout(), raw)
		},
	}
	powerCmd.Flags().StringVar(&params.Action, "action", params.Action, "power action, e.g. off or reset")
	powerCmd.Flags().BoolVar(&params.Force, "force", params.Force, "force the action")
	powerCmd.Flags().StringVar(&params.ObjectID, "object", params.ObjectID, "object to control")
	return powerCmd
}

// fleetClient connects to the configured environment
func (a *app) fleetClient() (*fleet.Client, error) {
	endpoints := fleet.MergeEndpoints(fleet.DefaultEndpoints(), a.cfg.Fleet.Endpoints)
	return fleet.ForEnvironment(endpoints, a.cfg.General.Environment, fleet.Config{
		Username:    a.cfg.Fleet.Username,
		Password:    a.cfg.Fleet.Password,
		Timeout:     a.cfg.Fleet.Timeout.Duration,
		RaiseErrors: a.cfg.Fleet.RaiseErrors,
		Logger:      a.logger,
	})
}

func robotRows(robots []fleet.Robot) [][]string {
	rows := make([][]string, len(robots))
	for i, r := range robots {
		rows[i] = []string{strconv.FormatInt(r.ID, 10), r.Name, strconv.FormatInt(r.StoreID, 10)}
	}
	return rows
}

// printRaw indents a raw JSON response
func printRaw(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
