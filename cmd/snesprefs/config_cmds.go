package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/snesprefs/internal/config"
	"github.com/muurk/snesprefs/internal/storage"
	"github.com/muurk/snesprefs/internal/ui"
)

// Config command flags
var (
	initCardDir string
	initForce   bool
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configMountCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the snesprefs configuration file",
	Long: `Manage the configuration file that tells snesprefs which console layout
to use and where each console device is mounted on this computer.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file",
	Example: `  # Wii with the SD card reader mounted at /media/SDCARD
  snesprefs config init --card /media/SDCARD

  # GameCube with an SD Gecko in slot A
  snesprefs config init --target gamecube --card /media/SDGECKO`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&initCardDir, "card", "", "Host folder of the SD card (slot A on GameCube)")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	dir := initCardDir
	if dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}

	reg, err := config.CreateDefaultConfig(strings.ToLower(targetName), dir)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	details := []ui.Param{
		{Key: "File", Value: path},
		{Key: "Target", Value: reg.Target},
	}
	for _, dev := range reg.MountNames() {
		details = append(details, ui.Param{Key: "Mount " + dev, Value: reg.Mounts[dev]})
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration created", details...)
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		reg, err := config.LoadRegistry()
		if err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		data, err := reg.Marshal()
		if err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintDocument(path, data)
		return nil
	},
}

var configMountCmd = &cobra.Command{
	Use:   "mount <device> [dir]",
	Short: "Map a console device to a host folder",
	Long: `Map a console device (sd, usb, dvd on Wii; carda, cardb, port2, dvd on
GameCube) to a folder on this computer. Without a folder the mapping is
removed.`,
	Example: `  snesprefs config mount sd /media/SDCARD
  snesprefs config mount usb`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigMount,
}

func runConfigMount(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	reg, err := config.LoadRegistry()
	if err != nil {
		return err
	}
	target, err := reg.TargetValue()
	if err != nil {
		return err
	}

	device := strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(args[0]), "/"), ":")
	profile := storage.NewProfile(target, reg.AppPath)
	if _, ok := profile.DeviceByName(device); !ok {
		return fmt.Errorf("device %q does not exist on %s (expected one of: %s)",
			device, target, strings.Join(profile.DeviceNames(), ", "))
	}

	dir := ""
	if len(args) == 2 {
		dir, err = filepath.Abs(args[1])
		if err != nil {
			return err
		}
	}

	reg.SetMount(device, dir)
	if err := reg.Save(); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if dir == "" {
		p.PrintSuccess("Mount removed", ui.Param{Key: "Device", Value: device})
		return nil
	}
	p.PrintSuccess("Mount saved",
		ui.Param{Key: "Device", Value: device},
		ui.Param{Key: "Folder", Value: dir},
	)
	return nil
}
