// Package config provides user configuration management for snesprefs.
//
// This package manages a YAML-based configuration file that tells the tool
// which console layout to work with (Wii or GameCube) and where each console
// device is mounted on this computer. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/snesprefs/config.yaml or $HOME/.config/snesprefs/config.yaml
//   - macOS: $HOME/.config/snesprefs/config.yaml
//   - Windows: %LOCALAPPDATA%\snesprefs\config.yaml
//
// The --config flag replaces the location via SetConfigPath.
//
// # Example File
//
//	version: 1
//	target: wii
//	mounts:
//	  sd: /media/user/SDCARD
//	  usb: /media/user/USB
//	system:
//	  widescreen: true
//	  language: english
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.SetMount("sd", "/media/user/SDCARD")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
