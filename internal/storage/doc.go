// Package storage locates the preferences document across storage devices.
//
// The console knows several places a settings.xml may live: the folder the
// application was launched from, the apps folder and the root of each card,
// in a fixed priority order that depends on the target. Locator.Probe walks
// that list and takes the first document that reads and passes the version
// check; Locator.ResolveSaveTarget picks exactly one folder to write to,
// creating the application folder on the first writable device if needed.
//
// # Platforms
//
// The device primitives are behind the Platform interface:
//
//   - OSPlatform maps device prefixes ("sd:/", "usb:/", "carda:/") onto host
//     folders, so the CLI can work on a card mounted on a PC
//   - MemPlatform keeps everything in memory; tests use it directly and
//     --dry-run uses it as an overlay over an OSPlatform
//
// Example:
//
//	profile := storage.WiiProfile("")
//	platform := storage.NewOSPlatform(profile, map[string]string{"sd": "/media/sd"}, nil)
//	loc := storage.NewLocator(platform, profile, nil)
//	res, err := loc.Probe()
//	if err == nil {
//	    res.Document.Apply(s)
//	}
package storage
