// Package prefs exposes the preference operations used by the front-end:
// load, save, restore defaults and validate.
//
// A Manager ties the pieces together. Loading probes the storage devices
// once, overlays the first valid document on the defaults, sanitizes the
// result and migrates legacy folder names. Saving sanitizes, encodes and
// writes to the folder the load came from, or to a new application folder
// on the first writable device.
//
//	profile := storage.WiiProfile(appPath)
//	m := prefs.New(platform, profile, prefs.WithNotifier(n))
//	if !m.LoadPreferences() {
//	    // defaults are in effect
//	}
//	m.Settings().VideoMode = 3
//	m.SavePreferences(false)
package prefs
