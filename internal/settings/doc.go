// Package settings defines the in-memory preferences model of the front-end.
//
// Settings is a flat record: file locations, video, audio, emulation hacks,
// menu options and the controller button mappings. The grouping into
// sections only matters when the record is written out as a document.
//
// # Field Registry
//
// Fields() and ControllerMaps() expose every persisted value by its document
// name together with a pointer into the record. The document codec, the CLI
// and the interactive editor all work through the registry, so adding a
// preference means adding a struct field, a default and one registry line.
//
// # Valid Ranges
//
// The model itself does not enforce ranges. A freshly decoded document may
// hold anything; Sanitize brings the record back into range and reports what
// it changed:
//
//	s := settings.DefaultSettings(settings.TargetWii, settings.System{})
//	s.MusicVolume = 150
//	for _, c := range settings.Sanitize(s) {
//	    fmt.Println(c) // MusicVolume: 150 -> 80
//	}
//
// # Text Fields
//
// Folder and file names are bounded to MaxPathLen-1 bytes. Bound crops longer
// input without splitting a UTF-8 sequence.
package settings
