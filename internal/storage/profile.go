package storage

import (
	"path"
	"strings"

	"github.com/muurk/snesprefs/internal/settings"
)

// Candidate is one folder that may hold a preferences document.
type Candidate struct {
	// Device that must be mounted before the folder can be read. DeviceAuto
	// when the folder's prefix is not a known device.
	Device int
	Dir    string
}

// File returns the document path inside the candidate folder.
func (c Candidate) File(name string) string {
	return path.Join(c.Dir, name)
}

// Profile describes where a target keeps its preferences.
type Profile struct {
	Target settings.Target

	// AppPath is the folder the application was launched from. It is tried
	// first on load and preferred on save. Empty when unknown.
	AppPath string

	// Prefixes maps device ids to their path prefix, e.g. DeviceSD to "sd:/".
	Prefixes map[int]string

	// Fixed load candidates in priority order, after AppPath.
	Fixed []Candidate

	// SaveDevices lists the writable devices in priority order.
	SaveDevices []int
}

var wiiPrefixes = map[int]string{
	settings.DeviceSD:  "sd:/",
	settings.DeviceUSB: "usb:/",
	settings.DeviceDVD: "dvd:/",
}

var gameCubePrefixes = map[int]string{
	settings.DeviceSDSlotA: "carda:/",
	settings.DeviceSDSlotB: "cardb:/",
	settings.DeviceSDPort2: "port2:/",
	settings.DeviceDVD:     "dvd:/",
}

// WiiProfile returns the Wii layout. appPath may be empty.
func WiiProfile(appPath string) *Profile {
	p := &Profile{
		Target:      settings.TargetWii,
		AppPath:     appPath,
		Prefixes:    wiiPrefixes,
		SaveDevices: []int{settings.DeviceSD, settings.DeviceUSB},
	}
	p.Fixed = []Candidate{
		{settings.DeviceSD, "sd:/apps/" + settings.AppFolder},
		{settings.DeviceUSB, "usb:/apps/" + settings.AppFolder},
		{settings.DeviceSD, "sd:/" + settings.AppFolder},
		{settings.DeviceUSB, "usb:/" + settings.AppFolder},
	}
	return p
}

// GameCubeProfile returns the GameCube layout. The GameCube has no launch
// folder, only the three SD adapters. Each adapter is a separate candidate,
// so a card that mounts but holds no usable document does not stop the
// search: the next slot is still tried.
func GameCubeProfile() *Profile {
	p := &Profile{
		Target:      settings.TargetGameCube,
		Prefixes:    gameCubePrefixes,
		SaveDevices: []int{settings.DeviceSDSlotA, settings.DeviceSDSlotB, settings.DeviceSDPort2},
	}
	for _, dev := range p.SaveDevices {
		p.Fixed = append(p.Fixed, Candidate{dev, p.Prefixes[dev] + settings.AppFolder})
	}
	return p
}

// NewProfile returns the profile for target.
func NewProfile(target settings.Target, appPath string) *Profile {
	if target == settings.TargetWii {
		return WiiProfile(appPath)
	}
	return GameCubeProfile()
}

// Candidates returns every load location in priority order.
func (p *Profile) Candidates() []Candidate {
	out := make([]Candidate, 0, len(p.Fixed)+1)
	if p.AppPath != "" {
		out = append(out, Candidate{p.DeviceOf(p.AppPath), p.AppPath})
	}
	return append(out, p.Fixed...)
}

// Prefix returns the path prefix of dev, or "" for an unknown device.
func (p *Profile) Prefix(dev int) string {
	return p.Prefixes[dev]
}

// Root returns the application folder on dev, e.g. "sd:/snes9xfx".
func (p *Profile) Root(dev int) string {
	return p.Prefix(dev) + settings.AppFolder
}

// DeviceOf returns the device a path lives on, or DeviceAuto.
func (p *Profile) DeviceOf(pth string) int {
	for dev, prefix := range p.Prefixes {
		if strings.HasPrefix(pth, prefix) {
			return dev
		}
	}
	return settings.DeviceAuto
}

// DeviceName returns the short name of dev used in mount tables ("sd",
// "carda"), or "" for an unknown device.
func (p *Profile) DeviceName(dev int) string {
	return strings.TrimSuffix(p.Prefix(dev), ":/")
}

// DeviceByName is the inverse of DeviceName.
func (p *Profile) DeviceByName(name string) (int, bool) {
	for dev := range p.Prefixes {
		if p.DeviceName(dev) == name {
			return dev, true
		}
	}
	return settings.DeviceAuto, false
}

// DeviceNames lists every device short name the profile knows.
func (p *Profile) DeviceNames() []string {
	var names []string
	for _, dev := range []int{
		settings.DeviceSD, settings.DeviceUSB, settings.DeviceDVD,
		settings.DeviceSDSlotA, settings.DeviceSDSlotB, settings.DeviceSDPort2,
	} {
		if n := p.DeviceName(dev); n != "" {
			names = append(names, n)
		}
	}
	return names
}
