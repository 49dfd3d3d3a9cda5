package prefdoc

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/version"
)

// FileName is the fixed name of the preferences document in its folder.
const FileName = "settings.xml"

// Element and attribute names of the document.
const (
	tagFile       = "file"
	tagSection    = "section"
	tagSetting    = "setting"
	tagController = "controller"
	tagButton     = "button"

	attrApp         = "app"
	attrVersion     = "version"
	attrName        = "name"
	attrDescription = "description"
	attrValue       = "value"
	attrNumber      = "number"
	attrAssignment  = "assignment"
)

// Encode renders s as a preferences document for target. Fields and
// mappings that do not exist on target are left out. Output is
// deterministic: the same settings always give the same bytes. If maxSize is
// positive and the document is larger, a capacity error is returned.
func Encode(s *settings.Settings, target settings.Target, maxSize int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(tagFile)
	root.CreateAttr(attrApp, settings.AppName)
	root.CreateAttr(attrVersion, version.DocumentVersion)

	fields := s.Fields()
	maps := s.ControllerMaps()

	for _, sec := range settings.Sections {
		section := root.CreateElement(tagSection)
		section.CreateAttr(attrName, sec.Name)
		section.CreateAttr(attrDescription, sec.Description)

		for _, f := range fields {
			if f.Section != sec.Name || !f.Present(target) {
				continue
			}
			value := f.Value()
			if f.Kind == settings.KindText {
				value = EscapeText(value)
			}
			item := section.CreateElement(tagSetting)
			item.CreateAttr(attrName, f.Name)
			item.CreateAttr(attrValue, value)
			item.CreateAttr(attrDescription, f.Description)
		}

		for _, c := range maps {
			if c.Section != sec.Name || !c.Present(target) {
				continue
			}
			item := section.CreateElement(tagController)
			item.CreateAttr(attrName, c.Name)
			item.CreateAttr(attrDescription, c.Description)
			for i, a := range c.Buttons {
				button := item.CreateElement(tagButton)
				button.CreateAttr(attrNumber, strconv.Itoa(i))
				button.CreateAttr(attrAssignment, strconv.FormatUint(uint64(a), 10))
			}
		}
	}

	doc.IndentTabs()

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, prefserr.NewFormatError("failed to render document", err)
	}
	if maxSize > 0 && len(data) > maxSize {
		return nil, prefserr.NewCapacityError(len(data), maxSize)
	}
	return data, nil
}

// Document is a parsed preferences document. It is never modified after
// Parse; Apply copies values out of it.
type Document struct {
	doc *etree.Document
}

// Parse reads a preferences document. Bytes that are not well-formed XML,
// or that contain no element at all, fail with a format error and yield no
// document.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, prefserr.NewFormatError("malformed preferences document", err)
	}
	if doc.Root() == nil {
		return nil, prefserr.NewFormatError("preferences document has no root element", nil)
	}
	return &Document{doc: doc}, nil
}

// Decode parses and validates data in one step.
func Decode(data []byte) (*Document, error) {
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// find returns the first element below (and including) e, in depth-first
// document order, with the given tag and attribute value.
func find(e *etree.Element, tag, attr, value string) *etree.Element {
	if e.Tag == tag {
		if a := e.SelectAttr(attr); a != nil && a.Value == value {
			return e
		}
	}
	for _, c := range e.ChildElements() {
		if m := find(c, tag, attr, value); m != nil {
			return m
		}
	}
	return nil
}

// findWithAttr returns the first element with the given tag that carries attr.
func findWithAttr(e *etree.Element, tag, attr string) *etree.Element {
	if e.Tag == tag && e.SelectAttr(attr) != nil {
		return e
	}
	for _, c := range e.ChildElements() {
		if m := findWithAttr(c, tag, attr); m != nil {
			return m
		}
	}
	return nil
}

// Version returns the version attribute of the first file element carrying
// one.
func (d *Document) Version() (string, bool) {
	e := findWithAttr(d.doc.Root(), tagFile, attrVersion)
	if e == nil {
		return "", false
	}
	return e.SelectAttrValue(attrVersion, ""), true
}

// App returns the application identifier of the root element.
func (d *Document) App() string {
	return d.doc.Root().SelectAttrValue(attrApp, "")
}

// Setting returns the raw value of the named setting leaf.
func (d *Document) Setting(name string) (string, bool) {
	e := find(d.doc.Root(), tagSetting, attrName, name)
	if e == nil {
		return "", false
	}
	a := e.SelectAttr(attrValue)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Apply overlays the values present in the document onto s and returns how
// many values it copied. Settings and buttons the document does not mention
// keep whatever value s already held. Every field is tried regardless of
// target, so a GameCube build still picks up Wii-only values.
func (d *Document) Apply(s *settings.Settings) int {
	root := d.doc.Root()
	applied := 0

	for _, f := range s.Fields() {
		raw, ok := d.Setting(f.Name)
		if !ok {
			continue
		}
		switch f.Kind {
		case settings.KindInt:
			*f.Int = ParseInt(raw)
		case settings.KindFloat:
			*f.Float = ParseFloat(raw)
		case settings.KindText:
			*f.Text = settings.Bound(UnescapeText(raw))
		}
		applied++
	}

	for _, c := range s.ControllerMaps() {
		item := find(root, tagController, attrName, c.Name)
		if item == nil {
			continue
		}
		for i := range c.Buttons {
			button := find(item, tagButton, attrNumber, strconv.Itoa(i))
			if button == nil {
				continue
			}
			a := button.SelectAttr(attrAssignment)
			if a == nil {
				continue
			}
			c.Buttons[i] = ParseUint32(a.Value)
			applied++
		}
	}

	return applied
}
