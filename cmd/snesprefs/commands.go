package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/snesprefs/internal/editor"
	"github.com/muurk/snesprefs/internal/prefdoc"
	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/ui"
	"github.com/muurk/snesprefs/internal/version"
)

// Command flags
var (
	outputFormat  string
	assumeYes     bool
	verbose       bool
	probeMaxLines int
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(editCmd)
}

// showCmd prints the current preferences
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preferences",
	Long: `Show the preferences the emulator would start with.

The document is looked up on the mapped devices in the same order the
emulator uses. Values out of range are shown after correction, and the
corrections are listed. When no document is found the factory defaults
are shown.`,
	Example: `  # Show every section
  snesprefs show

  # One "name = value" line per setting
  snesprefs show --format compact

  # The document exactly as it would be saved
  snesprefs show --format xml > settings.xml

  # Read a GameCube memory card adapter
  snesprefs show --target gamecube --mount carda=/media/SDGECKO`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, xml, yaml; default from config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readOnly)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	format := outputFormat
	if format == "" && s.registry.Preferences != nil {
		format = s.registry.Preferences.Format
	}

	mgr := s.manager
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "", "detailed":
		p := ui.NewPrinter(out)
		p.PrintHeader("Snes9x FX Preferences", "snesprefs show", sourceParams(s)...)
		p.PrintCorrections(mgr.Corrections())
		if m := mgr.Migration(); !m.Empty() {
			p.PrintWarning("Legacy Snes9x GX folder names (updated on the next save)", migrationParams(s)...)
			p.Newline()
		}
		p.PrintSettings(mgr.Settings(), s.target)
		s.reportDryRun(p)
		return nil

	case "compact":
		_, err := fmt.Fprint(out, mgr.Settings().FormatCompact(s.target))
		return err

	case "xml":
		data, err := prefdoc.Encode(mgr.Settings(), s.target, 0)
		if err != nil {
			return fmt.Errorf("failed to encode preferences: %w", err)
		}
		_, err = out.Write(data)
		return err

	case "yaml":
		data, err := settingsYAML(mgr.Settings(), s.target)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact, xml or yaml)", format)
	}
}

// sourceParams describes where the preferences came from
func sourceParams(s *session) []ui.Param {
	params := []ui.Param{{Key: "Target", Value: s.target.String()}}
	if s.manager.Loaded() {
		params = append(params, ui.Param{Key: "Loaded from", Value: s.manager.Probe().Path})
	} else {
		params = append(params, ui.Param{Key: "Loaded from", Value: "(no document found, factory defaults)"})
	}
	for _, dev := range s.registry.MountNames() {
		params = append(params, ui.Param{Key: "Mount " + dev, Value: s.registry.Mounts[dev]})
	}
	for _, f := range mountFlags {
		if dev, dir, err := parseMount(f); err == nil {
			params = append(params, ui.Param{Key: "Mount " + dev, Value: dir})
		}
	}
	if dryRun {
		params = append(params, ui.Param{Key: "Mode", Value: "dry run"})
	}
	return params
}

func migrationParams(s *session) []ui.Param {
	m := s.manager.Migration()
	var params []ui.Param
	for _, r := range m.Renamed {
		params = append(params, ui.Param{Key: "Renamed", Value: r})
	}
	for _, c := range m.Rewritten {
		params = append(params, ui.Param{Key: c.Field, Value: c.Old + " -> " + c.New})
	}
	for _, d := range m.Created {
		params = append(params, ui.Param{Key: "Created", Value: d})
	}
	return params
}

// settingsYAML renders the settings as one mapping per section, in
// document order, followed by the button mappings present on target.
func settingsYAML(s *settings.Settings, target settings.Target) ([]byte, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	fields := s.Fields()
	for _, sec := range settings.Sections {
		section := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range fields {
			if f.Section != sec.Name || !f.Present(target) {
				continue
			}
			tag := "!!str"
			switch f.Kind {
			case settings.KindInt:
				tag = "!!int"
			case settings.KindFloat:
				tag = "!!float"
			}
			section.Content = append(section.Content, scalar("!!str", f.Name), scalar(tag, f.Value()))
		}
		if len(section.Content) > 0 {
			root.Content = append(root.Content, scalar("!!str", sec.Name), section)
		}
	}

	buttons := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range s.ControllerMaps() {
		if !c.Present(target) {
			continue
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range c.Buttons {
			seq.Content = append(seq.Content, scalar("!!int", fmt.Sprintf("%#x", v)))
		}
		buttons.Content = append(buttons.Content, scalar("!!str", c.Name), seq)
	}
	root.Content = append(root.Content, scalar("!!str", "Buttons"), buttons)

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return data, nil
}

// getCmd prints one setting
var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print one setting",
	Long: `Print the value of one setting as stored in the document.

Names are the document names (e.g. videomode, SaveFolder) and are matched
without regard to case. Button mappings (e.g. btnmap_pad_gcpad) print their
twelve assignments.`,
	Example: `  snesprefs get videomode
  snesprefs get savefolder
  snesprefs get btnmap_pad_wiimote`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readOnly)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	value, err := lookupValue(s.manager.Settings(), s.target, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

// lookupValue renders a scalar field or a button mapping by name
func lookupValue(st *settings.Settings, target settings.Target, name string) (string, error) {
	if f, ok := st.Field(name); ok {
		if !f.Present(target) {
			return "", fmt.Errorf("%s is not stored for %s", f.Name, target)
		}
		return f.Value(), nil
	}
	if c, ok := findControllerMap(st, name); ok {
		if !c.Present(target) {
			return "", fmt.Errorf("%s is not stored for %s", c.Name, target)
		}
		parts := make([]string, 0, settings.MaxJP)
		for _, v := range c.Buttons {
			parts = append(parts, fmt.Sprintf("%#x", v))
		}
		return strings.Join(parts, " "), nil
	}
	return "", prefserr.NewNotFoundError(fmt.Sprintf("unknown setting %q", name))
}

func findControllerMap(st *settings.Settings, name string) (settings.ControllerMap, bool) {
	for _, c := range st.ControllerMaps() {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return settings.ControllerMap{}, false
}

// setCmd changes settings and saves the document
var setCmd = &cobra.Command{
	Use:   "set <name> <value>...",
	Short: "Change one setting and save",
	Long: `Change one setting and save the preferences document.

Numbers are parsed strictly. Values out of range are reset to the factory
default before saving, the way the emulator does, and the reset is
reported. A button mapping takes twelve assignments.`,
	Example: `  # Switch to 480p
  snesprefs set videomode 2

  # Move the save folder
  snesprefs set SaveFolder snes9xfx/saves2

  # Preview the change without writing
  snesprefs set MusicVolume 60 --dry-run`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readWrite)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	st := s.manager.Settings()
	p := ui.NewPrinter(cmd.OutOrStdout())

	old := st.Clone()
	if err := assign(st, s.target, args[0], args[1:]); err != nil {
		p.PrintFailure("Invalid value", err)
		return err
	}
	p.PrintCorrections(s.manager.ValidateAndClamp())

	if err := s.manager.Save(false); err != nil {
		p.PrintFailure("Save failed", err)
		return err
	}

	p.Newline()
	p.Println(settings.FormatDiff(old, st))
	s.reportDryRun(p)
	return nil
}

// assign stores values into the named field or button mapping
func assign(st *settings.Settings, target settings.Target, name string, values []string) error {
	if f, ok := st.Field(name); ok {
		if !f.Present(target) {
			return prefserr.NewValidationError(fmt.Sprintf("%s is not stored for %s", f.Name, target))
		}
		value := strings.Join(values, " ")
		if f.Kind != settings.KindText && len(values) != 1 {
			return prefserr.NewValidationError(fmt.Sprintf("%s takes one value", f.Name))
		}
		if err := f.Set(value); err != nil {
			return prefserr.NewValidationError(err.Error())
		}
		return nil
	}

	c, ok := findControllerMap(st, name)
	if !ok {
		return prefserr.NewNotFoundError(fmt.Sprintf("unknown setting %q", name))
	}
	if !c.Present(target) {
		return prefserr.NewValidationError(fmt.Sprintf("%s is not stored for %s", c.Name, target))
	}
	if len(values) != settings.MaxJP {
		return prefserr.NewValidationError(fmt.Sprintf("%s takes %d values, got %d", c.Name, settings.MaxJP, len(values)))
	}
	var buttons [settings.MaxJP]uint32
	for i, v := range values {
		n, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return prefserr.NewValidationError(fmt.Sprintf("%s: %q is not a button code", c.Name, v))
		}
		buttons[i] = uint32(n)
	}
	*c.Buttons = buttons
	return nil
}

// defaultsCmd restores the factory defaults
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Restore the factory defaults and save",
	Long: `Reset every setting and button mapping to the factory defaults and
save the document where the current one was found.

Wii defaults follow the widescreen and language system settings in the
configuration file. You will be asked to type RESET unless --yes is given.`,
	Example: `  snesprefs defaults
  snesprefs defaults --yes --mount sd=/media/SDCARD`,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readWrite)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	p := ui.NewPrinter(cmd.OutOrStdout())
	if !assumeYes && !dryRun {
		if !ui.RestoreDefaultsConfirmation(cmd.InOrStdin(), cmd.OutOrStdout(), s.manager.PrefPath()) {
			return nil
		}
	}

	s.manager.RestoreDefaults()
	if err := s.manager.Save(false); err != nil {
		p.PrintFailure("Restore defaults failed", err)
		return err
	}

	p.PrintSuccess("Defaults restored",
		ui.Param{Key: "Target", Value: s.target.String()},
		ui.Param{Key: "Saved to", Value: s.manager.PrefPath()},
	)
	s.reportDryRun(p)
	return nil
}

// validateCmd reports out-of-range values without changing anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the stored preferences without changing them",
	Long: `Read the preferences document and report every value the emulator
would reset to its default when loading it. Nothing is written.

Exits with an error when the document cannot be found or holds values out
of range.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readOnly)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	p := ui.NewPrinter(cmd.OutOrStdout())
	res := s.manager.Probe()
	if !s.manager.Loaded() {
		err := prefserr.NewNotFoundError(fmt.Sprintf("no preferences document in %d locations", len(res.Attempts)))
		p.PrintFailure("No preferences document", err)
		p.PrintAttempts(res.Attempts)
		return err
	}

	// The load already clamped the live settings; validate the raw document.
	raw := settings.DefaultSettings(s.target, s.registry.SystemValue())
	res.Document.Apply(raw)
	errs := settings.Validate(raw)
	if len(errs) == 0 {
		p.PrintSuccess("Preferences are valid",
			ui.Param{Key: "Document", Value: res.Path},
			ui.Param{Key: "Version", Value: documentVersion(res.Document)},
		)
		return nil
	}

	details := []ui.Param{{Key: "Document", Value: res.Path}}
	for _, e := range errs {
		details = append(details, ui.Param{Key: "Invalid", Value: e.Error()})
	}
	p.PrintWarning(fmt.Sprintf("%d values out of range", len(errs)), details...)
	return fmt.Errorf("%d values out of range", len(errs))
}

// documentVersion renders the document version relative to the one this
// tool writes
func documentVersion(doc *prefdoc.Document) string {
	raw, ok := doc.Version()
	if !ok {
		return "(none)"
	}
	v, err := prefdoc.ParseVersion(raw)
	if err != nil {
		return raw + " (unsupported)"
	}
	current, err := prefdoc.ParseVersion(version.DocumentVersion)
	if err != nil {
		return raw
	}
	switch v.Compare(current) {
	case -1:
		return raw + " (older, rewritten as " + version.DocumentVersion + " on save)"
	case 1:
		return raw + " (newer than " + version.DocumentVersion + ")"
	default:
		return raw
	}
}

// probeCmd shows where the preferences are looked for
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show where the preferences document is looked for",
	Long: `Try every location the emulator reads settings.xml from, in order,
and report why each one was skipped until one is accepted.

Use --verbose to print the accepted document, and --max-lines to cut it short.`,
	Example: `  snesprefs probe
  snesprefs probe --verbose --log-level debug
  snesprefs probe --verbose --max-lines 20`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the accepted document")
	probeCmd.Flags().IntVar(&probeMaxLines, "max-lines", 0, "Lines of the document printed with --verbose (0 = all)")
}

func runProbe(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readOnly)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	candidates := s.profile.Candidates()
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.File(prefdoc.FileName)
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:     "Preferences Probe",
		Command:   "snesprefs probe",
		Params:    []ui.Param{{Key: "Target", Value: s.target.String()}},
		StepNames: names,
		Verbose:   verbose,
		MaxLines:  probeMaxLines,
		Output:    cmd.OutOrStdout(),
	})

	return runner.Run(func(onStep ui.StepCallback) ([]ui.Param, error) {
		res := s.manager.Probe()
		for i, a := range res.Attempts {
			if a.Err != nil {
				onStep(i+1, "", ui.StepRejected, prefserr.GetShortErrorMessage(a.Err))
				continue
			}
			onStep(i+1, "", ui.StepAccepted, "accepted")
		}
		for i := len(res.Attempts); i < len(names); i++ {
			onStep(i+1, "", ui.StepSkipped, "not needed")
		}

		if !res.Found() {
			return nil, prefserr.NewNotFoundError(fmt.Sprintf("no preferences document in %d locations", len(res.Attempts)))
		}
		if data, err := s.host.ReadFile(res.Path); err == nil {
			runner.SetDocument(res.Path, data)
		}
		return []ui.Param{
			{Key: "Document", Value: res.Path},
			{Key: "Version", Value: documentVersion(res.Document)},
			{Key: "Save folder", Value: s.manager.PrefPath()},
		}, nil
	})
}

// editCmd opens the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the preferences interactively",
	Long: `Open a full-screen editor over the current preferences.

Arrow keys move between settings and step numbers, enter edits a value,
s saves, d restores the defaults and q quits.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, readWrite)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	if !ui.IsTerminal() {
		return fmt.Errorf("edit needs an interactive terminal")
	}

	p := tea.NewProgram(editor.New(s.manager), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	if m, ok := final.(editor.Model); ok && m.Modified {
		fmt.Fprintln(os.Stderr, "Unsaved changes were discarded.")
	}
	s.reportDryRun(ui.NewPrinter(cmd.OutOrStdout()))
	return nil
}
