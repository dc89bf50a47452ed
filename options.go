package tooltip

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ValueFormatter turns an anchor's raw value into display text.
type ValueFormatter func(value any) (string, error)

// Options configures a tooltip. Start from DefaultOptions; the zero value
// has no CSS class and fails validation.
type Options struct {
	// CSSClass is the class of the tooltip element and the prefix of its
	// name, value and alignment classes.
	CSSClass string `yaml:"cssClass"`

	// Offset moves the tooltip from its centred position above the anchor.
	Offset Point `yaml:"offset"`

	// OffsetCollision is applied when the tooltip is moved away from a
	// viewport edge. Only X is used.
	OffsetCollision Point `yaml:"offsetCollision"`

	// ValueTransform formats the anchor value. Values are printed with
	// fmt.Sprint when it is nil.
	ValueTransform ValueFormatter `yaml:"-"`

	// ElementTemplateSelector selects an existing element or <template>
	// to build the tooltip from.
	ElementTemplateSelector string `yaml:"elementTemplateSelector"`

	// HideDelay is the delay in milliseconds before a missed tooltip hides.
	HideDelay int `yaml:"hideDelay"`

	// TriggerSelector overrides the elements that trigger the tooltip on
	// bar and pie charts.
	TriggerSelector string `yaml:"triggerSelector"`

	// ID is the tooltip element id. One is allocated when empty.
	ID string `yaml:"id"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		CSSClass:        "chartist-tooltip",
		Offset:          Point{X: 0, Y: -20},
		OffsetCollision: Point{X: 20, Y: 0},
		HideDelay:       500,
	}
}

// HideDelayDuration returns HideDelay as a time.Duration.
func (o Options) HideDelayDuration() time.Duration {
	return time.Duration(o.HideDelay) * time.Millisecond
}

// LoadOptions reads YAML options from path.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read tooltip options %q: %w", path, err)
	}
	return ParseOptions(data, path)
}

// ParseOptions decodes YAML over DefaultOptions, so keys that are absent
// keep their default. Unknown keys are rejected.
func ParseOptions(data []byte, source string) (Options, error) {
	opts := DefaultOptions()
	if len(bytes.TrimSpace(data)) == 0 {
		return opts, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return opts, fmt.Errorf("parse YAML in %q: %w", source, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("%q: %w", source, err)
	}
	return opts, nil
}

// Validate reports every problem with the options at once.
func (o Options) Validate() error {
	var errs []string

	if strings.TrimSpace(o.CSSClass) == "" {
		errs = append(errs, "cssClass is required")
	} else if strings.ContainsAny(o.CSSClass, " \t\n") {
		errs = append(errs, fmt.Sprintf("cssClass %q must be a single class name", o.CSSClass))
	}
	if o.HideDelay < 0 {
		errs = append(errs, fmt.Sprintf("hideDelay %d must not be negative", o.HideDelay))
	}
	if o.ID != "" && strings.TrimSpace(o.ID) == "" {
		errs = append(errs, "id must not be blank")
	}
	if o.TriggerSelector != "" && strings.TrimSpace(o.TriggerSelector) == "" {
		errs = append(errs, "triggerSelector must not be blank")
	}
	if o.ElementTemplateSelector != "" && strings.TrimSpace(o.ElementTemplateSelector) == "" {
		errs = append(errs, "elementTemplateSelector must not be blank")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(errs, "; "))
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
