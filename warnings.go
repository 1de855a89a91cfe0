package graftactil

import (
	"fmt"
	"strings"

	"github.com/graftactil/graftactil/scene"
)

// WarningKind classifies a Warning.
type WarningKind int

const (
	// UndefinedSamples means some marker x-values had no defined y-value.
	UndefinedSamples WarningKind = iota
	// OffPlate means a marker centre lies outside the plate.
	OffPlate
	// UnmappedCharacter means label text has characters written as blanks.
	UnmappedCharacter
)

func (k WarningKind) String() string {
	switch k {
	case UndefinedSamples:
		return "undefined samples"
	case OffPlate:
		return "off plate"
	case UnmappedCharacter:
		return "unmapped character"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal problem found while laying out a plate.
type Warning struct {
	Kind    WarningKind
	Source  string // function ID or label text
	Count   int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Source, w.Message)
}

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

func collectWarnings(s *scene.Scene) []Warning {
	var warnings []Warning
	bounds := s.Plate.Bounds()

	for _, set := range s.Markers {
		if set.Dropped > 0 {
			warnings = append(warnings, Warning{
				Kind:    UndefinedSamples,
				Source:  set.ID,
				Count:   set.Dropped,
				Message: fmt.Sprintf("%d samples skipped", set.Dropped),
			})
		}
		off := 0
		for _, mk := range set.Markers {
			if !bounds.Contains(mk.Center) {
				off++
			}
		}
		if off > 0 {
			warnings = append(warnings, Warning{
				Kind:    OffPlate,
				Source:  set.ID,
				Count:   off,
				Message: fmt.Sprintf("%d markers outside the plate", off),
			})
		}
	}

	for _, l := range s.Labels {
		if len(l.Unmapped) == 0 {
			continue
		}
		quoted := make([]string, len(l.Unmapped))
		for i, r := range l.Unmapped {
			quoted[i] = fmt.Sprintf("%q", r)
		}
		warnings = append(warnings, Warning{
			Kind:    UnmappedCharacter,
			Source:  l.Text,
			Count:   len(l.Unmapped),
			Message: "written as blank: " + strings.Join(quoted, ", "),
		})
	}
	return warnings
}
