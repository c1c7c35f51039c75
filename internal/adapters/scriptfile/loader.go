// Package scriptfile loads authored scripts from YAML documents. The format
// is the authoring collaborator's concern; this adapter only decodes it into
// domain values and fills the gaps authors habitually leave (line IDs,
// display names). Playback validation happens later, at normalization.
package scriptfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/offbook/offbook/pkg/domain"
)

// document mirrors the on-disk YAML shape.
type document struct {
	Title        string           `yaml:"title"`
	Participants []participantDoc `yaml:"participants"`
	Lines        []lineDoc        `yaml:"lines"`
}

type participantDoc struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Actor bool   `yaml:"actor"`
}

type lineDoc struct {
	ID           string  `yaml:"id"`
	Speaker      string  `yaml:"speaker"`
	Text         string  `yaml:"text"`
	Timing       string  `yaml:"timing"`
	DelaySeconds float64 `yaml:"delay_seconds"`
}

// Source implements ports.ScriptSource over the local filesystem.
type Source struct{}

// New creates a filesystem script source.
func New() *Source { return &Source{} }

// Load reads and decodes the script document at path. Unknown YAML fields
// are rejected so authoring typos surface instead of silently vanishing.
func (s *Source) Load(path string) (domain.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Script{}, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a script document from raw YAML.
func Parse(data []byte) (domain.Script, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return domain.Script{}, fmt.Errorf("failed to parse script: %w", err)
	}

	script := domain.Script{Title: doc.Title}

	for _, p := range doc.Participants {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		script.Participants = append(script.Participants, domain.Participant{
			ID:    p.ID,
			Name:  name,
			Actor: p.Actor,
		})
	}

	for i, l := range doc.Lines {
		id := l.ID
		if id == "" {
			id = fmt.Sprintf("line-%03d", i+1)
		}
		script.Lines = append(script.Lines, domain.Line{
			ID:                 id,
			SpeakerID:          l.Speaker,
			Text:               l.Text,
			Timing:             domain.TimingMode(l.Timing),
			ManualDelaySeconds: l.DelaySeconds,
		})
	}

	return script, nil
}
