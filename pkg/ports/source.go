package ports

import "github.com/offbook/offbook/pkg/domain"

// ScriptSource loads an authored script from some backing medium (a YAML
// file, an authoring service). Sources do not validate playback semantics;
// that is normalization's job.
type ScriptSource interface {
	Load(ref string) (domain.Script, error)
}
