package repr

import (
	"io"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dereks/derex"
	"github.com/dereks/derex/formatters"
)

// classLetters mirrors add_repr's "[uacp][0-9]+" tag spelling — one
// letter per ASN.1 class, followed by the tag number.
var classLetters = map[byte]derex.Class{
	'u': derex.ClassUniversal,
	'a': derex.ClassApplication,
	'c': derex.ClassContext,
	'p': derex.ClassPrivate,
}

// entryConfig is one YAML list entry in a representation config file.
//
//	- tag: u2
//	  name: recordType
//	  formatter: integer
type entryConfig struct {
	Tag       string `mapstructure:"tag"`
	Name      string `mapstructure:"name"`
	Formatter string `mapstructure:"formatter"`
}

// fileConfig is the top-level shape of a representation config file.
type fileConfig struct {
	Entries []entryConfig `mapstructure:"entries"`
}

// LoadConfig reads a YAML representation config from r, registering
// each entry's name and (if named) formatter into reg. A formatter
// name not found in formatters.ByName is an error; add_repr's
// dlopen-a-shared-object step is replaced by this compile-time lookup,
// so a config naming a formatter this binary was not linked with
// cannot be satisfied at load time any more than it could at runtime.
func LoadConfig(reg *Registry, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading representation config")
	}

	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return errors.Wrap(err, "parsing representation config")
	}

	var cfg fileConfig
	if err := mapstructure.Decode(generic, &cfg); err != nil {
		return errors.Wrap(err, "decoding representation config")
	}

	for _, e := range cfg.Entries {
		class, number, err := parseTagSpec(e.Tag)
		if err != nil {
			return err
		}

		var fmtr derex.Formatter
		if e.Formatter != "" {
			fn, ok := formatters.ByName[e.Formatter]
			if !ok {
				return errors.Errorf("representation config: unknown formatter %q for tag %s", e.Formatter, e.Tag)
			}
			fmtr = fn
		}

		reg.Register(class, number, e.Name, fmtr)
	}
	return nil
}

func parseTagSpec(spec string) (derex.Class, uint32, error) {
	if len(spec) < 2 {
		return 0, 0, errors.Errorf("representation config: malformed tag %q", spec)
	}
	class, ok := classLetters[spec[0]]
	if !ok {
		return 0, 0, errors.Errorf("representation config: unknown class letter %q", spec[0])
	}
	num, err := strconv.ParseUint(spec[1:], 10, 32)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "representation config: malformed tag number in %q", spec)
	}
	return class, uint32(num), nil
}
