package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"

	oerrors "github.com/locko/rtools/internal/errors"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(configSchemaCUE, cue.Filename("schema/config.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate checks a decoded configuration.
func (v *Validator) Validate(cfg *Config) error {
	return v.check(v.ctx.Encode(cfg), "")
}

// ValidateBytes checks raw YAML as read from path. Unknown keys and type
// mismatches are reported with their position.
func (v *Validator) ValidateBytes(path string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	f, err := cueyaml.Extract(path, data)
	if err != nil {
		return oerrors.NewValidationError("config is not valid YAML: "+err.Error(), path, "")
	}

	val := v.ctx.BuildFile(f)
	if val.Err() == nil && val.IncompleteKind() == cue.NullKind {
		// comments only
		return nil
	}

	return v.check(val, path)
}

func (v *Validator) check(val cue.Value, location string) error {
	if val.Err() != nil {
		return oerrors.NewValidationError(cueerrors.Details(val.Err(), nil), location, "")
	}

	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return oerrors.NewValidationError(
			"config does not match schema:\n"+cueerrors.Details(err, nil),
			location,
			"Run 'rtools config init --force' to write a fresh config.",
		)
	}

	return nil
}
