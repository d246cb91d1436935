package cipher

import (
	v "github.com/asaskevich/govalidator"

	"github.com/masterkusok/desmatrix/errors"
)

// Config is a validated, declarative alternative to calling Init
// directly — the same convenience layer the rest of this codebase builds
// over its stateful contexts.
type Config struct {
	// Variant selects DES, DESX or TripleDES.
	Variant Variant `validate:"required"`

	// Mode selects the block/stream driver.
	Mode Mode `validate:"required"`

	// Key is 8 bytes for DES, 24 for DESX/TripleDES.
	Key []byte `validate:"required"`

	// IV is the 8-byte initialization vector.
	IV []byte `validate:"required"`

	// Direction fixes whether Update encrypts or decrypts.
	Direction Direction

	// N is the feedback width in bits, required for CFB/OFB modes.
	N int
}

// NewContext validates cfg and returns an initialized Context, or an
// error from govalidator's struct validation or from Init itself.
func NewContext(cfg *Config) (*Context, error) {
	if _, err := v.ValidateStruct(cfg); err != nil {
		return nil, errors.Annotate(err, "invalid cipher config: %w")
	}

	ctx := &Context{}
	if err := Init(ctx, cfg.Variant, cfg.Mode, cfg.Key, cfg.IV, cfg.Direction, cfg.N); err != nil {
		return nil, err
	}
	return ctx, nil
}
