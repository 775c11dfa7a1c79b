package premium

import "errors"

var (
	ErrScalerUnavailable = errors.New("scaler unavailable")
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrSchemaMismatch    = errors.New("artifact schema mismatch")
)
