// Package validators checks authentication requests before they reach the
// auth flows. Failures are returned as the sentinel errors of this package
// and translated to the validation kind by the service layer.
package validators

import "context"

// Validator checks one request value. When fields are given, only those
// fields are checked, in the given order.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
