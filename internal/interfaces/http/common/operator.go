package common

import "context"

type operatorKey struct{}

// Operator is the admin identity taken from a verified bearer token.
type Operator struct {
	Subject string
	Name    string
}

// Label is what audit log lines record for the operator.
func (o Operator) Label() string {
	if o.Name == "" {
		return o.Subject
	}
	return o.Name + " (" + o.Subject + ")"
}

func ContextWithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, operatorKey{}, op)
}

// OperatorFromContext reports false for requests that never went through
// the admin auth middleware.
func OperatorFromContext(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(operatorKey{}).(Operator)
	return op, ok && op.Subject != ""
}
