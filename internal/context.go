package internal

import "context"

type ctxKey string

const ContextUserKey ctxKey = "userEmail"

func UserEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if email, ok := ctx.Value(ContextUserKey).(string); ok {
		return email
	}
	return ""
}

func ContextWithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextUserKey, email)
}
