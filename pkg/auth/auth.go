package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
)

type userNameKey struct{}

var ErrNoUserName = errors.New("no user name in context")

func SetUserName(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, userNameKey{}, userName)
}

func GetUserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey{}).(string)
	if !ok || name == "" {
		return "", ErrNoUserName
	}
	return name, nil
}
