package login

import "context"

type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}
