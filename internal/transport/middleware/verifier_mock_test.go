package middleware

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/auth"
)

var _ identityVerifier = &identityVerifierMock{}

type identityVerifierMock struct {
	VerifyFunc func(ctx context.Context, token string) (auth.Identity, error)

	calls struct {
		Verify []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *identityVerifierMock) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if mock.VerifyFunc == nil {
		panic("identityVerifierMock.VerifyFunc: method is nil but identityVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token)
}

func (mock *identityVerifierMock) VerifyCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
