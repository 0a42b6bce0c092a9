package auth

import (
	"context"

	"github.com/avasyliev/booktrack/pkg/api"
)

// ResetRequestFlow asks the backend to send reset instructions. Success is
// terminal: whether the address exists is deliberately not revealed, and
// resubmitting a sent request is a no-op from the screen's point of view.
type ResetRequestFlow struct {
	flow
	client *api.Client
}

func NewResetRequestFlow(client *api.Client) *ResetRequestFlow {
	return &ResetRequestFlow{client: client}
}

func (f *ResetRequestFlow) Submit(ctx context.Context, email string) error {
	if f.state == Succeeded {
		return nil
	}
	if err := f.begin(); err != nil {
		return err
	}
	if err := f.client.ResetPassword(ctx, email); err != nil {
		f.fail()
		return flowErr(MsgResetFailed, err)
	}
	f.succeed()
	return nil
}

// Sent reports whether the instructions-sent state has been reached.
func (f *ResetRequestFlow) Sent() bool {
	return f.state == Succeeded
}

// ResetConfirmFlow sets a new password from a reset link. uid and token are
// opaque values lifted from that link.
type ResetConfirmFlow struct {
	flow
	client *api.Client
}

func NewResetConfirmFlow(client *api.Client) *ResetConfirmFlow {
	return &ResetConfirmFlow{client: client}
}

// Submit validates the new password and confirms the reset. On success the
// caller is expected to route back to the login entry with MsgPasswordChanged.
func (f *ResetConfirmFlow) Submit(ctx context.Context, uid, token, newPassword, rePassword string) error {
	if err := f.begin(); err != nil {
		return err
	}
	if err := validateResetPassword(newPassword, rePassword); err != nil {
		f.fail()
		return err
	}
	if err := f.client.ResetPasswordConfirm(ctx, uid, token, newPassword, rePassword); err != nil {
		f.fail()
		return resetConfirmError(err)
	}
	f.succeed()
	return nil
}

// A 400 or 403 means the link was consumed or never valid; everything else
// is a generic failure.
func resetConfirmError(err error) *FlowError {
	if apiErr, ok := api.AsError(err); ok {
		if apiErr.Status == 400 || apiErr.Status == 403 {
			return flowErr(MsgResetLinkInvalid, err)
		}
	}
	return flowErr(MsgResetConfirmError, err)
}
