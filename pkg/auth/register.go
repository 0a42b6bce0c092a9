package auth

import (
	"context"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/data"
)

// RegisterFlow validates the form, creates the account and chains straight
// into login with the same credentials.
type RegisterFlow struct {
	flow
	client *api.Client
	login  *LoginFlow
}

func NewRegisterFlow(client *api.Client, login *LoginFlow) *RegisterFlow {
	return &RegisterFlow{client: client, login: login}
}

func (f *RegisterFlow) Submit(ctx context.Context, form RegisterForm) (data.UserProfile, string, error) {
	if err := f.begin(); err != nil {
		return data.UserProfile{}, "", err
	}
	if err := form.Validate(); err != nil {
		f.fail()
		return data.UserProfile{}, "", err
	}

	err := f.client.Register(ctx, api.RegisterRequest{
		Email:      form.Email,
		Password:   form.Password,
		Username:   form.Name,
		RePassword: form.ConfirmPassword,
	})
	if err != nil {
		f.fail()
		return data.UserProfile{}, "", registerError(err)
	}

	profile, token, err := f.login.Submit(ctx, form.Email, form.Password)
	if err != nil {
		f.fail()
		return data.UserProfile{}, "", err
	}
	f.succeed()
	return profile, token, nil
}

// registerError maps the backend's structured field errors onto the screen
// messages. An email uniqueness complaint gets the actionable wording; any
// other email or password error is shown as the server phrased it.
func registerError(err error) *FlowError {
	apiErr, ok := api.AsError(err)
	if !ok || apiErr.Kind == api.KindTransport {
		return flowErr(MsgRegistrationLost, err)
	}
	if msg := apiErr.FieldError("email"); msg != "" {
		if apiErr.EmailConflict() {
			return flowErr(MsgEmailTaken, err)
		}
		return flowErr(msg, err)
	}
	if msg := apiErr.FieldError("password"); msg != "" {
		return flowErr(msg, err)
	}
	return flowErr(MsgServerCheckInput, err)
}
