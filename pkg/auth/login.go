package auth

import (
	"context"

	"github.com/avasyliev/booktrack/pkg/api"
	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/logger"
	"github.com/avasyliev/booktrack/pkg/session"
)

// LoginFlow exchanges credentials for a token pair, stores it and loads the
// profile. Whether it was a wrong password or an unknown account is never
// distinguished; both surface as the same message.
type LoginFlow struct {
	flow
	client  *api.Client
	session session.Store
}

func NewLoginFlow(client *api.Client, sess session.Store) *LoginFlow {
	return &LoginFlow{client: client, session: sess}
}

// Submit runs the whole login sequence. The returned token matches what the
// session store now holds.
func (f *LoginFlow) Submit(ctx context.Context, email, password string) (data.UserProfile, string, error) {
	if err := f.begin(); err != nil {
		return data.UserProfile{}, "", err
	}
	if email == "" || password == "" {
		f.fail()
		return data.UserProfile{}, "", validationErr(MsgEnterEmailAndPassword)
	}

	cred, err := f.client.CreateToken(ctx, email, password)
	if err != nil {
		f.fail()
		return data.UserProfile{}, "", loginError(err)
	}
	if err := f.session.Save(cred); err != nil {
		f.fail()
		return data.UserProfile{}, "", flowErr(MsgServerUnreachable, err)
	}

	profile, err := f.client.Profile(ctx)
	if err != nil {
		f.fail()
		return data.UserProfile{}, "", loginError(err)
	}

	f.succeed()
	logger.Log.WithField("user", profile.Email).Debug("login succeeded")
	return profile, cred.AccessToken, nil
}

// loginError folds any failure into the two allowed messages: connectivity
// problems get their own wording, everything else reads as bad credentials.
func loginError(err error) *FlowError {
	if api.IsKind(err, api.KindTransport) {
		return flowErr(MsgServerUnreachable, err)
	}
	return flowErr(MsgInvalidCredentials, err)
}
