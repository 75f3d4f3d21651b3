package auth

import (
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/pkg/errors"

	"brickbase-api-io/api/pkg/util"
)

// TokenVerifier validates a bearer ID token and returns the identity it
// asserts. Constructed once and passed in wherever verification happens so
// tests can substitute a fake.
type TokenVerifier interface {
	Verify(idToken string) (Session, error)
}

type googleTokenVerifier struct {
	clientID string
}

// NewGoogleTokenVerifier verifies Google-signed ID tokens against the
// client id in GOOGLE_CLIENT_ID.
func NewGoogleTokenVerifier() TokenVerifier {
	return &googleTokenVerifier{clientID: util.LoadEnvFor("GOOGLE_CLIENT_ID")}
}

func (g *googleTokenVerifier) Verify(idToken string) (Session, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.clientID}); err != nil {
		return Session{}, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return Session{}, errors.New("cannot decode token")
	}

	if claimSet.Email == "" {
		return Session{}, errors.New("token carries no email claim")
	}

	return Session{Email: claimSet.Email, Name: claimSet.Name}, nil
}
