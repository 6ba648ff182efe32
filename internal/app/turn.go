package app

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/pion/webrtc/v4"
)

// CredentialIssuer mints time-limited TURN credentials following the coturn
// REST API convention: username is "expiry:tag", credential is
// base64(HMAC-SHA1(secret, username)). Stateless; the TURN server verifies
// with the same shared secret.
type CredentialIssuer struct {
	secret   string
	ttl      time.Duration
	stunURLs []string
	turnURLs []string
}

func NewCredentialIssuer(secret string, ttl time.Duration, stunURLs, turnURLs []string) *CredentialIssuer {
	return &CredentialIssuer{
		secret:   secret,
		ttl:      ttl,
		stunURLs: stunURLs,
		turnURLs: turnURLs,
	}
}

// Issue returns the ICE server list for one peer. STUN entries carry no
// credentials; the TURN entry gets a fresh username/credential pair valid
// for the configured ttl.
func (i *CredentialIssuer) Issue(tag string) []webrtc.ICEServer {
	servers := make([]webrtc.ICEServer, 0, 2)
	if len(i.stunURLs) > 0 {
		servers = append(servers, webrtc.ICEServer{URLs: i.stunURLs})
	}
	if len(i.turnURLs) == 0 || i.secret == "" {
		return servers
	}

	expiry := time.Now().Add(i.ttl).Unix()
	username := fmt.Sprintf("%d:%s", expiry, tag)

	mac := hmac.New(sha1.New, []byte(i.secret))
	mac.Write([]byte(username))
	credential := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	servers = append(servers, webrtc.ICEServer{
		URLs:       i.turnURLs,
		Username:   username,
		Credential: credential,
	})
	return servers
}
