package delivery

import (
	"net/http"
	"strconv"

	"github.com/hookworks/hookd/pkg/gateway/verifier"
)

const (
	SignatureHeader = "X-Hookd-Signature"
	TimestampHeader = "X-Hookd-Timestamp"
	EventIDHeader   = "X-Hookd-Event-Id"
)

// SignRequest stamps the outbound request with the timestamp and payload
// signature receivers verify against the config secret.
func SignRequest(req *http.Request, secret string, ts int64, payload []byte) {
	req.Header.Set(TimestampHeader, strconv.FormatInt(ts, 10))
	req.Header.Set(SignatureHeader, "v1="+verifier.SignPayload(secret, ts, payload))
}
