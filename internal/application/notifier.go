package application

import (
	"log"

	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/internal/domain/signing"
)

// Notifier delivers signing invitations and progress updates. Delivery is
// best effort everywhere it is called: a failed notification never rolls back
// the state change that triggered it.
type Notifier interface {
	SignerInvited(req *signing.SigningRequest, signer *signing.SignerInfo)
	SignerReminded(req *signing.SigningRequest, signer *signing.SignerInfo)
	RequestCompleted(req *signing.SigningRequest)
	RequestRejected(req *signing.SigningRequest, signer *signing.SignerInfo)
}

// LogNotifier writes notifications to the process log. It stands in for a
// mail integration and keeps the call sites honest in the meantime.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SignerInvited(req *signing.SigningRequest, signer *signing.SignerInfo) {
	log.Printf("[notify] invite %s to sign request %d: %s/sign/%s", signer.Email, req.ID, config.SigningBaseURL, req.Token)
}

func (n *LogNotifier) SignerReminded(req *signing.SigningRequest, signer *signing.SignerInfo) {
	log.Printf("[notify] remind %s about request %d", signer.Email, req.ID)
}

func (n *LogNotifier) RequestCompleted(req *signing.SigningRequest) {
	log.Printf("[notify] request %d completed by all signers", req.ID)
}

func (n *LogNotifier) RequestRejected(req *signing.SigningRequest, signer *signing.SignerInfo) {
	log.Printf("[notify] request %d rejected by %s: %s", req.ID, signer.Email, signer.RejectReason)
}
