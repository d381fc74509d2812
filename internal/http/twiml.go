package http

import (
	"encoding/xml"
	"fmt"
)

// messagingResponse is the TwiML document Twilio expects back from a
// message webhook.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// renderTwiML wraps a reply message in a TwiML response document.
func renderTwiML(message string) ([]byte, error) {
	body, err := xml.Marshal(messagingResponse{Message: message})
	if err != nil {
		return nil, fmt.Errorf("marshal TwiML: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
