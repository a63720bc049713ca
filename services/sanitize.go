package services

import (
	"regexp"
	"strings"
)

var scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeText removes script blocks, strips any remaining angle brackets
// and trims surrounding whitespace. Every caller-supplied free-text field
// goes through here before it reaches a store.
func SanitizeText(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = angleBrackets.Replace(s)
	return strings.TrimSpace(s)
}

// sanitizeOrder scrubs all free-text fields of an inbound order payload
// in place.
func sanitizeOrder(req *CreateOrderReq) {
	req.CustomerInfo.Name = SanitizeText(req.CustomerInfo.Name)
	req.CustomerInfo.Phone = SanitizeText(req.CustomerInfo.Phone)
	if req.CustomerInfo.Address != nil {
		req.CustomerInfo.Address.FullAddress = SanitizeText(req.CustomerInfo.Address.FullAddress)
	}
	for i := range req.Items {
		req.Items[i].Name = SanitizeText(req.Items[i].Name)
	}
}
