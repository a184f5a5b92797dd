// Package soap binds the PokemonBackend contract to the legacy XML-RPC
// backend. The wire format is a SOAP 1.1 envelope over HTTP POST; failures
// arrive as faults carrying a free-text reason and are classified into the
// domain taxonomy before leaving this package.
package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"pokedex/internal/domain"
	"pokedex/internal/logger"
)

const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	serviceNS  = "http://pokemon-api/pokemon-service"
)

// Client talks to one SOAP endpoint. The embedded http.Client is shared
// across requests and safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
}

func NewClient(endpoint string, httpClient *http.Client, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient, log: log}
}

type requestEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	NS      string   `xml:"xmlns:soap,attr"`
	Body    requestBody
}

type requestBody struct {
	XMLName xml.Name `xml:"soap:Body"`
	Payload any
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Fault *fault `xml:"Fault"`
	Inner []byte `xml:",innerxml"`
}

type fault struct {
	Code   string `xml:"faultcode"`
	Reason string `xml:"faultstring"`
}

// call posts one operation and decodes the response body into out. A fault in
// the response wins over the HTTP status, matching how the legacy backend
// reports every business failure as a 500 plus fault.
func (c *Client) call(ctx context.Context, action string, payload, out any) error {
	env := requestEnvelope{NS: envelopeNS, Body: requestBody{Payload: payload}}
	raw, err := xml.Marshal(env)
	if err != nil {
		return fmt.Errorf("soap: marshal %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(append([]byte(xml.Header), raw...)))
	if err != nil {
		return fmt.Errorf("soap: build request %s: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", serviceNS+"/"+action)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("soap call failed", "action", action, "error", err)
		return domain.ClassifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ClassifyTransport(err)
	}

	var decoded responseEnvelope
	if err := xml.Unmarshal(body, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return domain.ClassifyHTTP(resp.StatusCode, string(body))
		}
		return domain.Unknown(fmt.Sprintf("soap: malformed response for %s: %v", action, err))
	}
	if decoded.Body.Fault != nil {
		return domain.ClassifyFault(decoded.Body.Fault.Reason)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ClassifyHTTP(resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	if err := xml.Unmarshal(decoded.Body.Inner, out); err != nil {
		return domain.Unknown(fmt.Sprintf("soap: malformed %s body: %v", action, err))
	}
	return nil
}
