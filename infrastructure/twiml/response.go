// Package twiml renders the subset of Twilio's voice markup the call loop
// needs.
package twiml

import (
	"encoding/xml"
	"fmt"
	"time"
)

const ContentType = "application/xml"

type Response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type Play struct {
	XMLName xml.Name `xml:"Play"`
	URL     string   `xml:",chardata"`
}

type Record struct {
	XMLName   xml.Name `xml:"Record"`
	Action    string   `xml:"action,attr,omitempty"`
	Method    string   `xml:"method,attr,omitempty"`
	MaxLength int      `xml:"maxLength,attr,omitempty"`
	Timeout   int      `xml:"timeout,attr,omitempty"`
}

type Pause struct {
	XMLName xml.Name `xml:"Pause"`
	Length  int      `xml:"length,attr,omitempty"`
}

type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr,omitempty"`
	URL     string   `xml:",chardata"`
}

type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

func New(verbs ...any) *Response {
	return &Response{Verbs: verbs}
}

func (r *Response) Say(text string) *Response {
	r.Verbs = append(r.Verbs, Say{Text: text})
	return r
}

func (r *Response) Play(url string) *Response {
	r.Verbs = append(r.Verbs, Play{URL: url})
	return r
}

// Record posts the caller's recording to action once maxLength elapses or the
// caller stays silent for timeout.
func (r *Response) Record(action string, maxLength, timeout time.Duration) *Response {
	r.Verbs = append(r.Verbs, Record{
		Action:    action,
		Method:    "POST",
		MaxLength: seconds(maxLength),
		Timeout:   seconds(timeout),
	})
	return r
}

func (r *Response) Pause(length time.Duration) *Response {
	r.Verbs = append(r.Verbs, Pause{Length: seconds(length)})
	return r
}

func (r *Response) Redirect(url string) *Response {
	r.Verbs = append(r.Verbs, Redirect{Method: "POST", URL: url})
	return r
}

func (r *Response) Hangup() *Response {
	r.Verbs = append(r.Verbs, Hangup{})
	return r
}

// Render returns the document with the XML declaration prepended.
func (r *Response) Render() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to render twiml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func seconds(d time.Duration) int {
	s := int(d / time.Second)
	if s < 1 && d > 0 {
		return 1
	}
	return s
}
