// Package llm holds the provider-neutral request and response types used to
// talk to a hosted text-generation service.
package llm

import "github.com/heartmarshall/huayu-backend/internal/domain"

// Message is one turn of a conversational context.
type Message struct {
	Role domain.Role
	Text string
}

// Request is a single generation call.
//
// Schema, when set, is a JSON schema literal the reply must conform to.
// WebSearch enables grounded generation; the response then carries Sources.
type Request struct {
	System    string
	Messages  []Message
	Schema    string
	WebSearch bool
}

// Source is a citation attached to grounded output.
type Source struct {
	Title string
	URL   string
}

// Response is the generated text plus any grounding citations.
type Response struct {
	Text    string
	Sources []Source
}

// UserText builds a request with a single user turn.
func UserText(system, prompt, schema string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: domain.RoleUser, Text: prompt}},
		Schema:   schema,
	}
}
