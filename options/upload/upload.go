// Package upload provides options for multipart upload requests.
package upload

import (
	"github.com/c2fo/boxsync/options"
)

const (
	optionNameShared  = "uploadShared"
	optionNameMessage = "uploadMessage"
	optionNameEmails  = "uploadEmails"
)

// WithShared returns Shared implementation of UploadOption
func WithShared(shared bool) options.UploadOption {
	s := Shared(shared)
	return &s
}

// Shared represents the UploadOption that marks uploaded files as shared.
type Shared bool

// UploadOptionName returns the name of Shared option
func (s *Shared) UploadOptionName() string {
	return optionNameShared
}

// WithMessage returns Message implementation of UploadOption
func WithMessage(message string) options.UploadOption {
	m := Message(message)
	return &m
}

// Message represents the UploadOption carrying a note sent to every notified address.
type Message string

// UploadOptionName returns the name of Message option
func (m *Message) UploadOptionName() string {
	return optionNameMessage
}

// WithEmails returns Emails implementation of UploadOption
func WithEmails(emails ...string) options.UploadOption {
	e := Emails(emails)
	return &e
}

// Emails represents the UploadOption listing addresses to notify about the upload.
type Emails []string

// UploadOptionName returns the name of Emails option
func (e *Emails) UploadOptionName() string {
	return optionNameEmails
}
