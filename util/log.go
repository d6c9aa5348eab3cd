// Copyright 2024, the stactools-packages noaa-gefs authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Log severities
const (
	INFO  = "Informational"
	WARN  = "Warning"
	ERROR = "Error"
)

// LogContext is the context for a set of related log messages
type LogContext interface {
	AppName() string
	SessionID() string
}

// BasicLogContext is a minimal LogContext with a lazily created session ID
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "noaa-gefs"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	return c.sessionID
}

// LogAuditInput is the set of inputs for LogAudit
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity string
}

func logMessage(context LogContext, severity, message string) {
	log.Printf("[%s] %s {%s} %s", context.AppName(), severity, context.SessionID(), message)
}

// LogInfo logs an informational message
func LogInfo(context LogContext, message string) {
	logMessage(context, INFO, message)
}

// LogAlert logs a message that requires attention but is not tied to an error object
func LogAlert(context LogContext, message string) {
	logMessage(context, WARN, message)
}

// LogSimpleErr logs an error with a message and returns the annotated error
func LogSimpleErr(context LogContext, message string, err error) error {
	logMessage(context, ERROR, fmt.Sprintf("%s %v", message, err))
	return fmt.Errorf("%s %v", message, err)
}

// LogAudit logs an auditable action in actor/action/actee form
func LogAudit(context LogContext, input LogAuditInput) {
	logMessage(context, input.Severity, fmt.Sprintf("audit: %s -> %s -> %s: %s", input.Actor, input.Action, input.Actee, input.Message))
}

// Error is a loggable error with separate internal and user-facing messages.
// LogMsg is what lands in the logs; SimpleMsg is what the caller sees.
type Error struct {
	LogMsg    string
	SimpleMsg string
	Response  string
	URL       string
}

// Error implements the error interface
func (e Error) Error() string {
	if e.SimpleMsg != "" {
		return e.SimpleMsg
	}
	return e.LogMsg
}

// Log logs the full error details and returns e as a plain error
func (e Error) Log(context LogContext, message string) error {
	logMsg := message + " " + e.LogMsg
	if e.URL != "" {
		logMsg += fmt.Sprintf("\nURL: %s", e.URL)
	}
	if e.Response != "" {
		logMsg += fmt.Sprintf("\nResponse: %s", e.Response)
	}
	logMessage(context, ERROR, logMsg)
	return e
}
