package model

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

type User struct {
	ID           string
	Handle       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// case statuses
const (
	CaseReceived  = "Received"
	CaseInReview  = "InReview"
	CaseScheduled = "Scheduled"
	CaseClosed    = "Closed"
)

// appointment statuses
const (
	AppointmentPending   = "Pending"
	AppointmentConfirmed = "Confirmed"
	AppointmentCancelled = "Cancelled"
)

// sentinels stored in place of the reporter's identity on anonymous cases
const (
	AnonymousName    = "Anonymous"
	AnonymousAddress = "hidden"
)

type Case struct {
	ID              string
	CaseID          string
	OwnerHandle     string
	ReporterName    string
	ReporterAddress string
	Description     string
	Anonymous       bool
	Attachments     []string
	Status          string
	TermsAccepted   bool
	SecretHash      string
	CreatedAt       time.Time
}

type Appointment struct {
	ID        string
	CaseRef   string
	CaseID    string
	Date      string
	Time      string
	Status    string
	CreatedAt time.Time
}

// NewCaseID returns a public case identifier of the form FIR-YYYYMMDD-XXXXXXXX.
// The suffix is 4 random bytes; collisions are left to the unique index.
func NewCaseID(now time.Time) (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "FIR-" + now.Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(b)), nil
}
