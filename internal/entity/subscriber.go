package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// Subscriber is a single community signup record.
type Subscriber struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Timestamp time.Time `json:"timestamp"`
}

// SubscriberInsert is the inbound signup payload.
type SubscriberInsert struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (si *SubscriberInsert) Validate() error {
	if strings.TrimSpace(si.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(si.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(si.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if !govalidator.IsEmail(si.Email) {
		return fmt.Errorf("bad email %s", si.Email)
	}
	return nil
}
