package credentials

import (
	"errors"
	"os"
	"time"

	"github.com/Jaymi-01/framez/pkg/config"
	json "github.com/json-iterator/go"
)

// Credentials is the stored session: the bearer token and the user it
// belongs to.
type Credentials struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
}

// Load reads the credentials file. A missing file returns (nil, nil).
func Load() (*Credentials, error) {
	data, err := os.ReadFile(config.GetCredentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Save writes the credentials file readable by the owner only
func Save(creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(config.GetCredentialsPath(), data, 0600)
}

// Delete removes the credentials file. Deleting a missing file is not an error.
func Delete() error {
	err := os.Remove(config.GetCredentialsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsValid reports whether the token is present and unexpired
func (c *Credentials) IsValid() bool {
	return c.Token != "" && !c.IsExpired()
}
