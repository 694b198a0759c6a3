package entity

import (
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/google/uuid"
)

// NoReferrer is stored in ReferBy when the user joined without a referral
const NoReferrer = "0"

// TelegramIdentity is the verified subset of a Mini App init data payload
type TelegramIdentity struct {
	TgID      int64
	FirstName string
	LastName  string
	Username  string
	AuthDate  time.Time
}

// TgIDString returns the Telegram ID in the string form used for storage
func (i TelegramIdentity) TgIDString() string {
	return strconv.FormatInt(i.TgID, 10)
}

// DisplayName joins first and last name with a single space
func (i TelegramIdentity) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// User represents a vault member registered through Telegram
type User struct {
	ID        string    // Opaque UUID assigned at creation
	TgID      string    // Telegram user ID, unique across users
	Name      string    // Display name captured at creation
	Username  *string   // Telegram handle, nil when the user has none
	ReferCode string    // Code other users can be referred with
	ReferBy   string    // Referral code of the referrer or NoReferrer
	balance   int64     // Balance stored in cents (private)
	JoinedAt  time.Time // When the user first logged in
	IsBlock   bool
	IsDelete  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserFromIdentity builds the record created on the first login of a Telegram user
func NewUserFromIdentity(identity TelegramIdentity, timeProvider coreport.TimeProvider) (*User, error) {
	if identity.TgID == 0 {
		return nil, errs.ErrMalformedCredential
	}

	tgID := identity.TgIDString()
	var username *string
	if identity.Username != "" {
		handle := identity.Username
		username = &handle
	}

	now := timeProvider.Now()
	return &User{
		ID:        uuid.NewString(),
		TgID:      tgID,
		Name:      identity.DisplayName(),
		Username:  username,
		ReferCode: tgID,
		ReferBy:   NoReferrer,
		balance:   0,
		JoinedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from storage, including its private balance
func RestoreUser(u User, balanceInCents int64) *User {
	u.balance = balanceInCents
	return &u
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// UsernameValue returns the handle or an empty string
func (u *User) UsernameValue() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

// CanSignIn reports whether a session may be issued for the user
func (u *User) CanSignIn() error {
	if u.IsBlock {
		return errs.ErrUserBlocked
	}
	return nil
}
