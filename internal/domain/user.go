package domain

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"
)

// Profile defaults applied at registration when the caller omits the field.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User-specific validation errors. All wrap ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
	ErrNameLength          = fmt.Errorf("%w: name must be between 2 and 30 characters", ErrValidation)
	ErrAboutLength         = fmt.Errorf("%w: about must be between 2 and 30 characters", ErrValidation)
)

// linkPattern matches http(s) URLs the way the avatar and card link fields
// are constrained. Kept deliberately loose: a scheme, a host, and an
// optional path.
var linkPattern = regexp.MustCompile(`^https?://(www\.)?[\w\-.~:/?#\[\]@!$&'()*+,;=]+\.[a-z]{2,}[\w\-.~:/?#\[\]@!$&'()*+,;=]*$`)

// ValidLink reports whether s is URL-shaped per the link field rules.
func ValidLink(s string) bool {
	return linkPattern.MatchString(s)
}

// ValidEmail reports whether s is a syntactically valid email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// User represents a registered account. Email doubles as the login key and
// is unique across all accounts.
type User struct {
	ID             ID        `json:"id"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Avatar         string    `json:"avatar"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the credential digest in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given profile fields, applying defaults
// for any profile field left empty. The caller is responsible for hashing
// the password and setting HashedPassword before persisting.
func NewUser(name, about, avatar, email string) (*User, error) {
	if name == "" {
		name = DefaultName
	}
	if about == "" {
		about = DefaultAbout
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	now := time.Now().UTC()
	user := &User{
		ID:        NewID(),
		Name:      name,
		About:     about,
		Avatar:    avatar,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's invariants. HashedPassword is intentionally not
// required here: read projections omit it.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return ErrEmptyUserID
	}
	if !validProfileString(u.Name) {
		return ErrNameLength
	}
	if !validProfileString(u.About) {
		return ErrAboutLength
	}
	if !ValidLink(u.Avatar) {
		return ErrInvalidLink
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !ValidEmail(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// validProfileString checks the 2..30 character bound shared by the name and
// about fields. Counted in runes, not bytes.
func validProfileString(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 2 && n <= 30
}
