package devconnect

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the account model. PasswordHash never serializes to JSON.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Phone         string     `bun:"phone_number" json:"phone_number,omitempty"`
	Avatar        string     `bun:"avatar" json:"avatar,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// SocialLinks is the profile's social links mapping, stored as a JSON column.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// IsZero reports whether no link is set.
func (s SocialLinks) IsZero() bool {
	return s == SocialLinks{}
}

// Experience is an embedded profile record. Records are kept newest first;
// From/To are date strings as submitted by the client.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Education is an embedded profile record, same lifecycle as Experience.
type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// Profile is the developer profile, one per user. Skills, social links, and
// the embedded record sequences live in JSON columns so a profile save is a
// wholesale document replace, last write wins.
type Profile struct {
	bun.BaseModel  `bun:"table:profiles,alias:prf"`
	ID             uuid.UUID    `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID         uuid.UUID    `bun:"user_id,notnull,unique,type:uuid" json:"user"`
	Owner          *User        `bun:"rel:belongs-to,join:user_id=id" json:"owner,omitempty"`
	Status         string       `bun:"status,notnull" json:"status"`
	Skills         []string     `bun:"skills,type:jsonb" json:"skills"`
	Company        string       `bun:"company" json:"company,omitempty"`
	Website        string       `bun:"website" json:"website,omitempty"`
	Location       string       `bun:"location" json:"location,omitempty"`
	Bio            string       `bun:"bio" json:"bio,omitempty"`
	GithubUsername string       `bun:"github_username" json:"githubusername,omitempty"`
	Social         SocialLinks  `bun:"social,type:jsonb" json:"social,omitempty"`
	Experience     []Experience `bun:"experience,type:jsonb" json:"experience"`
	Education      []Education  `bun:"education,type:jsonb" json:"education"`
	CreatedAt      *time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Post is a feed entry. Name and Avatar are denormalized from the owning
// user at creation time and never re-synced.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user"`
	Text          string     `bun:"text,notnull" json:"text"`
	Name          string     `bun:"name" json:"name,omitempty"`
	Avatar        string     `bun:"avatar" json:"avatar,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"date,omitempty"`
}

// OwnedBy reports whether the post belongs to the given user id.
func (p *Post) OwnedBy(userID string) bool {
	if p == nil {
		return false
	}
	return p.UserID.String() == userID
}
