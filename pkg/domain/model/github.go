package model

import "time"

// GitHubUser is the profile of the authenticated GitHub account.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// GitHubRepository is one repository visible to the credential. Tracked is
// filled in by the settings layer, not by the source adapter.
type GitHubRepository struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Private     bool      `json:"private"`
	Stars       int       `json:"stars"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tracked     bool      `json:"tracked"`
}

// GitHubProfile bundles the two reads issued jointly by the profile endpoint.
type GitHubProfile struct {
	User         *GitHubUser         `json:"user"`
	Repositories []*GitHubRepository `json:"repositories"`
}
