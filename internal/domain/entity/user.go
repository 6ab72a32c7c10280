package entity

import "encoding/json"

// UserProfile is the authenticated user's identity as reported by the
// backend. The backend emits the name fields under both snake_case and
// camelCase spellings; snake_case is canonical here and the camelCase
// aliases are resolved at the JSON boundary only.
type UserProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ZoomConnected bool   `json:"zoomConnected,omitempty"`
	ZohoConnected bool   `json:"zohoConnected,omitempty"`
}

func (p *UserProfile) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		FirstName     string `json:"first_name"`
		FirstNameAlt  string `json:"firstName"`
		LastName      string `json:"last_name"`
		LastNameAlt   string `json:"lastName"`
		ZoomConnected bool   `json:"zoomConnected"`
		ZohoConnected bool   `json:"zohoConnected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Email = raw.Email
	p.FirstName = raw.FirstName
	if p.FirstName == "" {
		p.FirstName = raw.FirstNameAlt
	}
	p.LastName = raw.LastName
	if p.LastName == "" {
		p.LastName = raw.LastNameAlt
	}
	p.ZoomConnected = raw.ZoomConnected
	p.ZohoConnected = raw.ZohoConnected
	return nil
}

// ProfilePatch carries partial profile fields. Nil pointers mean the field
// is absent from the update, not that it should be cleared.
type ProfilePatch struct {
	Email         *string `json:"email"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ZoomConnected *bool   `json:"zoomConnected"`
	ZohoConnected *bool   `json:"zohoConnected"`
}

func (p *ProfilePatch) UnmarshalJSON(data []byte) error {
	var raw struct {
		Email         *string `json:"email"`
		FirstName     *string `json:"first_name"`
		FirstNameAlt  *string `json:"firstName"`
		LastName      *string `json:"last_name"`
		LastNameAlt   *string `json:"lastName"`
		ZoomConnected *bool   `json:"zoomConnected"`
		ZohoConnected *bool   `json:"zohoConnected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Email = raw.Email
	p.FirstName = raw.FirstName
	if p.FirstName == nil {
		p.FirstName = raw.FirstNameAlt
	}
	p.LastName = raw.LastName
	if p.LastName == nil {
		p.LastName = raw.LastNameAlt
	}
	p.ZoomConnected = raw.ZoomConnected
	p.ZohoConnected = raw.ZohoConnected
	return nil
}

// Apply merges the non-nil patch fields into a copy of the profile.
func (p *ProfilePatch) Apply(profile UserProfile) UserProfile {
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.FirstName != nil {
		profile.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		profile.LastName = *p.LastName
	}
	if p.ZoomConnected != nil {
		profile.ZoomConnected = *p.ZoomConnected
	}
	if p.ZohoConnected != nil {
		profile.ZohoConnected = *p.ZohoConnected
	}
	return profile
}

// AuthStatusResponse is the payload of GET /api/users/auth-status.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
