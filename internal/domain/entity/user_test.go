package entity

import (
	"encoding/json"
	"testing"
)

func TestUserProfileUnmarshalSnakeCase(t *testing.T) {
	var profile UserProfile
	payload := `{"id":"u1","email":"ana@example.com","first_name":"Ana","last_name":"Silva"}`

	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if profile.FirstName != "Ana" || profile.LastName != "Silva" {
		t.Errorf("got name %q %q, want Ana Silva", profile.FirstName, profile.LastName)
	}
}

func TestUserProfileUnmarshalCamelCaseAlias(t *testing.T) {
	var profile UserProfile
	payload := `{"id":"u1","email":"ana@example.com","firstName":"Ana","lastName":"Silva"}`

	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if profile.FirstName != "Ana" || profile.LastName != "Silva" {
		t.Errorf("got name %q %q, want Ana Silva", profile.FirstName, profile.LastName)
	}
}

func TestUserProfileSnakeCaseWinsOverAlias(t *testing.T) {
	var profile UserProfile
	payload := `{"id":"u1","first_name":"Ana","firstName":"Other"}`

	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if profile.FirstName != "Ana" {
		t.Errorf("got first name %q, want canonical spelling to win", profile.FirstName)
	}
}

func TestProfilePatchApplyMergesOnlyPresentFields(t *testing.T) {
	first := "New"
	zoom := true
	patch := ProfilePatch{
		FirstName:     &first,
		ZoomConnected: &zoom,
	}

	base := UserProfile{
		ID:        "u1",
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Silva",
	}

	merged := patch.Apply(base)

	if merged.FirstName != "New" {
		t.Errorf("FirstName = %q, want New", merged.FirstName)
	}
	if !merged.ZoomConnected {
		t.Error("ZoomConnected = false, want true")
	}
	if merged.Email != "ana@example.com" || merged.LastName != "Silva" {
		t.Errorf("absent fields changed: %+v", merged)
	}
	if base.FirstName != "Ana" {
		t.Errorf("Apply mutated its input: %+v", base)
	}
}

func TestProfilePatchUnmarshalCamelCaseAlias(t *testing.T) {
	var patch ProfilePatch
	payload := `{"firstName":"Ana","zohoConnected":true}`

	if err := json.Unmarshal([]byte(payload), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if patch.FirstName == nil || *patch.FirstName != "Ana" {
		t.Errorf("FirstName = %v, want Ana", patch.FirstName)
	}
	if patch.ZohoConnected == nil || !*patch.ZohoConnected {
		t.Errorf("ZohoConnected = %v, want true", patch.ZohoConnected)
	}
	if patch.LastName != nil {
		t.Errorf("LastName = %v, want nil for absent field", patch.LastName)
	}
}
