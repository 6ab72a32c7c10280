package usecase

import (
	"errors"
	"net/url"
	"testing"

	"go.uber.org/zap"
)

func newAuthFlow(t *testing.T) (AuthFlowUsecase, SessionUsecase) {
	t.Helper()
	session := authenticatedSession(t)
	return NewAuthFlowUsecase(session, zap.NewNop()), session
}

func TestCompleteAppliesCallbackPayload(t *testing.T) {
	flow, session := newAuthFlow(t)

	values := url.Values{}
	values.Set("user", `{"id":"u1","firstName":"Updated","zoomConnected":true}`)

	result, err := flow.Complete(values)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if result.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", result.UserID)
	}

	profile := session.Snapshot().Profile
	if profile.FirstName != "Updated" {
		t.Errorf("FirstName = %q, patch not applied", profile.FirstName)
	}
	if !profile.ZoomConnected {
		t.Error("ZoomConnected not applied")
	}
}

func TestCompleteProviderError(t *testing.T) {
	flow, session := newAuthFlow(t)

	values := url.Values{}
	values.Set("error", "access_denied")

	_, err := flow.Complete(values)
	if !errors.Is(err, ErrProviderDenied) {
		t.Fatalf("error = %v, want ErrProviderDenied", err)
	}
	if session.Snapshot().Profile.FirstName != "Ana" {
		t.Error("denied callback modified the session")
	}
}

func TestCompleteMissingUserParam(t *testing.T) {
	flow, _ := newAuthFlow(t)

	_, err := flow.Complete(url.Values{})
	if !errors.Is(err, ErrMissingAuthData) {
		t.Fatalf("error = %v, want ErrMissingAuthData", err)
	}
}

func TestCompleteMalformedPayload(t *testing.T) {
	flow, _ := newAuthFlow(t)

	values := url.Values{}
	values.Set("user", "{not json")

	if _, err := flow.Complete(values); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestCompletePayloadWithoutID(t *testing.T) {
	flow, _ := newAuthFlow(t)

	values := url.Values{}
	values.Set("user", `{"firstName":"Nobody"}`)

	_, err := flow.Complete(values)
	if !errors.Is(err, ErrMissingAuthData) {
		t.Fatalf("error = %v, want ErrMissingAuthData", err)
	}
}

func TestCompleteMismatchedUserLeavesSessionAlone(t *testing.T) {
	flow, session := newAuthFlow(t)

	values := url.Values{}
	values.Set("user", `{"id":"other-user","firstName":"Mallory"}`)

	result, err := flow.Complete(values)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if result.UserID != "other-user" {
		t.Errorf("UserID = %q", result.UserID)
	}

	if session.Snapshot().Profile.FirstName != "Ana" {
		t.Error("patch for a different user applied to the current session")
	}
}
