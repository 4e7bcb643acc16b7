package models

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshalDistinguishesThreeStates(t *testing.T) {
	type body struct {
		Referee Optional[string] `json:"referee"`
	}

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.Referee.Set {
		t.Fatal("expected absent field to stay unset")
	}

	var null body
	if err := json.Unmarshal([]byte(`{"referee":null}`), &null); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !null.Referee.Set || null.Referee.Valid {
		t.Fatalf("expected explicit null to be set and invalid, got %+v", null.Referee)
	}

	var present body
	if err := json.Unmarshal([]byte(`{"referee":"Иванов"}`), &present); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !present.Referee.Set || !present.Referee.Valid || present.Referee.Value != "Иванов" {
		t.Fatalf("expected value to be set and valid, got %+v", present.Referee)
	}
}

func TestOptionalPtr(t *testing.T) {
	if got := NullOptional[int]().Ptr(); got != nil {
		t.Fatalf("expected nil pointer for explicit null, got %v", *got)
	}

	got := NewOptional(42).Ptr()
	if got == nil || *got != 42 {
		t.Fatalf("expected pointer to 42, got %v", got)
	}
}

func TestOptionalUnmarshalWrongType(t *testing.T) {
	var dst struct {
		Duration Optional[int] `json:"duration"`
	}
	if err := json.Unmarshal([]byte(`{"duration":"ninety"}`), &dst); err == nil {
		t.Fatal("expected type error")
	}
}
