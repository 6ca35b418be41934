package domain

import (
	"encoding/json"
	"testing"
)

type patchBody struct {
	Name   Optional[string]  `json:"name"`
	Price  Optional[FlexInt] `json:"price"`
	Active Optional[bool]    `json:"active"`
}

func TestOptionalUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantName   Optional[string]
		wantPrice  Optional[FlexInt]
		wantActive Optional[bool]
	}{
		{
			name: "missing keys are unset",
			body: `{}`,
		},
		{
			name: "null is unset",
			body: `{"name":null,"price":null,"active":null}`,
		},
		{
			name:      "empty string price is unset but empty name is set",
			body:      `{"name":"","price":""}`,
			wantName:  Some(""),
			wantPrice: Optional[FlexInt]{},
		},
		{
			name:       "zero and false are set",
			body:       `{"price":0,"active":false}`,
			wantPrice:  Some(FlexInt(0)),
			wantActive: Some(false),
		},
		{
			name:      "quoted integer price",
			body:      `{"price":"15000"}`,
			wantPrice: Some(FlexInt(15000)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got patchBody
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("name: expected %+v, got %+v", tt.wantName, got.Name)
			}
			if got.Price != tt.wantPrice {
				t.Errorf("price: expected %+v, got %+v", tt.wantPrice, got.Price)
			}
			if got.Active != tt.wantActive {
				t.Errorf("active: expected %+v, got %+v", tt.wantActive, got.Active)
			}
		})
	}
}

func TestFlexIntRejectsNonIntegers(t *testing.T) {
	for _, body := range []string{`{"price":"abc"}`, `{"price":12.5}`, `{"price":true}`} {
		var got patchBody
		if err := json.Unmarshal([]byte(body), &got); err == nil {
			t.Errorf("Expected error for %s", body)
		}
	}
}

func TestOptionalOrElse(t *testing.T) {
	if got := (Optional[int64]{}).OrElse(7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
	if got := Some[int64](0).OrElse(7); got != 0 {
		t.Errorf("Expected provided 0, got %d", got)
	}
}

func TestOptionalMarshal(t *testing.T) {
	data, _ := json.Marshal(struct {
		A Optional[int64] `json:"a"`
		B Optional[int64] `json:"b"`
	}{B: Some[int64](3)})
	if string(data) != `{"a":null,"b":3}` {
		t.Errorf("unexpected JSON %s", data)
	}
}
