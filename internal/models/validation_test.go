package models

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, body string, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func TestCreateLostFoundValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"valid", `{"title":"Keys","description":"Blue keychain","location":"Hostel","type":"lost"}`, nil},
		{"missing all", `{}`, []string{"title", "description", "location", "type"}},
		{"bad type", `{"title":"Keys","description":"d","location":"l","type":"stolen"}`, []string{"type"}},
		{"found ok", `{"title":"Keys","description":"d","location":"l","type":"found","image":null}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateLostFoundRequest
			decode(t, tt.body, &req)
			errs := req.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("errors = %v, want fields %v", errs, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := errs[f]; !ok {
					t.Errorf("missing error for %s", f)
				}
			}
		})
	}
}

func TestUpdateLostFoundValidate(t *testing.T) {
	var req UpdateLostFoundRequest
	decode(t, `{"type":"misplaced"}`, &req)
	if _, ok := req.Validate()["type"]; !ok {
		t.Fatal("invalid type must be rejected on update")
	}

	req = UpdateLostFoundRequest{}
	decode(t, `{"title":null}`, &req)
	if _, ok := req.Validate()["title"]; !ok {
		t.Fatal("null title must be rejected")
	}

	req = UpdateLostFoundRequest{}
	decode(t, `{"image":null,"location":""}`, &req)
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fields := req.Fields()
	if len(fields) != 2 || fields["image"] != nil || fields["location"] != "" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
}

func TestCreateNoticeDefaultsAuthor(t *testing.T) {
	var req CreateNoticeRequest
	decode(t, `{"title":"Holiday","content":"Campus closed","category":"General"}`, &req)
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.AuthorOrDefault() != DefaultNoticeAuthor {
		t.Fatalf("author = %q", req.AuthorOrDefault())
	}

	decode(t, `{"title":"Holiday","content":"Campus closed","category":"General","author":"Dean"}`, &req)
	if req.AuthorOrDefault() != "Dean" {
		t.Fatalf("author = %q", req.AuthorOrDefault())
	}
}

func TestCreateListingPrice(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPrice bool
	}{
		{"zero price allowed", `{"title":"Book","description":"d","category":"Books","price":0}`, false},
		{"missing price", `{"title":"Book","description":"d","category":"Books"}`, true},
		{"null price", `{"title":"Book","description":"d","category":"Books","price":null}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateListingRequest
			decode(t, tt.body, &req)
			_, got := req.Validate()["price"]
			if got != tt.wantPrice {
				t.Fatalf("price error present = %v, want %v", got, tt.wantPrice)
			}
		})
	}
}

func TestCreateListingDefaults(t *testing.T) {
	var req CreateListingRequest
	decode(t, `{"title":"Cycle","description":"d","category":"Sports","price":1500,"contact":""}`, &req)
	if req.SellerOrDefault() != DefaultSeller {
		t.Fatalf("seller = %q", req.SellerOrDefault())
	}
	if req.ContactOrNil() != nil {
		t.Fatalf("contact = %v", req.ContactOrNil())
	}
}

func TestUpdateListingFieldsOnlyPresent(t *testing.T) {
	var req UpdateListingRequest
	decode(t, `{"price":250,"unknown":"x"}`, &req)
	fields := req.Fields()
	if len(fields) != 1 || fields["price"] != 250.0 {
		t.Fatalf("unexpected fields: %#v", fields)
	}

	req = UpdateListingRequest{}
	decode(t, `{"bogus":1}`, &req)
	if len(req.Fields()) != 0 {
		t.Fatalf("expected no recognised fields")
	}
}

func TestCreateClubDefaults(t *testing.T) {
	var req CreateClubRequest
	decode(t, `{"name":"Robotics","president":"Ravi"}`, &req)
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	f := req.Fields()
	if f["contact"] != nil || f["description"] != "" || f["leads"] != "" {
		t.Fatalf("unexpected defaults: %#v", f)
	}

	req = CreateClubRequest{}
	decode(t, `{"name":"Robotics"}`, &req)
	if _, ok := req.Validate()["president"]; !ok {
		t.Fatal("president is required")
	}
}

func TestProfileFields(t *testing.T) {
	var req SignupRequest
	decode(t, `{"email":"a@nitgoa.ac.in","password":"secret123","name":"Asha","rollNo":"","hostel":null}`, &req)

	supplied := req.SuppliedFields()
	if len(supplied) != 1 || supplied["name"] != "Asha" {
		t.Fatalf("SuppliedFields = %#v", supplied)
	}

	var upd UpdateProfileRequest
	decode(t, `{"rollNo":"","email":"x@y","hostel":"H2"}`, &upd)
	fields := upd.Fields()
	if _, ok := fields["email"]; ok {
		t.Fatal("email is not an editable profile field")
	}
	if fields["rollNo"] != "" || fields["hostel"] != "H2" || len(fields) != 2 {
		t.Fatalf("Fields = %#v", fields)
	}
}

func TestCredentialsRequired(t *testing.T) {
	req := LoginRequest{Email: "a@nitgoa.ac.in"}
	if _, ok := req.Validate()["password"]; !ok {
		t.Fatal("password is required")
	}
}

func TestValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse(map[string]string{
		"title": "title is required",
		"type":  "type is required",
	})
	if resp.Error != "title is required; type is required" {
		t.Fatalf("Error = %q", resp.Error)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("Errors = %v", resp.Errors)
	}
}
