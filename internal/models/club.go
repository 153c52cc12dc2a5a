package models

type CreateClubRequest struct {
	Name        string        `json:"name"`
	President   string        `json:"president"`
	Contact     Field[string] `json:"contact"`
	Description Field[string] `json:"description"`
	Leads       Field[string] `json:"leads"`
}

func (r *CreateClubRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "name is required"
	}
	if r.President == "" {
		errors["president"] = "president is required"
	}

	return errors
}

// Fields applies the club defaults: contact null, description and leads empty.
func (r *CreateClubRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"president":   r.President,
		"contact":     r.Contact.OrNil(),
		"description": stringOr(r.Description, ""),
		"leads":       stringOr(r.Leads, ""),
	}
}

func stringOr(f Field[string], def string) string {
	if !f.Set || f.Null {
		return def
	}
	return f.Value
}
